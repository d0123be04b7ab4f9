// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package closelock

import (
	"errors"
	"io"
)

// ErrAlreadyUnlocked is returned by [Lock.Unlock] when the resource has
// already been unlocked or closed. It signals a usage bug in the calling
// code, not a recoverable runtime condition.
var ErrAlreadyUnlocked = errors.New("closelock: resource already unlocked")

// A Lock owns a closable resource for the duration of a scope.
//
// While the state is [Locked], the Lock is responsible for releasing the
// resource: a deferred [Lock.Close] or [Lock.CloseInto] releases it on every
// exit path. [Lock.Unlock] transfers ownership to the caller instead, after
// which closing the Lock is a no-op. Exactly one of the two happens, never
// both.
//
// The zero Lock is not useful; create one with [New].
type Lock[R io.Closer] struct {
	noCopy noCopy //nolint:unused

	resource R
	state    State
}

// New wraps an already acquired resource in a [Lock] and arms it.
//
// The caller should defer [Lock.Close] or [Lock.CloseInto] immediately.
func New[R io.Closer](resource R) *Lock[R] {
	return &Lock[R]{resource: resource, state: Locked}
}

// Get returns the wrapped resource for use within the scope, without
// transferring ownership. The returned value must not outlive the Lock; to
// hand the resource out, use [Lock.Unlock] instead.
//
// Get panics after the Lock has been unlocked or closed. A stale handle is
// worse than a crash.
func (l *Lock[R]) Get() R {
	if l.state != Locked {
		panic("closelock: Get after " + l.state.String())
	}

	return l.resource
}

// Unlock transfers ownership of the resource to the caller and disarms the
// Lock, so that a subsequent [Lock.Close] does nothing. The caller is now
// responsible for closing the returned resource.
//
// Unlock succeeds at most once per Lock: any further call, whether the Lock
// was unlocked or closed in the meantime, fails with [ErrAlreadyUnlocked]
// and returns the zero value of R.
func (l *Lock[R]) Unlock() (R, error) {
	if l.state != Locked {
		var zero R

		return zero, ErrAlreadyUnlocked
	}

	l.state = Unlocked

	return l.resource, nil
}

// Close releases the resource if the Lock still owns it and returns the
// resource's close error, if any.
//
// Close does nothing after a successful [Lock.Unlock] and nothing on a
// second call; the resource is released at most once. It is meant to be
// deferred at the point the Lock is created.
func (l *Lock[R]) Close() error {
	if l.state != Locked {
		return nil
	}

	l.state = Closed

	return l.resource.Close()
}

// CloseInto closes the Lock like [Lock.Close], joining any close error into
// *errp with [errors.Join]. An error already in flight stays first; the
// close error is attached rather than masking it, and neither is discarded.
//
// Use it with a named return value:
//
//	func use(f *os.File) (err error) {
//		l := closelock.New(f)
//		defer l.CloseInto(&err)
//		...
//	}
func (l *Lock[R]) CloseInto(errp *error) {
	*errp = errors.Join(*errp, l.Close())
}

// State reports the Lock's position in its lifecycle.
func (l *Lock[R]) State() State {
	return l.state
}

// Do runs fn against a freshly locked resource and closes it when fn
// returns, on success, failure and panic alike. A close error is joined
// into fn's error, the in-flight error first.
//
// Do suits scopes that consume the resource in place. When the resource
// must survive the scope, use [New] and [Lock.Unlock].
func Do[R io.Closer, T any](resource R, fn func(R) (T, error)) (result T, err error) {
	l := New(resource)
	defer l.CloseInto(&err)

	return fn(l.Get())
}

// noCopy makes `go vet -copylocks` flag copies of a [Lock]. A copied Lock
// would release the shared resource twice.
//
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
