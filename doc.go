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

/*
Package closelock guards a closable resource so that it is released on every
exit path of a scope unless ownership is explicitly transferred out.

# Overview

A factory that opens a resource and returns it must close the resource when
any step between opening and returning fails. Tracking that by hand across
every branch is error-prone. A [Lock] does it once:

	func open(name string) (io.ReadCloser, error) {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}

		l := closelock.New(f)
		defer l.Close()

		if err := validate(l.Get()); err != nil {
			return nil, err // f is closed by the deferred Close
		}

		return l.Unlock() // f is transferred; Close becomes a no-op
	}

While locked, the lock owns the resource: the deferred [Lock.Close] releases
it no matter how the scope exits. [Lock.Unlock] disarms the lock and hands
ownership to the caller exactly once; a second call fails with
[ErrAlreadyUnlocked].

# Consuming a resource in place

When the resource never leaves the scope, [Do] runs a function against it and
always closes it, joining a close error into the function's error instead of
masking it:

	n, err := closelock.Do(f, func(f *os.File) (int64, error) {
		return io.Copy(dst, f)
	})

[Lock.CloseInto] offers the same error-joining policy for the deferred form:

	defer l.CloseInto(&err)

# Concurrency

A Lock is confined to one goroutine. Its state is a plain field with no
locking; concurrent Unlock and Close calls race.
*/
package closelock
