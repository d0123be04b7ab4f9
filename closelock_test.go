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

package closelock_test

import (
	"errors"
	"strings"
	"testing"

	. "fillmore-labs.com/closelock"
)

// closer counts Close calls and fails with err when set.
type closer struct {
	closes int
	err    error
}

func (c *closer) Close() error {
	c.closes++

	return c.err
}

var errClose = errors.New("close failed")

func TestCloseReleasesOnce(t *testing.T) {
	t.Parallel()

	c := &closer{}
	l := New(c)

	// Get is repeatable and does not change state.
	for range 2 {
		if got := l.Get(); got != c {
			t.Errorf("Get() = %v, want %v", got, c)
		}
	}

	if err := l.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}

	// Second Close must not release again.
	if err := l.Close(); err != nil {
		t.Errorf("Second Close() = %v, want nil", err)
	}

	if c.closes != 1 {
		t.Errorf("Resource closed %d times, want 1", c.closes)
	}

	if got := l.State(); got != Closed {
		t.Errorf("State() = %v, want %v", got, Closed)
	}
}

func TestUnlockTransfers(t *testing.T) {
	t.Parallel()

	c := &closer{}
	l := New(c)

	got, err := l.Unlock()
	if err != nil {
		t.Fatalf("Unlock() failed: %v", err)
	}

	if got != c {
		t.Errorf("Unlock() = %v, want %v", got, c)
	}

	// Close after a transfer is a no-op.
	if err := l.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}

	if c.closes != 0 {
		t.Errorf("Resource closed %d times, want 0", c.closes)
	}

	// The caller owns the resource now.
	if err := got.Close(); err != nil {
		t.Errorf("Caller Close() = %v, want nil", err)
	}
}

func TestUnlockOnlyOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		first       func(l *Lock[*closer]) // puts the lock in a terminal state
		wantCloses  int
		wantState   State
		closeCloses int // total closes after a final Close call
	}{
		{
			name:        "AfterUnlock",
			first:       func(l *Lock[*closer]) { _, _ = l.Unlock() },
			wantCloses:  0,
			wantState:   Unlocked,
			closeCloses: 0,
		},
		{
			name:        "AfterClose",
			first:       func(l *Lock[*closer]) { _ = l.Close() },
			wantCloses:  1,
			wantState:   Closed,
			closeCloses: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &closer{}
			l := New(c)

			tt.first(l)

			got, err := l.Unlock()
			if !errors.Is(err, ErrAlreadyUnlocked) {
				t.Errorf("Unlock() error = %v, want %v", err, ErrAlreadyUnlocked)
			}

			if got != nil {
				t.Errorf("Unlock() = %v, want zero value", got)
			}

			if c.closes != tt.wantCloses {
				t.Errorf("Resource closed %d times, want %d", c.closes, tt.wantCloses)
			}

			if gotState := l.State(); gotState != tt.wantState {
				t.Errorf("State() = %v, want %v", gotState, tt.wantState)
			}

			_ = l.Close()
			if c.closes != tt.closeCloses {
				t.Errorf("Resource closed %d times after final Close, want %d", c.closes, tt.closeCloses)
			}
		})
	}
}

func TestCloseError(t *testing.T) {
	t.Parallel()

	c := &closer{err: errClose}
	l := New(c)

	if err := l.Close(); !errors.Is(err, errClose) {
		t.Errorf("Close() = %v, want %v", err, errClose)
	}

	// A failed close is not retried.
	if err := l.Close(); err != nil {
		t.Errorf("Second Close() = %v, want nil", err)
	}

	if c.closes != 1 {
		t.Errorf("Resource closed %d times, want 1", c.closes)
	}
}

func TestCloseInto(t *testing.T) {
	t.Parallel()

	errInFlight := errors.New("in flight")

	tests := []struct {
		name     string
		inFlight error
		closeErr error
		want     []error // all must satisfy errors.Is
		wantNil  bool
	}{
		{name: "NoErrors", wantNil: true},
		{name: "CloseError", closeErr: errClose, want: []error{errClose}},
		{name: "InFlightOnly", inFlight: errInFlight, want: []error{errInFlight}},
		{name: "Both", inFlight: errInFlight, closeErr: errClose, want: []error{errInFlight, errClose}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &closer{err: tt.closeErr}
			l := New(c)

			err := tt.inFlight
			l.CloseInto(&err)

			if tt.wantNil {
				if err != nil {
					t.Fatalf("CloseInto set error %v, want nil", err)
				}

				return
			}

			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Joined error %v does not contain %v", err, want)
				}
			}

			if tt.inFlight != nil && !strings.HasPrefix(err.Error(), tt.inFlight.Error()) {
				t.Errorf("In-flight error is not reported first: %v", err)
			}

			if c.closes != 1 {
				t.Errorf("Resource closed %d times, want 1", c.closes)
			}
		})
	}
}

// TestEarlyFailure exercises the factory pattern: a failure before Unlock
// closes the resource exactly once and stays observable.
func TestEarlyFailure(t *testing.T) {
	t.Parallel()

	errValidate := errors.New("validation failed")
	c := &closer{}

	validate := func(*closer) error { return errValidate }

	open := func() (resource *closer, err error) {
		l := New(c)
		defer l.CloseInto(&err)

		if err := validate(l.Get()); err != nil {
			return nil, err
		}

		return l.Unlock()
	}

	resource, err := open()
	if !errors.Is(err, errValidate) {
		t.Errorf("open() error = %v, want %v", err, errValidate)
	}

	if resource != nil {
		t.Errorf("open() = %v, want nil", resource)
	}

	if c.closes != 1 {
		t.Errorf("Resource closed %d times, want 1", c.closes)
	}
}

func TestGetFailsFast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		terminal  func(l *Lock[*closer])
		wantPanic string
	}{
		{
			name:      "AfterUnlock",
			terminal:  func(l *Lock[*closer]) { _, _ = l.Unlock() },
			wantPanic: "closelock: Get after unlock",
		},
		{
			name:      "AfterClose",
			terminal:  func(l *Lock[*closer]) { _ = l.Close() },
			wantPanic: "closelock: Get after close",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(&closer{})
			tt.terminal(l)

			defer func() {
				if got := recover(); got != tt.wantPanic {
					t.Errorf("Get() panic = %v, want %q", got, tt.wantPanic)
				}
			}()

			_ = l.Get()
		})
	}
}

func TestDo(t *testing.T) {
	t.Parallel()

	errUse := errors.New("use failed")

	tests := []struct {
		name     string
		closeErr error
		fn       func(c *closer) (int, error)
		want     int
		wantErrs []error
	}{
		{
			name: "Success",
			fn:   func(*closer) (int, error) { return 42, nil },
			want: 42,
		},
		{
			name:     "UseError",
			fn:       func(*closer) (int, error) { return 0, errUse },
			wantErrs: []error{errUse},
		},
		{
			name:     "BothErrors",
			closeErr: errClose,
			fn:       func(*closer) (int, error) { return 0, errUse },
			wantErrs: []error{errUse, errClose},
		},
		{
			name:     "CloseError",
			closeErr: errClose,
			fn:       func(*closer) (int, error) { return 7, nil },
			want:     7,
			wantErrs: []error{errClose},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &closer{err: tt.closeErr}

			got, err := Do(c, tt.fn)
			if got != tt.want {
				t.Errorf("Do() = %d, want %d", got, tt.want)
			}

			if len(tt.wantErrs) == 0 && err != nil {
				t.Errorf("Do() error = %v, want nil", err)
			}

			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Do() error %v does not contain %v", err, want)
				}
			}

			if c.closes != 1 {
				t.Errorf("Resource closed %d times, want 1", c.closes)
			}
		})
	}
}

// Do closes the resource even when fn panics.
func TestDoPanic(t *testing.T) {
	t.Parallel()

	c := &closer{}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic to propagate")
			}
		}()

		_, _ = Do(c, func(*closer) (int, error) { panic("boom") })
	}()

	if c.closes != 1 {
		t.Errorf("Resource closed %d times, want 1", c.closes)
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state State
		want  string
	}{
		{Locked, "locked"},
		{Unlocked, "unlock"},
		{Closed, "close"},
		{State(7), "State(7)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
