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

// Package analyzer implements the closelock static analysis pass.
//
// # Overview
//
// The type system cannot see whether a [closelock.Lock] is actually closed
// at scope exit. This analyzer detects the misuse patterns that defeat the
// guard:
//
//	l := closelock.New(f) // lock 'l' is never closed
//
//	return l.Get() // the locked resource escapes; Close would release it anyway
//
//	l.Unlock() // the transferred resource leaks
//
// # Checks
//
//   - deferred: a lock created in a function must be closed by a Close or
//     CloseInto call in that function. Locks that leave the function's
//     control (passed on, stored, returned) are skipped.
//   - escape: a resource obtained from Get must not be returned; ownership
//     is transferred with Unlock.
//   - discard: the result of Unlock must not be discarded.
//
// Individual diagnostics can be suppressed with a `//nolint:closelock`
// comment on the reported line; whole files and functions with one on their
// doc comment.
//
// [closelock.Lock]: https://pkg.go.dev/fillmore-labs.com/closelock#Lock
package analyzer
