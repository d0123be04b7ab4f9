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

// State is the position of a [Lock] in its lifecycle.
//
// A Lock starts [Locked] and leaves that state exactly once, either to
// [Unlocked] by a successful transfer or to [Closed] by disposal. The two
// terminal states are mutually exclusive and neither is reachable from the
// other.
type State uint8

//go:generate go tool stringer -type State -linecomment
const (
	// Locked means the Lock owns the resource and releases it at scope exit.
	Locked State = iota // locked
	// Unlocked means ownership has been transferred to the caller.
	Unlocked // unlock
	// Closed means the Lock has released the resource.
	Closed // close
)
