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

package config

// Set is a typed bitmask over a flag type.
type Set[T ~uint8] struct {
	value T
}

// NewSet creates a [Set] with the given flags enabled.
func NewSet[T ~uint8](flags T) Set[T] {
	return Set[T]{value: flags}
}

// Set enables or disables a flag.
func (s *Set[T]) Set(flag T, on bool) {
	if on {
		s.value |= flag
	} else {
		s.value &^= flag
	}
}

// Enabled reports whether a flag is enabled.
func (s Set[T]) Enabled(flag T) bool {
	return s.value&flag != 0
}
