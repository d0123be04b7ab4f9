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

// Package config holds the flag sets configuring the closelock analyzer.
package config

// Check selects individual misuse checks.
type Check uint8

const (
	// DeferredCheck reports locks that are not closed by a deferred call.
	DeferredCheck Check = 1 << iota

	// EscapeCheck reports locked resources escaping the scope through Get.
	EscapeCheck

	// DiscardCheck reports discarded Unlock results.
	DiscardCheck
)

// Behavior holds behavioral options independent of individual checks.
type Behavior uint8

const (
	// IncludeGenerated includes generated files in the analysis.
	IncludeGenerated Behavior = 1 << iota
)

// Checks is the set of enabled misuse checks.
type Checks = Set[Check]

// Behaviors is the set of enabled behavioral options.
type Behaviors = Set[Behavior]

// DefaultChecks returns the checks enabled by default: all of them.
func DefaultChecks() Checks {
	return NewSet(DeferredCheck | EscapeCheck | DiscardCheck)
}

// DefaultBehaviors returns the default behavioral options.
func DefaultBehaviors() Behaviors {
	return NewSet(Behavior(0))
}
