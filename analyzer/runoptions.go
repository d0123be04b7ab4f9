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

package analyzer

import "fillmore-labs.com/closelock/internal/config"

// runOptions represent the configuration of one closelock analyzer instance.
type runOptions struct {
	// checks selects the enabled misuse checks.
	checks config.Checks

	// behavior holds behavioral options.
	behavior config.Behaviors
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		checks:   config.DefaultChecks(),
		behavior: config.DefaultBehaviors(),
	}
}
