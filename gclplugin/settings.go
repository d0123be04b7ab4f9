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

package gclplugin

import closelock "fillmore-labs.com/closelock/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Deferred enables the check for locks without a closing call.
	Deferred *bool `json:"deferred,omitzero"`
	// Escape enables the check for resources returned from Get.
	Escape *bool `json:"escape,omitzero"`
	// Discard enables the check for discarded Unlock results.
	Discard *bool `json:"discard,omitzero"`
}

// Options converts [Settings] into a list of [closelock.Option] for the closelock analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []closelock.Option {
	var opts []closelock.Option

	opts = appendOption(opts, s.Deferred, closelock.WithDeferred)
	opts = appendOption(opts, s.Escape, closelock.WithEscape)
	opts = appendOption(opts, s.Discard, closelock.WithDiscard)

	return opts
}

// appendOption appends a non-nil setting to a [closelock.Option] list.
func appendOption[T any](opts []closelock.Option, value *T, constructor func(T) closelock.Option) []closelock.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
