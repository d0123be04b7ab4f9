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

import (
	"strconv"

	"fillmore-labs.com/closelock/internal/config"
)

// flagValue binds one flag of a [config.Set] to a command line boolean.
type flagValue[T ~uint8] struct {
	flags *config.Set[T]
	flag  T
}

func newFlagValue[T ~uint8](flags *config.Set[T], flag T) flagValue[T] {
	return flagValue[T]{flags: flags, flag: flag}
}

// Set implements [flag.Value].
func (f flagValue[T]) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.flag, b)

	return nil
}

// String implements [flag.Value]. The flag package probes a zero value for
// default formatting, hence the nil guard.
func (f flagValue[T]) String() string {
	if f.flags == nil {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.flag))
}

// Get implements [flag.Getter].
func (f flagValue[T]) Get() any {
	if f.flags == nil {
		return false
	}

	return f.flags.Enabled(f.flag)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f flagValue[T]) IsBoolFlag() bool { return true }
