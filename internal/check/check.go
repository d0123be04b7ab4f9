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

// Package check implements the closelock misuse checks.
//
// The analysis runs per function body in two stages: first it collects all
// variables bound to a closelock.New result, then it classifies every use of
// those variables and reports
//
//   - locks that no Close, CloseInto or Unlock call refers to,
//   - resources escaping the scope through Get instead of Unlock,
//   - discarded Unlock results.
//
// A lock value that leaves the function's control in any other way (passed
// as an argument, stored, returned) is not tracked further; the checks stay
// conservative rather than guessing.
package check

import (
	"fmt"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closelock/internal/astutil"
	"fillmore-labs.com/closelock/internal/config"
)

// Pass checks the functions of one package for closelock misuse.
type Pass struct {
	// Analysis is the surrounding analysis pass.
	Analysis *analysis.Pass

	// File is the file currently under analysis, for nolint suppression.
	File astutil.CurrentFile

	// Checks selects the enabled misuse checks.
	Checks config.Checks
}

// CheckFunc analyzes one function body, given as an [inspector.Cursor]
// positioned at the body block.
func (s *Pass) CheckFunc(body inspector.Cursor) {
	locks := s.collect(body)

	if len(locks) > 0 {
		s.classify(body, locks)
		s.reportUnclosed(locks)
	}
}

// report emits a diagnostic unless it is suppressed by a nolint comment on
// the same line.
func (s *Pass) report(rng analysis.Range, format string, args ...any) {
	if s.File.NoLintComment(rng.Pos()) {
		return
	}

	s.Analysis.Report(analysis.Diagnostic{
		Pos:     rng.Pos(),
		End:     rng.End(),
		Message: fmt.Sprintf(format, args...),
	})
}
