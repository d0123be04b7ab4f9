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

package check

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closelock/internal/config"
)

// A lockVar is one closelock.Lock variable tracked within a function.
type lockVar struct {
	// obj identifies the variable; shadowed redeclarations are distinct
	// objects and tracked separately.
	obj *types.Var

	// decl is the closelock.New call the variable is bound to, used for
	// reporting.
	decl ast.Node

	// released records that some Close, CloseInto or Unlock call takes
	// responsibility for the resource.
	released bool

	// escaped records that the lock value leaves the function's control.
	escaped bool
}

// collect finds all variables in body bound to a closelock.New result.
//
// A New result that is discarded outright is reported here; one consumed by
// a larger expression is left alone, since its lifecycle cannot be tracked.
func (s *Pass) collect(body inspector.Cursor) map[*types.Var]*lockVar {
	info := s.Analysis.TypesInfo

	var locks map[*types.Var]*lockVar

	for c := range body.Preorder((*ast.CallExpr)(nil)) {
		call := c.Node().(*ast.CallExpr)
		if !isNew(info, call) {
			continue
		}

		obj := boundVar(info, c)
		if obj == nil {
			if _, ok := c.Parent().Node().(*ast.ExprStmt); ok && s.Checks.Enabled(config.DeferredCheck) {
				s.report(call, "result of closelock.New is discarded; the resource is never released")
			}

			continue
		}

		if locks == nil {
			locks = make(map[*types.Var]*lockVar)
		}
		locks[obj] = &lockVar{obj: obj, decl: call}
	}

	return locks
}

// reportUnclosed flags tracked locks with neither a Close, CloseInto nor
// Unlock call: their resource is definitively leaked.
func (s *Pass) reportUnclosed(locks map[*types.Var]*lockVar) {
	if !s.Checks.Enabled(config.DeferredCheck) {
		return
	}

	for _, lock := range locks {
		if lock.released || lock.escaped {
			continue
		}

		s.report(lock.decl, "lock '%s' is never closed; defer Close or CloseInto where it is created", lock.obj.Name())
	}
}

// boundVar resolves the variable the New call at c is assigned to, or nil
// when the result is not bound to a plain identifier.
func boundVar(info *types.Info, c inspector.Cursor) *types.Var {
	switch stmt := c.Parent().Node().(type) {
	case *ast.AssignStmt:
		for i, rhs := range stmt.Rhs {
			if rhs != c.Node() {
				continue
			}

			if i >= len(stmt.Lhs) {
				break
			}

			id, ok := stmt.Lhs[i].(*ast.Ident)
			if !ok {
				break
			}

			return identVar(info, id)
		}

	case *ast.ValueSpec:
		for i, value := range stmt.Values {
			if value != c.Node() {
				continue
			}

			if i >= len(stmt.Names) {
				break
			}

			return identVar(info, stmt.Names[i])
		}
	}

	return nil
}

// identVar returns the variable object for a non-blank identifier.
func identVar(info *types.Info, id *ast.Ident) *types.Var {
	if id.Name == "_" {
		return nil
	}

	if obj, ok := info.Defs[id].(*types.Var); ok {
		return obj
	}

	if obj, ok := info.Uses[id].(*types.Var); ok {
		return obj
	}

	return nil
}
