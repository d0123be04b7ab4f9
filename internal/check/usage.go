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

// classify walks every use of the tracked locks and reports misuse.
func (s *Pass) classify(body inspector.Cursor, locks map[*types.Var]*lockVar) {
	info := s.Analysis.TypesInfo

	for c := range body.Preorder((*ast.Ident)(nil)) {
		obj, ok := info.Uses[c.Node().(*ast.Ident)].(*types.Var)
		if !ok {
			continue
		}

		lock, ok := locks[obj]
		if !ok {
			continue
		}

		method, call := receiverUse(info, c)

		switch method {
		case "Close", "CloseInto":
			lock.released = true

		case "Unlock":
			// After a transfer, closing is the caller's duty.
			lock.released = true

			s.checkDiscard(call)

		case "Get":
			s.checkEscape(call)

		case "State":
			// observing the state is always fine

		default:
			// The lock is handed out of the function's control; the
			// unclosed check would only guess from here on.
			lock.escaped = true
		}
	}
}

// receiverUse resolves the Lock method invoked with the identifier at c as
// receiver. It returns the method name and the cursor of the enclosing call,
// or "" when the identifier is used any other way.
func receiverUse(info *types.Info, c inspector.Cursor) (string, inspector.Cursor) {
	sel, ok := c.Parent().Node().(*ast.SelectorExpr)
	if !ok || sel.X != c.Node() {
		return "", c
	}

	callc := c.Parent().Parent()

	call, ok := callc.Node().(*ast.CallExpr)
	if !ok || call.Fun != sel {
		return "", c
	}

	return lockMethod(info, call), callc
}

// checkDiscard reports an Unlock whose transferred resource is thrown away.
func (s *Pass) checkDiscard(c inspector.Cursor) {
	if !s.Checks.Enabled(config.DiscardCheck) {
		return
	}

	const message = "result of Unlock is discarded; the transferred resource leaks"

	switch parent := c.Parent().Node().(type) {
	case *ast.ExprStmt:
		s.report(c.Node(), message)

	case *ast.DeferStmt, *ast.GoStmt:
		s.report(c.Node(), message)

	case *ast.AssignStmt:
		if len(parent.Rhs) == 1 && allBlank(parent.Lhs) {
			s.report(c.Node(), message)
		}
	}
}

// checkEscape reports a Get result leaving the scope as a return operand.
// Ownership leaves a scope through Unlock, never through Get. Only the
// direct `return l.Get()` form is reported; a Get result consumed by another
// expression may legitimately stay inside the scope.
func (s *Pass) checkEscape(c inspector.Cursor) {
	if !s.Checks.Enabled(config.EscapeCheck) {
		return
	}

	if _, ok := c.Parent().Node().(*ast.ReturnStmt); ok {
		s.report(c.Node(), "resource obtained from Get is returned; transfer ownership with Unlock")
	}
}

// allBlank reports whether every expression is the blank identifier.
func allBlank(exprs []ast.Expr) bool {
	for _, expr := range exprs {
		id, ok := expr.(*ast.Ident)
		if !ok || id.Name != "_" {
			return false
		}
	}

	return true
}
