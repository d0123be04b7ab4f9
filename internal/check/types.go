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

	"golang.org/x/tools/go/types/typeutil"
)

// Identity of the guarded package.
const (
	// lockPath is the canonical import path of the closelock package.
	lockPath = "fillmore-labs.com/closelock"

	// lockName is its package name. Matching falls back to the name so that
	// test modules containing a relocated copy of the package are recognized.
	lockName = "closelock"
)

// fromLockPackage reports whether pkg is the closelock package.
func fromLockPackage(pkg *types.Package) bool {
	if pkg == nil {
		return false
	}

	return pkg.Path() == lockPath || pkg.Name() == lockName
}

// isNew reports whether call is a call to closelock.New.
func isNew(info *types.Info, call *ast.CallExpr) bool {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Signature().Recv() != nil {
		return false
	}

	return fn.Name() == "New" && fromLockPackage(fn.Pkg())
}

// lockMethod returns the name of the closelock.Lock method invoked by call,
// or "" when call is not a method call on a Lock.
func lockMethod(info *types.Info, call *ast.CallExpr) string {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok {
		return ""
	}

	recv := fn.Signature().Recv()
	if recv == nil || !fromLockPackage(fn.Pkg()) {
		return ""
	}

	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok || named.Obj().Name() != "Lock" {
		return ""
	}

	return fn.Name()
}
