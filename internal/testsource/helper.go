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

// Package testsource provides utilities for parsing and type-checking Go
// source code in tests.
//
// It is designed to simplify testing of the closelock checks by handling the
// boilerplate of parsing, type-checking and resolving an in-test copy of the
// closelock package.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Parse parses a complete Go source file, including comments.
func Parse(tb testing.TB, fset *token.FileSet, filename, src string) *ast.File {
	tb.Helper()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse %s: %v", filename, err)
	}

	return f
}

// Check type-checks f as a package with the given import path. Imports are
// resolved against deps first, then against the default importer, so test
// sources can import packages checked earlier in the same test.
func Check(tb testing.TB, fset *token.FileSet, path string, f *ast.File, deps ...*types.Package) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Instances:  make(map[*ast.Ident]types.Instance),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: depImporter{deps: deps, fallback: importer.Default()}}

	pkg, err := conf.Check(path, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("Failed to type-check %s: %v", path, err)
	}

	return pkg, info
}

// FuncBody returns an [inspector.Cursor] positioned at the body of the named
// function declaration in f.
func FuncBody(tb testing.TB, f *ast.File, name string) inspector.Cursor {
	tb.Helper()

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		if c.Node().(*ast.FuncDecl).Name.Name == name {
			return c.ChildAt(edge.FuncDecl_Body, -1)
		}
	}

	tb.Fatalf("Function %s not found", name)

	return root
}

// depImporter resolves imports from a fixed list of packages before falling
// back to the surrounding toolchain.
type depImporter struct {
	deps     []*types.Package
	fallback types.Importer
}

func (i depImporter) Import(path string) (*types.Package, error) {
	for _, dep := range i.deps {
		if dep.Path() == path {
			return dep, nil
		}
	}

	return i.fallback.Import(path)
}
