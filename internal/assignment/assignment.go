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

// Package assignment decides whether branch tails form a uniform assignment
// pattern and renders the textual prefix rewrites share.
//
// Matching is deliberately syntactic: left-hand sides compare by rendered
// source text, so "a.b" and "self.a.b" are distinct targets even when they
// resolve to the same place. Tightening this to semantic equality would
// change which constructs are flagged.
package assignment

import "fillmore-labs.com/condassign/syntax"

// AsAssign returns the assignment shape of a tail statement, or nil when the
// statement is not assignment-shaped.
func AsAssign(stmt syntax.Stmt) *syntax.AssignStmt {
	a, _ := stmt.(*syntax.AssignStmt)

	return a
}

// Prefix renders the "target op " text that precedes a value in assignment
// position, e.g. "bar = ", "acc ||= " or "arr << ".
func Prefix(f *syntax.File, a *syntax.AssignStmt) string {
	return f.Text(a.Target) + " " + a.Op.Token + " "
}

// Value returns the right-hand-side source text of an assignment.
func Value(f *syntax.File, a *syntax.AssignStmt) string {
	return f.Text(syntax.SpanOf(a.Value))
}
