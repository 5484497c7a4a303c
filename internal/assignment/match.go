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

package assignment

import (
	"fillmore-labs.com/condassign/internal/branch"
	"fillmore-labs.com/condassign/syntax"
)

// Matches reports whether the tails of every branch, terminal included, form
// one uniform assignment pattern: each tail is assignment-shaped, none is a
// multiple-target assignment, and all share the same target text, operator
// token and structural kind.
//
// The result depends only on the multiset of (target, operator) pairs, never
// on branch order.
func Matches(f *syntax.File, branches []*syntax.Branch, terminal *syntax.Branch) bool {
	tails := Tails(f, branches, terminal)
	if tails == nil {
		return false
	}

	first := tails[0]
	for _, tail := range tails[1:] {
		if !compatible(f, first, tail) {
			return false
		}
	}

	return true
}

// Tails extracts the assignment tail of every branch plus the terminal.
// It returns nil if any branch lacks an eligible assignment tail.
func Tails(f *syntax.File, branches []*syntax.Branch, terminal *syntax.Branch) []*syntax.AssignStmt {
	all := make([]*syntax.AssignStmt, 0, len(branches)+1)

	for _, b := range branches {
		a := AsAssign(branch.Tail(b))
		if a == nil || a.MultiTarget {
			return nil
		}

		all = append(all, a)
	}

	a := AsAssign(branch.Tail(terminal))
	if a == nil || a.MultiTarget {
		return nil
	}

	return append(all, a)
}

// compatible applies the syntactic equality check: identical target source
// text, identical operator token and identical structural kind.
func compatible(f *syntax.File, a, b *syntax.AssignStmt) bool {
	if a.Op.Kind != b.Op.Kind || a.Op.Token != b.Op.Token {
		return false
	}

	return f.Text(a.Target) == f.Text(b.Target)
}
