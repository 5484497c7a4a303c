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

// Package linebudget decides whether a hoist rewrite stays within the
// configured maximum line width.
//
// Only the hoist direction needs a budget: it prepends the "target op "
// prefix to lines that previously carried plain values, while sinking never
// lengthens a line materially.
package linebudget

import (
	"strings"

	"fillmore-labs.com/condassign/internal/assignment"
	"fillmore-labs.com/condassign/internal/config"
	"fillmore-labs.com/condassign/syntax"
)

// Fits reports whether hoisting prefix onto the construct keeps every
// resulting line within maxWidth.
//
// A non-positive maxWidth disables the check. A non-positive indentWidth
// falls back to [config.DefaultIndentWidth].
func Fits(f *syntax.File, cond *syntax.Conditional, tails []*syntax.AssignStmt, prefix string, maxWidth, indentWidth int) bool {
	if maxWidth <= 0 {
		return true
	}

	if indentWidth <= 0 {
		indentWidth = config.DefaultIndentWidth
	}

	if len(prefix)+longestStrippedLine(f, cond, tails) > maxWidth {
		return false
	}

	return longestValue(f, tails)+indentWidth+len(prefix) <= maxWidth
}

// longestStrippedLine returns the length of the longest existing line of the
// construct after removing the per-branch assignment prefix; prepending the
// hoisted prefix to that line yields the widest candidate line.
func longestStrippedLine(f *syntax.File, cond *syntax.Conditional, tails []*syntax.AssignStmt) int {
	target, op := "", ""
	if len(tails) > 0 {
		target, op = f.Text(tails[0].Target), tails[0].Op.Token
	}

	longest := 0
	for line := f.Line(cond.Pos()); line <= f.Line(cond.End() - 1); line++ {
		text := stripPrefix(f.LineText(line), target, op)
		if len(text) > longest {
			longest = len(text)
		}
	}

	return longest
}

// stripPrefix removes the first "target … op …" occurrence from a line,
// tolerating arbitrary spacing between target and operator.
func stripPrefix(line, target, op string) string {
	if target == "" || op == "" {
		return line
	}

	idx := strings.Index(line, target)
	if idx < 0 {
		return line
	}

	rest := line[idx+len(target):]
	trimmed := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(trimmed, op) {
		return line
	}

	trimmed = strings.TrimLeft(trimmed[len(op):], " \t")

	return line[:idx] + trimmed
}

// longestValue returns the length of the longest right-hand-side value among
// the branch tails, counting only the value's first line.
func longestValue(f *syntax.File, tails []*syntax.AssignStmt) int {
	longest := 0
	for _, tail := range tails {
		value := assignment.Value(f, tail)
		if nl := strings.IndexByte(value, '\n'); nl >= 0 {
			value = value[:nl]
		}

		if len(value) > longest {
			longest = len(value)
		}
	}

	return longest
}
