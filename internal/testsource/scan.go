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

package testsource

import (
	"strings"

	"fillmore-labs.com/condassign/syntax"
)

// scan is the result of scanning one statement segment for the first
// top-level assignment operator and ternary marker.
type scan struct {
	opIdx   int
	op      string
	kind    syntax.OpKind
	multi   bool
	ternary int
}

// operator tokens by length; longer tokens are matched first so that "<<="
// wins over "<<" and "||=" over "|=".
var (
	ops3 = []struct {
		tok  string
		kind syntax.OpKind
	}{
		{"<=>", syntax.OpOverload},
		{"||=", syntax.OpAndOr},
		{"&&=", syntax.OpAndOr},
		{"**=", syntax.OpCompound},
		{"<<=", syntax.OpCompound},
		{">>=", syntax.OpCompound},
	}

	ops2 = []struct {
		tok  string
		kind syntax.OpKind
	}{
		{"=~", syntax.OpOverload},
		{"!~", syntax.OpOverload},
		{"+=", syntax.OpCompound},
		{"-=", syntax.OpCompound},
		{"*=", syntax.OpCompound},
		{"/=", syntax.OpCompound},
		{"%=", syntax.OpCompound},
		{"|=", syntax.OpCompound},
		{"&=", syntax.OpCompound},
		{"^=", syntax.OpCompound},
		{"<<", syntax.OpShovel},
	}

	// comparisons are consumed without being treated as assignments, which
	// also keeps their "=" from matching the plain-assignment token.
	comparisons = []string{"===", "==", "!=", "<=", ">=", "=>"}
)

// scanLine locates the first top-level assignment operator and the first
// top-level ternary marker in [start, end). Bracketed and quoted regions are
// opaque.
func scanLine(src string, start, end int) scan {
	res := scan{opIdx: -1, ternary: -1}

	var quote byte

	depth := 0
	for i := start; i < end; i++ {
		c := src[i]

		if quote != 0 {
			if c == quote {
				quote = 0
			}

			continue
		}

		switch c {
		case '\'', '"':
			quote = c

			continue

		case '(', '[', '{':
			depth++

			continue

		case ')', ']', '}':
			depth--

			continue
		}

		if depth != 0 {
			continue
		}

		if c == ',' && res.opIdx < 0 {
			res.multi = true

			continue
		}

		if c == '?' && res.ternary < 0 && i > start && src[i-1] == ' ' && i+1 < end && src[i+1] == ' ' {
			res.ternary = i

			continue
		}

		if skip := comparisonAt(src, i, end); skip > 0 {
			i += skip - 1

			continue
		}

		if op, kind, ok := operatorAt(src, i, end); ok {
			if res.opIdx < 0 {
				res.opIdx = i
				res.op = op
				res.kind = kind
			}

			i += len(op) - 1
		}
	}

	if res.opIdx >= 0 && res.op == "=" {
		res.kind = plainKind(src, start, res.opIdx)
	}

	return res
}

// comparisonAt reports the length of a comparison token at i, or zero.
// Checked before assignment operators so that "<=>" can still win: the
// three-character tokens are probed here first.
func comparisonAt(src string, i, end int) int {
	for _, o := range ops3 {
		if strings.HasPrefix(src[i:end], o.tok) {
			return 0
		}
	}

	for _, cmp := range comparisons {
		if strings.HasPrefix(src[i:end], cmp) {
			return len(cmp)
		}
	}

	return 0
}

func operatorAt(src string, i, end int) (string, syntax.OpKind, bool) {
	for _, o := range ops3 {
		if strings.HasPrefix(src[i:end], o.tok) {
			return o.tok, o.kind, true
		}
	}

	for _, o := range ops2 {
		if strings.HasPrefix(src[i:end], o.tok) {
			return o.tok, o.kind, true
		}
	}

	if src[i] == '=' && !adjacentOp(src, i, end) {
		return "=", syntax.OpPlain, true
	}

	return "", 0, false
}

// adjacentOp reports whether the "=" at i belongs to a longer token.
func adjacentOp(src string, i, end int) bool {
	if i+1 < end {
		switch src[i+1] {
		case '=', '~', '>':
			return true
		}
	}

	if i > 0 && strings.IndexByte("=!<>+-*/%|&^", src[i-1]) >= 0 {
		return true
	}

	return false
}

// plainKind classifies a plain "=" by the shape of its target.
func plainKind(src string, start, opIdx int) syntax.OpKind {
	target := strings.TrimSpace(src[start:opIdx])

	switch {
	case strings.HasSuffix(target, "]"):
		return syntax.OpElementSet
	case strings.Contains(target, "."):
		return syntax.OpMethodSetter
	default:
		return syntax.OpPlain
	}
}

// topLevelIndex returns the absolute index of the first top-level occurrence
// of sub in [start, end), or -1.
func topLevelIndex(src string, start, end int, sub string) int {
	var quote byte

	depth := 0
	for i := start; i < end; i++ {
		c := src[i]

		if quote != 0 {
			if c == quote {
				quote = 0
			}

			continue
		}

		switch c {
		case '\'', '"':
			quote = c

			continue

		case '(', '[', '{':
			depth++

			continue

		case ')', ']', '}':
			depth--

			continue
		}

		if depth == 0 && strings.HasPrefix(src[i:end], sub) {
			return i
		}
	}

	return -1
}

// balanced reports whether src[start] opens a group that closes exactly at
// end-1.
func balanced(src string, start, end int) bool {
	depth := 0

	var quote byte

	for i := start; i < end; i++ {
		c := src[i]

		if quote != 0 {
			if c == quote {
				quote = 0
			}

			continue
		}

		switch c {
		case '\'', '"':
			quote = c

		case '(', '[', '{':
			depth++

		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i == end-1
			}
		}
	}

	return false
}

// wordAt returns the identifier-shaped run starting at i, so that names like
// "endpoint" or "else_branch" never read as keywords.
func wordAt(src string, i, end int) string {
	j := i
	for j < end && (src[j] >= 'a' && src[j] <= 'z' || src[j] >= '0' && src[j] <= '9' || src[j] == '_') {
		j++
	}

	return src[i:j]
}

// skipSpaces returns the first index in [i, end) that is not a space or tab.
func skipSpaces(src string, i, end int) int {
	for i < end && (src[i] == ' ' || src[i] == '\t') {
		i++
	}

	return i
}

// trimRight returns the end of [start, end) with trailing spaces removed.
func trimRight(src string, start, end int) int {
	for end > start && (src[end-1] == ' ' || src[end-1] == '\t') {
		end--
	}

	return end
}
