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

// Package correct builds the text edits that rewrite an offending construct.
//
// Each of the four conditional shapes has a corrector implementing both
// rewrite directions as pure functions over (offense, configuration).
// Correctors assume the detector has already validated eligibility; invoking
// one on an ineligible construct panics. The detector is the sole intended
// caller, so this is a contract violation, not a user-facing condition.
package correct

import (
	"strings"

	"fillmore-labs.com/condassign/internal/assignment"
	"fillmore-labs.com/condassign/internal/branch"
	"fillmore-labs.com/condassign/internal/config"
	"fillmore-labs.com/condassign/internal/detect"
	"fillmore-labs.com/condassign/syntax"
	"fillmore-labs.com/condassign/textedit"
)

// Edits returns the complete, self-consistent edit set rewriting one
// offense. The direction follows the offense: an offense carrying the outer
// assignment sinks it into the branches, otherwise the per-branch
// assignments are hoisted out.
func Edits(f *syntax.File, off detect.Offense, behavior config.BitMask[config.Config]) []textedit.Edit {
	if off.Assign != nil {
		return sinkEdits(f, off)
	}

	return hoistEdits(f, off, behavior.Enabled(config.AlignEndKeyword))
}

func hoistEdits(f *syntax.File, off detect.Offense, align bool) []textedit.Edit {
	switch off.Cond.Kind {
	case syntax.Ternary:
		return ternaryHoist(f, off)
	case syntax.If:
		return ifChainHoist(f, off, align)
	case syntax.Unless:
		return unlessHoist(f, off, align)
	case syntax.Case:
		return caseHoist(f, off, align)
	}

	panic("corrector invoked on unknown conditional shape")
}

func sinkEdits(f *syntax.File, off detect.Offense) []textedit.Edit {
	switch off.Cond.Kind {
	case syntax.Ternary:
		return ternarySink(f, off)
	case syntax.If:
		return ifChainSink(f, off)
	case syntax.Unless:
		return unlessSink(f, off)
	case syntax.Case:
		return caseSink(f, off)
	}

	panic("corrector invoked on unknown conditional shape")
}

// mustTails re-derives the validated assignment tails of a hoist offense.
func mustTails(f *syntax.File, off detect.Offense) []*syntax.AssignStmt {
	tails := assignment.Tails(f, off.Branches, off.Terminal)
	if tails == nil {
		panic("corrector invoked on ineligible construct")
	}

	return tails
}

// singleLine reports whether the construct occupies one source line.
func singleLine(f *syntax.File, cond *syntax.Conditional) bool {
	return f.Line(cond.Pos()) == f.Line(cond.End()-1)
}

// hoistKeywordShape rewrites a multi-line keyword construct in the hoist
// direction: the assignment prefix is inserted once before the construct,
// every interior line shifts right by the prefix width so the construct
// stays aligned under its new target, and each branch's tail assignment is
// replaced by its bare right-hand side. The closing keyword line joins the
// shift only when keyword alignment is requested.
func hoistKeywordShape(f *syntax.File, off detect.Offense, align bool) []textedit.Edit {
	cond, tails := off.Cond, mustTails(f, off)

	edits := []textedit.Edit{textedit.Insert(cond.Pos(), off.Prefix)}

	pad := strings.Repeat(" ", len(off.Prefix))
	endLine := 0
	if off.Cond.EndKeyword.Len() > 0 {
		endLine = f.Line(cond.EndKeyword.Start)
	}

	for line := f.Line(cond.Pos()) + 1; line <= f.Line(cond.End()-1); line++ {
		if f.LineIsBlank(line) {
			continue
		}

		if line == endLine && !align {
			continue
		}

		edits = append(edits, textedit.Insert(f.LineStart(line), pad))
	}

	for _, tail := range tails {
		edits = append(edits, textedit.Replace(tail.Span, assignment.Value(f, tail)))
	}

	return edits
}

// sinkKeywordShape rewrites in the sink direction: the outer assignment is
// removed (together with a single grouping, when present), the prefix is
// inserted before every branch tail, and the lines the assignment's width
// previously pushed right are pulled back: tail lines to the construct
// column plus one indentation step, keyword lines to the construct column.
func sinkKeywordShape(f *syntax.File, off detect.Offense) []textedit.Edit {
	cond, outer := off.Cond, off.Assign
	column := f.Column(outer.Pos())

	edits := removeOuterAssignment(f, off)

	for _, b := range off.Branches {
		edits = appendTailEdits(edits, f, b, off.Prefix, column+off.IndentWidth)
	}

	edits = appendTailEdits(edits, f, off.Terminal, off.Prefix, column+off.IndentWidth)

	keywords := branch.Keywords(cond)
	if cond.EndKeyword.Len() > 0 {
		keywords = append(keywords, cond.EndKeyword)
	}

	for _, kw := range keywords {
		edits = appendDeindent(edits, f, kw.Start, column)
	}

	return edits
}

// removeOuterAssignment deletes the hoisted "target op " prefix and, when
// the conditional is grouped, the enclosing parentheses.
func removeOuterAssignment(f *syntax.File, off detect.Offense) []textedit.Edit {
	outer, cond := off.Assign, off.Cond

	edits := []textedit.Edit{textedit.Delete(syntax.Span{Start: outer.Pos(), End: cond.Pos()})}
	if cond.End() < outer.End() {
		edits = append(edits, textedit.Delete(syntax.Span{Start: cond.End(), End: outer.End()}))
	}

	return edits
}

// appendTailEdits inserts the prefix before the branch tail and pulls the
// tail's line back to the given column when the tail starts its line.
func appendTailEdits(edits []textedit.Edit, f *syntax.File, b *syntax.Branch, prefix string, column int) []textedit.Edit {
	tail := branch.Tail(b)
	if tail == nil {
		panic("corrector invoked on ineligible construct")
	}

	edits = appendDeindent(edits, f, tail.Pos(), column)

	return append(edits, textedit.Insert(tail.Pos(), prefix))
}

// appendDeindent trims the leading whitespace of the line so the text at
// offset starts at the given column. Offsets that do not start their line,
// or already sit at or left of the column, are left alone.
func appendDeindent(edits []textedit.Edit, f *syntax.File, offset, column int) []textedit.Edit {
	lineStart := f.LineStart(f.Line(offset))
	if strings.TrimSpace(f.Text(syntax.Span{Start: lineStart, End: offset})) != "" {
		return edits
	}

	if offset-lineStart <= column {
		return edits
	}

	return append(edits, textedit.Delete(syntax.Span{Start: lineStart + column, End: offset}))
}
