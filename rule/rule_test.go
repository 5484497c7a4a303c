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

package rule_test

import (
	"testing"

	"fillmore-labs.com/condassign/internal/testsource"
	. "fillmore-labs.com/condassign/rule"
	"fillmore-labs.com/condassign/syntax"
	"fillmore-labs.com/condassign/textedit"
)

// runPass feeds every construct of the fragment through a pass the way a
// host visitor would: top-level statements in source order, descending into
// elsif links and assigned conditionals.
func runPass(t *testing.T, r *Rule, src string) []Diagnostic {
	t.Helper()

	f, stmts := testsource.Parse(t, src)

	var got []Diagnostic
	pass := r.NewPass(f, func(d Diagnostic) { got = append(got, d) })

	for _, stmt := range stmts {
		feed(pass, stmt)
	}

	return got
}

func feed(pass *Pass, stmt syntax.Stmt) {
	switch stmt := stmt.(type) {
	case *syntax.Conditional:
		feedConditional(pass, stmt)

	case *syntax.AssignStmt:
		pass.Assignment(stmt)

		value := stmt.Value
		if paren, ok := value.(*syntax.ParenExpr); ok {
			value = paren.X
		}

		if cond, ok := value.(*syntax.Conditional); ok {
			feedConditional(pass, cond)
		}
	}
}

func feedConditional(pass *Pass, cond *syntax.Conditional) {
	pass.Conditional(cond)

	next := cond.Else
	for {
		link, ok := next.(*syntax.Conditional)
		if !ok {
			return
		}

		pass.Conditional(link)
		next = link.Else
	}
}

// applyFix applies the single suggested fix of a diagnostic.
func applyFix(t *testing.T, src string, d Diagnostic) string {
	t.Helper()

	if len(d.SuggestedFixes) != 1 {
		t.Fatalf("len(SuggestedFixes) = %d, want 1", len(d.SuggestedFixes))
	}

	got, err := textedit.Apply(src, d.SuggestedFixes[0].TextEdits)
	if err != nil {
		t.Fatalf("applying fix: %v", err)
	}

	return got
}

func TestHoistPass(t *testing.T) {
	t.Parallel()

	src := "if foo\n  bar = 1\nelsif baz\n  bar = 2\nelse\n  bar = 3\nend\n"
	fixedWant := "bar = if foo\n        1\n      elsif baz\n        2\n      else\n        3\n      end\n"
	messageWant := "Use the return of the conditional for variable assignment and comparison."

	got := runPass(t, New(), src)

	if len(got) != 1 {
		t.Fatalf("len(diagnostics) = %d, want 1", len(got))
	}

	d := got[0]

	if d.Message != messageWant {
		t.Errorf("Message = %q, want %q", d.Message, messageWant)
	}

	if d.Span.Start != 0 || d.Span.End != len(src)-1 {
		t.Errorf("Span = [%d, %d), want the whole construct", d.Span.Start, d.Span.End)
	}

	if fixed := applyFix(t, src, d); fixed != fixedWant {
		t.Errorf("fixed = %q, want %q", fixed, fixedWant)
	}
}

func TestSinkPass(t *testing.T) {
	t.Parallel()

	src := "bar = if foo\n        1\n      else\n        2\n      end\n"
	want := "if foo\n  bar = 1\nelse\n  bar = 2\nend\n"

	got := runPass(t, New(WithStyle(AssignInsideCondition)), src)

	if len(got) != 1 {
		t.Fatalf("len(diagnostics) = %d, want 1", len(got))
	}

	d := got[0]

	if want := "Assign variables inside of conditionals."; d.Message != want {
		t.Errorf("Message = %q, want %q", d.Message, want)
	}

	if fixed := applyFix(t, src, d); fixed != want {
		t.Errorf("fixed = %q, want %q", fixed, want)
	}
}

func TestPassStyleSilence(t *testing.T) {
	t.Parallel()

	t.Run("hoisted form under hoist style", func(t *testing.T) {
		t.Parallel()

		src := "bar = if foo\n        1\n      else\n        2\n      end\n"

		if got := runPass(t, New(), src); len(got) != 0 {
			t.Errorf("len(diagnostics) = %d, want 0", len(got))
		}
	})

	t.Run("sunk form under sink style", func(t *testing.T) {
		t.Parallel()

		src := "if foo\n  bar = 1\nelse\n  bar = 2\nend\n"

		if got := runPass(t, New(WithStyle(AssignInsideCondition)), src); len(got) != 0 {
			t.Errorf("len(diagnostics) = %d, want 0", len(got))
		}
	})
}

func TestPassIneligibleConstructs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "no catch-all", src: "if foo\n  bar = 1\nend\n"},
		{name: "mixed targets", src: "if foo\n  bar = 1\nelse\n  baz = 2\nend\n"},
		{name: "mixed targets inline", src: "if foo then bar = 1 else baz = 2 end\n"},
		{name: "mixed operators", src: "if foo\n  total += 1\nelse\n  total -= 1\nend\n"},
		{name: "opaque tail", src: "if foo\n  bar = 1\nelse\n  do_thing\nend\n"},
		{name: "multi-line tail", src: "if foo\n  bar = if x\n    1\n  else\n    2\n  end\nelse\n  bar = 3\nend\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := runPass(t, New(), tt.src); len(got) != 0 {
				t.Errorf("len(diagnostics) = %d, want 0", len(got))
			}
		})
	}
}

func TestPassReportsChainOnce(t *testing.T) {
	t.Parallel()

	// The visitor feeds the outer construct and both elsif links; only the
	// outer construct may be reported.
	src := "if a\n  bar = 1\nelsif b\n  bar = 2\nelsif c\n  bar = 3\nelse\n  bar = 4\nend\n"

	got := runPass(t, New(), src)

	if len(got) != 1 {
		t.Fatalf("len(diagnostics) = %d, want 1", len(got))
	}

	if got[0].Span.Start != 0 {
		t.Errorf("diagnostic at offset %d, want the outer construct", got[0].Span.Start)
	}
}

func TestPassMaxLineWidth(t *testing.T) {
	t.Parallel()

	// The hoisted form needs 12 columns; a budget of 11 suppresses the
	// offense entirely instead of reporting without a fix.
	src := "if foo\n  bar = 111\nelse\n  bar = 2\nend\n"

	if got := runPass(t, New(WithMaxLineWidth(11)), src); len(got) != 0 {
		t.Errorf("len(diagnostics) = %d, want 0 past the line budget", len(got))
	}

	if got := runPass(t, New(WithMaxLineWidth(12)), src); len(got) != 1 {
		t.Errorf("len(diagnostics) = %d, want 1 within the line budget", len(got))
	}
}

func TestPassSingleLineConditionsOnly(t *testing.T) {
	t.Parallel()

	src := "if foo\n  setup\n  bar = 1\nelse\n  bar = 2\nend\n"

	if got := runPass(t, New(WithSingleLineConditionsOnly(true)), src); len(got) != 0 {
		t.Errorf("len(diagnostics) = %d, want 0 with the restriction", len(got))
	}

	if got := runPass(t, New(), src); len(got) != 1 {
		t.Errorf("len(diagnostics) = %d, want 1 by default", len(got))
	}
}

func TestPassKeywordEndAlignment(t *testing.T) {
	t.Parallel()

	src := "if foo\n  bar = 1\nelse\n  bar = 2\nend\n"

	t.Run("aligned by default", func(t *testing.T) {
		t.Parallel()

		want := "bar = if foo\n        1\n      else\n        2\n      end\n"

		got := runPass(t, New(), src)
		if len(got) != 1 {
			t.Fatalf("len(diagnostics) = %d, want 1", len(got))
		}

		if fixed := applyFix(t, src, got[0]); fixed != want {
			t.Errorf("fixed = %q, want %q", fixed, want)
		}
	})

	t.Run("start alignment keeps the end column", func(t *testing.T) {
		t.Parallel()

		want := "bar = if foo\n        1\n      else\n        2\nend\n"

		got := runPass(t, New(WithKeywordEndAlignment(false)), src)
		if len(got) != 1 {
			t.Fatalf("len(diagnostics) = %d, want 1", len(got))
		}

		if fixed := applyFix(t, src, got[0]); fixed != want {
			t.Errorf("fixed = %q, want %q", fixed, want)
		}
	})
}

func TestPassIndentationWidth(t *testing.T) {
	t.Parallel()

	src := "bar = if foo\n        1\n      else\n        2\n      end\n"
	want := "if foo\n    bar = 1\nelse\n    bar = 2\nend\n"

	got := runPass(t, New(WithStyle(AssignInsideCondition), WithIndentationWidth(4)), src)
	if len(got) != 1 {
		t.Fatalf("len(diagnostics) = %d, want 1", len(got))
	}

	if fixed := applyFix(t, src, got[0]); fixed != want {
		t.Errorf("fixed = %q, want %q", fixed, want)
	}
}

func TestRuleMeta(t *testing.T) {
	t.Parallel()

	r := New()

	if Name != "condassign" {
		t.Errorf("Name = %q, want %q", Name, "condassign")
	}

	if r.Doc() == "" {
		t.Error("Doc() is empty")
	}

	if r.URL() == "" {
		t.Error("URL() is empty")
	}

	if got, want := r.Style(), AssignToCondition; got != want {
		t.Errorf("Style() = %v, want %v", got, want)
	}

	if got, want := New(WithStyle(AssignInsideCondition)).Style(), AssignInsideCondition; got != want {
		t.Errorf("Style() = %v, want %v", got, want)
	}
}

func TestStyleString(t *testing.T) {
	t.Parallel()

	if got, want := AssignToCondition.String(), "assign_to_condition"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := AssignInsideCondition.String(), "assign_inside_condition"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOptionsLog(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithStyle(AssignInsideCondition),
		WithMaxLineWidth(100),
		nil,
		Options{WithIndentationWidth(4)},
	}

	value := opts.LogValue()

	if got, want := len(value.Group()), 4; got != want {
		t.Errorf("len(LogValue groups) = %d, want %d", got, want)
	}

	if got, want := opts.LogAttr().Key, "options"; got != want {
		t.Errorf("LogAttr().Key = %q, want %q", got, want)
	}
}
