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

package branch_test

import (
	"strings"
	"testing"

	. "fillmore-labs.com/condassign/internal/branch"
	"fillmore-labs.com/condassign/internal/testsource"
	"fillmore-labs.com/condassign/syntax"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		src         string
		branches    int
		hasTerminal bool
	}{
		{
			name:        "two-armed if",
			src:         "if foo\n  bar = 1\nelse\n  bar = 2\nend",
			branches:    1,
			hasTerminal: true,
		},
		{
			name:        "elsif chain",
			src:         "if foo\n  bar = 1\nelsif baz\n  bar = 2\nelse\n  bar = 3\nend",
			branches:    2,
			hasTerminal: true,
		},
		{
			name:        "if without else",
			src:         "if foo\n  bar = 1\nend",
			branches:    1,
			hasTerminal: false,
		},
		{
			name:        "elsif chain without else",
			src:         "if foo\n  bar = 1\nelsif baz\n  bar = 2\nend",
			branches:    2,
			hasTerminal: false,
		},
		{
			name:        "unless",
			src:         "unless foo\n  bar = 1\nelse\n  bar = 2\nend",
			branches:    1,
			hasTerminal: true,
		},
		{
			name:        "case with else",
			src:         "case foo\nwhen 'a'\n  bar = 1\nwhen 'b'\n  bar = 2\nelse\n  bar = 3\nend",
			branches:    2,
			hasTerminal: true,
		},
		{
			name:        "case without else",
			src:         "case foo\nwhen 'a'\n  bar = 1\nend",
			branches:    1,
			hasTerminal: false,
		},
		{
			name:        "ternary",
			src:         "foo ? bar = 1 : bar = 2",
			branches:    1,
			hasTerminal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, cond := testsource.FirstConditional(t, tt.src)

			branches, terminal := Normalize(cond)

			if len(branches) != tt.branches {
				t.Errorf("len(branches) = %d, want %d", len(branches), tt.branches)
			}

			if (terminal != nil) != tt.hasTerminal {
				t.Errorf("terminal = %v, want present %t", terminal, tt.hasTerminal)
			}

			// Normalization reads the tree without rewriting it, so a second
			// run sees the same structure.
			again, terminal2 := Normalize(cond)
			if len(again) != len(branches) || (terminal2 == nil) != (terminal == nil) {
				t.Error("second Normalize() disagrees with the first")
			}
		})
	}
}

func TestNormalizeOrder(t *testing.T) {
	t.Parallel()

	src := "if a\n  bar = 1\nelsif b\n  bar = 2\nelsif c\n  bar = 3\nelse\n  bar = 4\nend"
	f, cond := testsource.FirstConditional(t, src)

	branches, terminal := Normalize(cond)
	if len(branches) != 3 || terminal == nil {
		t.Fatalf("Normalize() = %d branches, terminal %v", len(branches), terminal)
	}

	for i, want := range []string{"1", "2", "3"} {
		tail, ok := Tail(branches[i]).(*syntax.AssignStmt)
		if !ok {
			t.Fatalf("branch %d tail is %T", i, Tail(branches[i]))
		}

		if got := f.Text(syntax.SpanOf(tail.Value)); got != want {
			t.Errorf("branch %d value = %q, want %q", i, got, want)
		}
	}
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "if chain",
			src:  "if a\n  bar = 1\nelsif b\n  bar = 2\nelse\n  bar = 3\nend",
			want: []string{"elsif", "else"},
		},
		{
			name: "two-armed if",
			src:  "if a\n  bar = 1\nelse\n  bar = 2\nend",
			want: []string{"else"},
		},
		{
			name: "case",
			src:  "case foo\nwhen 'a'\n  bar = 1\nwhen 'b'\n  bar = 2\nelse\n  bar = 3\nend",
			want: []string{"when", "when", "else"},
		},
		{
			name: "ternary",
			src:  "foo ? bar = 1 : bar = 2",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, cond := testsource.FirstConditional(t, tt.src)

			var got []string
			for _, kw := range Keywords(cond) {
				got = append(got, f.Text(kw))
			}

			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("Keywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinks(t *testing.T) {
	t.Parallel()

	src := "if a\n  bar = 1\nelsif b\n  bar = 2\nelsif c\n  bar = 3\nelse\n  bar = 4\nend"
	_, cond := testsource.FirstConditional(t, src)

	links := Links(cond)
	if len(links) != 2 {
		t.Fatalf("len(Links()) = %d, want 2", len(links))
	}

	for i, link := range links {
		if link.Pos() <= cond.Pos() || link.End() != cond.End() {
			t.Errorf("link %d span = [%d, %d), want nested in [%d, %d)",
				i, link.Pos(), link.End(), cond.Pos(), cond.End())
		}
	}
}

func TestTail(t *testing.T) {
	t.Parallel()

	t.Run("last statement", func(t *testing.T) {
		t.Parallel()

		src := "if foo\n  setup\n  bar = 1\nelse\n  bar = 2\nend"
		f, cond := testsource.FirstConditional(t, src)

		branches, _ := Normalize(cond)

		tail, ok := Tail(branches[0]).(*syntax.AssignStmt)
		if !ok {
			t.Fatalf("tail is %T, want assignment", Tail(branches[0]))
		}

		if got, want := f.Text(syntax.SpanOf(tail.Value)), "1"; got != want {
			t.Errorf("tail value = %q, want %q", got, want)
		}
	})

	t.Run("group unwrapped one level", func(t *testing.T) {
		t.Parallel()

		src := "if foo\n  begin\n    setup\n    bar = 1\n  end\nelse\n  bar = 2\nend"
		f, cond := testsource.FirstConditional(t, src)

		branches, _ := Normalize(cond)

		tail, ok := Tail(branches[0]).(*syntax.AssignStmt)
		if !ok {
			t.Fatalf("tail is %T, want assignment", Tail(branches[0]))
		}

		if got, want := f.Text(tail.Target), "bar"; got != want {
			t.Errorf("tail target = %q, want %q", got, want)
		}
	})

	t.Run("empty branch", func(t *testing.T) {
		t.Parallel()

		if got := Tail(&syntax.Branch{}); got != nil {
			t.Errorf("Tail(empty) = %v, want nil", got)
		}

		if got := Tail(nil); got != nil {
			t.Errorf("Tail(nil) = %v, want nil", got)
		}
	})
}
