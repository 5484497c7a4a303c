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

package correct_test

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/condassign/internal/config"
	. "fillmore-labs.com/condassign/internal/correct"
	"fillmore-labs.com/condassign/internal/detect"
	"fillmore-labs.com/condassign/internal/testsource"
	"fillmore-labs.com/condassign/syntax"
	"fillmore-labs.com/condassign/textedit"
)

// goldenCases loads paired name.in/name.out files from a txtar archive.
func goldenCases(t *testing.T, name string) [][2]txtar.File {
	t.Helper()

	archive, err := txtar.ParseFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("loading %s: %v", name, err)
	}

	if len(archive.Files)%2 != 0 {
		t.Fatalf("%s holds %d files, want pairs", name, len(archive.Files))
	}

	var cases [][2]txtar.File
	for i := 0; i < len(archive.Files); i += 2 {
		in, out := archive.Files[i], archive.Files[i+1]

		if strings.TrimSuffix(in.Name, ".in") != strings.TrimSuffix(out.Name, ".out") {
			t.Fatalf("%s: %q and %q are not a case pair", name, in.Name, out.Name)
		}

		cases = append(cases, [2]txtar.File{in, out})
	}

	return cases
}

// hoistOffense runs the hoist-style detector over the fragment's top-level
// conditionals and returns the single offense.
func hoistOffense(t *testing.T, f *syntax.File, stmts []syntax.Stmt, behavior config.BitMask[config.Config]) detect.Offense {
	t.Helper()

	d := detect.New(f, config.AssignToCondition, behavior, config.DefaultMaxLineWidth, config.DefaultIndentWidth)

	for _, stmt := range stmts {
		cond, ok := stmt.(*syntax.Conditional)
		if !ok {
			continue
		}

		if off, ok := d.Conditional(cond); ok {
			return off
		}
	}

	t.Fatal("no hoist offense detected")

	return detect.Offense{}
}

// sinkOffense runs the sink-style detector over the fragment's top-level
// assignments and returns the single offense.
func sinkOffense(t *testing.T, f *syntax.File, stmts []syntax.Stmt) detect.Offense {
	t.Helper()

	d := detect.New(f, config.AssignInsideCondition, config.NewBitMask[config.Config](),
		config.DefaultMaxLineWidth, config.DefaultIndentWidth)

	for _, stmt := range stmts {
		assign, ok := stmt.(*syntax.AssignStmt)
		if !ok {
			continue
		}

		if off, ok := d.Assignment(assign); ok {
			return off
		}
	}

	t.Fatal("no sink offense detected")

	return detect.Offense{}
}

func TestHoistGolden(t *testing.T) {
	t.Parallel()

	behavior := config.NewBitMask(config.AlignEndKeyword)

	for _, c := range goldenCases(t, "hoist.txtar") {
		t.Run(strings.TrimSuffix(c[0].Name, ".in"), func(t *testing.T) {
			t.Parallel()

			src, want := string(c[0].Data), string(c[1].Data)

			f, stmts := testsource.Parse(t, src)
			off := hoistOffense(t, f, stmts, behavior)

			got, err := textedit.Apply(src, Edits(f, off, behavior))
			if err != nil {
				t.Fatalf("applying edits: %v", err)
			}

			if got != want {
				t.Errorf("rewrite mismatch:\n--- got ---\n%s--- want ---\n%s", got, want)
			}
		})
	}
}

func TestSinkGolden(t *testing.T) {
	t.Parallel()

	behavior := config.NewBitMask[config.Config]()

	for _, c := range goldenCases(t, "sink.txtar") {
		t.Run(strings.TrimSuffix(c[0].Name, ".in"), func(t *testing.T) {
			t.Parallel()

			src, want := string(c[0].Data), string(c[1].Data)

			f, stmts := testsource.Parse(t, src)
			off := sinkOffense(t, f, stmts)

			got, err := textedit.Apply(src, Edits(f, off, behavior))
			if err != nil {
				t.Fatalf("applying edits: %v", err)
			}

			if got != want {
				t.Errorf("rewrite mismatch:\n--- got ---\n%s--- want ---\n%s", got, want)
			}
		})
	}
}

func TestHoistEndAlignmentOff(t *testing.T) {
	t.Parallel()

	src := "if foo\n  bar = 1\nelse\n  bar = 2\nend\n"
	want := "bar = if foo\n        1\n      else\n        2\nend\n"

	behavior := config.NewBitMask[config.Config]()

	f, stmts := testsource.Parse(t, src)
	off := hoistOffense(t, f, stmts, behavior)

	got, err := textedit.Apply(src, Edits(f, off, behavior))
	if err != nil {
		t.Fatalf("applying edits: %v", err)
	}

	if got != want {
		t.Errorf("rewrite = %q, want %q", got, want)
	}
}

// TestRoundTrip checks that the two directions invert each other: hoisting a
// construct and sinking the result restores the original buffer, and vice
// versa.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{
			name: "if chain",
			src:  "if foo\n  bar = 1\nelsif baz\n  bar = 2\nelse\n  bar = 3\nend\n",
		},
		{
			name: "case",
			src:  "case foo\nwhen 'a'\n  bar = 1\nelse\n  bar = 2\nend\n",
		},
		{
			name: "ternary",
			src:  "foo ? bar = 1 : bar = 2\n",
		},
	}

	behavior := config.NewBitMask(config.AlignEndKeyword)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, stmts := testsource.Parse(t, tt.src)
			off := hoistOffense(t, f, stmts, behavior)

			hoisted, err := textedit.Apply(tt.src, Edits(f, off, behavior))
			if err != nil {
				t.Fatalf("applying hoist edits: %v", err)
			}

			f2, stmts2 := testsource.Parse(t, hoisted)
			off2 := sinkOffense(t, f2, stmts2)

			restored, err := textedit.Apply(hoisted, Edits(f2, off2, behavior))
			if err != nil {
				t.Fatalf("applying sink edits: %v", err)
			}

			if restored != tt.src {
				t.Errorf("round trip = %q, want original %q (via %q)", restored, tt.src, hoisted)
			}
		})
	}
}
