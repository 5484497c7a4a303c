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

package correct

import (
	"fillmore-labs.com/condassign/internal/assignment"
	"fillmore-labs.com/condassign/internal/branch"
	"fillmore-labs.com/condassign/internal/detect"
	"fillmore-labs.com/condassign/syntax"
	"fillmore-labs.com/condassign/textedit"
)

// ternaryHoist replaces the whole construct with a single
// "target op condition ? trueValue : falseValue" line. Two-armed single-line
// "if" and "unless" constructs are funneled here as well; for "unless" the
// value positions swap since its primary arm runs on a falsy condition.
func ternaryHoist(f *syntax.File, off detect.Offense) []textedit.Edit {
	tails := mustTails(f, off)
	if len(tails) != 2 {
		panic("corrector invoked on ineligible construct")
	}

	trueValue, falseValue := assignment.Value(f, tails[0]), assignment.Value(f, tails[1])
	if off.Cond.Kind == syntax.Unless {
		trueValue, falseValue = falseValue, trueValue
	}

	ternary := f.Text(off.Cond.Cond) + " ? " + trueValue + " : " + falseValue

	// Element and shovel assignments parse their right-hand side greedily;
	// an unparenthesized ternary would be ambiguous there.
	switch tails[0].Op.Kind {
	case syntax.OpElementSet, syntax.OpShovel:
		ternary = "(" + ternary + ")"
	}

	return []textedit.Edit{textedit.Replace(off.Cond.Span, off.Prefix + ternary)}
}

// ternarySink distributes the outer assignment into both value positions:
// "bar = foo ? 1 : 2" becomes "foo ? bar = 1 : bar = 2". A grouping around
// the ternary is dropped together with the assignment.
func ternarySink(f *syntax.File, off detect.Offense) []textedit.Edit {
	edits := removeOuterAssignment(f, off)

	for _, b := range append(off.Branches, off.Terminal) {
		tail := branch.Tail(b)
		if tail == nil {
			panic("corrector invoked on ineligible construct")
		}

		edits = append(edits, textedit.Insert(tail.Pos(), off.Prefix))
	}

	return edits
}
