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
	"fillmore-labs.com/condassign/internal/detect"
	"fillmore-labs.com/condassign/syntax"
	"fillmore-labs.com/condassign/textedit"
)

// unlessHoist mirrors the if-chain machinery. Source order places the
// primary arm before the else arm here too, so the keyword-shape rewrite is
// identical; only the ternary form needs the swapped value order, which
// ternaryHoist derives from the construct kind.
func unlessHoist(f *syntax.File, off detect.Offense, align bool) []textedit.Edit {
	if singleLine(f, off.Cond) && len(off.Branches) == 1 {
		return ternaryHoist(f, off)
	}

	return hoistKeywordShape(f, off, align)
}

// unlessSink distributes the removed outer assignment into the primary arm
// and the terminal branch.
func unlessSink(f *syntax.File, off detect.Offense) []textedit.Edit {
	if singleLine(f, off.Cond) {
		return ternarySink(f, off)
	}

	return sinkKeywordShape(f, off)
}
