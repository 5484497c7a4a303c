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

// ifChainHoist hoists the shared assignment out of an "if" construct. All
// elsif arms fold into the same rewrite; a two-armed construct written on a
// single line collapses into ternary form instead of keeping its keywords.
func ifChainHoist(f *syntax.File, off detect.Offense, align bool) []textedit.Edit {
	if singleLine(f, off.Cond) && len(off.Branches) == 1 {
		return ternaryHoist(f, off)
	}

	return hoistKeywordShape(f, off, align)
}

// ifChainSink distributes the removed outer assignment into every arm and
// the terminal branch.
func ifChainSink(f *syntax.File, off detect.Offense) []textedit.Edit {
	if singleLine(f, off.Cond) {
		return ternarySink(f, off)
	}

	return sinkKeywordShape(f, off)
}
