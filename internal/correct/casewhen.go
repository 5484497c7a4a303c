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

// caseHoist hoists the shared assignment out of a case dispatch. Match
// expressions are never touched: every "when" body and the terminal else get
// the same tail replacement, and the construct shifts under the new
// assignment like an if chain.
func caseHoist(f *syntax.File, off detect.Offense, align bool) []textedit.Edit {
	return hoistKeywordShape(f, off, align)
}

// caseSink distributes the removed outer assignment into every "when" body
// and the terminal branch, trimming the leading whitespace the outer
// assignment's width used to occupy up to the owning keyword column.
func caseSink(f *syntax.File, off detect.Offense) []textedit.Edit {
	return sinkKeywordShape(f, off)
}
