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

package branch

import "fillmore-labs.com/condassign/syntax"

// Tail returns the statement of a branch that is inspected for assignment
// shape: the branch's last statement, unwrapping a branch that consists of a
// single grouped statement by one level. Returns nil for empty branches.
func Tail(b *syntax.Branch) syntax.Stmt {
	if b == nil || len(b.Stmts) == 0 {
		return nil
	}

	if len(b.Stmts) == 1 {
		if group, ok := b.Stmts[0].(*syntax.GroupStmt); ok {
			if len(group.Body) == 0 {
				return nil
			}

			return group.Body[len(group.Body)-1]
		}
	}

	return b.Stmts[len(b.Stmts)-1]
}
