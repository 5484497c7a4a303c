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

package syntax

// OpKind classifies the structural shape of an assignment. Two assignments
// are only ever considered compatible when their kinds are identical.
type OpKind uint8

const (
	// OpPlain is a plain variable or constant assignment ("=").
	OpPlain OpKind = iota

	// OpAndOr is a short-circuit operator assignment ("&&=", "||=").
	OpAndOr

	// OpCompound is an arithmetic or bitwise operator assignment
	// ("+=", "-=", "*=", …).
	OpCompound

	// OpElementSet is an element assignment through "[]=".
	OpElementSet

	// OpMethodSetter is an attribute assignment through a "name=" method.
	OpMethodSetter

	// OpShovel is an append through "<<".
	OpShovel

	// OpOverload is one of the recognized operator-overload calls
	// ("=~", "!~", "<=>") that are treated as assignment-shaped.
	OpOverload
)

// String returns a short description of the kind.
func (k OpKind) String() string {
	switch k {
	case OpPlain:
		return "plain"
	case OpAndOr:
		return "and-or"
	case OpCompound:
		return "compound"
	case OpElementSet:
		return "element-set"
	case OpMethodSetter:
		return "method-setter"
	case OpShovel:
		return "shovel"
	case OpOverload:
		return "overload"
	}

	return "<invalid>"
}

// Operator is the operator of an [AssignStmt]: its structural kind plus the
// exact source token ("=", "||=", "+=", "<<", "=~", …). The token matters:
// two compound assignments with different tokens write different values and
// never form a uniform pattern.
type Operator struct {
	Kind  OpKind
	Token string
}
