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

// Package config holds the rule's internal configuration representation.
package config

// Style selects which of the two complementary rule directions is enforced.
type Style uint8

const (
	// AssignToCondition flags conditionals whose branches all assign the
	// same target and hoists the assignment out of the construct.
	AssignToCondition Style = iota

	// AssignInsideCondition flags single assignments of a conditional's
	// value and sinks the assignment into every branch.
	AssignInsideCondition
)

// String returns the configuration name of the style.
func (s Style) String() string {
	switch s {
	case AssignToCondition:
		return "assign_to_condition"
	case AssignInsideCondition:
		return "assign_inside_condition"
	}

	return "<invalid>"
}

// Config represents behavioral options for the rule.
type Config uint8

const (
	// SingleLineConditionsOnly restricts offenses to constructs whose
	// branches each hold a single statement.
	SingleLineConditionsOnly Config = 1 << iota

	// AlignEndKeyword realigns the closing keyword under the hoisted
	// assignment target when rewriting.
	AlignEndKeyword
)

// DefaultIndentWidth is used when the host supplies no indentation width.
const DefaultIndentWidth = 2

// DefaultMaxLineWidth is used when the host supplies no line-width limit.
// A non-positive width disables the line-budget check entirely.
const DefaultMaxLineWidth = 80
