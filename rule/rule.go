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

package rule

import (
	"fillmore-labs.com/condassign/internal/config"
)

// Public API constants for the conditional-assignment rule.
const (
	// Name identifies the rule in host configuration and diagnostics.
	Name = "condassign"

	doc = `condassign flags conditionals whose branches all assign the same target`
	url = "https://pkg.go.dev/fillmore-labs.com/condassign/rule"
)

// Fixed diagnostic messages, one per style.
const (
	msgAssignToCondition     = "Use the return of the conditional for variable assignment and comparison."
	msgAssignInsideCondition = "Assign variables inside of conditionals."
)

// Style selects which of the two complementary directions the rule enforces.
type Style uint8

const (
	// AssignToCondition reports per-branch assignments and hoists them out
	// of the conditional.
	AssignToCondition Style = iota

	// AssignInsideCondition reports hoisted assignments and sinks them into
	// every branch.
	AssignInsideCondition
)

// String returns the configuration name of the style.
func (s Style) String() string { return s.config().String() }

func (s Style) config() config.Style {
	if s == AssignInsideCondition {
		return config.AssignInsideCondition
	}

	return config.AssignToCondition
}

// Rule is a configured instance of the conditional-assignment rule. It is
// immutable and safe to share; per-file state lives in a [Pass].
type Rule struct {
	opts runOptions
}

// New creates a new instance of the rule. It allows for programmatic
// configuration using [Option], which is useful for integrating the rule
// into a host linter; configuration-file driven hosts typically go through
// the settings package instead.
func New(opts ...Option) *Rule {
	r := defaultRunOptions()
	Options(opts).apply(&r)

	return &Rule{opts: r}
}

// Doc returns the one-line rule description.
func (*Rule) Doc() string { return doc }

// URL returns the rule's documentation address.
func (*Rule) URL() string { return url }

// Style returns the configured style.
func (r *Rule) Style() Style {
	if r.opts.style == config.AssignInsideCondition {
		return AssignInsideCondition
	}

	return AssignToCondition
}

func (r *Rule) message() string {
	if r.opts.style == config.AssignInsideCondition {
		return msgAssignInsideCondition
	}

	return msgAssignToCondition
}

// runOptions represent the resolved configuration of a [Rule].
type runOptions struct {
	// style selects the enforced rewrite direction.
	style config.Style

	// behavior holds the boolean behavioral options.
	behavior config.BitMask[config.Config]

	// maxLineWidth bounds the widest line a hoist rewrite may produce;
	// non-positive disables the check.
	maxLineWidth int

	// indentWidth is the host's indentation step.
	indentWidth int
}

// defaultRunOptions returns the rule defaults: hoist direction, keyword-
// aligned closing keyword, no single-line restriction.
func defaultRunOptions() runOptions {
	return runOptions{
		style:        config.AssignToCondition,
		behavior:     config.NewBitMask(config.AlignEndKeyword),
		maxLineWidth: config.DefaultMaxLineWidth,
		indentWidth:  config.DefaultIndentWidth,
	}
}
