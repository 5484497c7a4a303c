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

// Package detect orchestrates normalization, matching and the line budget to
// decide whether a construct is an offense under the configured style.
//
// All failure here is non-eligibility, never an error: a construct that
// lacks a terminal branch, mixes targets or overflows the line budget is
// silently not reported.
package detect

import (
	"fillmore-labs.com/condassign/internal/assignment"
	"fillmore-labs.com/condassign/internal/branch"
	"fillmore-labs.com/condassign/internal/config"
	"fillmore-labs.com/condassign/internal/linebudget"
	"fillmore-labs.com/condassign/syntax"
)

// Detector evaluates constructs against one configured style for the
// duration of a single pass over one file.
type Detector struct {
	file     *syntax.File
	style    config.Style
	behavior config.BitMask[config.Config]

	maxLineWidth int
	indentWidth  int

	// handled tracks construct start offsets already processed this pass,
	// so nested or overlapping constructs are reported at most once.
	handled map[int]struct{}
}

// New creates a Detector for one pass over file.
func New(file *syntax.File, style config.Style, behavior config.BitMask[config.Config], maxLineWidth, indentWidth int) *Detector {
	return &Detector{
		file:         file,
		style:        style,
		behavior:     behavior,
		maxLineWidth: maxLineWidth,
		indentWidth:  indentWidth,
		handled:      make(map[int]struct{}),
	}
}

// Offense describes one eligible construct together with everything the
// correctors need: the construct, its normalized branches and the rendered
// assignment prefix. Assign is the outer assignment statement for the
// sink direction and nil for the hoist direction.
type Offense struct {
	Cond     *syntax.Conditional
	Assign   *syntax.AssignStmt
	Branches []*syntax.Branch
	Terminal *syntax.Branch
	Prefix   string

	IndentWidth int
}

// Conditional evaluates a conditional construct under the
// assign_to_condition style. The host calls it once per construct in source
// order; elsif-linked inner conditionals are recognized and skipped.
func (d *Detector) Conditional(cond *syntax.Conditional) (Offense, bool) {
	if d.style != config.AssignToCondition {
		return Offense{}, false
	}

	if d.isHandled(cond) {
		return Offense{}, false
	}

	// Inner links of an elsif chain are never independently reportable.
	d.markLinks(cond)

	branches, terminal := branch.Normalize(cond)
	if terminal == nil {
		return Offense{}, false
	}

	if !d.singleLineOK(branches, terminal) {
		return Offense{}, false
	}

	tails := assignment.Tails(d.file, branches, terminal)
	if tails == nil || !assignment.Matches(d.file, branches, terminal) {
		return Offense{}, false
	}

	// Hoisting replaces each tail span while padding the lines beneath it;
	// a tail spanning multiple lines would make the two collide.
	if !d.tailsSingleLine(tails) {
		return Offense{}, false
	}

	prefix := assignment.Prefix(d.file, tails[0])
	if !linebudget.Fits(d.file, cond, tails, prefix, d.maxLineWidth, d.indentWidth) {
		return Offense{}, false
	}

	d.mark(cond)

	return Offense{
		Cond:        cond,
		Branches:    branches,
		Terminal:    terminal,
		Prefix:      prefix,
		IndentWidth: d.effectiveIndent(),
	}, true
}

// Assignment evaluates a bare assignment statement under the
// assign_inside_condition style: an offense when its right-hand side, after
// unwrapping a single grouping, is a conditional with a terminal branch.
func (d *Detector) Assignment(stmt *syntax.AssignStmt) (Offense, bool) {
	if d.style != config.AssignInsideCondition {
		return Offense{}, false
	}

	if stmt == nil || stmt.MultiTarget {
		return Offense{}, false
	}

	if _, ok := d.handled[stmt.Pos()]; ok {
		return Offense{}, false
	}

	cond := conditionalValue(stmt.Value)
	if cond == nil || d.isHandled(cond) {
		return Offense{}, false
	}

	branches, terminal := branch.Normalize(cond)
	if terminal == nil {
		return Offense{}, false
	}

	// Every branch needs a tail statement to anchor the sunk assignment.
	for _, b := range append(branches, terminal) {
		if branch.Tail(b) == nil {
			return Offense{}, false
		}
	}

	if !d.singleLineOK(branches, terminal) {
		return Offense{}, false
	}

	d.handled[stmt.Pos()] = struct{}{}
	d.mark(cond)
	d.markLinks(cond)

	return Offense{
		Cond:        cond,
		Assign:      stmt,
		Branches:    branches,
		Terminal:    terminal,
		Prefix:      assignment.Prefix(d.file, stmt),
		IndentWidth: d.effectiveIndent(),
	}, true
}

// singleLineOK applies the optional restriction rejecting multi-statement
// branches.
func (d *Detector) singleLineOK(branches []*syntax.Branch, terminal *syntax.Branch) bool {
	if !d.behavior.Enabled(config.SingleLineConditionsOnly) {
		return true
	}

	for _, b := range branches {
		if b != nil && len(b.Stmts) > 1 {
			return false
		}
	}

	return terminal == nil || len(terminal.Stmts) <= 1
}

// tailsSingleLine reports whether every tail assignment occupies a single
// source line.
func (d *Detector) tailsSingleLine(tails []*syntax.AssignStmt) bool {
	for _, tail := range tails {
		if d.file.Line(tail.Pos()) != d.file.Line(tail.End()-1) {
			return false
		}
	}

	return true
}

func (d *Detector) effectiveIndent() int {
	if d.indentWidth > 0 {
		return d.indentWidth
	}

	return config.DefaultIndentWidth
}

func (d *Detector) isHandled(cond *syntax.Conditional) bool {
	_, ok := d.handled[cond.Pos()]

	return ok
}

func (d *Detector) mark(cond *syntax.Conditional) {
	d.handled[cond.Pos()] = struct{}{}
}

// markLinks marks every elsif-linked conditional of a chain as handled.
func (d *Detector) markLinks(cond *syntax.Conditional) {
	for _, link := range branch.Links(cond) {
		d.mark(link)
	}
}

// conditionalValue unwraps at most one grouping level and returns the value
// as a conditional, or nil.
func conditionalValue(value syntax.Expr) *syntax.Conditional {
	if paren, ok := value.(*syntax.ParenExpr); ok {
		value = paren.X
	}

	cond, _ := value.(*syntax.Conditional)

	return cond
}
