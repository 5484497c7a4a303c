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
	"fillmore-labs.com/condassign/internal/correct"
	"fillmore-labs.com/condassign/internal/detect"
	"fillmore-labs.com/condassign/syntax"
	"fillmore-labs.com/condassign/textedit"
)

// Diagnostic is one reported offense. At most one diagnostic is produced per
// construct and pass.
type Diagnostic struct {
	// Span covers the offending construct (or assignment statement).
	Span syntax.Span

	// Message is the fixed per-style offense message.
	Message string

	// SuggestedFixes holds zero or one complete rewrite for the construct.
	SuggestedFixes []SuggestedFix
}

// SuggestedFix is a self-consistent batch of text edits the host applies
// against the original buffer.
type SuggestedFix struct {
	Message   string
	TextEdits []textedit.Edit
}

// Pass holds the state of one traversal over one file: the detector's
// handled-construct markers and the report sink. Create a fresh Pass per
// file; a Pass is not safe for concurrent use.
type Pass struct {
	rule   *Rule
	file   *syntax.File
	report func(Diagnostic)
	det    *detect.Detector
}

// NewPass starts a pass over file. The host's visitor feeds nodes in source
// order through [Pass.Conditional] and [Pass.Assignment]; offenses are
// delivered to report as they are found.
func (r *Rule) NewPass(file *syntax.File, report func(Diagnostic)) *Pass {
	return &Pass{
		rule:   r,
		file:   file,
		report: report,
		det:    detect.New(file, r.opts.style, r.opts.behavior, r.opts.maxLineWidth, r.opts.indentWidth),
	}
}

// File returns the source buffer the pass runs over.
func (p *Pass) File() *syntax.File { return p.file }

// Conditional evaluates one conditional construct. Under the
// assign_to_condition style an eligible construct is reported with a hoist
// rewrite; under the opposite style the call is a no-op.
func (p *Pass) Conditional(cond *syntax.Conditional) {
	off, ok := p.det.Conditional(cond)
	if !ok {
		return
	}

	p.reportOffense(syntax.SpanOf(cond), off)
}

// Assignment evaluates one assignment statement. Under the
// assign_inside_condition style an eligible hoisted assignment is reported
// with a sink rewrite; under the opposite style the call is a no-op.
func (p *Pass) Assignment(stmt *syntax.AssignStmt) {
	off, ok := p.det.Assignment(stmt)
	if !ok {
		return
	}

	p.reportOffense(syntax.SpanOf(stmt), off)
}

func (p *Pass) reportOffense(span syntax.Span, off detect.Offense) {
	message := p.rule.message()

	diagnostic := Diagnostic{
		Span:    span,
		Message: message,
	}

	if edits := correct.Edits(p.file, off, p.rule.opts.behavior); len(edits) > 0 {
		diagnostic.SuggestedFixes = []SuggestedFix{{Message: message, TextEdits: edits}}
	}

	p.report(diagnostic)
}
