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

// Package testsource builds syntax trees from literal source fragments so
// tests can exercise the rule against real text.
//
// The production parser is the host's; this one covers just enough of the
// surface language for test fixtures: multi-line and "then"-inline
// if/unless, elsif chains, case/when dispatch, begin groups, spaced ternary
// expressions ("cond ? a : b") and the recognized assignment shapes. Spans
// are exact byte ranges into the fragment, which the rewrite tests depend
// on.
package testsource

import (
	"strings"
	"testing"

	"fillmore-labs.com/condassign/syntax"
)

// Parse builds the [syntax] tree for a source fragment. Parse failures fail
// the test immediately.
func Parse(tb testing.TB, src string) (*syntax.File, []syntax.Stmt) {
	tb.Helper()

	p := &parser{tb: tb, src: src}
	stmts := p.stmts(nil)

	return syntax.NewFile(src), stmts
}

// FirstConditional returns the first top-level conditional statement of the
// fragment.
func FirstConditional(tb testing.TB, src string) (*syntax.File, *syntax.Conditional) {
	tb.Helper()

	f, stmts := Parse(tb, src)
	for _, stmt := range stmts {
		if cond, ok := stmt.(*syntax.Conditional); ok {
			return f, cond
		}
	}

	tb.Fatalf("no conditional statement in %q", src)

	return nil, nil
}

// FirstAssign returns the first top-level assignment statement of the
// fragment.
func FirstAssign(tb testing.TB, src string) (*syntax.File, *syntax.AssignStmt) {
	tb.Helper()

	f, stmts := Parse(tb, src)
	for _, stmt := range stmts {
		if a, ok := stmt.(*syntax.AssignStmt); ok {
			return f, a
		}
	}

	tb.Fatalf("no assignment statement in %q", src)

	return nil, nil
}

type parser struct {
	tb  testing.TB
	src string
	pos int
}

// stmts parses statements until end of input or a line whose first word is
// one of the stop keywords.
func (p *parser) stmts(stop []string) []syntax.Stmt {
	var list []syntax.Stmt

	for {
		_, w := p.peek()
		if p.pos >= len(p.src) {
			return list
		}

		for _, s := range stop {
			if w == s {
				return list
			}
		}

		list = append(list, p.stmt())
	}
}

func (p *parser) stmt() syntax.Stmt {
	end := p.lineEnd()
	start := skipSpaces(p.src, p.pos, end)

	switch wordAt(p.src, start, end) {
	case "if":
		return p.conditional(start, syntax.If)
	case "unless":
		return p.conditional(start, syntax.Unless)
	case "case":
		return p.caseDispatch(start)
	case "begin":
		return p.group(start)
	}

	return p.simple(start, end)
}

// conditional parses an if or unless construct starting at the keyword.
func (p *parser) conditional(start int, kind syntax.CondKind) *syntax.Conditional {
	lineEnd := p.lineEnd()

	kw := "if"
	if kind == syntax.Unless {
		kw = "unless"
	}

	condStart := skipSpaces(p.src, start+len(kw), lineEnd)

	if thenIdx := topLevelIndex(p.src, condStart, lineEnd, " then "); thenIdx >= 0 {
		return p.inlineConditional(start, kind, condStart, thenIdx, lineEnd)
	}

	type link struct {
		start int
		cond  syntax.Span
		body  *syntax.Branch
	}

	condSpan := syntax.Span{Start: condStart, End: trimRight(p.src, condStart, lineEnd)}
	p.nextLine(lineEnd)

	links := []link{{start: start, cond: condSpan, body: p.branch("elsif", "else", "end")}}

	for {
		head, w := p.peek()
		if w != "elsif" {
			break
		}

		lend := p.lineEnd()
		cstart := skipSpaces(p.src, head+len("elsif"), lend)
		cspan := syntax.Span{Start: cstart, End: trimRight(p.src, cstart, lend)}
		p.nextLine(lend)

		links = append(links, link{start: head, cond: cspan, body: p.branch("elsif", "else", "end")})
	}

	var (
		elseKw   syntax.Span
		terminal *syntax.Branch
	)

	if _, w := p.peek(); w == "else" {
		elseKw = p.expect("else")
		terminal = p.branch("end")
	}

	endKw := p.expect("end")

	// Assemble the right-nested chain from the inside out; the last else
	// slot that is not a conditional carries the terminal branch.
	var next syntax.Node
	if terminal != nil {
		next = terminal
	}

	for i := len(links) - 1; i >= 1; i-- {
		l := links[i]
		c := &syntax.Conditional{
			Span: syntax.Span{Start: l.start, End: endKw.End},
			Kind: syntax.If,
			Cond: l.cond,
			Arms: []*syntax.Arm{{Span: syntax.Span{Start: l.start, End: l.body.End()}, Body: l.body}},
			Else: next,
		}
		if i == len(links)-1 {
			c.ElseKeyword = elseKw
		}

		next = c
	}

	outer := &syntax.Conditional{
		Span:       syntax.Span{Start: start, End: endKw.End},
		Kind:       kind,
		Cond:       links[0].cond,
		Arms:       []*syntax.Arm{{Span: syntax.Span{Start: start, End: links[0].body.End()}, Body: links[0].body}},
		Else:       next,
		EndKeyword: endKw,
	}
	if len(links) == 1 {
		outer.ElseKeyword = elseKw
	}

	return outer
}

// inlineConditional parses the single-line "if cond then stmt else stmt end"
// form.
func (p *parser) inlineConditional(start int, kind syntax.CondKind, condStart, thenIdx, lineEnd int) *syntax.Conditional {
	trimmed := trimRight(p.src, start, lineEnd)
	if !strings.HasSuffix(p.src[start:trimmed], "end") {
		p.tb.Fatalf("inline conditional without end keyword: %q", p.src[start:trimmed])
	}

	endKw := syntax.Span{Start: trimmed - len("end"), End: trimmed}
	condSpan := syntax.Span{Start: condStart, End: trimRight(p.src, condStart, thenIdx)}

	afterThen := skipSpaces(p.src, thenIdx+len(" then "), lineEnd)

	cond := &syntax.Conditional{
		Span:       syntax.Span{Start: start, End: endKw.End},
		Kind:       kind,
		Cond:       condSpan,
		EndKeyword: endKw,
	}

	bodyEnd := endKw.Start
	if elseIdx := topLevelIndex(p.src, afterThen, lineEnd, " else "); elseIdx >= 0 {
		bodyEnd = elseIdx

		cond.ElseKeyword = syntax.Span{Start: elseIdx + 1, End: elseIdx + 1 + len("else")}
		elseStart := skipSpaces(p.src, elseIdx+len(" else "), lineEnd)
		cond.Else = singleBranch(p.simpleAt(elseStart, trimRight(p.src, elseStart, endKw.Start)))
	}

	body := p.simpleAt(afterThen, trimRight(p.src, afterThen, bodyEnd))
	cond.Arms = []*syntax.Arm{{Span: syntax.SpanOf(body), Body: singleBranch(body)}}

	p.nextLine(lineEnd)

	return cond
}

// caseDispatch parses a case/when construct starting at the keyword.
func (p *parser) caseDispatch(start int) *syntax.Conditional {
	lineEnd := p.lineEnd()
	subjStart := skipSpaces(p.src, start+len("case"), lineEnd)
	subj := syntax.Span{Start: subjStart, End: trimRight(p.src, subjStart, lineEnd)}
	p.nextLine(lineEnd)

	var arms []*syntax.Arm

	for {
		head, w := p.peek()
		if w != "when" {
			break
		}

		lend := p.lineEnd()
		kwSpan := syntax.Span{Start: head, End: head + len("when")}
		matchStart := skipSpaces(p.src, head+len("when"), lend)

		if thenIdx := topLevelIndex(p.src, matchStart, lend, " then "); thenIdx >= 0 {
			match := syntax.Span{Start: matchStart, End: trimRight(p.src, matchStart, thenIdx)}
			stmtStart := skipSpaces(p.src, thenIdx+len(" then "), lend)
			stmt := p.simpleAt(stmtStart, trimRight(p.src, stmtStart, lend))
			p.nextLine(lend)

			arms = append(arms, &syntax.Arm{
				Span:    syntax.Span{Start: head, End: stmt.End()},
				Keyword: kwSpan,
				Match:   match,
				Body:    singleBranch(stmt),
			})

			continue
		}

		match := syntax.Span{Start: matchStart, End: trimRight(p.src, matchStart, lend)}
		p.nextLine(lend)
		body := p.branch("when", "else", "end")

		arms = append(arms, &syntax.Arm{
			Span:    syntax.Span{Start: head, End: body.End()},
			Keyword: kwSpan,
			Match:   match,
			Body:    body,
		})
	}

	cond := &syntax.Conditional{
		Kind: syntax.Case,
		Cond: subj,
		Arms: arms,
	}

	if _, w := p.peek(); w == "else" {
		cond.ElseKeyword = p.expect("else")
		cond.Else = p.branch("end")
	}

	endKw := p.expect("end")
	cond.Span = syntax.Span{Start: start, End: endKw.End}
	cond.EndKeyword = endKw

	return cond
}

// group parses a begin…end statement group.
func (p *parser) group(start int) *syntax.GroupStmt {
	p.nextLine(p.lineEnd())
	body := p.stmts([]string{"end"})
	endKw := p.expect("end")

	return &syntax.GroupStmt{Span: syntax.Span{Start: start, End: endKw.End}, Body: body}
}

// simple parses a one-line statement, following a conditional right-hand
// side across lines when present.
func (p *parser) simple(start, end int) syntax.Stmt {
	trimmed := trimRight(p.src, start, end)
	res := scanLine(p.src, start, trimmed)

	switch {
	case res.ternary >= 0 && (res.opIdx < 0 || res.ternary < res.opIdx):
		stmt := p.ternaryExpr(start, trimmed, res.ternary)
		p.nextLine(end)

		return stmt

	case res.opIdx >= 0:
		valueStart := skipSpaces(p.src, res.opIdx+len(res.op), trimmed)

		switch wordAt(p.src, valueStart, trimmed) {
		case "if":
			return p.assignCond(start, res, p.conditional(valueStart, syntax.If))
		case "unless":
			return p.assignCond(start, res, p.conditional(valueStart, syntax.Unless))
		case "case":
			return p.assignCond(start, res, p.caseDispatch(valueStart))
		}

		stmt := p.assignAt(start, trimmed, res)
		p.nextLine(end)

		return stmt
	}

	p.nextLine(end)

	return &syntax.BasicStmt{Span: syntax.Span{Start: start, End: trimmed}}
}

// assignCond finishes an assignment whose right-hand side is a multi-line
// conditional; the conditional parse has already consumed its lines.
func (p *parser) assignCond(start int, res scan, cond *syntax.Conditional) *syntax.AssignStmt {
	return &syntax.AssignStmt{
		Span:        syntax.Span{Start: start, End: cond.End()},
		Target:      syntax.Span{Start: start, End: trimRight(p.src, start, res.opIdx)},
		Op:          syntax.Operator{Kind: res.kind, Token: res.op},
		Value:       cond,
		MultiTarget: res.multi,
	}
}

// simpleAt parses a statement confined to [start, end), without consuming
// parser input. Used for inline bodies and ternary arms.
func (p *parser) simpleAt(start, end int) syntax.Stmt {
	res := scanLine(p.src, start, end)
	if res.opIdx >= 0 {
		return p.assignAt(start, end, res)
	}

	return &syntax.BasicStmt{Span: syntax.Span{Start: start, End: end}}
}

// assignAt builds an assignment statement confined to [start, end).
func (p *parser) assignAt(start, end int, res scan) *syntax.AssignStmt {
	valueStart := skipSpaces(p.src, res.opIdx+len(res.op), end)

	return &syntax.AssignStmt{
		Span:        syntax.Span{Start: start, End: end},
		Target:      syntax.Span{Start: start, End: trimRight(p.src, start, res.opIdx)},
		Op:          syntax.Operator{Kind: res.kind, Token: res.op},
		Value:       p.valueExpr(valueStart, end),
		MultiTarget: res.multi,
	}
}

// valueExpr builds the right-hand-side expression for [start, end):
// a grouping, a spaced ternary, or an opaque expression.
func (p *parser) valueExpr(start, end int) syntax.Expr {
	if end > start && p.src[start] == '(' && p.src[end-1] == ')' && balanced(p.src, start, end) {
		innerStart := skipSpaces(p.src, start+1, end-1)
		inner := p.valueExpr(innerStart, trimRight(p.src, innerStart, end-1))

		return &syntax.ParenExpr{Span: syntax.Span{Start: start, End: end}, X: inner}
	}

	if q := topLevelIndex(p.src, start, end, " ? "); q >= 0 {
		return p.ternaryExpr(start, end, q+1)
	}

	return &syntax.BasicExpr{Span: syntax.Span{Start: start, End: end}}
}

// ternaryExpr builds a ternary conditional from [start, end) with the "?"
// at qIdx.
func (p *parser) ternaryExpr(start, end, qIdx int) *syntax.Conditional {
	colon := topLevelIndex(p.src, qIdx+1, end, " : ")
	if colon < 0 {
		p.tb.Fatalf("ternary without colon: %q", p.src[start:end])
	}

	trueStart := skipSpaces(p.src, qIdx+1, end)
	trueStmt := p.simpleAt(trueStart, trimRight(p.src, trueStart, colon))

	falseStart := skipSpaces(p.src, colon+len(" : "), end)
	falseStmt := p.simpleAt(falseStart, end)

	return &syntax.Conditional{
		Span: syntax.Span{Start: start, End: end},
		Kind: syntax.Ternary,
		Cond: syntax.Span{Start: start, End: trimRight(p.src, start, qIdx)},
		Arms: []*syntax.Arm{{Span: syntax.SpanOf(trueStmt), Body: singleBranch(trueStmt)}},
		Else: singleBranch(falseStmt),
	}
}

// branch collects a branch body until one of the stop keywords.
func (p *parser) branch(stop ...string) *syntax.Branch {
	at, _ := p.peek()
	stmts := p.stmts(stop)

	if len(stmts) == 0 {
		return &syntax.Branch{Span: syntax.Span{Start: at, End: at}}
	}

	return &syntax.Branch{
		Span:  syntax.Span{Start: stmts[0].Pos(), End: stmts[len(stmts)-1].End()},
		Stmts: stmts,
	}
}

func singleBranch(stmt syntax.Stmt) *syntax.Branch {
	return &syntax.Branch{Span: syntax.SpanOf(stmt), Stmts: []syntax.Stmt{stmt}}
}

// peek skips blank lines and returns the offset and first word of the next
// statement line, without consuming it.
func (p *parser) peek() (head int, w string) {
	p.skipBlank()
	if p.pos >= len(p.src) {
		return p.pos, ""
	}

	end := p.lineEnd()
	head = skipSpaces(p.src, p.pos, end)

	return head, wordAt(p.src, head, end)
}

// expect consumes a line holding the given keyword and returns its span.
func (p *parser) expect(keyword string) syntax.Span {
	head, w := p.peek()
	if w != keyword {
		p.tb.Fatalf("expected %q, found %q at offset %d", keyword, w, head)
	}

	p.nextLine(p.lineEnd())

	return syntax.Span{Start: head, End: head + len(keyword)}
}

func (p *parser) lineEnd() int {
	if i := strings.IndexByte(p.src[p.pos:], '\n'); i >= 0 {
		return p.pos + i
	}

	return len(p.src)
}

func (p *parser) nextLine(end int) {
	if end < len(p.src) {
		end++
	}

	p.pos = end
}

func (p *parser) skipBlank() {
	for p.pos < len(p.src) {
		end := p.lineEnd()
		if strings.TrimSpace(p.src[p.pos:end]) != "" {
			return
		}

		p.nextLine(end)
	}
}
