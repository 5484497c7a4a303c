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

// Node is implemented by every syntax element the host constructs.
type Node interface {
	// Pos returns the byte offset of the node's first character.
	Pos() int
	// End returns the byte offset directly after the node's last character.
	End() int
}

// SpanOf returns the source span a node covers.
func SpanOf(n Node) Span { return Span{Start: n.Pos(), End: n.End()} }

// CondKind identifies the surface shape of a conditional construct.
type CondKind uint8

const (
	// If is a two-armed or elsif-chained "if … end" construct.
	If CondKind = iota

	// Unless is the negated two-armed form; its primary arm runs when the
	// condition is falsy, so source order places the arm before the else.
	Unless

	// Case is a multi-armed "case … when … end" dispatch.
	Case

	// Ternary is the single-expression "cond ? a : b" form.
	Ternary
)

// String returns the source keyword of the conditional kind.
func (k CondKind) String() string {
	switch k {
	case If:
		return "if"
	case Unless:
		return "unless"
	case Case:
		return "case"
	case Ternary:
		return "ternary"
	}

	return "<invalid>"
}

// Conditional is a conditional construct of any of the four supported shapes.
//
// The Else slot follows the right-nested chain representation: for "elsif"
// chains it holds another *Conditional whose Span starts at the elsif
// keyword, and the first non-conditional value found while descending is the
// terminal *Branch. A nil Else means the construct has no catch-all branch
// and is ineligible for every rewrite.
type Conditional struct {
	Span Span     // whole construct, including the closing keyword
	Kind CondKind // surface shape

	Cond Span // condition (or case subject) expression text

	// Arms holds the primary arm for If, Unless and Ternary, and the "when"
	// clauses in source order for Case.
	Arms []*Arm

	// Else is either *Conditional (an elsif link), *Branch (the terminal
	// else branch) or nil.
	Else Node

	// ElseKeyword is the span of the "else" keyword introducing a terminal
	// *Branch in Else. Zero when Else is absent, an elsif link or a ternary
	// ":" arm.
	ElseKeyword Span

	// EndKeyword is the span of the closing "end" keyword. Zero for Ternary
	// and for elsif links, which share the end of the outermost construct.
	EndKeyword Span
}

// Pos implements [Node].
func (c *Conditional) Pos() int { return c.Span.Start }

// End implements [Node].
func (c *Conditional) End() int { return c.Span.End }

func (c *Conditional) exprNode() {}
func (c *Conditional) stmtNode() {}

// Arm is one non-terminal arm of a conditional construct.
type Arm struct {
	Span    Span    // from the introducing keyword through the arm body
	Keyword Span    // the "when" keyword for Case arms, zero otherwise
	Match   Span    // the match expression of a Case arm, zero otherwise
	Body    *Branch // the arm's statements
}

// Pos implements [Node].
func (a *Arm) Pos() int { return a.Span.Start }

// End implements [Node].
func (a *Arm) End() int { return a.Span.End }

// Branch is the body of one arm: a sequence of zero or more statements.
// Only the tail statement is ever inspected for assignment shape; all other
// statements pass through every rewrite untouched.
type Branch struct {
	Span  Span
	Stmts []Stmt
}

// Pos implements [Node].
func (b *Branch) Pos() int { return b.Span.Start }

// End implements [Node].
func (b *Branch) End() int { return b.Span.End }

// Stmt is a statement inside a branch.
type Stmt interface {
	Node
	stmtNode()
}

// BasicStmt is an opaque statement the rule passes through unmodified.
type BasicStmt struct {
	Span Span
}

// Pos implements [Node].
func (s *BasicStmt) Pos() int { return s.Span.Start }

// End implements [Node].
func (s *BasicStmt) End() int { return s.Span.End }

func (s *BasicStmt) stmtNode() {}

// GroupStmt is a single grouped statement sequence ("begin … end" or a
// parenthesized statement). A branch consisting of exactly one group is
// unwrapped one level when its tail is inspected.
type GroupStmt struct {
	Span Span
	Body []Stmt
}

// Pos implements [Node].
func (s *GroupStmt) Pos() int { return s.Span.Start }

// End implements [Node].
func (s *GroupStmt) End() int { return s.Span.End }

func (s *GroupStmt) stmtNode() {}

// AssignStmt is an assignment-shaped statement: a plain, operator or
// element/attribute assignment, a shovel append, or one of the recognized
// operator-overload calls.
type AssignStmt struct {
	Span Span

	// Target is the left-hand-side source text, including any receiver or
	// index sub-expression ("bar", "arr[0]", "obj.attr").
	Target Span

	// Op is the assignment operator.
	Op Operator

	// Value is the right-hand side. It may be a *Conditional (possibly
	// wrapped in a *ParenExpr) when the host encounters a hoisted form.
	Value Expr

	// MultiTarget marks multiple-assignment statements ("a, b = 1, 2"),
	// which never participate in rewrites.
	MultiTarget bool
}

// Pos implements [Node].
func (s *AssignStmt) Pos() int { return s.Span.Start }

// End implements [Node].
func (s *AssignStmt) End() int { return s.Span.End }

func (s *AssignStmt) stmtNode() {}

// Expr is an expression on the right-hand side of an assignment.
type Expr interface {
	Node
	exprNode()
}

// BasicExpr is an opaque expression; the rule only ever uses its text.
type BasicExpr struct {
	Span Span
}

// Pos implements [Node].
func (e *BasicExpr) Pos() int { return e.Span.Start }

// End implements [Node].
func (e *BasicExpr) End() int { return e.Span.End }

func (e *BasicExpr) exprNode() {}

// ParenExpr is a parenthesized grouping. Detection unwraps exactly one level
// before testing whether an assignment's value is a conditional.
type ParenExpr struct {
	Span Span
	X    Expr
}

// Pos implements [Node].
func (e *ParenExpr) Pos() int { return e.Span.Start }

// End implements [Node].
func (e *ParenExpr) End() int { return e.Span.End }

func (e *ParenExpr) exprNode() {}
