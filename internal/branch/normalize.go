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

// Package branch normalizes the four conditional shapes into a flat, ordered
// branch list plus one distinguished terminal branch.
//
// An elsif chain is a right-nested structure: an "if" whose else slot holds
// another "if". Normalization flattens it into an array once, up front, so
// the rewrite logic stays array-indexed and order-stable instead of recursing
// at correction time.
package branch

import "fillmore-labs.com/condassign/syntax"

// Normalize expands a conditional into its ordered non-terminal branches and
// the terminal else branch. The terminal branch is nil when the construct has
// no catch-all, which makes it ineligible for every rewrite.
//
// Branch order is source order; rewrites re-emit branches positionally.
func Normalize(cond *syntax.Conditional) (branches []*syntax.Branch, terminal *syntax.Branch) {
	switch cond.Kind {
	case syntax.If, syntax.Unless, syntax.Ternary:
		branches = append(branches, primaryArm(cond))

		// Walk the elsif chain: conditionals are trees, so the walk is
		// bounded by the chain length.
		next := cond.Else
		for {
			link, ok := next.(*syntax.Conditional)
			if !ok {
				break
			}

			branches = append(branches, primaryArm(link))
			next = link.Else
		}

		terminal, _ = next.(*syntax.Branch)

	case syntax.Case:
		for _, arm := range cond.Arms {
			branches = append(branches, arm.Body)
		}

		terminal, _ = cond.Else.(*syntax.Branch)
	}

	return branches, terminal
}

// Keywords returns the spans of the structural keywords between branches
// ("elsif", "when", "else") in source order. The closing "end" keyword is
// carried by the conditional itself.
func Keywords(cond *syntax.Conditional) []syntax.Span {
	var kws []syntax.Span

	switch cond.Kind {
	case syntax.If, syntax.Unless:
		next := cond.Else
		last := cond

		for {
			link, ok := next.(*syntax.Conditional)
			if !ok {
				break
			}

			// The elsif link's span starts at its "elsif" keyword.
			kws = append(kws, syntax.Span{Start: link.Span.Start, End: link.Span.Start + len("elsif")})
			last, next = link, link.Else
		}

		if last.ElseKeyword.Len() > 0 {
			kws = append(kws, last.ElseKeyword)
		}

	case syntax.Case:
		for _, arm := range cond.Arms {
			if arm.Keyword.Len() > 0 {
				kws = append(kws, arm.Keyword)
			}
		}

		if cond.ElseKeyword.Len() > 0 {
			kws = append(kws, cond.ElseKeyword)
		}

	case syntax.Ternary:
		// Ternaries are rewritten wholesale; there are no keyword lines.
	}

	return kws
}

// Links returns every elsif-linked conditional of an if chain, outermost
// excluded, in source order.
func Links(cond *syntax.Conditional) []*syntax.Conditional {
	var links []*syntax.Conditional

	next := cond.Else
	for {
		link, ok := next.(*syntax.Conditional)
		if !ok {
			break
		}

		links = append(links, link)
		next = link.Else
	}

	return links
}

func primaryArm(cond *syntax.Conditional) *syntax.Branch {
	if len(cond.Arms) == 0 {
		return nil
	}

	return cond.Arms[0].Body
}
