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

// Package textedit models rewrites as lists of span replacements applied
// against the original immutable source buffer. The rule never mutates the
// syntax tree; hosts apply the edits as a batch.
package textedit

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fillmore-labs.com/condassign/syntax"
)

// Edit replaces the text of Span with New. A zero-length span inserts, an
// empty New deletes.
type Edit struct {
	Span syntax.Span
	New  string
}

// Insert returns an edit inserting text at offset.
func Insert(offset int, text string) Edit {
	return Edit{Span: syntax.Span{Start: offset, End: offset}, New: text}
}

// Delete returns an edit removing the given span.
func Delete(span syntax.Span) Edit {
	return Edit{Span: span}
}

// Replace returns an edit replacing the given span with text.
func Replace(span syntax.Span, text string) Edit {
	return Edit{Span: span, New: text}
}

// ErrOverlap is returned by [Apply] when two edits overlap.
var ErrOverlap = errors.New("overlapping edits")

// ErrOutOfBounds is returned by [Apply] when an edit lies outside the source.
var ErrOutOfBounds = errors.New("edit out of bounds")

// Apply materializes a batch of non-overlapping edits against src.
//
// Edits are ordered by start offset before application; insertions sharing a
// start offset keep their given relative order. The input slice is not
// modified.
func Apply(src string, edits []Edit) (string, error) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		if a.Span.Start != b.Span.Start {
			return a.Span.Start - b.Span.Start
		}

		return a.Span.End - b.Span.End
	})

	var out strings.Builder

	last := 0
	for _, e := range sorted {
		if !e.Span.IsValid() || e.Span.End > len(src) {
			return "", fmt.Errorf("%w: [%d, %d)", ErrOutOfBounds, e.Span.Start, e.Span.End)
		}

		if e.Span.Start < last {
			return "", fmt.Errorf("%w at offset %d", ErrOverlap, e.Span.Start)
		}

		out.WriteString(src[last:e.Span.Start]) // ignore error
		out.WriteString(e.New)                  // ignore error
		last = e.Span.End
	}

	out.WriteString(src[last:]) // ignore error

	return out.String(), nil
}
