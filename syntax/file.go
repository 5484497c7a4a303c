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

import (
	"sort"
	"strings"
)

// Span is a half-open byte range [Start, End) in a source buffer.
type Span struct {
	Start, End int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// IsValid reports whether the span describes a well-formed range.
func (s Span) IsValid() bool { return s.Start >= 0 && s.End >= s.Start }

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// File wraps an immutable source buffer with a line index.
//
// Lines are numbered starting at 1, columns at 0, matching the conventions
// of go/token.
type File struct {
	src   string
	lines []int // byte offset of the first character of each line
}

// NewFile builds a [File] for the given source text.
func NewFile(src string) *File {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}

	return &File{src: src, lines: lines}
}

// Src returns the complete source text.
func (f *File) Src() string { return f.src }

// Size returns the length of the source text in bytes.
func (f *File) Size() int { return len(f.src) }

// Text returns the source text the span covers.
func (f *File) Text(s Span) string { return f.src[s.Start:s.End] }

// Line returns the 1-based line number containing the byte at offset.
func (f *File) Line(offset int) int {
	return sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset })
}

// Column returns the 0-based column of the byte at offset.
func (f *File) Column(offset int) int {
	return offset - f.LineStart(f.Line(offset))
}

// LineStart returns the byte offset of the first character of the given line.
func (f *File) LineStart(line int) int { return f.lines[line-1] }

// NumLines returns the number of lines in the file.
func (f *File) NumLines() int { return len(f.lines) }

// LineSpan returns the span of the given line, excluding the line terminator.
func (f *File) LineSpan(line int) Span {
	start := f.lines[line-1]

	end := len(f.src)
	if line < len(f.lines) {
		end = f.lines[line] - 1 // strip the '\n'
	}

	return Span{Start: start, End: end}
}

// LineText returns the text of the given line, excluding the line terminator.
func (f *File) LineText(line int) string { return f.Text(f.LineSpan(line)) }

// LineIsBlank reports whether the given line contains only whitespace.
func (f *File) LineIsBlank(line int) bool {
	return strings.TrimSpace(f.LineText(line)) == ""
}
