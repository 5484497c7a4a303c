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
	"log/slog"

	"fillmore-labs.com/condassign/internal/config"
)

// Option configures specific behavior of a [New] rule instance.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithStyle is an [Option] selecting the enforced rewrite direction.
func WithStyle(style Style) Option { return styleOption{style: style} }

type styleOption struct{ style Style }

func (o styleOption) apply(r *runOptions) {
	r.style = o.style.config()
}

func (o styleOption) LogAttr() slog.Attr {
	return slog.String("style", o.style.String())
}

// WithSingleLineConditionsOnly is an [Option] restricting offenses to
// constructs whose branches each hold a single statement.
func WithSingleLineConditionsOnly(singleLine bool) Option {
	return singleLineOption{singleLine: singleLine}
}

type singleLineOption struct{ singleLine bool }

func (o singleLineOption) apply(r *runOptions) {
	r.behavior.Set(config.SingleLineConditionsOnly, o.singleLine)
}

func (o singleLineOption) LogAttr() slog.Attr {
	return slog.Bool("single-line-conditions-only", o.singleLine)
}

// WithMaxLineWidth is an [Option] bounding the widest line a hoist rewrite
// may produce. A non-positive width disables the check.
func WithMaxLineWidth(maxLineWidth int) Option { return maxLineWidthOption{maxLineWidth: maxLineWidth} }

type maxLineWidthOption struct{ maxLineWidth int }

func (o maxLineWidthOption) apply(r *runOptions) {
	r.maxLineWidth = o.maxLineWidth
}

func (o maxLineWidthOption) LogAttr() slog.Attr {
	return slog.Int("max-line-width", o.maxLineWidth)
}

// WithIndentationWidth is an [Option] supplying the host's indentation step.
func WithIndentationWidth(indentWidth int) Option { return indentWidthOption{indentWidth: indentWidth} }

type indentWidthOption struct{ indentWidth int }

func (o indentWidthOption) apply(r *runOptions) {
	r.indentWidth = o.indentWidth
}

func (o indentWidthOption) LogAttr() slog.Attr {
	return slog.Int("indentation-width", o.indentWidth)
}

// WithKeywordEndAlignment is an [Option] controlling whether hoist rewrites
// realign the closing keyword under the assignment target.
func WithKeywordEndAlignment(align bool) Option { return alignOption{align: align} }

type alignOption struct{ align bool }

func (o alignOption) apply(r *runOptions) {
	r.behavior.Set(config.AlignEndKeyword, o.align)
}

func (o alignOption) LogAttr() slog.Attr {
	return slog.Bool("keyword-end-alignment", o.align)
}
