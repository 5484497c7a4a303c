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

// Package settings converts host-supplied YAML configuration into rule
// options. The host owns discovery and storage of its configuration; this
// package only decodes the rule's section of it.
package settings

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/condassign/rule"
)

// ErrUnknownStyle is returned for a style value the rule does not implement.
var ErrUnknownStyle = errors.New("unknown style")

// Settings represents the configuration options for the rule. Fields are
// pointers so that only explicitly-set values override the rule defaults.
type Settings struct {
	// Style selects the enforced rewrite direction:
	// "assign_to_condition" or "assign_inside_condition".
	Style *string `yaml:"style"`
	// SingleLineConditionsOnly restricts offenses to constructs whose
	// branches each hold a single statement.
	SingleLineConditionsOnly *bool `yaml:"single-line-conditions-only"`
	// MaxLineWidth bounds the widest line a hoist rewrite may produce;
	// zero or negative disables the check.
	MaxLineWidth *int `yaml:"max-line-width"`
	// IndentationWidth is the host's indentation step.
	IndentationWidth *int `yaml:"indentation-width"`
	// EndKeywordAlignment is "keyword" to realign the closing keyword
	// under the hoisted assignment target; any other value leaves it at
	// the construct's column.
	EndKeywordAlignment *string `yaml:"end-keyword-alignment"`
}

// Decode parses the rule's YAML configuration section.
func Decode(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decoding rule settings: %w", err)
	}

	return s, nil
}

// Options converts [Settings] into a list of [rule.Option] values, applying
// only settings that were explicitly set (non-nil).
func (s Settings) Options() ([]rule.Option, error) {
	var opts []rule.Option

	if s.Style != nil {
		style, err := parseStyle(*s.Style)
		if err != nil {
			return nil, err
		}

		opts = append(opts, rule.WithStyle(style))
	}

	opts = appendOption(opts, s.SingleLineConditionsOnly, rule.WithSingleLineConditionsOnly)
	opts = appendOption(opts, s.MaxLineWidth, rule.WithMaxLineWidth)
	opts = appendOption(opts, s.IndentationWidth, rule.WithIndentationWidth)

	if s.EndKeywordAlignment != nil {
		opts = append(opts, rule.WithKeywordEndAlignment(*s.EndKeywordAlignment == "keyword"))
	}

	return opts, nil
}

func parseStyle(name string) (rule.Style, error) {
	switch name {
	case rule.AssignToCondition.String():
		return rule.AssignToCondition, nil
	case rule.AssignInsideCondition.String():
		return rule.AssignInsideCondition, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// appendOption appends a non-nil setting to a [rule.Option] list.
func appendOption[T any](opts []rule.Option, value *T, constructor func(T) rule.Option) []rule.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
