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

// Package syntax defines the node model the host parser hands to the rule.
//
// The rule never parses source text itself. Instead, the host constructs
// [Conditional], [Branch] and statement values that describe one conditional
// construct (or one assignment statement), each carrying the exact byte span
// of the text it represents. A [File] wraps the immutable source buffer and
// provides line and column lookups over those spans.
//
// Nodes are transient: they are built per visit, inspected during a single
// detection or correction pass, and never mutated by the rule.
package syntax
