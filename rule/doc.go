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

// Package rule implements the conditional-assignment style rule.
//
// # Overview
//
// The rule detects conditional constructs in which every branch ends by
// assigning the same target, and rewrites them in one of two directions
// selected by the configured style.
//
// # Example
//
// Under the default assign_to_condition style, this construct
//
//	if foo
//	  bar = 1
//	else
//	  bar = 2
//	end
//
// is reported and corrected to
//
//	bar = if foo
//	        1
//	      else
//	        2
//	      end
//
// Under assign_inside_condition the opposite rewrite applies: a single
// assignment of a conditional's value is pushed back into every branch.
//
// # Host integration
//
// The host parser builds [syntax] nodes and drives a [Pass] in source order,
// one call per conditional or assignment node. Offenses arrive through the
// pass's report function as [Diagnostic] values whose suggested fixes are
// complete [textedit.Edit] batches over the original buffer; the rule never
// mutates the tree and performs no I/O.
package rule
