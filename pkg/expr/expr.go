// Copyright The CheckFrame Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package expr provides the declarative condition language evaluated over
// frames: column access, constants, comparisons and logical connectives.
// Conditions are built once and evaluated row-by-row; evaluation follows
// three-valued logic, with null propagating through comparisons and
// connectives rather than coercing to true or false.
package expr

import (
	"fmt"

	"github.com/checkframe/go-checkframe/pkg/frame"
)

// Expr is a condition term which can be evaluated at a given row of a
// materialised frame.  Evaluation is read-only; errors signal engine-level
// problems (unknown columns, incomparable kinds) rather than data failures.
type Expr interface {
	// EvalAt evaluates this term at the given row of the given frame.
	EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error)
	// String returns a human-readable rendition of this term, which is
	// useful for error messages and debugging.
	String() string
}

// evalBool evaluates a term expected to produce a boolean (or null),
// reporting an engine error otherwise.
func evalBool(e Expr, f *frame.ArrayFrame, row int) (frame.Value, error) {
	val, err := e.EvalAt(f, row)
	//
	if err != nil {
		return frame.Null(), err
	} else if val.IsNull() || val.Kind() == frame.KindBool {
		return val, nil
	}
	//
	return frame.Null(), fmt.Errorf("expected boolean condition, got %s (in %s)", val.Kind(), e)
}
