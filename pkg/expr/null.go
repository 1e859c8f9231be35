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
package expr

import (
	"fmt"

	"github.com/checkframe/go-checkframe/pkg/frame"
)

// NullTest represents a test for whether a term evaluates to null (or,
// negated, to a non-null value).  Unlike comparisons, a null test always
// yields a definite boolean.
type NullTest struct {
	// Negated indicates this is an "is not null" test.
	Negated bool
	// Arg is the term under test.
	Arg Expr
}

// IsNull constructs a test for a term being null.
func IsNull(arg Expr) Expr {
	return &NullTest{false, arg}
}

// IsNotNull constructs a test for a term being non-null.
func IsNotNull(arg Expr) Expr {
	return &NullTest{true, arg}
}

// EvalAt implementation for the Expr interface.
func (p *NullTest) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
	val, err := p.Arg.EvalAt(f, row)
	//
	if err != nil {
		return frame.Null(), err
	}
	//
	return frame.Bool(val.IsNull() != p.Negated), nil
}

// String implementation for the Stringer interface.
func (p *NullTest) String() string {
	if p.Negated {
		return fmt.Sprintf("%s is not null", p.Arg)
	}
	//
	return fmt.Sprintf("%s is null", p.Arg)
}
