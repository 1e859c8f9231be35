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

// Equal represents an equality (or negated equality) between two terms, e.g.
// "X == Y" or "X != 0".
type Equal struct {
	// Negated indicates whether this is a disequality rather than an
	// equality.
	Negated bool
	// Left hand side of the equality
	Lhs Expr
	// Right hand side of the equality
	Rhs Expr
}

// Equals constructs an equality representing X == Y.
func Equals(lhs Expr, rhs Expr) Expr {
	return &Equal{false, lhs, rhs}
}

// NotEquals constructs a disequality representing X != Y.
func NotEquals(lhs Expr, rhs Expr) Expr {
	return &Equal{true, lhs, rhs}
}

// EvalAt implementation for the Expr interface.  Comparing against null
// yields null.
func (p *Equal) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
	lhs, err1 := p.Lhs.EvalAt(f, row)
	rhs, err2 := p.Rhs.EvalAt(f, row)
	// error check
	if err1 != nil {
		return frame.Null(), err1
	} else if err2 != nil {
		return frame.Null(), err2
	}
	// null check
	if lhs.IsNull() || rhs.IsNull() {
		return frame.Null(), nil
	}
	// perform comparison
	c, err := lhs.Compare(rhs)
	if err != nil {
		return frame.Null(), fmt.Errorf("%s: %w", p, err)
	}
	//
	return frame.Bool((c == 0) != p.Negated), nil
}

// String implementation for the Stringer interface.
func (p *Equal) String() string {
	if p.Negated {
		return fmt.Sprintf("%s != %s", p.Lhs, p.Rhs)
	}
	//
	return fmt.Sprintf("%s == %s", p.Lhs, p.Rhs)
}
