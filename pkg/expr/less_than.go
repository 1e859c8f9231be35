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

// LessThan constructs an Inequality representing X < Y.
func LessThan(lhs Expr, rhs Expr) Expr {
	return &Inequality{Strict: true, Lhs: lhs, Rhs: rhs}
}

// LessThanOrEquals constructs an Inequality representing X <= Y.
func LessThanOrEquals(lhs Expr, rhs Expr) Expr {
	return &Inequality{Strict: false, Lhs: lhs, Rhs: rhs}
}

// GreaterThan constructs an Inequality representing X > Y.
func GreaterThan(lhs Expr, rhs Expr) Expr {
	return &Inequality{Strict: true, Lhs: rhs, Rhs: lhs}
}

// GreaterThanOrEquals constructs an Inequality representing X >= Y.
func GreaterThanOrEquals(lhs Expr, rhs Expr) Expr {
	return &Inequality{Strict: false, Lhs: rhs, Rhs: lhs}
}

// ============================================================================

// Inequality represents an ordering between two terms (e.g. "X < Y", or
// "X <= 1", etc).
type Inequality struct {
	// Strict indicates whether this is strictly less-than, or whether it is
	// less-than or equals.
	Strict bool
	// Left hand side of the inequality
	Lhs Expr
	// Right hand side of the inequality
	Rhs Expr
}

// EvalAt implementation for the Expr interface.  Comparing against null
// yields null.
func (p *Inequality) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
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
	if p.Strict {
		return frame.Bool(c < 0), nil
	}
	//
	return frame.Bool(c <= 0), nil
}

// String implementation for the Stringer interface.
func (p *Inequality) String() string {
	if p.Strict {
		return fmt.Sprintf("%s < %s", p.Lhs, p.Rhs)
	}
	//
	return fmt.Sprintf("%s <= %s", p.Lhs, p.Rhs)
}
