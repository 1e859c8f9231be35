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
	"strings"

	"github.com/checkframe/go-checkframe/pkg/frame"
)

// Member represents a set membership test, e.g. "status in ('A', 'B')".
type Member struct {
	// Arg is the term whose value is tested for membership.
	Arg Expr
	// Elements of the set being tested against.
	Elements []frame.Value
}

// In constructs a membership test of a given term against a set of values.
func In(arg Expr, elements ...frame.Value) Expr {
	return &Member{arg, elements}
}

// EvalAt implementation for the Expr interface.  A null subject yields null;
// elements of an incompatible kind simply never match.
func (p *Member) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
	val, err := p.Arg.EvalAt(f, row)
	//
	if err != nil {
		return frame.Null(), err
	} else if val.IsNull() {
		return frame.Null(), nil
	}
	//
	for _, e := range p.Elements {
		if e.IsNull() {
			continue
		}
		//
		if c, err := val.Compare(e); err == nil && c == 0 {
			return frame.Bool(true), nil
		}
	}
	//
	return frame.Bool(false), nil
}

// String implementation for the Stringer interface.
func (p *Member) String() string {
	var sb strings.Builder
	//
	sb.WriteString(p.Arg.String())
	sb.WriteString(" in (")
	//
	for i, e := range p.Elements {
		if i != 0 {
			sb.WriteString(", ")
		}
		//
		sb.WriteString(e.String())
	}
	//
	sb.WriteString(")")
	//
	return sb.String()
}
