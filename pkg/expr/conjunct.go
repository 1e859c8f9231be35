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

// Conjunct represents the logical AND of zero or more terms.  Observe that if
// there are no terms, then this is equivalent to logical truth.
type Conjunct struct {
	// Terms here are conjuncted to formulate the final logical result.
	Args []Expr
}

// Conjunction builds the logical conjunction (i.e. and) for a given set of
// terms.
func Conjunction(terms ...Expr) Expr {
	return &Conjunct{terms}
}

// EvalAt implementation for the Expr interface.  Kleene semantics apply: a
// definite false dominates null, whilst null dominates true.
func (p *Conjunct) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
	unknown := false
	//
	for _, arg := range p.Args {
		val, err := evalBool(arg, f, row)
		//
		if err != nil {
			return frame.Null(), err
		} else if val.IsNull() {
			unknown = true
		} else if b, _ := val.AsBool(); !b {
			// Failure
			return frame.Bool(false), nil
		}
	}
	//
	if unknown {
		return frame.Null(), nil
	}
	// Success
	return frame.Bool(true), nil
}

// String implementation for the Stringer interface.
func (p *Conjunct) String() string {
	return joinTerms(p.Args, " and ")
}

// joinTerms renders a set of terms separated by a given connective.
func joinTerms(terms []Expr, sep string) string {
	var sb strings.Builder
	//
	sb.WriteString("(")
	//
	for i, t := range terms {
		if i != 0 {
			sb.WriteString(sep)
		}
		//
		sb.WriteString(t.String())
	}
	//
	sb.WriteString(")")
	//
	return sb.String()
}
