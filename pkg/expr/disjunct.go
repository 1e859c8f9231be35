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
	"github.com/checkframe/go-checkframe/pkg/frame"
)

// Disjunct represents the logical OR of zero or more terms.  Observe that if
// there are no terms, then this is equivalent to logical falsehood.
type Disjunct struct {
	// Terms here are disjuncted to formulate the final logical result.
	Args []Expr
}

// Disjunction builds the logical disjunction (i.e. or) for a given set of
// terms.
func Disjunction(terms ...Expr) Expr {
	return &Disjunct{terms}
}

// EvalAt implementation for the Expr interface.  Kleene semantics apply: a
// definite true dominates null, whilst null dominates false.
func (p *Disjunct) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
	unknown := false
	//
	for _, arg := range p.Args {
		val, err := evalBool(arg, f, row)
		//
		if err != nil {
			return frame.Null(), err
		} else if val.IsNull() {
			unknown = true
		} else if b, _ := val.AsBool(); b {
			// Success
			return frame.Bool(true), nil
		}
	}
	//
	if unknown {
		return frame.Null(), nil
	}
	// Failure
	return frame.Bool(false), nil
}

// String implementation for the Stringer interface.
func (p *Disjunct) String() string {
	return joinTerms(p.Args, " or ")
}
