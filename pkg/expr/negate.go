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

// Negation represents the logical negation of a term.
type Negation struct {
	// Arg is the term being negated.
	Arg Expr
}

// Negate constructs the logical negation of a given term.
func Negate(arg Expr) Expr {
	return &Negation{arg}
}

// EvalAt implementation for the Expr interface.  Negating null yields null.
func (p *Negation) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
	val, err := evalBool(p.Arg, f, row)
	//
	if err != nil || val.IsNull() {
		return val, err
	}
	//
	b, _ := val.AsBool()
	//
	return frame.Bool(!b), nil
}

// String implementation for the Stringer interface.
func (p *Negation) String() string {
	return fmt.Sprintf("not %s", p.Arg)
}
