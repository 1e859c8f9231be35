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
	"unicode/utf8"

	"github.com/checkframe/go-checkframe/pkg/frame"
)

// StrLength represents the length, in characters, of a string term.
type StrLength struct {
	// Arg is the string term being measured.
	Arg Expr
}

// LenChars constructs a term giving the character count of a string term.
func LenChars(arg Expr) Expr {
	return &StrLength{arg}
}

// EvalAt implementation for the Expr interface.  The length of null is null.
func (p *StrLength) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
	val, err := p.Arg.EvalAt(f, row)
	//
	if err != nil {
		return frame.Null(), err
	} else if val.IsNull() {
		return frame.Null(), nil
	}
	//
	s, ok := val.AsString()
	if !ok {
		return frame.Null(), fmt.Errorf("len_chars expects a string, got %s (in %s)", val.Kind(), p)
	}
	//
	return frame.Int(int64(utf8.RuneCountInString(s))), nil
}

// String implementation for the Stringer interface.
func (p *StrLength) String() string {
	return fmt.Sprintf("len_chars(%s)", p.Arg)
}
