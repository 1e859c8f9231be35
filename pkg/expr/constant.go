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

// Constant represents a literal value within a condition.
type Constant struct {
	// Value of this constant.
	Value frame.Value
}

// Const constructs a constant term from a frame value.
func Const(value frame.Value) Expr {
	return &Constant{value}
}

// Lit constructs a constant term from a native Go value, which is convenient
// when building conditions in code.  Passing an unsupported type is a
// programmer error and panics.
func Lit(value any) Expr {
	switch v := value.(type) {
	case nil:
		return Const(frame.Null())
	case bool:
		return Const(frame.Bool(v))
	case int:
		return Const(frame.Int(int64(v)))
	case int64:
		return Const(frame.Int(v))
	case float64:
		return Const(frame.Float(v))
	case string:
		return Const(frame.Str(v))
	}
	//
	panic(fmt.Sprintf("unsupported literal type %T", value))
}

// EvalAt implementation for the Expr interface.
func (p *Constant) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
	return p.Value, nil
}

// String implementation for the Stringer interface.
func (p *Constant) String() string {
	if p.Value.Kind() == frame.KindString {
		return fmt.Sprintf("%q", p.Value.String())
	}
	//
	return p.Value.String()
}
