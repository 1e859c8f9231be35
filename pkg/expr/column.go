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

// ColumnAccess represents reading the value of a named column at the current
// row.
type ColumnAccess struct {
	// Name of the column being accessed.
	Name string
}

// Col constructs a column access for the given column name.
func Col(name string) Expr {
	return &ColumnAccess{name}
}

// EvalAt implementation for the Expr interface.
func (p *ColumnAccess) EvalAt(f *frame.ArrayFrame, row int) (frame.Value, error) {
	col, err := f.Column(p.Name)
	//
	if err != nil {
		return frame.Null(), err
	}
	//
	return col.Get(row)
}

// String implementation for the Stringer interface.
func (p *ColumnAccess) String() string {
	return p.Name
}
