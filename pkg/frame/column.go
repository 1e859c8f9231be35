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
package frame

import "fmt"

// Column is a named column backed by an array of data values.  Columns are
// fundamental and must be provided as part of the frame; they are never
// mutated once constructed.
type Column struct {
	name string
	data []Value
}

// NewColumn constructs a column with the given name and data.
func NewColumn(name string, data []Value) *Column {
	return &Column{name, data}
}

// Name returns the name of this column.
func (p *Column) Name() string {
	return p.name
}

// Height returns the number of rows in this column.
func (p *Column) Height() uint {
	return uint(len(p.data))
}

// Get reads the value at a given row in this column, or returns an error if
// the row is out-of-bounds.
func (p *Column) Get(row int) (Value, error) {
	if row < 0 || row >= len(p.data) {
		return Null(), fmt.Errorf("column %s: row %d out-of-bounds", p.name, row)
	}
	//
	return p.data[row], nil
}

// Data returns the raw values backing this column.  Callers must not mutate
// the returned slice.
func (p *Column) Data() []Value {
	return p.data
}
