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

// ArrayFrame provides the eager implementation of Frame which stores columns
// as arrays.  All columns have the same height.
type ArrayFrame struct {
	// Holds the height of every column in the frame
	height uint
	// Holds the columns of this frame, in order
	columns []*Column
}

// EmptyArrayFrame constructs an empty array frame into which column data can
// be added.
func EmptyArrayFrame() *ArrayFrame {
	p := new(ArrayFrame)
	// Initially empty columns
	p.columns = make([]*Column, 0)
	// Initialise height as 0
	p.height = 0
	// done
	return p
}

// NewArrayFrame constructs an array frame from zero or more columns.
func NewArrayFrame(columns ...*Column) *ArrayFrame {
	p := EmptyArrayFrame()
	//
	for _, c := range columns {
		p.AddColumn(c.Name(), c.Data())
	}
	//
	return p
}

// Width returns the number of columns in this frame.
func (p *ArrayFrame) Width() uint {
	return uint(len(p.columns))
}

// Height returns the number of rows in this frame.
func (p *ArrayFrame) Height() uint {
	return p.height
}

// HasColumn checks whether the frame has a given column or not.
func (p *ArrayFrame) HasColumn(name string) bool {
	for _, c := range p.columns {
		if c.name == name {
			return true
		}
	}

	return false
}

// AddColumn adds a new column of data to this frame.  Adding a column which
// already exists, or whose height differs from the columns already present,
// is a programmer error and panics.
func (p *ArrayFrame) AddColumn(name string, data []Value) {
	// Sanity check the column does not already exist.
	if p.HasColumn(name) {
		panic(fmt.Sprintf("column %s already exists", name))
	}
	// Sanity check heights line up.
	if len(p.columns) > 0 && uint(len(data)) != p.height {
		panic(fmt.Sprintf("column %s has height %d, expected %d", name, len(data), p.height))
	}
	// Append it
	p.columns = append(p.columns, &Column{name, data})
	p.height = uint(len(data))
}

// Column looks up a column by name, or returns an error if no such column
// exists in this frame.
func (p *ArrayFrame) Column(name string) (*Column, error) {
	for _, c := range p.columns {
		if c.name == name {
			return c, nil
		}
	}
	// Column does not exist
	return nil, fmt.Errorf("unknown column %s", name)
}

// ColumnIndex returns the index of the column with the given name in this
// frame, or returns false if no such column exists.
func (p *ArrayFrame) ColumnIndex(name string) (uint, bool) {
	for i, c := range p.columns {
		if c.name == name {
			return uint(i), true
		}
	}
	// Column does not exist
	return 0, false
}

// Columns returns the set of columns in this frame, in order.
func (p *ArrayFrame) Columns() []*Column {
	return p.columns
}

// Collect implementation for the Frame interface.  An array frame is already
// materialised, hence this returns the receiver itself.
func (p *ArrayFrame) Collect() (*ArrayFrame, error) {
	return p, nil
}

// Equals checks whether this frame holds exactly the same columns, in the
// same order, with the same data as another frame.
func (p *ArrayFrame) Equals(o *ArrayFrame) bool {
	if p.height != o.height || len(p.columns) != len(o.columns) {
		return false
	}
	//
	for i, c := range p.columns {
		d := o.columns[i]
		//
		if c.name != d.name || len(c.data) != len(d.data) {
			return false
		}
		//
		for j := range c.data {
			if c.data[j] != d.data[j] {
				return false
			}
		}
	}
	//
	return true
}
