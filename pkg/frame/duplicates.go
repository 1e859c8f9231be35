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

import "strings"

// DuplicateCount returns the number of rows in the given frame whose key is
// shared with at least one other row, where the key is the tuple of values
// held in the named columns (composite-key semantics: all named columns are
// checked jointly as one identity, not independently).  Every member of a
// duplicated group counts, so two identical rows yield a count of two.  Nulls
// compare equal to each other for this purpose.  An empty frame always yields
// zero.
func DuplicateCount(f *ArrayFrame, names ...string) (uint, error) {
	var count uint
	// Resolve the key columns up front.
	columns := make([]*Column, len(names))
	//
	for i, name := range names {
		col, err := f.Column(name)
		if err != nil {
			return 0, err
		}
		//
		columns[i] = col
	}
	// Bucket rows by encoded key.
	groups := make(map[string]uint, f.Height())
	//
	for row := 0; row < int(f.Height()); row++ {
		groups[rowKey(columns, row)]++
	}
	//
	for _, n := range groups {
		if n > 1 {
			count += n
		}
	}
	//
	return count, nil
}

// rowKey encodes the key tuple for a given row into a single string.
func rowKey(columns []*Column, row int) string {
	var sb strings.Builder
	//
	for _, col := range columns {
		// In-bounds by construction, hence error impossible.
		v, _ := col.Get(row)
		v.encodeKey(&sb)
	}
	//
	return sb.String()
}
