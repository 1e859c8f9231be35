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

import (
	"testing"

	"github.com/checkframe/go-checkframe/pkg/util/assert"
)

func TestDuplicateCount_NoneUnique(t *testing.T) {
	f := NewArrayFrame(NewColumn("id", []Value{Int(1), Int(2), Int(3)}))
	CheckDuplicates(t, f, 0, "id")
}

// Every member of a duplicated group counts, so [1, 1, 2] yields two.
func TestDuplicateCount_SingleColumn(t *testing.T) {
	f := NewArrayFrame(NewColumn("id", []Value{Int(1), Int(1), Int(2)}))
	CheckDuplicates(t, f, 2, "id")
}

func TestDuplicateCount_TripleGroup(t *testing.T) {
	f := NewArrayFrame(NewColumn("id", []Value{Int(1), Int(1), Int(1), Int(2)}))
	CheckDuplicates(t, f, 3, "id")
}

func TestDuplicateCount_EmptyFrame(t *testing.T) {
	f := NewArrayFrame(NewColumn("id", []Value{}))
	CheckDuplicates(t, f, 0, "id")
}

// Columns are checked jointly as one composite key, not independently: the
// key (1, 2020) repeats but (1, 2021) does not.
func TestDuplicateCount_CompositeKey(t *testing.T) {
	f := NewArrayFrame(
		NewColumn("city", []Value{Int(1), Int(1), Int(2)}),
		NewColumn("year", []Value{Int(2020), Int(2020), Int(2021)}),
	)
	CheckDuplicates(t, f, 2, "city", "year")
}

func TestDuplicateCount_CompositeKeyDistinct(t *testing.T) {
	f := NewArrayFrame(
		NewColumn("city", []Value{Int(1), Int(1), Int(2)}),
		NewColumn("year", []Value{Int(2020), Int(2021), Int(2020)}),
	)
	CheckDuplicates(t, f, 0, "city", "year")
}

// Two nulls in the same column are treated as matching.
func TestDuplicateCount_NullsMatch(t *testing.T) {
	f := NewArrayFrame(NewColumn("id", []Value{Null(), Null(), Int(1)}))
	CheckDuplicates(t, f, 2, "id")
}

// Cells of different kinds never collide, even when their textual forms
// would (e.g. the string "1" versus the integer 1).
func TestDuplicateCount_KindsDistinct(t *testing.T) {
	f := NewArrayFrame(NewColumn("id", []Value{Int(1), Str("1")}))
	CheckDuplicates(t, f, 0, "id")
}

// Adjacent string cells must not run together into one apparent key.
func TestDuplicateCount_NoKeyAliasing(t *testing.T) {
	f := NewArrayFrame(
		NewColumn("a", []Value{Str("ab"), Str("a")}),
		NewColumn("b", []Value{Str("c"), Str("bc")}),
	)
	CheckDuplicates(t, f, 0, "a", "b")
}

func TestDuplicateCount_UnknownColumn(t *testing.T) {
	f := NewArrayFrame(NewColumn("id", []Value{Int(1)}))
	//
	_, err := DuplicateCount(f, "nope")
	assert.ErrorContains(t, err, "unknown column nope")
}

// ===================================================================

func CheckDuplicates(t *testing.T, f *ArrayFrame, expected uint, columns ...string) {
	t.Helper()
	//
	n, err := DuplicateCount(f, columns...)
	assert.NoError(t, err)
	assert.Equal(t, expected, n)
}
