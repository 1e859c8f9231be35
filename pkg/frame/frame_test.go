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

func TestArrayFrame_Empty(t *testing.T) {
	f := EmptyArrayFrame()
	assert.Equal(t, uint(0), f.Width())
	assert.Equal(t, uint(0), f.Height())
}

func TestArrayFrame_AddColumn(t *testing.T) {
	f := EmptyArrayFrame()
	f.AddColumn("x", []Value{Int(1), Int(2)})
	//
	assert.Equal(t, uint(1), f.Width())
	assert.Equal(t, uint(2), f.Height())
	assert.True(t, f.HasColumn("x"))
	assert.False(t, f.HasColumn("y"))
}

func TestArrayFrame_ColumnLookup(t *testing.T) {
	f := NewArrayFrame(NewColumn("x", []Value{Int(1)}), NewColumn("y", []Value{Int(2)}))
	//
	col, err := f.Column("y")
	assert.NoError(t, err)
	assert.Equal(t, "y", col.Name())
	//
	v, err := col.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, Int(2), v)
	//
	i, ok := f.ColumnIndex("y")
	assert.True(t, ok)
	assert.Equal(t, uint(1), i)
}

func TestArrayFrame_UnknownColumn(t *testing.T) {
	f := NewArrayFrame(NewColumn("x", []Value{Int(1)}))
	//
	_, err := f.Column("y")
	assert.ErrorContains(t, err, "unknown column y")
}

func TestArrayFrame_RowOutOfBounds(t *testing.T) {
	col := NewColumn("x", []Value{Int(1)})
	//
	_, err := col.Get(1)
	assert.ErrorContains(t, err, "out-of-bounds")
	//
	_, err = col.Get(-1)
	assert.ErrorContains(t, err, "out-of-bounds")
}

func TestArrayFrame_DuplicateColumnPanics(t *testing.T) {
	f := NewArrayFrame(NewColumn("x", []Value{Int(1)}))
	//
	assert.Panics(t, func() {
		f.AddColumn("x", []Value{Int(2)})
	})
}

func TestArrayFrame_RaggedColumnPanics(t *testing.T) {
	f := NewArrayFrame(NewColumn("x", []Value{Int(1), Int(2)}))
	//
	assert.Panics(t, func() {
		f.AddColumn("y", []Value{Int(1)})
	})
}

func TestArrayFrame_CollectIsIdentity(t *testing.T) {
	f := NewArrayFrame(NewColumn("x", []Value{Int(1)}))
	//
	collected, err := f.Collect()
	assert.NoError(t, err)
	//
	if collected != f {
		t.Errorf("expected identical frame back")
	}
}

func TestArrayFrame_Equals(t *testing.T) {
	f := NewArrayFrame(NewColumn("x", []Value{Int(1), Null()}))
	g := NewArrayFrame(NewColumn("x", []Value{Int(1), Null()}))
	h := NewArrayFrame(NewColumn("x", []Value{Int(1), Int(2)}))
	//
	assert.True(t, f.Equals(g))
	assert.False(t, f.Equals(h))
}

func TestLazyFrame_CollectSource(t *testing.T) {
	f := NewArrayFrame(NewColumn("x", []Value{Int(1), Int(2)}))
	//
	collected, err := Lazy(f).Collect()
	assert.NoError(t, err)
	assert.True(t, collected.Equals(f))
}

func TestLazyFrame_DeferredSelect(t *testing.T) {
	f := NewArrayFrame(
		NewColumn("x", []Value{Int(1)}),
		NewColumn("y", []Value{Int(2)}),
	)
	//
	lf := Lazy(f).Select("y")
	// Source untouched until collect.
	assert.Equal(t, uint(2), f.Width())
	//
	collected, err := lf.Collect()
	assert.NoError(t, err)
	assert.Equal(t, uint(1), collected.Width())
	assert.True(t, collected.HasColumn("y"))
}

func TestLazyFrame_SelectUnknownColumn(t *testing.T) {
	f := NewArrayFrame(NewColumn("x", []Value{Int(1)}))
	//
	_, err := Lazy(f).Select("y").Collect()
	assert.ErrorContains(t, err, "unknown column y")
}

// Queueing an operation must not affect the lazy frame it was queued on.
func TestLazyFrame_MapIsImmutable(t *testing.T) {
	f := NewArrayFrame(
		NewColumn("x", []Value{Int(1)}),
		NewColumn("y", []Value{Int(2)}),
	)
	//
	lf := Lazy(f)
	_ = lf.Select("y")
	//
	collected, err := lf.Collect()
	assert.NoError(t, err)
	assert.Equal(t, uint(2), collected.Width())
}

func TestValue_Kinds(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.False(t, Int(0).IsNull())
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.Equal(t, KindInt, Int(1).Kind())
	assert.Equal(t, KindFloat, Float(1.5).Kind())
	assert.Equal(t, KindString, Str("a").Kind())
}

func TestValue_CompareNumeric(t *testing.T) {
	CheckCompare(t, Int(1), Int(2), -1)
	CheckCompare(t, Int(2), Int(2), 0)
	CheckCompare(t, Float(2.5), Int(2), 1)
	CheckCompare(t, Int(2), Float(2.0), 0)
}

func TestValue_CompareStrings(t *testing.T) {
	CheckCompare(t, Str("a"), Str("b"), -1)
	CheckCompare(t, Str("b"), Str("b"), 0)
}

func TestValue_CompareMismatch(t *testing.T) {
	_, err := Str("a").Compare(Int(1))
	assert.ErrorContains(t, err, "cannot compare")
	//
	_, err = Null().Compare(Int(1))
	assert.ErrorContains(t, err, "cannot compare")
}

// ===================================================================

func CheckCompare(t *testing.T, lhs Value, rhs Value, expected int) {
	t.Helper()
	//
	c, err := lhs.Compare(rhs)
	assert.NoError(t, err)
	assert.Equal(t, expected, c)
}
