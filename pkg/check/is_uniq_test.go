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
package check

import (
	"errors"
	"testing"

	"github.com/checkframe/go-checkframe/pkg/expr"
	"github.com/checkframe/go-checkframe/pkg/frame"
	"github.com/checkframe/go-checkframe/pkg/util/assert"
)

func TestIsUniq_SingleColumnUniquePasses(t *testing.T) {
	f := intFrame("id", 1, 2, 3)
	out, err := Verify(IsUniq("id"))(f)
	//
	assert.NoError(t, err)
	CheckIdentical(t, f, out)
}

func TestIsUniq_CompositeKeyUniquePasses(t *testing.T) {
	f := frame.NewArrayFrame(
		frame.NewColumn("city_id", intValues(1, 1, 2)),
		frame.NewColumn("year", intValues(2020, 2021, 2020)),
	)
	out, err := Verify(IsUniq("city_id", "year"))(f)
	//
	assert.NoError(t, err)
	CheckIdentical(t, f, out)
}

func TestIsUniq_EmptyFramePasses(t *testing.T) {
	f := intFrame("id")
	out, err := Verify(IsUniq("id"))(f)
	//
	assert.NoError(t, err)
	CheckIdentical(t, f, out)
}

func TestIsUniq_SingleColumnDuplicatesFail(t *testing.T) {
	f := intFrame("id", 1, 1, 2)
	_, err := Verify(IsUniq("id"))(f)
	//
	assert.ErrorContains(t, err, "2 duplicate")
}

func TestIsUniq_CompositeKeyDuplicatesFail(t *testing.T) {
	f := frame.NewArrayFrame(
		frame.NewColumn("city_id", intValues(1, 1, 2)),
		frame.NewColumn("year", intValues(2020, 2020, 2021)),
	)
	_, err := Verify(IsUniq("city_id", "year"))(f)
	//
	assert.ErrorContains(t, err, "2 duplicate")
}

func TestIsUniq_CheckName(t *testing.T) {
	var checkErr *CheckError
	//
	f := intFrame("id", 1, 1)
	_, err := Verify(IsUniq("id"))(f)
	//
	assert.True(t, errors.As(err, &checkErr))
	assert.Equal(t, "is_uniq", checkErr.CheckName)
}

func TestIsUniq_MessageListsColumns(t *testing.T) {
	f := frame.NewArrayFrame(
		frame.NewColumn("a", intValues(1, 1)),
		frame.NewColumn("b", intValues(2, 2)),
	)
	_, err := Verify(IsUniq("a", "b"))(f)
	//
	assert.ErrorContains(t, err, "['a', 'b']")
}

// Constructing IsUniq with no columns fails fast, before any frame is seen.
func TestIsUniq_NoColumnsIsUsageError(t *testing.T) {
	recovered := assert.Panics(t, func() {
		IsUniq()
	})
	//
	usageErr, ok := recovered.(*UsageError)
	assert.True(t, ok)
	assert.ErrorContains(t, usageErr, "at least one column")
}

func TestIsUniq_UnknownColumnPropagates(t *testing.T) {
	f := intFrame("id", 1, 2)
	_, err := Verify(IsUniq("nope"))(f)
	//
	assert.ErrorContains(t, err, "unknown column")
}

func TestIsUniq_LazyReturnsLazy(t *testing.T) {
	lf := frame.Lazy(intFrame("id", 1, 2, 3))
	out, err := Verify(IsUniq("id"))(lf)
	//
	assert.NoError(t, err)
	//
	_, ok := out.(*frame.LazyFrame)
	assert.True(t, ok)
}

func TestIsUniq_LazyMatchesEager(t *testing.T) {
	f := intFrame("id", 1, 1, 2)
	//
	_, eagerErr := Verify(IsUniq("id"))(f)
	_, lazyErr := Verify(IsUniq("id"))(frame.Lazy(f))
	//
	assert.ErrorContains(t, eagerErr, "2 duplicate")
	assert.Equal(t, eagerErr.Error(), lazyErr.Error())
}

func TestIsUniq_ChainingWithOtherChecks(t *testing.T) {
	f := frame.NewArrayFrame(
		frame.NewColumn("id", intValues(1, 2, 3)),
		frame.NewColumn("val", intValues(10, 20, 30)),
	)
	out, err := Apply(f,
		IsUniq("id"),
		Verify(expr.GreaterThan(expr.Col("val"), expr.Lit(0))),
	)
	//
	assert.NoError(t, err)
	CheckIdentical(t, f, out)
}

func TestUniqueCheck_Columns(t *testing.T) {
	c := NewUniqueCheck("a", "b")
	assert.Equal(t, []string{"a", "b"}, c.Columns())
}
