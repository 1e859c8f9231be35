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
	"testing"

	"github.com/checkframe/go-checkframe/pkg/frame"
	"github.com/checkframe/go-checkframe/pkg/util/assert"
)

// testFrame holds one row: x=5, y=2, s="abc", n=null, b=true.
func testFrame() *frame.ArrayFrame {
	return frame.NewArrayFrame(
		frame.NewColumn("x", []frame.Value{frame.Int(5)}),
		frame.NewColumn("y", []frame.Value{frame.Int(2)}),
		frame.NewColumn("s", []frame.Value{frame.Str("abc")}),
		frame.NewColumn("n", []frame.Value{frame.Null()}),
		frame.NewColumn("b", []frame.Value{frame.Bool(true)}),
	)
}

func TestEvalConstant(t *testing.T) {
	CheckEval(t, Lit(1), frame.Int(1))
	CheckEval(t, Lit("a"), frame.Str("a"))
	CheckEval(t, Lit(nil), frame.Null())
}

func TestEvalColumn(t *testing.T) {
	CheckEval(t, Col("x"), frame.Int(5))
	CheckEval(t, Col("n"), frame.Null())
}

func TestEvalColumnUnknown(t *testing.T) {
	_, err := Col("nope").EvalAt(testFrame(), 0)
	assert.ErrorContains(t, err, "unknown column nope")
}

func TestEvalEquals(t *testing.T) {
	CheckEval(t, Equals(Col("x"), Lit(5)), frame.Bool(true))
	CheckEval(t, Equals(Col("x"), Lit(2)), frame.Bool(false))
	CheckEval(t, NotEquals(Col("x"), Lit(2)), frame.Bool(true))
	CheckEval(t, Equals(Col("x"), Col("y")), frame.Bool(false))
}

func TestEvalInequalities(t *testing.T) {
	CheckEval(t, LessThan(Col("y"), Col("x")), frame.Bool(true))
	CheckEval(t, LessThan(Col("x"), Col("y")), frame.Bool(false))
	CheckEval(t, LessThanOrEquals(Col("x"), Lit(5)), frame.Bool(true))
	CheckEval(t, GreaterThan(Col("x"), Lit(4)), frame.Bool(true))
	CheckEval(t, GreaterThanOrEquals(Col("x"), Lit(6)), frame.Bool(false))
}

func TestEvalNumericCrossKind(t *testing.T) {
	CheckEval(t, Equals(Col("x"), Lit(5.0)), frame.Bool(true))
	CheckEval(t, LessThan(Col("y"), Lit(2.5)), frame.Bool(true))
}

// Any comparison against null yields null.
func TestEvalNullComparisons(t *testing.T) {
	CheckEval(t, Equals(Col("n"), Lit(1)), frame.Null())
	CheckEval(t, LessThan(Col("n"), Lit(1)), frame.Null())
	CheckEval(t, GreaterThan(Col("n"), Lit(1)), frame.Null())
}

func TestEvalConjunction(t *testing.T) {
	tt := Equals(Col("x"), Lit(5))
	ff := Equals(Col("x"), Lit(0))
	nn := Equals(Col("n"), Lit(0))
	//
	CheckEval(t, Conjunction(tt, tt), frame.Bool(true))
	CheckEval(t, Conjunction(tt, ff), frame.Bool(false))
	// False dominates null; null dominates true.
	CheckEval(t, Conjunction(ff, nn), frame.Bool(false))
	CheckEval(t, Conjunction(tt, nn), frame.Null())
	// Empty conjunction is truth.
	CheckEval(t, Conjunction(), frame.Bool(true))
}

func TestEvalDisjunction(t *testing.T) {
	tt := Equals(Col("x"), Lit(5))
	ff := Equals(Col("x"), Lit(0))
	nn := Equals(Col("n"), Lit(0))
	//
	CheckEval(t, Disjunction(ff, tt), frame.Bool(true))
	CheckEval(t, Disjunction(ff, ff), frame.Bool(false))
	// True dominates null; null dominates false.
	CheckEval(t, Disjunction(tt, nn), frame.Bool(true))
	CheckEval(t, Disjunction(ff, nn), frame.Null())
	// Empty disjunction is falsehood.
	CheckEval(t, Disjunction(), frame.Bool(false))
}

func TestEvalNegation(t *testing.T) {
	CheckEval(t, Negate(Equals(Col("x"), Lit(5))), frame.Bool(false))
	CheckEval(t, Negate(Equals(Col("x"), Lit(0))), frame.Bool(true))
	// Negating null yields null.
	CheckEval(t, Negate(Equals(Col("n"), Lit(0))), frame.Null())
}

func TestEvalNegationNonBoolean(t *testing.T) {
	_, err := Negate(Col("x")).EvalAt(testFrame(), 0)
	assert.ErrorContains(t, err, "expected boolean")
}

func TestEvalMembership(t *testing.T) {
	CheckEval(t, In(Col("s"), frame.Str("abc"), frame.Str("xyz")), frame.Bool(true))
	CheckEval(t, In(Col("s"), frame.Str("xyz")), frame.Bool(false))
	// Null subject yields null; mismatched element kinds never match.
	CheckEval(t, In(Col("n"), frame.Int(1)), frame.Null())
	CheckEval(t, In(Col("x"), frame.Str("5")), frame.Bool(false))
}

func TestEvalBetween(t *testing.T) {
	CheckEval(t, Between(Col("x"), Lit(0), Lit(10)), frame.Bool(true))
	// Bounds are inclusive.
	CheckEval(t, Between(Col("x"), Lit(5), Lit(5)), frame.Bool(true))
	CheckEval(t, Between(Col("x"), Lit(6), Lit(10)), frame.Bool(false))
	CheckEval(t, Between(Col("n"), Lit(0), Lit(10)), frame.Null())
}

func TestEvalNullTests(t *testing.T) {
	CheckEval(t, IsNull(Col("n")), frame.Bool(true))
	CheckEval(t, IsNull(Col("x")), frame.Bool(false))
	CheckEval(t, IsNotNull(Col("x")), frame.Bool(true))
	CheckEval(t, IsNotNull(Col("n")), frame.Bool(false))
}

func TestEvalLenChars(t *testing.T) {
	CheckEval(t, LenChars(Col("s")), frame.Int(3))
	CheckEval(t, LenChars(Lit("héllo")), frame.Int(5))
	CheckEval(t, LenChars(Col("n")), frame.Null())
}

func TestEvalLenCharsNonString(t *testing.T) {
	_, err := LenChars(Col("x")).EvalAt(testFrame(), 0)
	assert.ErrorContains(t, err, "expects a string")
}

func TestEvalMismatchedKinds(t *testing.T) {
	_, err := LessThan(Col("s"), Lit(1)).EvalAt(testFrame(), 0)
	assert.ErrorContains(t, err, "cannot compare")
}

func TestExprStrings(t *testing.T) {
	assert.Equal(t, "0 < x", LessThan(Lit(0), Col("x")).String())
	assert.Equal(t, "x == \"a\"", Equals(Col("x"), Lit("a")).String())
	assert.Equal(t, "(x == 1 and y == 2)",
		Conjunction(Equals(Col("x"), Lit(1)), Equals(Col("y"), Lit(2))).String())
	assert.Equal(t, "n is not null", IsNotNull(Col("n")).String())
}

// ===================================================================

func CheckEval(t *testing.T, e Expr, expected frame.Value) {
	t.Helper()
	//
	actual, err := e.EvalAt(testFrame(), 0)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
}
