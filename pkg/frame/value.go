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
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the dynamic type of a Value.
type Kind uint8

// KindNull and friends enumerate the value kinds a cell can hold.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// String implementation for the Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}
	//
	return "unknown"
}

// Value is a dynamically typed, nullable scalar held in a frame cell.
// Comparisons between values follow three-valued logic: any comparison
// involving null yields null, and boolean aggregation skips null.  Duplicate
// detection is the one exception, where two nulls are considered matching
// (this mirrors the behaviour of the engines this library is modelled on,
// rather than reinventing a null policy).
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null constructs the null value.
func Null() Value {
	return Value{}
}

// Bool constructs a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int constructs an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float constructs a floating-point value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Str constructs a string value.
func Str(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the dynamic kind of this value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull checks whether this is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by this value, along with a flag indicating
// whether this value actually is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer held by this value, along with a flag indicating
// whether this value actually is an integer.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns this value as a float64, accepting both integer and
// floating-point kinds.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	//
	return 0, false
}

// AsString returns the string held by this value, along with a flag
// indicating whether this value actually is a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// Compare orders this value against another, returning a negative, zero or
// positive result as for strings.Compare.  Integers and floats compare
// numerically against each other; otherwise both values must have the same
// kind.  Null is not comparable and callers are expected to have applied
// their null policy already.
func (v Value) Compare(w Value) (int, error) {
	if v.kind == KindNull || w.kind == KindNull {
		return 0, fmt.Errorf("cannot compare %s with %s", v.kind, w.kind)
	}
	// Numeric cross-kind comparison
	if lhs, ok := v.AsFloat(); ok {
		if rhs, ok := w.AsFloat(); ok {
			return compareFloats(lhs, rhs), nil
		}
	}
	//
	if v.kind != w.kind {
		return 0, fmt.Errorf("cannot compare %s with %s", v.kind, w.kind)
	}
	//
	switch v.kind {
	case KindBool:
		return compareBools(v.b, w.b), nil
	case KindString:
		return strings.Compare(v.s, w.s), nil
	}
	// unreachable
	return 0, fmt.Errorf("cannot compare %s with %s", v.kind, w.kind)
}

// String implementation for the Stringer interface.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	}
	//
	return "?"
}

// encodeKey appends an unambiguous encoding of this value to the given
// builder, for use as (part of) a composite duplicate-detection key.  String
// payloads are length prefixed so that adjacent cells can never run together.
// Null encodes to a fixed token, hence two nulls produce matching keys.
func (v Value) encodeKey(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("n;")
	case KindBool:
		sb.WriteString("b")
		sb.WriteString(strconv.FormatBool(v.b))
		sb.WriteString(";")
	case KindInt:
		sb.WriteString("i")
		sb.WriteString(strconv.FormatInt(v.i, 10))
		sb.WriteString(";")
	case KindFloat:
		sb.WriteString("f")
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
		sb.WriteString(";")
	case KindString:
		sb.WriteString("s")
		sb.WriteString(strconv.Itoa(len(v.s)))
		sb.WriteString(":")
		sb.WriteString(v.s)
		sb.WriteString(";")
	}
}

func compareFloats(lhs float64, rhs float64) int {
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	}
	//
	return 0
}

func compareBools(lhs bool, rhs bool) int {
	switch {
	case lhs == rhs:
		return 0
	case rhs:
		return -1
	}
	//
	return 1
}
