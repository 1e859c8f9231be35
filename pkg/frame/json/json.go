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

// Package json provides a reader for frames expressed in JSON notation.
package json

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/checkframe/go-checkframe/pkg/frame"
	"github.com/segmentio/encoding/json"
)

// FromBytes parses a frame expressed in JSON notation.  For example, {"X":
// [0], "Y": [1]} is a frame containing one row of data each for two columns
// "X" and "Y".  All columns must have the same number of rows; JSON null
// denotes the null value.  Since JSON objects are unordered, columns are
// arranged alphabetically by name.
func FromBytes(data []byte) (*frame.ArrayFrame, error) {
	var rawData map[string][]any
	// Attempt to unmarshal, preserving numeric precision.
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	//
	if err := decoder.Decode(&rawData); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}
	// Impose a deterministic column order.
	names := make([]string, 0, len(rawData))
	for name := range rawData {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	f := frame.EmptyArrayFrame()
	//
	for _, name := range names {
		col, err := convertColumn(name, rawData[name])
		if err != nil {
			return nil, err
		}
		//
		if f.Width() > 0 && uint(len(col)) != f.Height() {
			return nil, fmt.Errorf("column %s has %d row(s), expected %d", name, len(col), f.Height())
		}
		//
		f.AddColumn(name, col)
	}
	//
	return f, nil
}

// convertColumn maps decoded JSON cells onto frame values.
func convertColumn(name string, raw []any) ([]frame.Value, error) {
	data := make([]frame.Value, len(raw))
	//
	for i, cell := range raw {
		switch cell := cell.(type) {
		case nil:
			data[i] = frame.Null()
		case bool:
			data[i] = frame.Bool(cell)
		case string:
			data[i] = frame.Str(cell)
		case json.Number:
			data[i] = convertNumber(cell)
		default:
			return nil, fmt.Errorf("column %s: unsupported cell %v (row %d)", name, cell, i)
		}
	}
	//
	return data, nil
}

// convertNumber maps a JSON number onto an integer value where it round
// trips exactly, and a float otherwise.
func convertNumber(n json.Number) frame.Value {
	if i, err := n.Int64(); err == nil {
		return frame.Int(i)
	}
	//
	f, err := n.Float64()
	if err != nil {
		// Out-of-range literal; retain textual form.
		return frame.Str(n.String())
	}
	//
	return frame.Float(f)
}

// ToBytes renders a frame in the JSON notation accepted by FromBytes, which
// is primarily useful for round-tripping in tests and tooling.
func ToBytes(f *frame.ArrayFrame) ([]byte, error) {
	var buf bytes.Buffer
	//
	buf.WriteString("{")
	//
	for i, col := range f.Columns() {
		if i != 0 {
			buf.WriteString(", ")
		}
		//
		fmt.Fprintf(&buf, "%s: [", strconv.Quote(col.Name()))
		//
		for j, v := range col.Data() {
			if j != 0 {
				buf.WriteString(", ")
			}
			//
			cell, err := marshalValue(v)
			if err != nil {
				return nil, err
			}
			//
			buf.Write(cell)
		}
		//
		buf.WriteString("]")
	}
	//
	buf.WriteString("}")
	//
	return buf.Bytes(), nil
}

func marshalValue(v frame.Value) ([]byte, error) {
	if v.IsNull() {
		return []byte("null"), nil
	}
	//
	if s, ok := v.AsString(); ok {
		return json.Marshal(s)
	}
	//
	return []byte(v.String()), nil
}
