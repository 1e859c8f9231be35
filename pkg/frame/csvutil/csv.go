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

// Package csvutil provides a reader for frames held in CSV files.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/checkframe/go-checkframe/pkg/frame"
)

// FromBytes parses a frame from CSV data whose first record names the
// columns.  Cell types are sniffed per column: a column whose (non-empty)
// cells all parse as integers becomes an integer column, then floats, then
// booleans, and otherwise strings.  Empty cells denote null.
func FromBytes(data []byte) (*frame.ArrayFrame, error) {
	return FromReader(bytes.NewReader(data))
}

// FromReader parses a frame from CSV data, as for FromBytes.
func FromReader(r io.Reader) (*frame.ArrayFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	//
	if err != nil {
		return nil, fmt.Errorf("malformed csv: %w", err)
	} else if len(records) == 0 {
		return nil, fmt.Errorf("missing csv header")
	}
	//
	header := records[0]
	cells := records[1:]
	f := frame.EmptyArrayFrame()
	//
	for i, name := range header {
		// Headers are data, hence repeated names are an input error.
		if f.HasColumn(name) {
			return nil, fmt.Errorf("duplicate column %s", name)
		}
		//
		raw := make([]string, len(cells))
		//
		for j, record := range cells {
			raw[j] = record[i]
		}
		//
		f.AddColumn(name, sniffColumn(raw))
	}
	//
	return f, nil
}

// sniffColumn converts the raw cells of one column into typed values, using
// the narrowest type which accepts every non-empty cell.
func sniffColumn(raw []string) []frame.Value {
	convert := pickConverter(raw)
	data := make([]frame.Value, len(raw))
	//
	for i, cell := range raw {
		if cell == "" {
			data[i] = frame.Null()
		} else {
			data[i] = convert(cell)
		}
	}
	//
	return data
}

func pickConverter(raw []string) func(string) frame.Value {
	var (
		ints   = true
		floats = true
		bools  = true
	)
	//
	for _, cell := range raw {
		if cell == "" {
			continue
		}
		//
		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			ints = false
		}
		//
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			floats = false
		}
		//
		if cell != "true" && cell != "false" {
			bools = false
		}
	}
	//
	switch {
	case ints:
		return func(cell string) frame.Value {
			i, _ := strconv.ParseInt(cell, 10, 64)
			return frame.Int(i)
		}
	case floats:
		return func(cell string) frame.Value {
			f, _ := strconv.ParseFloat(cell, 64)
			return frame.Float(f)
		}
	case bools:
		return func(cell string) frame.Value {
			return frame.Bool(cell == "true")
		}
	}
	//
	return frame.Str
}
