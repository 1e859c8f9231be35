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

// Package sqlutil loads frames out of SQLite databases.
package sqlutil

import (
	"database/sql"
	"fmt"
	"regexp"

	"github.com/checkframe/go-checkframe/pkg/frame"

	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Open opens a SQLite database file.
func Open(path string) (*sql.DB, error) {
	return sql.Open("sqlite", path)
}

// FromTable reads an entire database table into a frame.  The table name is
// validated against a strict identifier pattern since it cannot be passed as
// a query placeholder.
func FromTable(db *sql.DB, table string) (*frame.ArrayFrame, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name: %s", table)
	}
	//
	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %q", table))
	if err != nil {
		return nil, fmt.Errorf("query table: %w", err)
	}
	//
	defer rows.Close()
	//
	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	//
	columns := make([][]frame.Value, len(names))
	//
	for rows.Next() {
		values := make([]any, len(names))
		pointers := make([]any, len(names))
		//
		for i := range values {
			pointers[i] = &values[i]
		}
		//
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		//
		for i, v := range values {
			cell, err := convertCell(v)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", names[i], err)
			}
			//
			columns[i] = append(columns[i], cell)
		}
	}
	//
	if err := rows.Err(); err != nil {
		return nil, err
	}
	//
	f := frame.EmptyArrayFrame()
	//
	for i, name := range names {
		// Ensure empty tables still yield zero-height columns.
		if columns[i] == nil {
			columns[i] = []frame.Value{}
		}
		//
		f.AddColumn(name, columns[i])
	}
	//
	return f, nil
}

// convertCell maps a scanned database value onto a frame value.
func convertCell(v any) (frame.Value, error) {
	switch v := v.(type) {
	case nil:
		return frame.Null(), nil
	case bool:
		return frame.Bool(v), nil
	case int64:
		return frame.Int(v), nil
	case float64:
		return frame.Float(v), nil
	case string:
		return frame.Str(v), nil
	case []byte:
		return frame.Str(string(v)), nil
	}
	//
	return frame.Null(), fmt.Errorf("unsupported cell type %T", v)
}
