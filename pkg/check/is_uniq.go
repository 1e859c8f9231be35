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
	"fmt"
	"strings"

	"github.com/checkframe/go-checkframe/pkg/frame"
)

// UniqueCheck is the value object behind IsUniq: an ordered list of column
// names checked jointly as one composite key.  Keeping this explicit (rather
// than a hidden closure capture) makes construction-time validation
// separately testable from apply-time behaviour.
type UniqueCheck struct {
	columns []string
}

// NewUniqueCheck constructs a uniqueness check over one or more columns.
// Giving no columns is a programmer error and panics with a *UsageError;
// this fires at construction time, before any frame is seen.
func NewUniqueCheck(columns ...string) *UniqueCheck {
	if len(columns) == 0 {
		panic(&UsageError{"is_uniq requires at least one column"})
	}
	//
	return &UniqueCheck{columns}
}

// Columns returns the columns checked jointly by this check, in order.
func (p *UniqueCheck) Columns() []string {
	return p.columns
}

// Apply checks the frame for duplicate keys, returning it unchanged when all
// keys are unique and a *CheckError tagged "is_uniq" otherwise.  The error
// message reports the exact duplicate count together with the columns
// checked.  Lazy frames are collected first; an empty frame always passes.
func (p *UniqueCheck) Apply(f frame.Frame) (frame.Frame, error) {
	collected, err := f.Collect()
	if err != nil {
		return nil, err
	}
	//
	n, err := frame.DuplicateCount(collected, p.columns...)
	if err != nil {
		return nil, err
	}
	//
	if n > 0 {
		msg := fmt.Sprintf("is_uniq failed: %d duplicate(s) in %s", n, formatColumns(p.columns))
		return nil, NewCheckError(msg, "is_uniq")
	}
	//
	return f, nil
}

// IsUniq constructs a validator asserting that the given column(s) contain
// no duplicate value combinations.  A single column is checked for repeated
// values; multiple columns are checked as one composite key:
//
//	f, err := check.Apply(f, check.IsUniq("id"))
//	f, err := check.Apply(f, check.IsUniq("city_id", "year"))
//
// Giving no columns panics with a *UsageError.
func IsUniq(columns ...string) Validator {
	return NewUniqueCheck(columns...).Apply
}

// formatColumns renders a column list as ['a', 'b'] for error messages.
func formatColumns(columns []string) string {
	var sb strings.Builder
	//
	sb.WriteString("[")
	//
	for i, c := range columns {
		if i != 0 {
			sb.WriteString(", ")
		}
		//
		fmt.Fprintf(&sb, "'%s'", c)
	}
	//
	sb.WriteString("]")
	//
	return sb.String()
}
