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
package termio

import (
	"strings"
	"testing"

	"github.com/checkframe/go-checkframe/pkg/util/assert"
)

func TestTablePrinter(t *testing.T) {
	p := NewTablePrinter(2)
	p.AddRow("id", "name")
	p.AddRow("1", "alice")
	//
	assert.Equal(t, uint(2), p.Height())
	//
	var buf strings.Builder
	//
	p.Print(&buf)
	assert.Equal(t, " id  name\n  1 alice\n", buf.String())
}

func TestTablePrinter_ClipsWideCells(t *testing.T) {
	p := NewTablePrinter(1)
	p.AddRow("abcdef")
	p.SetMaxWidths(4)
	//
	var buf strings.Builder
	//
	p.Print(&buf)
	assert.Equal(t, " ab..\n", buf.String())
}

// A cap below 2 leaves no room for the ".." marker; the cell is cut hard
// rather than the clip going wrong.
func TestTablePrinter_ClipsBelowMarkerWidth(t *testing.T) {
	p := NewTablePrinter(1)
	p.AddRow("abcdef")
	p.SetMaxWidths(1)
	//
	var buf strings.Builder
	//
	p.Print(&buf)
	assert.Equal(t, " a\n", buf.String())
}

func TestTablePrinter_WrongColumnCount(t *testing.T) {
	p := NewTablePrinter(2)
	//
	assert.Panics(t, func() { p.AddRow("only one") })
}
