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
package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/checkframe/go-checkframe/pkg/frame"
	"github.com/checkframe/go-checkframe/pkg/frame/csvutil"
	"github.com/checkframe/go-checkframe/pkg/frame/json"
	"github.com/checkframe/go-checkframe/pkg/frame/sqlutil"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected boolean flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panics if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringSlice gets an expected string-slice flag, or panics if an error
// arises.
func GetStringSlice(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned-integer flag, or panics if an error
// arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readFrameFile parses a frame file using a parser based on the extension of
// the filename.
func readFrameFile(filename string) *frame.ArrayFrame {
	var (
		f   *frame.ArrayFrame
		err error
	)
	//
	bytes, err := os.ReadFile(filename)
	if err == nil {
		// Check file extension
		ext := path.Ext(filename)
		//
		switch ext {
		case ".json":
			f, err = json.FromBytes(bytes)
		case ".csv":
			f, err = csvutil.FromBytes(bytes)
		default:
			err = fmt.Errorf("unknown frame file format: %s", ext)
		}
	}
	// Handle error
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return f
}

// readFrameTable loads a frame out of a table held in a SQLite database.
func readFrameTable(database string, table string) *frame.ArrayFrame {
	db, err := sqlutil.Open(database)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer db.Close()
	//
	f, err := sqlutil.FromTable(db, table)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return f
}
