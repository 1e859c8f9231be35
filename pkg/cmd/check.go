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
	"errors"
	"fmt"
	"os"

	"github.com/checkframe/go-checkframe/pkg/check"
	"github.com/checkframe/go-checkframe/pkg/frame"
	"github.com/checkframe/go-checkframe/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] [frame_file]",
	Short: "Check a frame against a set of data-quality rules.",
	Long: `Check a frame against a set of data-quality rules.
	Frames can be given as csv or json files, or read from a
	table in a SQLite database.  Rules come from --unique and
	--require flags, or from a suite file.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		cfg.unique = GetStringSlice(cmd, "unique")
		cfg.require = GetString(cmd, "require")
		cfg.suite = GetString(cmd, "suite")
		cfg.report = GetFlag(cmd, "report")
		cfg.rows = GetUint(cmd, "rows")
		cfg.database = GetString(cmd, "sqlite")
		cfg.table = GetString(cmd, "table")
		// Read frame
		f := readFrame(cmd, args, cfg)
		// Go!
		checkFrame(f, cfg)
	},
}

// check config encapsulates certain parameters to be used when checking
// frames.
type checkConfig struct {
	// Columns forming one composite uniqueness key (empty means no
	// uniqueness check).
	unique []string
	// Condition every row must satisfy (empty means no condition check).
	require string
	// Path to a suite file of checks.
	suite string
	// Specifies whether or not to print a preview of the frame.
	report bool
	// Maximum number of rows shown by the preview.
	rows uint
	// Path of a SQLite database to read the frame from.
	database string
	// Name of the database table to read the frame from.
	table string
}

// readFrame loads the frame named by the command line, either from a frame
// file or from a database table.
func readFrame(cmd *cobra.Command, args []string, cfg checkConfig) *frame.ArrayFrame {
	if cfg.database != "" {
		if cfg.table == "" || len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		return readFrameTable(cfg.database, cfg.table)
	}
	//
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	//
	return readFrameFile(args[0])
}

// checkFrame applies every configured check against the frame, reporting
// outcomes as it goes and exiting with a non-zero status if any erroring
// check failed.
func checkFrame(f *frame.ArrayFrame, cfg checkConfig) {
	failed := false
	//
	for _, c := range buildChecks(cfg) {
		err := applyCheck(f, c)
		//
		var checkErr *check.CheckError
		//
		switch {
		case err == nil:
			log.Debugf("check %s passed", c.ID)
		case errors.As(err, &checkErr) && c.OnFail == OnFailWarn:
			log.Warnf("check %s: %s", c.ID, checkErr.Message)
		case errors.As(err, &checkErr):
			log.Errorf("check %s: %s", c.ID, checkErr.Message)
			//
			failed = true
		default:
			// Engine-level failure (e.g. unknown column).
			log.Errorf("check %s: %s", c.ID, err)
			//
			failed = true
		}
	}
	//
	if cfg.report {
		reportFrame(f, cfg.rows)
	}
	//
	if failed {
		os.Exit(1)
	}
}

// applyCheck builds and runs one suite check, folding construction problems
// into the outcome.
func applyCheck(f *frame.ArrayFrame, c SuiteCheck) error {
	v, err := c.Validator()
	if err != nil {
		return err
	}
	//
	_, err = v(f)
	//
	return err
}

// buildChecks assembles the checks to run from the command-line flags and
// (if given) the suite file.
func buildChecks(cfg checkConfig) []SuiteCheck {
	var checks []SuiteCheck
	//
	if len(cfg.unique) != 0 {
		checks = append(checks, SuiteCheck{
			ID: "unique", Kind: "unique", Columns: cfg.unique, OnFail: OnFailError,
		})
	}
	//
	if cfg.require != "" {
		checks = append(checks, SuiteCheck{
			ID: "require", Kind: "require", Condition: cfg.require, OnFail: OnFailError,
		})
	}
	//
	if cfg.suite != "" {
		suite, err := LoadSuite(cfg.suite)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		checks = append(checks, suite.Checks...)
	}
	//
	if len(checks) == 0 {
		fmt.Println("no checks given (try --unique, --require or --suite)")
		os.Exit(1)
	}
	//
	return checks
}

// reportFrame prints a preview of (at most rows rows of) the frame, clipped
// to the width of the attached terminal.
func reportFrame(f *frame.ArrayFrame, rows uint) {
	tbl := termio.NewTablePrinter(f.Width())
	// Header row
	names := make([]string, f.Width())
	for i, col := range f.Columns() {
		names[i] = col.Name()
	}
	//
	tbl.AddRow(names...)
	//
	for row := 0; row < int(f.Height()) && row < int(rows); row++ {
		cells := make([]string, f.Width())
		//
		for i, col := range f.Columns() {
			v, _ := col.Get(row)
			cells[i] = v.String()
		}
		//
		tbl.AddRow(cells...)
	}
	// Clip columns so the table fits the terminal.
	tbl.SetMaxWidths(termio.TerminalWidth() / max(1, f.Width()))
	tbl.Print(os.Stdout)
	//
	if f.Height() > rows {
		fmt.Printf(" ... (%d more rows)\n", f.Height()-rows)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringSlice("unique", nil, "columns forming one composite uniqueness key")
	checkCmd.Flags().String("require", "", "condition every row must satisfy")
	checkCmd.Flags().String("suite", "", "suite file of checks to apply")
	checkCmd.Flags().Bool("report", false, "print a preview of the frame")
	checkCmd.Flags().Uint("rows", 10, "maximum number of rows shown by --report")
	checkCmd.Flags().String("sqlite", "", "read the frame from this SQLite database")
	checkCmd.Flags().String("table", "", "database table to read the frame from")
}
