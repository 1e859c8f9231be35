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

	"github.com/checkframe/go-checkframe/pkg/check"
	"github.com/checkframe/go-checkframe/pkg/expr"
	"github.com/spf13/viper"
)

// OnFailError indicates a failing check terminates the run, whilst
// OnFailWarn merely logs it.
const (
	OnFailError = "error"
	OnFailWarn  = "warn"
)

// Suite is a set of checks loaded from a suite file, to be applied in order
// against one frame.
type Suite struct {
	Version string       `mapstructure:"version"`
	Checks  []SuiteCheck `mapstructure:"checks"`
}

// SuiteCheck is one check within a suite file.  Kind selects the check:
// "unique" asserts no duplicate keys across Columns, whilst "require"
// asserts Condition holds on every row.
type SuiteCheck struct {
	ID          string   `mapstructure:"id"`
	Description string   `mapstructure:"description"`
	Kind        string   `mapstructure:"kind"`
	Columns     []string `mapstructure:"columns"`
	Condition   string   `mapstructure:"condition"`
	OnFail      string   `mapstructure:"on_fail"`
}

// LoadSuite reads a check suite from a YAML (or TOML/JSON) suite file.
func LoadSuite(path string) (*Suite, error) {
	var suite Suite
	//
	v := viper.New()
	v.SetConfigFile(path)
	//
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	//
	if err := v.Unmarshal(&suite); err != nil {
		return nil, fmt.Errorf("malformed suite: %w", err)
	}
	// Sanity check each entry before any data is touched.
	for i := range suite.Checks {
		if err := suite.Checks[i].finalise(); err != nil {
			return nil, err
		}
	}
	//
	return &suite, nil
}

// Validator builds the validator described by this suite entry.
func (p *SuiteCheck) Validator() (check.Validator, error) {
	switch p.Kind {
	case "unique":
		return check.IsUniq(p.Columns...), nil
	case "require":
		cond, err := expr.Parse(p.Condition)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", p.ID, err)
		}
		//
		return check.Verify(cond), nil
	}
	//
	return nil, fmt.Errorf("check %s: unknown kind %q", p.ID, p.Kind)
}

// finalise applies defaults and rejects malformed entries.
func (p *SuiteCheck) finalise() error {
	if p.OnFail == "" {
		p.OnFail = OnFailError
	}
	//
	if p.OnFail != OnFailError && p.OnFail != OnFailWarn {
		return fmt.Errorf("check %s: unknown on_fail %q", p.ID, p.OnFail)
	}
	//
	if p.Kind == "unique" && len(p.Columns) == 0 {
		return fmt.Errorf("check %s: unique check requires columns", p.ID)
	}
	//
	if p.Kind == "require" && p.Condition == "" {
		return fmt.Errorf("check %s: require check requires a condition", p.ID)
	}
	//
	return nil
}
