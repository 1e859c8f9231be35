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

	"github.com/checkframe/go-checkframe/pkg/expr"
	"github.com/checkframe/go-checkframe/pkg/frame"
)

// Verify is the main entry point for validation.  It accepts either a
// declarative condition over the frame (expr.Expr) or a predicate validator
// (e.g. the output of IsUniq), and returns a validator which checks a frame
// against it:
//
//	f, err := check.Verify(expr.GreaterThan(expr.Col("price"), expr.Lit(0)))(f)
//	f, err := check.Verify(check.IsUniq("id", "date"))(f)
//
// On the condition path, rows for which the condition is definitely false
// are counted (null outcomes pass; see the frame package for the null
// policy) and any failing row yields a *CheckError tagged "verify".  On the
// predicate path the predicate is invoked verbatim and owns its own failure
// signalling.  Construction merely captures the check; handing Verify
// anything else is a programmer error reported by a *UsageError panic when
// the validator is invoked.
func Verify(c any) Validator {
	return func(f frame.Frame) (frame.Frame, error) {
		switch c := c.(type) {
		case expr.Expr:
			return verifyCondition(c, f)
		case Validator:
			return c(f)
		case func(frame.Frame) (frame.Frame, error):
			return c(f)
		default:
			panic(&UsageError{fmt.Sprintf("verify expects a condition or validator, got %T", c)})
		}
	}
}

// verifyCondition evaluates a condition across every row of the frame,
// counting rows where it is definitely false.  Lazy frames are collected
// before counting; the original frame (not the collected one) passes
// through on success.
func verifyCondition(cond expr.Expr, f frame.Frame) (frame.Frame, error) {
	var failed uint
	//
	collected, err := f.Collect()
	if err != nil {
		return nil, err
	}
	//
	for row := 0; row < int(collected.Height()); row++ {
		val, err := cond.EvalAt(collected, row)
		//
		if err != nil {
			return nil, err
		} else if val.IsNull() {
			// Unknown outcomes are not failures.
			continue
		}
		//
		b, ok := val.AsBool()
		if !ok {
			return nil, fmt.Errorf("condition %s must evaluate to boolean, got %s", cond, val.Kind())
		}
		//
		if !b {
			failed++
		}
	}
	//
	if failed > 0 {
		msg := fmt.Sprintf("verify failed: %d row(s) did not satisfy condition", failed)
		return nil, NewCheckError(msg, "verify")
	}
	//
	return f, nil
}
