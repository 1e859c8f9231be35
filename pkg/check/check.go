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

// Package check provides inline validation for tabular frames.  A check is
// built once and applied per-frame: on success the identical frame passes
// through unchanged, on failure a CheckError describes exactly what was
// violated.  Checks are stateless and hold no shared mutable state, so the
// same validator may be applied to different frames concurrently.
//
// The two entry points are Verify, which accepts either a declarative
// condition or a named predicate, and IsUniq, which asserts that one or more
// columns jointly contain no duplicate keys:
//
//	f, err := check.Apply(f,
//	    check.IsUniq("city_id", "year"),
//	    check.Verify(expr.GreaterThan(expr.Col("price"), expr.Lit(0))),
//	)
//
// The package performs no logging, retries or local recovery; every failure
// propagates to the caller.
package check

import (
	"github.com/checkframe/go-checkframe/pkg/frame"
)

// Validator is a unary frame-to-frame check.  A validator returns the
// identical frame it was given when the check passes, and a *CheckError when
// the data violates the check.  Any other error is an engine failure
// propagated opaquely (e.g. an unknown column, or a failing lazy collect).
type Validator func(frame.Frame) (frame.Frame, error)

// Apply threads a frame through a sequence of validators, stopping at the
// first failure.  This gives the pipe/chain style of use:
//
//	f, err := check.Apply(f, check.IsUniq("id"), check.Verify(cond))
func Apply(f frame.Frame, validators ...Validator) (frame.Frame, error) {
	var err error
	//
	for _, v := range validators {
		if f, err = v(f); err != nil {
			return nil, err
		}
	}
	//
	return f, nil
}
