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

// CheckError signals that a data validation check failed.  It is the single
// error kind produced by every check in this package, so callers can match
// one type and branch on CheckName when they need to know which rule failed.
// A CheckError is never mutated after construction.
type CheckError struct {
	// Message is the human-readable description of the failure, including
	// the exact count of offending rows.
	Message string
	// CheckName identifies the check that failed (e.g. "is_uniq",
	// "verify").
	CheckName string
}

// NewCheckError constructs a check error with the given message, tagged with
// the name of the originating check.
func NewCheckError(message string, checkName string) *CheckError {
	return &CheckError{message, checkName}
}

// Error implementation for the error interface.
func (p *CheckError) Error() string {
	return p.Message
}

// UsageError signals programmer misuse of this package (e.g. constructing
// IsUniq with no columns, or handing Verify something which is neither a
// condition nor a validator).  Usage errors indicate a bug at the call site
// rather than a data defect, and are therefore delivered by panic at the
// point of misuse rather than returned.
type UsageError struct {
	// Message describing the misuse.
	Message string
}

// Error implementation for the error interface.
func (p *UsageError) Error() string {
	return p.Message
}
