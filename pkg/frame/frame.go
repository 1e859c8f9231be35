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

// Package frame provides the tabular engine underpinning checkframe: a set of
// named data columns with an eager representation (ArrayFrame) and a lazy,
// deferred representation (LazyFrame).  Both are treated polymorphically via
// the Frame interface; any operation which needs to inspect row data must
// first force evaluation through Collect.
package frame

// Frame describes a tabular value in either representation.  An ArrayFrame
// collects to itself; a LazyFrame runs its deferred plan.  Collecting never
// mutates the receiver.
type Frame interface {
	// Collect forces evaluation of this frame, materialising it into its
	// eager form.  This is a potentially expensive, blocking operation;
	// errors arising from deferred operations surface here.
	Collect() (*ArrayFrame, error)
}
