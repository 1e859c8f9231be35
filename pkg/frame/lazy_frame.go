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
package frame

// Op is a deferred transformation over a materialised frame, as queued by a
// LazyFrame.  Operations must treat their input as read-only.
type Op func(*ArrayFrame) (*ArrayFrame, error)

// LazyFrame provides the lazy implementation of Frame: a source frame
// together with a queue of deferred operations which are only run when the
// frame is collected.  Lazy frames are immutable; queueing an operation
// yields a new lazy frame sharing the same source.
type LazyFrame struct {
	source *ArrayFrame
	ops    []Op
}

// Lazy constructs a lazy frame over a given source frame, with an initially
// empty plan.
func Lazy(source *ArrayFrame) *LazyFrame {
	return &LazyFrame{source, nil}
}

// Map queues a deferred operation, returning the extended lazy frame.  The
// receiver is unchanged.
func (p *LazyFrame) Map(op Op) *LazyFrame {
	ops := make([]Op, len(p.ops), len(p.ops)+1)
	copy(ops, p.ops)
	//
	return &LazyFrame{p.source, append(ops, op)}
}

// Select queues a deferred projection onto the given columns, in the given
// order.  Unknown columns surface as errors at collection time.
func (p *LazyFrame) Select(names ...string) *LazyFrame {
	return p.Map(func(f *ArrayFrame) (*ArrayFrame, error) {
		selected := EmptyArrayFrame()
		//
		for _, name := range names {
			col, err := f.Column(name)
			if err != nil {
				return nil, err
			}
			//
			selected.AddColumn(col.Name(), col.Data())
		}
		//
		return selected, nil
	})
}

// Collect implementation for the Frame interface.  This runs the deferred
// plan against the source frame, returning the materialised result.
func (p *LazyFrame) Collect() (*ArrayFrame, error) {
	var err error
	//
	f := p.source
	//
	for _, op := range p.ops {
		if f, err = op(f); err != nil {
			return nil, err
		}
	}
	//
	return f, nil
}
