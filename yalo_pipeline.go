//  Copyright 2024 Google LLC
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package yalo

import (
	"fmt"
	"sync"
)

// Sink is a destination capable of persisting one rendered line of text.
// Log either completes the write or returns an error carrying enough
// context (resource name or identity) to be useful once reported. Close
// releases any underlying resource; the pipeline calls it when the sink is
// evicted or cleared.
type Sink interface {
	Log(line string) error
	Close() error
}

// sinkPipeline owns the ordered sink list. Order determines delivery
// order, not priority. Rendering and delivery of a single line happen
// under the list lock, so concurrent statements interleave at line
// granularity only.
type sinkPipeline struct {
	// mu protects list.
	mu sync.Mutex
	// list is the ordered collection of registered sinks.
	list []Sink
}

// sinkFailure captures one delivery failure for best-effort reporting to
// the surviving sinks.
type sinkFailure struct {
	// description is the formatter-rendered error description.
	description string
	// tag identifies the type of the evicted sink.
	tag string
}

func newSinkPipeline() *sinkPipeline {
	return &sinkPipeline{}
}

// add appends sink to the delivery list, transferring ownership to the
// pipeline.
func (sp *sinkPipeline) add(sink Sink) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.list = append(sp.list, sink)
}

// clear removes and closes every sink.
func (sp *sinkPipeline) clear() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	for _, sink := range sp.list {
		_ = sink.Close()
	}
	sp.list = nil
}

// dispatch renders line through formatter and delivers it to every sink in
// order. A failing sink is closed and evicted without advancing past its
// slot, so the sink that shifts into the slot is attempted next. The list
// is re-seeded with a default stderr sink whenever it is found empty, both
// before and after the delivery pass. Each captured failure is then
// reported, individually and best-effort, to every surviving sink as a
// synthesized "Logger[<type>]: <description>" line; a second-order failure
// is not itself escalated. A single bad sink therefore never prevents
// delivery to the others and never leaves the pipeline empty.
func (sp *sinkPipeline) dispatch(formatter Formatter, thread uint64, r *Record, line string) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	formatted, err := formatter.Format(line, thread, r)
	if err != nil {
		return err
	}

	if len(sp.list) == 0 {
		sp.list = append(sp.list, NewStdErrSink())
	}

	var failures []sinkFailure
	for i := 0; i < len(sp.list); {
		sink := sp.list[i]
		if err := sink.Log(formatted); err != nil {
			failures = append(failures, sinkFailure{
				description: formatter.FormatError(err),
				tag:         fmt.Sprintf("%T", sink),
			})
			_ = sink.Close()
			sp.list = append(sp.list[:i], sp.list[i+1:]...)
			continue
		}
		i++
	}

	if len(sp.list) == 0 {
		sp.list = append(sp.list, NewStdErrSink())
	}

	for _, failure := range failures {
		report, err := formatter.Format("Logger["+failure.tag+"]: "+failure.description, thread, r)
		if err != nil {
			continue
		}
		for _, sink := range sp.list {
			// Best effort: we already tried.
			_ = sink.Log(report)
		}
	}

	return nil
}
