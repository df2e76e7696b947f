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
	"io"
	"os"
)

// StreamSink delivers rendered lines to an io.Writer. The name identifies
// the underlying resource in delivery-failure reports.
type StreamSink struct {
	// name identifies the stream in error messages.
	name string
	// writer is the destination stream.
	writer io.Writer
	// autoClose closes the writer (when it is an io.Closer) on eviction.
	autoClose bool
}

// NewStreamSink returns a sink writing to writer. When autoClose is true
// and the writer implements io.Closer it is closed when the sink is
// evicted, cleared or replaced.
func NewStreamSink(writer io.Writer, name string, autoClose bool) *StreamSink {
	return &StreamSink{name: name, writer: writer, autoClose: autoClose}
}

// Log writes one rendered line to the stream.
func (ss *StreamSink) Log(line string) error {
	n, err := io.WriteString(ss.writer, line)
	if err != nil {
		return fmt.Errorf("failed to log to '%s': %w", ss.name, err)
	}
	if n < len(line) {
		return fmt.Errorf("incomplete write to %s", ss.name)
	}
	return nil
}

// Close releases the underlying stream if the sink owns it.
func (ss *StreamSink) Close() error {
	if !ss.autoClose {
		return nil
	}
	if closer, ok := ss.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// StdErrSink is a stream sink bound to the process' stderr. It is the
// default sink synthesized whenever the pipeline would otherwise be
// empty.
type StdErrSink struct {
	*StreamSink
}

// NewStdErrSink returns a sink writing to stderr. The stream is not
// closed on eviction.
func NewStdErrSink() *StdErrSink {
	return &StdErrSink{NewStreamSink(os.Stderr, "stderr", false)}
}

// StdOutSink is a stream sink bound to the process' stdout.
type StdOutSink struct {
	*StreamSink
}

// NewStdOutSink returns a sink writing to stdout. The stream is not
// closed on eviction.
func NewStdOutSink() *StdOutSink {
	return &StdOutSink{NewStreamSink(os.Stdout, "stdout", false)}
}
