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
	"bytes"
	"errors"
	"strings"
	"testing"
)

// errorWriter fails or truncates writes on demand.
type errorWriter struct {
	err     error
	short   bool
	closed  bool
	written bytes.Buffer
}

func (ew *errorWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	if ew.short {
		n := len(p) / 2
		ew.written.Write(p[:n])
		return n, nil
	}
	return ew.written.Write(p)
}

func (ew *errorWriter) Close() error {
	ew.closed = true
	return nil
}

func TestStreamSinkLog(t *testing.T) {
	writer := new(errorWriter)
	sink := NewStreamSink(writer, "buffer", false)

	if err := sink.Log("a line\n"); err != nil {
		t.Fatalf("Log() returned error: %v", err)
	}
	if got := writer.written.String(); got != "a line\n" {
		t.Errorf("written = %q, want: %q", got, "a line\n")
	}
}

func TestStreamSinkLogWriteError(t *testing.T) {
	writer := &errorWriter{err: errors.New("disk gone")}
	sink := NewStreamSink(writer, "buffer", false)

	err := sink.Log("a line\n")
	if err == nil {
		t.Fatal("Log() returned no error for a failing writer")
	}
	if !strings.Contains(err.Error(), "failed to log to 'buffer'") {
		t.Errorf("error = %q, should name the stream", err)
	}
	if !errors.Is(err, writer.err) {
		t.Error("error should wrap the writer's error")
	}
}

func TestStreamSinkLogShortWrite(t *testing.T) {
	writer := &errorWriter{short: true}
	sink := NewStreamSink(writer, "buffer", false)

	err := sink.Log("a line\n")
	if err == nil {
		t.Fatal("Log() returned no error for a short write")
	}
	if !strings.Contains(err.Error(), "incomplete write to buffer") {
		t.Errorf("error = %q, want an incomplete write report", err)
	}
}

func TestStreamSinkClose(t *testing.T) {
	tests := []struct {
		desc       string
		autoClose  bool
		wantClosed bool
	}{
		{"owned_stream", true, true},
		{"borrowed_stream", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			writer := new(errorWriter)
			sink := NewStreamSink(writer, "buffer", tc.autoClose)
			if err := sink.Close(); err != nil {
				t.Fatalf("Close() returned error: %v", err)
			}
			if writer.closed != tc.wantClosed {
				t.Errorf("writer.closed = %t, want: %t", writer.closed, tc.wantClosed)
			}
		})
	}
}
