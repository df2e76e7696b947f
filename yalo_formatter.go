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
	"strconv"
	"sync"
	"time"
)

// Formatter renders one raw message plus metadata into one terminated
// line of text, and renders a caught error into a one-line description.
// Exactly one formatter is active process-wide at a time; it is shared by
// all concurrent renders and must be stateless or internally synchronized.
type Formatter interface {
	// Format renders the raw line with its record metadata and thread
	// index. The returned line ends with one line terminator.
	Format(line string, thread uint64, r *Record) (string, error)
	// FormatError renders an error into a single-line description.
	FormatError(err error) string
}

// formatterHolder owns the process-wide formatter handle, lazily
// defaulting it on first use.
type formatterHolder struct {
	mu        sync.Mutex
	formatter Formatter
}

// get returns the active formatter, installing the default local-time
// formatter if none was ever set.
func (fh *formatterHolder) get() Formatter {
	fh.mu.Lock()
	defer fh.mu.Unlock()
	if fh.formatter == nil {
		fh.formatter = NewDefaultFormatter(Local)
	}
	return fh.formatter
}

// set replaces the formatter, releasing the previous handle.
func (fh *formatterHolder) set(formatter Formatter) {
	fh.mu.Lock()
	fh.formatter = formatter
	fh.mu.Unlock()
}

// Location selects the time reference of the default formatter.
type Location int

const (
	// Local renders timestamps in local time, including the UTC offset.
	Local Location = iota
	// GMT renders timestamps in UTC without an offset.
	GMT
)

const (
	// localDateLayout is the local-time date layout, millisecond
	// precision with the UTC offset and the weekday.
	localDateLayout = "2006-01-02 15:04:05.000 -0700 (Mon)"
	// gmtDateLayout drops the offset, matching the GMT reference.
	gmtDateLayout = "2006-01-02 15:04:05.000 (Mon)"
)

// DefaultFormatter is the built-in formatter. It renders lines as:
//
//	[2024-03-02 10:20:30.456 -0800 (Sat)][0][NFO][server.go:42][pkg.listen] message
//
// with one bracketed field each for date, thread index, level tag,
// file:line and function.
type DefaultFormatter struct {
	// location is the time reference used for the date field.
	location Location
}

// NewDefaultFormatter returns the default formatter referenced to local
// or GMT time.
func NewDefaultFormatter(location Location) *DefaultFormatter {
	return &DefaultFormatter{location: location}
}

// Format renders one log line with the record's metadata.
func (df *DefaultFormatter) Format(line string, thread uint64, r *Record) (string, error) {
	return "[" + df.date() +
		"][" + strconv.FormatUint(thread, 10) +
		"][" + r.Level.tag +
		"][" + r.File + ":" + strconv.Itoa(r.Line) +
		"][" + r.Function +
		"] " + line + "\n", nil
}

// FormatError renders a caught error as a one-line description.
func (df *DefaultFormatter) FormatError(err error) string {
	return "Exception: " + err.Error()
}

// date renders the current time in the formatter's reference.
func (df *DefaultFormatter) date() string {
	now := time.Now()
	if df.location == GMT {
		return now.UTC().Format(gmtDateLayout)
	}
	return now.Format(localDateLayout)
}
