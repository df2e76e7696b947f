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
	"errors"
	"regexp"
	"strings"
	"testing"
)

var (
	localDatePattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} [+-]\d{4} \([A-Z][a-z]{2}\)\]`)
	gmtDatePattern   = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} \([A-Z][a-z]{2}\)\]`)
)

func TestDefaultFormatterFormat(t *testing.T) {
	r := Begin(InfoLevel, "server.go", 42, "pkg.listen", true, "")

	tests := []struct {
		desc     string
		location Location
		pattern  *regexp.Regexp
	}{
		{"local", Local, localDatePattern},
		{"gmt", GMT, gmtDatePattern},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			line, err := NewDefaultFormatter(tc.location).Format("answered", 3, r)
			if err != nil {
				t.Fatalf("Format() returned error: %v", err)
			}
			if !tc.pattern.MatchString(line) {
				t.Errorf("line = %q, date field does not match the %s layout", line, tc.desc)
			}
			if !strings.HasSuffix(line, "][3][NFO][server.go:42][pkg.listen] answered\n") {
				t.Errorf("line = %q, metadata fields are malformed", line)
			}
		})
	}
}

func TestDefaultFormatterFormatError(t *testing.T) {
	got := NewDefaultFormatter(Local).FormatError(errors.New("boom"))
	if got != "Exception: boom" {
		t.Errorf("FormatError() = %q, want: %q", got, "Exception: boom")
	}
}

func TestFormatterHolderLazyDefault(t *testing.T) {
	fh := new(formatterHolder)
	if _, ok := fh.get().(*DefaultFormatter); !ok {
		t.Errorf("get() on fresh holder = %T, want: *DefaultFormatter", fh.get())
	}
}

func TestSetFormatter(t *testing.T) {
	cs := resetLogger(t)
	ResetLevels(LogLevel)
	SetFormatter(plainFormatter{})

	Log().Append("raw").End()

	lines := cs.all()
	if len(lines) != 1 || lines[0] != "raw\n" {
		t.Errorf("lines = %q, want exactly [\"raw\\n\"]", lines)
	}
}

// plainFormatter renders the message with no metadata.
type plainFormatter struct{}

func (plainFormatter) Format(line string, _ uint64, _ *Record) (string, error) {
	return line + "\n", nil
}

func (plainFormatter) FormatError(err error) string {
	return err.Error()
}
