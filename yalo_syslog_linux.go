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

//go:build linux

package yalo

import (
	"fmt"
	"log/syslog"
)

// NewSyslogSink returns a sink that writes rendered lines to the
// underlying system's syslog framework under the given ident.
func NewSyslogSink(ident string) *SyslogSink {
	return &SyslogSink{ident: ident}
}

// Log writes one rendered line to syslog.
func (ss *SyslogSink) Log(line string) error {
	writer, err := syslog.New(syslog.LOG_DAEMON|syslog.LOG_INFO, ss.ident)
	if err != nil {
		return fmt.Errorf("failed to open syslog '%s': %w", ss.ident, err)
	}
	defer writer.Close()

	if err := writer.Info(line); err != nil {
		return fmt.Errorf("failed to log to syslog '%s': %w", ss.ident, err)
	}
	return nil
}
