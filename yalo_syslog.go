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

// SyslogSink delivers rendered lines to the system's syslog framework.
// The syslog connection is opened (and closed) for every write, so a
// restarted syslog daemon only fails the statements delivered while it is
// away.
type SyslogSink struct {
	// ident is the syslog entry ident, passed down to the syslog writer.
	ident string
}

// Close is a no-op: the syslog connection is opened per write.
func (ss *SyslogSink) Close() error {
	return nil
}
