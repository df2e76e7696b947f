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

// EventlogSink delivers rendered lines to the windows event log. On other
// platforms it is a no-op.
type EventlogSink struct {
	// eventID is the ID of the event to log to.
	eventID uint32
	// ident is the service's ident registered with eventlog.
	ident string
	// registered is true once the event source has been installed.
	registered bool
}

// Close is a no-op: the event log is opened per write.
func (es *EventlogSink) Close() error {
	return nil
}
