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

//go:build !windows

package yalo

// NewEventlogSink is a no-op sink for platforms without the windows event
// log.
func NewEventlogSink(eventID uint32, ident string) *EventlogSink {
	return &EventlogSink{eventID: eventID, ident: ident}
}

// Log is a no-op as there's no event log framework available.
func (es *EventlogSink) Log(line string) error {
	return nil
}
