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

//go:build windows

package yalo

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows/svc/eventlog"
)

// NewEventlogSink returns a sink that writes rendered lines to the
// windows event log under the given ident.
func NewEventlogSink(eventID uint32, ident string) *EventlogSink {
	return &EventlogSink{eventID: eventID, ident: ident}
}

// Log writes one rendered line to the event log, installing the event
// source on the first write.
func (es *EventlogSink) Log(line string) error {
	// Only attempt to install the event source if we've not managed to
	// register before.
	if !es.registered {
		err := eventlog.InstallAsEventCreate(es.ident, eventlog.Info|eventlog.Warning|eventlog.Error)
		if err != nil && !strings.Contains(err.Error(), "registry key already exists") {
			return fmt.Errorf("failed to install eventlog '%s': %w", es.ident, err)
		}
		es.registered = true
	}

	writer, err := eventlog.Open(es.ident)
	if err != nil {
		return fmt.Errorf("failed to open eventlog '%s': %w", es.ident, err)
	}
	defer writer.Close()

	if err := writer.Info(es.eventID, line); err != nil {
		return fmt.Errorf("failed to log to eventlog '%s': %w", es.ident, err)
	}
	return nil
}
