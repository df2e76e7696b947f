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

	"go.bug.st/serial"
)

const (
	// DefaultSerialBaud is the default serial baud for serial port
	// writing.
	DefaultSerialBaud = 115200
)

// SerialOptions contains the options for a serial sink.
type SerialOptions struct {
	// Port is the serial port name to be written to.
	Port string
	// Baud is the serial port baud; DefaultSerialBaud when zero.
	Baud int
}

// SerialSink delivers rendered lines to a serial port. The port is opened
// for every write so a transiently unavailable port only fails the
// statements delivered while it is away.
type SerialSink struct {
	// opts is the serial configuration.
	opts SerialOptions
}

// NewSerialSink returns a sink writing to the configured serial port.
func NewSerialSink(opts SerialOptions) *SerialSink {
	if opts.Baud == 0 {
		opts.Baud = DefaultSerialBaud
	}
	return &SerialSink{opts: opts}
}

// Log writes one rendered line to the serial port.
func (ss *SerialSink) Log(line string) error {
	port, err := serial.Open(ss.opts.Port, &serial.Mode{BaudRate: ss.opts.Baud})
	if err != nil {
		return fmt.Errorf("failed to open serial port '%s': %w", ss.opts.Port, err)
	}
	defer port.Close()

	n, err := port.Write([]byte(line))
	if err != nil {
		return fmt.Errorf("failed to log to '%s': %w", ss.opts.Port, err)
	}
	if n < len(line) {
		return fmt.Errorf("incomplete write to %s", ss.opts.Port)
	}
	return nil
}

// Close is a no-op: the port is opened per write.
func (ss *SerialSink) Close() error {
	return nil
}
