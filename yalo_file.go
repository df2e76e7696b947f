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
	"os"
)

// FileSink appends rendered lines to a log file. The file is opened once
// at construction and closed when the sink is evicted, cleared or
// replaced.
type FileSink struct {
	*StreamSink
}

// NewFileSink opens (creating if needed) the log file at path for append
// and returns a sink writing to it. A failure to open surfaces to the
// caller; the settings command handler logs it, direct API users receive
// it.
func NewFileSink(path string) (*FileSink, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log '%s': %w", path, err)
	}
	return &FileSink{NewStreamSink(file, path, true)}, nil
}
