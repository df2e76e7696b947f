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
	"os"
	"strings"
	"sync"
	"time"
)

// settingsCache tracks the watched settings resource: its path, the
// minimum re-check interval, the time of the last check and the last-seen
// contents. It is mutated only by the reload check itself.
type settingsCache struct {
	// mu protects every field. checkAndApply holds it for the whole
	// read-compare-apply sequence; a failed TryLock means a check is
	// already in flight (or a command handler logged through us) and the
	// new check is simply skipped.
	mu sync.Mutex
	// path is the watched resource, empty when no watch is set.
	path string
	// interval is the minimum time between resource reads.
	interval time.Duration
	// lastCheck is the time of the last resource read attempt.
	lastCheck time.Time
	// contents is the last-seen resource contents.
	contents string
}

// watch records the resource path and re-check interval and resets the
// last-check timestamp so the next check happens immediately.
func (sc *settingsCache) watch(path string, interval time.Duration) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.path = path
	sc.interval = interval
	sc.lastCheck = time.Time{}
}

// checkAndApply re-reads the watched resource and applies its commands.
// It is invoked on every finalizing log statement and no-ops when no
// watch is set, when the interval has not elapsed, when the resource is
// unreadable, or when its contents are unchanged.
func (sc *settingsCache) checkAndApply() {
	if !sc.mu.TryLock() {
		return
	}
	defer sc.mu.Unlock()

	if sc.path == "" {
		return
	}
	now := time.Now()
	if !sc.lastCheck.IsZero() && now.Sub(sc.lastCheck) < sc.interval {
		return
	}
	sc.lastCheck = now

	data, err := os.ReadFile(sc.path)
	if err != nil {
		return
	}
	text := string(data)
	if text == sc.contents {
		return
	}
	sc.contents = text
	applyCommands(text)
}

// applyCommands applies the settings command language line by line. Blank
// lines are ignored and a final line without a terminator is accepted.
func applyCommands(text string) {
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			applyCommand(line)
		}
	}
}

// applyCommand parses and executes one settings command. The keyword is
// case-sensitive; the optional ":"-separated payload is trimmed. A
// malformed command is logged and skipped so the remaining lines still
// apply.
func applyCommand(line string) {
	keyword, payload := line, ""
	if colon := strings.IndexByte(line, ':'); colon >= 0 {
		keyword = line[:colon]
		payload = strings.TrimSpace(line[colon+1:])
	}

	switch keyword {
	case "clearSinks":
		ClearSinks()
	case "setFormatDefault":
		SetFormatter(NewDefaultFormatter(Local))
	case "setFormatDefaultGMT":
		SetFormatter(NewDefaultFormatter(GMT))
	case "addSinkStdErr":
		AddSink(NewStdErrSink())
	case "addSinkStdOut":
		AddSink(NewStdOutSink())
	case "addSink":
		sink, err := NewFileSink(payload)
		if err != nil {
			Err().Append("settings:", err).End()
			return
		}
		AddSink(sink)
	case "resetLevels":
		ResetLevels(ParseLevelName(payload))
	case "pad":
		SetPadding(Pad)
	case "noPad":
		SetPadding(AsIs)
	case "setLevel":
		name, pattern := payload, ""
		if eq := strings.IndexByte(payload, '='); eq >= 0 {
			name = strings.TrimSpace(payload[:eq])
			pattern = strings.TrimSpace(payload[eq+1:])
		}
		SetLevel(ParseLevelName(name), pattern)
	default:
		Err().Append("settings: unrecognized command:", line).End()
	}
}
