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
	"strings"
	"sync"
)

// levelTable is the sparse level -> file-pattern authorization table. Each
// entry is an independent verbosity cap: a cap registered at level V for
// pattern P authorizes every level from Fatal down to V for files matching
// P. Mutation is exclusive; queries take the same lock so a query never
// observes a half-applied mutation.
type levelTable struct {
	// mu protects caps.
	mu sync.Mutex
	// caps maps a level to the file pattern it caps.
	caps map[Level]string
}

// newLevelTable returns a table with the default cap: ErrorLevel for every
// file.
func newLevelTable() *levelTable {
	return &levelTable{caps: map[Level]string{ErrorLevel: ""}}
}

// reset clears the table and installs a single match-all cap at level.
func (lt *levelTable) reset(level Level) {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.caps = map[Level]string{level: ""}
}

// set installs or replaces the cap for level, then drops any more verbose
// entry carrying the textually identical pattern. Those entries are
// subsumed by the one just installed, so dropping them cannot change query
// results.
func (lt *levelTable) set(level Level, pattern string) {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.caps[level] = pattern
	for id := level.id + 1; id < len(allLevels); id++ {
		if existing, found := lt.caps[allLevels[id]]; found && existing == pattern {
			delete(lt.caps, allLevels[id])
		}
	}
}

// authorized scans from level toward the most verbose level and reports
// whether any cap's pattern matches file. Registering a cap at V
// authorizes everything less verbose than V for matching files, but never
// anything more verbose.
func (lt *levelTable) authorized(level Level, file string) bool {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	for id := level.id; id < len(allLevels); id++ {
		if pattern, found := lt.caps[allLevels[id]]; found && fileMatches(pattern, file) {
			return true
		}
	}
	return false
}

// fileMatches evaluates a ";"-separated pattern against a file path. Each
// segment is a plain substring, optionally prefixed with "-" to negate it.
// Segments are evaluated left to right over a running verdict that starts
// true: a plain segment sets the verdict to whether its substring occurs
// in the file, a negated segment sets it to false only when its substring
// occurs. Evaluation order matters: a later segment overrides an earlier
// one's verdict. An empty pattern matches every file; a lone "-" matches
// none.
func fileMatches(pattern, file string) bool {
	verdict := true
	for _, segment := range strings.Split(pattern, ";") {
		if strings.HasPrefix(segment, "-") {
			if strings.Contains(file, segment[1:]) {
				verdict = false
			}
			continue
		}
		verdict = strings.Contains(file, segment)
	}
	return verdict
}
