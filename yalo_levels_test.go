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

import "testing"

func TestFileMatches(t *testing.T) {
	tests := []struct {
		desc    string
		pattern string
		file    string
		want    bool
	}{
		{"empty_pattern_matches_all", "", "any/file.go", true},
		{"empty_pattern_empty_file", "", "", true},
		{"lone_dash_matches_none", "-", "any/file.go", false},
		{"substring_present", "name.ext", "dir/name.ext", true},
		{"substring_absent", "name.ext", "other.go", false},
		{"negated_present", "-vendor", "vendor/dep.go", false},
		{"negated_absent", "-vendor", "app/main.go", true},
		{"include_then_exclude", "a;-b", "path/a.go", true},
		{"exclusion_overrides", "a;-b", "ab.go", false},
		{"neither_segment_matches", "a;-b", "c.go", false},
		{"second_substring_matches", "a;b", "b.go", true},
		{"second_substring_overrides", "a;b", "a.go", false},
		{"later_inclusion_overrides", "-x;y", "xy.go", true},
		{"later_exclusion_overrides", "y;-x", "xy.go", false},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			if got := fileMatches(tc.pattern, tc.file); got != tc.want {
				t.Errorf("fileMatches(%q, %q) = %t, want: %t", tc.pattern, tc.file, got, tc.want)
			}
		})
	}
}

func TestLevelTableDefault(t *testing.T) {
	lt := newLevelTable()

	for _, level := range allLevels {
		want := level.id <= ErrorLevel.id
		if got := lt.authorized(level, "file.go"); got != want {
			t.Errorf("authorized(%s, file.go) = %t, want: %t", level, got, want)
		}
	}
}

func TestLevelTableSetCollapsesSubsumedEntries(t *testing.T) {
	lt := newLevelTable()
	lt.set(VerboseLevel, "name.ext")
	lt.set(DebugLevel, "name.ext")

	lt.mu.Lock()
	_, verbose := lt.caps[VerboseLevel]
	debug := lt.caps[DebugLevel]
	lt.mu.Unlock()

	if verbose {
		t.Error("subsumed Verbose entry survived a Debug cap with the same pattern")
	}
	if debug != "name.ext" {
		t.Errorf("caps[Debug] = %q, want: %q", debug, "name.ext")
	}
}

func TestLevelTableSetKeepsDistinctPatterns(t *testing.T) {
	lt := newLevelTable()
	lt.set(VerboseLevel, "worker")
	lt.set(DebugLevel, "server")

	if !lt.authorized(VerboseLevel, "pkg/worker.go") {
		t.Error("authorized(Verbose, pkg/worker.go) = false, want: true")
	}
	if lt.authorized(VerboseLevel, "pkg/server.go") {
		t.Error("authorized(Verbose, pkg/server.go) = true, want: false")
	}
	if !lt.authorized(DebugLevel, "pkg/server.go") {
		t.Error("authorized(Debug, pkg/server.go) = false, want: true")
	}
}

func TestLevelTableCapAuthorizesLessVerbose(t *testing.T) {
	lt := newLevelTable()
	lt.reset(FatalLevel)
	lt.set(DebugLevel, "special")

	// A cap at Debug for "special" files covers everything from Fatal to
	// Debug for those files, and nothing beyond Debug.
	for _, level := range allLevels {
		want := level.id <= DebugLevel.id
		if got := lt.authorized(level, "special.go"); got != want {
			t.Errorf("authorized(%s, special.go) = %t, want: %t", level, got, want)
		}
	}
	if lt.authorized(LogLevel, "regular.go") {
		t.Error("authorized(Log, regular.go) = true, want: false")
	}
}

func TestLevelTableReset(t *testing.T) {
	lt := newLevelTable()
	lt.set(TraceLevel, "loop")
	lt.reset(InfoLevel)

	if lt.authorized(TraceLevel, "loop.go") {
		t.Error("reset did not clear the Trace cap")
	}
	if !lt.authorized(InfoLevel, "loop.go") {
		t.Error("authorized(Info, loop.go) = false after reset(Info), want: true")
	}
}
