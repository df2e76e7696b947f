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
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Level wraps id and tag of a log level. Numeric order encodes verbosity:
// a lower id means rarer and more severe.
type Level struct {
	// id is the log level numeric id.
	id int
	// tag is the short tag displayed by the default formatter.
	tag string
}

var (
	// FatalLevel is the log level definition for Fatal severity. A record
	// logged at FatalLevel terminates the process after flushing.
	FatalLevel = Level{0, "FTL"}

	// LogLevel is the log level definition for unconditional logging.
	LogLevel = Level{1, "LOG"}

	// ErrorLevel is the log level definition for Error severity.
	ErrorLevel = Level{2, "ERR"}

	// WarningLevel is the log level definition for Warning severity.
	WarningLevel = Level{3, "WRN"}

	// InfoLevel is the log level definition for Info severity.
	InfoLevel = Level{4, "NFO"}

	// DebugLevel is the log level definition for Debug severity.
	DebugLevel = Level{5, "DBG"}

	// VerboseLevel is the log level definition for Verbose severity.
	VerboseLevel = Level{6, "VBS"}

	// TraceLevel is the log level definition for Trace severity, the most
	// verbose level. The expression tracer logs at TraceLevel.
	TraceLevel = Level{7, "TRC"}

	// allLevels is the list of all supported log levels ordered from least
	// to most verbose.
	allLevels = []Level{FatalLevel, LogLevel, ErrorLevel, WarningLevel,
		InfoLevel, DebugLevel, VerboseLevel, TraceLevel}
)

// String returns the string representation of a log level.
func (level Level) String() string {
	return level.tag
}

// ParseLevelName returns the level matching the first letter of name,
// case-insensitive (l=Log, e=Error, w=Warning, i=Info, d=Debug, v=Verbose,
// t=Trace). An empty or unrecognized name defaults to ErrorLevel.
func ParseLevelName(name string) Level {
	if name == "" {
		return ErrorLevel
	}
	switch name[0] {
	case 'l', 'L':
		return LogLevel
	case 'e', 'E':
		return ErrorLevel
	case 'w', 'W':
		return WarningLevel
	case 'i', 'I':
		return InfoLevel
	case 'd', 'D':
		return DebugLevel
	case 'v', 'V':
		return VerboseLevel
	case 't', 'T':
		return TraceLevel
	}
	return ErrorLevel
}

// Spacing selects how appended values are joined within a single record.
type Spacing int

const (
	// Pad inserts one separating space between appended values.
	Pad Spacing = iota
	// AsIs appends values back to back with no separator.
	AsIs
)

var (
	// levels is the process-wide level authorization table.
	levels = newLevelTable()

	// sinks is the process-wide sink pipeline.
	sinks = newSinkPipeline()

	// formatters holds the process-wide formatter handle.
	formatters = new(formatterHolder)

	// threads maps goroutine identity to a small stable index.
	threads = newThreadRegistry()

	// settings is the process-wide settings file watcher.
	settings = new(settingsCache)

	// spacingMu protects spacing.
	spacingMu sync.Mutex

	// spacing is the current append spacing mode.
	spacing = Pad

	// exitFunc is the exit function called on behalf of Fatal records.
	exitFunc = func() { os.Exit(1) }
)

// AddSink appends a sink to the delivery pipeline. The pipeline takes
// ownership of the sink: it will be closed when evicted or cleared. A nil
// sink is ignored.
func AddSink(sink Sink) {
	if sink != nil {
		sinks.add(sink)
	}
}

// ClearSinks removes and closes every registered sink. The next delivered
// line will synthesize a default stderr sink.
func ClearSinks() {
	sinks.clear()
}

// SetFormatter replaces the process-wide formatter. The replacement is
// atomic with respect to concurrent renders. A nil formatter is ignored.
func SetFormatter(formatter Formatter) {
	if formatter != nil {
		formatters.set(formatter)
	}
}

// SetLevel installs a verbosity cap: statements at level or less verbose,
// originating from files matching pattern, become authorized. An empty
// pattern matches every file. See the package documentation for the
// pattern language.
func SetLevel(level Level, pattern string) {
	levels.set(level, pattern)
}

// ResetLevels clears the authorization table and installs a single
// match-all cap at level.
func ResetLevels(level Level) {
	levels.reset(level)
}

// IsAuthorized reports whether a statement at level originating from file
// would currently be delivered. An empty file matches empty-pattern caps
// only.
func IsAuthorized(level Level, file string) bool {
	return levels.authorized(level, file)
}

// SetPadding sets the append spacing mode for all records.
func SetPadding(mode Spacing) {
	spacingMu.Lock()
	spacing = mode
	spacingMu.Unlock()
}

// currentSpacing returns the spacing mode honored by Record.Append.
func currentSpacing() Spacing {
	spacingMu.Lock()
	defer spacingMu.Unlock()
	return spacing
}

// SetSettingsFile points the logger at an external settings resource. The
// resource is re-read at most once per minInterval, checked whenever a
// record finalizes, and applied as a list of one-per-line commands. A
// missing or unreadable resource means no reconfiguration happens.
func SetSettingsFile(path string, minInterval time.Duration) {
	settings.watch(path, minInterval)
}

// Record is the per-statement unit: it accumulates appended values into a
// single line and delivers it, if authorized, when End is called. A Record
// must not be shared across goroutines.
type Record struct {
	// Level is the level requested for this statement.
	Level Level
	// File is the base name of the originating file.
	File string
	// Line is the originating line number.
	Line int
	// Function is the fully qualified originating function name.
	Function string
	// Condition is the optional guard-expression text of a guarded
	// statement.
	Condition string

	// doLog is false for a declined guarded statement.
	doLog bool
	// buffer accumulates the appended values.
	buffer strings.Builder
}

// Begin constructs a record from explicit origin metadata. Call sites that
// can capture their own file/line/function use Begin; the level-named
// constructors below capture the caller automatically.
func Begin(level Level, file string, line int, function string, doLog bool, condition string) *Record {
	return &Record{
		Level:     level,
		File:      file,
		Line:      line,
		Function:  function,
		Condition: condition,
		doLog:     doLog,
	}
}

// newRecord sets up the record for each logging call, capturing the
// caller's file, line and function.
func newRecord(level Level, doLog bool, condition string) *Record {
	pc, file, line, _ := runtime.Caller(2)
	var function string
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return &Record{
		Level:     level,
		File:      filepath.Base(file),
		Line:      line,
		Function:  function,
		Condition: condition,
		doLog:     doLog,
	}
}

// Log begins a record at LogLevel.
func Log() *Record { return newRecord(LogLevel, true, "") }

// Err begins a record at ErrorLevel.
func Err() *Record { return newRecord(ErrorLevel, true, "") }

// Warn begins a record at WarningLevel.
func Warn() *Record { return newRecord(WarningLevel, true, "") }

// Info begins a record at InfoLevel.
func Info() *Record { return newRecord(InfoLevel, true, "") }

// Debug begins a record at DebugLevel.
func Debug() *Record { return newRecord(DebugLevel, true, "") }

// Verbose begins a record at VerboseLevel.
func Verbose() *Record { return newRecord(VerboseLevel, true, "") }

// Trace begins a record at TraceLevel.
func Trace() *Record { return newRecord(TraceLevel, true, "") }

// Fatal begins a record at FatalLevel. Ending a Fatal record flushes it
// and terminates the process.
func Fatal() *Record { return newRecord(FatalLevel, true, "") }

// LogIf begins a LogLevel record that only logs when condition is true.
func LogIf(condition bool) *Record { return newRecord(LogLevel, condition, "") }

// ErrIf begins an ErrorLevel record that only logs when condition is true.
func ErrIf(condition bool) *Record { return newRecord(ErrorLevel, condition, "") }

// WarnIf begins a WarningLevel record that only logs when condition is
// true.
func WarnIf(condition bool) *Record { return newRecord(WarningLevel, condition, "") }

// InfoIf begins an InfoLevel record that only logs when condition is true.
func InfoIf(condition bool) *Record { return newRecord(InfoLevel, condition, "") }

// DebugIf begins a DebugLevel record that only logs when condition is
// true.
func DebugIf(condition bool) *Record { return newRecord(DebugLevel, condition, "") }

// VerboseIf begins a VerboseLevel record that only logs when condition is
// true.
func VerboseIf(condition bool) *Record { return newRecord(VerboseLevel, condition, "") }

// TraceIf begins a TraceLevel record that only logs when condition is
// true.
func TraceIf(condition bool) *Record { return newRecord(TraceLevel, condition, "") }

// FatalIf begins a FatalLevel record. A Fatal record flushes even when
// condition is false; only a true condition terminates the process.
func FatalIf(condition bool) *Record { return newRecord(FatalLevel, condition, "") }

// Append stringifies each value and adds it to the record's line,
// honoring the spacing mode set with [SetPadding]. It returns the record
// so appends can be chained:
//
//	yalo.Info().Append("answered in", elapsed, "ms").End()
func (r *Record) Append(values ...any) *Record {
	for _, value := range values {
		r.append(stringify(value))
	}
	return r
}

// append adds one already rendered value to the line.
func (r *Record) append(text string) {
	if currentSpacing() == Pad && r.buffer.Len() > 0 {
		r.buffer.WriteByte(' ')
	}
	r.buffer.WriteString(text)
}

// End finalizes the record. A Fatal record finalizes unconditionally; any
// other record finalizes only when it is a logging record with a non-empty
// line. Finalizing checks the settings resource for changes, queries the
// authorization table, and, if authorized, renders and delivers the line.
// End never panics: errors raised during finalization are discarded.
// After finalizing a Fatal record whose guard held, the process is
// terminated.
func (r *Record) End() {
	fatal := r.Level == FatalLevel
	if fatal || (r.doLog && r.buffer.Len() > 0) {
		func() {
			defer func() { _ = recover() }()
			r.finalize()
		}()
	}
	if fatal && r.doLog {
		exitFunc()
	}
}

// finalize runs the reload check, the authorization query and, when
// authorized, the render-and-deliver step.
func (r *Record) finalize() {
	settings.checkAndApply()
	if !levels.authorized(r.Level, r.File) {
		return
	}
	_ = sinks.dispatch(formatters.get(), threads.index(), r, r.buffer.String())
}

// TraceExpr logs, at TraceLevel, a line of the form
// "<flow>: <expression> => <value>" and returns value unchanged, so it can
// be interposed transparently around a branch or loop condition:
//
//	if yalo.TraceExpr("if", "n > limit", n > limit) {
//	    ...
//	}
func TraceExpr[T any](flow, expression string, value T) T {
	r := newRecord(TraceLevel, true, expression)
	r.append(flow + ": " + expression + " => " + stringify(value))
	r.End()
	return value
}

// TraceBool is TraceExpr fixed to boolean guard expressions.
func TraceBool(flow, expression string, value bool) bool {
	r := newRecord(TraceLevel, true, expression)
	r.append(flow + ": " + expression + " => " + stringify(value))
	r.End()
	return value
}

// stringify renders a single appended value. Integers render via standard
// decimal conversion, floats via the shortest general format, uintptr
// addresses as uppercase hexadecimal, errors through the active
// formatter's error rendering; anything else falls back to its default
// string form.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uintptr:
		if v == 0 {
			return "0"
		}
		return "0X" + strings.ToUpper(strconv.FormatUint(uint64(v), 16))
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case error:
		return formatters.get().FormatError(v)
	case nil:
		return "<nil>"
	}
	return fmt.Sprint(value)
}
