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

// Package yalo implements a process-wide, line-oriented logging core with
// a plug-able sink and formatter architecture, per-file verbosity caps
// and live reconfiguration from a watched settings file. By default yalo
// provides a set of predefined sinks, such as: [StdErrSink], [StdOutSink],
// [FileSink], [SyslogSink], [SerialSink] and [EventlogSink].
//
// # Records
//
// Every log statement is a [Record]: it is begun at a level, values are
// appended to it, and it is delivered when End is called:
//
//	yalo.AddSink(yalo.NewStdErrSink())
//	yalo.Info().Append("listening on", addr).End()
//
// A record begun with one of the Fatal constructors flushes and then
// terminates the process. The guarded constructors ([InfoIf], [WarnIf],
// etc.) decline the whole statement when their condition is false.
// Nothing raised during End ever reaches the calling code: a failing sink
// is evicted from the pipeline, the failure is reported to the surviving
// sinks, and a default stderr sink is synthesized whenever the pipeline
// would otherwise be left empty.
//
// # Levels and verbosity caps
//
// Levels are ordered from most severe to most verbose: Fatal, Log, Error,
// Warning, Info, Debug, Verbose, Trace. Authorization is a table of caps,
// each scoping a level to files matching a pattern:
//
//	yalo.ResetLevels(yalo.WarningLevel)          // everything up to Warning
//	yalo.SetLevel(yalo.TraceLevel, "parser.go")  // and everything for the parser
//
// A pattern is a ";"-separated list of substrings, each optionally
// prefixed with "-" to negate it, evaluated left to right with the last
// matching segment winning. The empty pattern matches every file.
//
// # Expression tracing
//
// [TraceExpr] evaluates to its argument, so a branch or loop guard can be
// wrapped in place to record every evaluation at Trace level:
//
//	for yalo.TraceBool("while", "queue pending", queue.pending()) {
//	    ...
//	}
//
// # Live reconfiguration
//
// [SetSettingsFile] points the logger at a plain-text resource holding
// one command per line (addSink:, resetLevels:, setLevel:, pad, noPad,
// clearSinks, ...). The resource is re-read, at most once per configured
// interval, whenever a statement finalizes, and changes apply without
// restarting the process.
package yalo
