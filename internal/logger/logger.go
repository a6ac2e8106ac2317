// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the config parser.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should construct one instance at process start and pass
// it explicitly to the components that log; tests inject Nop().
package logger

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logDirName and logFileName locate the persistent log sink relative to the
// working directory.
const (
	logDirName  = "output"
	logFileName = "log.log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label.
//
// Entries are fanned out to two sinks:
//   - output/log.log under the working directory (created on demand,
//     appended to), receiving every level as JSON;
//   - the console, where debug entries go to stdout and warn-and-above go
//     to stderr in human-readable form. Info entries reach only the file.
//
// Every entry carries a "role" field, a per-process "run_id" (uuid), a
// timestamp, and a "func" caller field recording the fully-qualified
// function name. The global level is set to Debug so all levels are emitted.
//
// If the log file cannot be opened the logger falls back to console output
// alone rather than failing startup.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	sink := consoleSink()
	if file := openLogFile(); file != nil {
		sink = zerolog.MultiLevelWriter(file, consoleSink())
	}

	logger := zerolog.New(sink).With().
		Str("role", role).
		Str("run_id", uuid.NewString()).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func openLogFile() *os.File {
	dir := filepath.Join(".", logDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}

	file, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}

	return file
}

// splitConsoleWriter routes debug entries to stdout and warn-and-above to
// stderr. Info entries are suppressed on the console; they still reach the
// file sink through the surrounding MultiLevelWriter.
type splitConsoleWriter struct {
	out zerolog.ConsoleWriter
	err zerolog.ConsoleWriter
}

func consoleSink() zerolog.LevelWriter {
	return &splitConsoleWriter{
		out: zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339},
		err: zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
	}
}

func (w *splitConsoleWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w *splitConsoleWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	switch {
	case level == zerolog.DebugLevel:
		return w.out.Write(p)
	case level >= zerolog.WarnLevel && level < zerolog.NoLevel:
		return w.err.Write(p)
	default:
		return len(p), nil
	}
}
