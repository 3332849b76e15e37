// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// massage-link client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// DefaultLogFileName is the file created next to the executable when no
// explicit log path is configured.
const DefaultLogFileName = "logs"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON lines
// to os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug;
//   - a "role" field set to role;
//   - a timestamp on every entry;
//   - a "func" caller field holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger that appends to a file instead of
// stdout, since the terminal belongs to the TUI while the client runs.
//
// When path is empty the file is DefaultLogFileName next to the executable.
// If the file cannot be opened the logger falls back to io.Discard so the
// screen is never corrupted by log output.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
	}

	var out io.Writer = io.Discard
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}
