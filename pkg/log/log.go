// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log prints the rebrand progress log to the console and mirrors every
// event into a zerolog logger.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context. Without one, console output is
// discarded and diagnostics go to the context's zerolog logger.
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return New(io.Discard, *zerolog.Ctx(ctx))
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 Discovered logs how many files were found
func (l *Logger) Discovered(pattern string, count int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "Found %d blog files to update\n", count)
	l.zlog.Debug().Str("pattern", pattern).Int("files", count).Msg("discovered files")
}

// 📝 FileUpdated logs a file that was rewritten
func (l *Logger) FileUpdated(path string, replacements int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s Updated: %s\n", color.New(color.FgGreen).Sprint("✓"), path)
	l.zlog.Debug().
		Str("file", path).
		Str("status", "updated").
		Int("replacements", replacements).
		Msg("file operation")
}

// 📝 FileUnchanged records a file that needed no rewrite. Nothing is printed.
func (l *Logger) FileUnchanged(path string) {
	l.zlog.Debug().
		Str("file", path).
		Str("status", "unchanged").
		Msg("file operation")
}

// 📝 FileFailed logs a file that could not be read or written
func (l *Logger) FileFailed(path string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s Error updating %s: %s\n", color.New(color.FgRed).Sprint("✗"), path, err.Error())
	l.zlog.Error().
		Err(err).
		Str("file", path).
		Str("status", "errored").
		Msg("file operation")
}

// 📝 Summary prints the trailing report block
func (l *Logger) Summary(updated, errored, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
	fmt.Fprintln(l.console, color.New(color.Bold).Sprint("Complete!"))
	fmt.Fprintf(l.console, "Updated: %d files\n", updated)
	fmt.Fprintf(l.console, "Errors: %d files\n", errored)
	fmt.Fprintf(l.console, "Total: %d files\n", total)
	l.zlog.Debug().
		Int("updated", updated).
		Int("errors", errored).
		Int("total", total).
		Msg("run complete")
}
