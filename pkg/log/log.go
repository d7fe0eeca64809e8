// Copyright 2025 the filefn authors
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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	sourceWidth = 45 // Base width for the source uri
	opWidth     = 7  // Width for the operation name
)

// 🎯 TransferOperation represents one finished file function call
type TransferOperation struct {
	Operation   string        // copy/move/delete
	Source      string        // Source uri
	Destination string        // Derived destination path (empty for delete)
	Succeeded   bool          // Whether the backend confirmed success
	TimedOut    bool          // Whether the callback wait expired
	Elapsed     time.Duration // Time from call start to outcome
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	total   int
	failed  int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatTransfer formats a transfer operation for display
func (l *Logger) formatTransfer(op TransferOperation) string {
	var symbol string
	var symbolColor color.Attribute
	switch {
	case op.Succeeded:
		symbol = "✓"
		symbolColor = color.FgGreen
	case op.TimedOut:
		symbol = "⏱"
		symbolColor = color.FgYellow
	default:
		symbol = "✗"
		symbolColor = color.FgRed
	}

	line := fmt.Sprintf("  %s %s %s",
		color.New(symbolColor).Sprint(symbol),
		fmt.Sprintf("%-*s", opWidth, op.Operation),
		fmt.Sprintf("%-*s", sourceWidth, op.Source))
	if op.Destination != "" {
		line += color.New(color.Faint).Sprint(" -> " + op.Destination)
	}
	return line
}

// 📝 LogTransfer logs a finished transfer
func (l *Logger) LogTransfer(ctx context.Context, op TransferOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.total++
	if !op.Succeeded {
		l.failed++
	}

	fmt.Fprintln(l.console, l.formatTransfer(op))

	l.zlog.Info().
		Str("operation", op.Operation).
		Str("source", op.Source).
		Str("destination", op.Destination).
		Bool("succeeded", op.Succeeded).
		Bool("timed_out", op.TimedOut).
		Dur("elapsed", op.Elapsed).
		Msg("transfer finished")
}

// 📊 Summary prints the totals for the run
func (l *Logger) Summary() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failed == 0 {
		fmt.Fprintf(l.console, "\n%s %d file(s) transferred\n",
			color.New(color.FgGreen).Sprint("✓"), l.total)
	} else {
		fmt.Fprintf(l.console, "\n%s %d of %d file(s) failed\n",
			color.New(color.FgRed).Sprint("✗"), l.failed, l.total)
	}
	l.zlog.Info().Int("total", l.total).Int("failed", l.failed).Msg("run complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("filefn")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
