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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/supplement/pkg/status"
)

// 🎯 Logger writes human readable run output to the console and mirrors
// every line as a structured zerolog record
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	verbose   bool
	mu        sync.Mutex
}

// 🔧 Option configures a Logger
type Option func(*Logger)

// WithVerbose prints one line per examined file.
func WithVerbose(v bool) Option {
	return func(l *Logger) { l.verbose = v }
}

// WithFormatter replaces the default formatter.
func WithFormatter(f status.FileFormatter) Option {
	return func(l *Logger) { l.formatter = f }
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger, opts ...Option) *Logger {
	l := &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
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

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("supplement")
	fmt.Fprintf(l.console, "\n%s %s\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📂 StartRoot announces a root directory
func (l *Logger) StartRoot(root string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "\n[processing %s]\n", color.New(color.FgCyan).Sprint(root))
	l.zlog.Info().Str("root", root).Msg("processing root")
}

// ⚠️ MissingRoot reports a root directory that does not exist
func (l *Logger) MissingRoot(root string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprintf("%s not found", root))
	l.zlog.Warn().Str("root", root).Msg("root directory not found")
}

// ⏳ Progress logs the running counters
func (l *Logger) Progress(examined, updated int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, l.formatter.FormatProgress(examined, updated))
	l.zlog.Info().Int("examined", examined).Int("updated", updated).Msg("progress")
}

// 📝 LogFileResult logs the outcome of one file. Failures are always printed,
// other outcomes only in verbose mode.
func (l *Logger) LogFileResult(ctx context.Context, r status.FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ev := l.zlog.Debug()
	if r.Outcome == status.OutcomeFailed {
		ev = l.zlog.Error().Err(r.Err)
	}
	ev.Str("file", r.Path).
		Str("outcome", r.Outcome.String()).
		Str("reason", r.Reason).
		Msg("file processed")

	if r.Outcome == status.OutcomeFailed {
		fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(l.formatter.FormatError(r.Path, r.Err)))
		return
	}

	if !l.verbose {
		return
	}

	var printer *pterm.PrefixPrinter
	switch r.Outcome {
	case status.OutcomeUpdated:
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "UPDATED", Style: pterm.Info.Prefix.Style})
	default:
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "SKIPPED", Style: pterm.Debug.Prefix.Style}).WithDebugger(false)
	}
	printer.WithWriter(l.console).Println(l.formatter.FormatFileResult(r))
}

// ✅ Summary logs the final counts of a run
func (l *Logger) Summary(s *status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := l.formatter.FormatSummary(s)
	if s.Failed() > 0 {
		fmt.Fprintf(l.console, "\n⚠️  %s\n", color.New(color.FgYellow).Sprint(line))
	} else {
		fmt.Fprintf(l.console, "\n✅ %s\n", color.New(color.FgGreen).Sprint(line))
	}

	l.zlog.Info().
		Int("examined", s.Examined).
		Int("updated", s.Updated).
		Int("unchanged", s.Unchanged()).
		Int("failed", s.Failed()).
		Strs("missing_roots", s.MissingRoots).
		Msg("run complete")
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}
