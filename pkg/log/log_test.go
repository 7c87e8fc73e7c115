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
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/supplement/pkg/status"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("injecting buyer supplement")
			},
			wantLogs: []string{
				"supplement • injecting buyer supplement",
			},
		},
		{
			name: "log_root",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRoot("public/house")
			},
			wantLogs: []string{
				"[processing public/house]",
			},
		},
		{
			name: "log_missing_root",
			op: func(t *testing.T, logger *Logger) {
				logger.MissingRoot("public/land")
			},
			wantLogs: []string{
				"⚠️  public/land not found",
			},
		},
		{
			name: "log_progress",
			op: func(t *testing.T, logger *Logger) {
				logger.Progress(500, 20)
				logger.Progress(1000, 41)
			},
			wantLogs: []string{
				"⏳ processing: 500 files (updated: 20)",
				"⏳ processing: 1000 files (updated: 41)",
			},
		},
		{
			name: "log_failed_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), status.FileResult{
					Path:    "public/house/1.html",
					Outcome: status.OutcomeFailed,
					Err:     errors.New("permission denied"),
				})
			},
			wantLogs: []string{
				"❌ error: public/house/1.html - permission denied",
			},
		},
		{
			name: "quiet_skips_unchanged",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), status.FileResult{
					Path:    "public/house/1.html",
					Outcome: status.OutcomeUnchanged,
				})
				logger.Infof("checked %d", 1)
			},
			wantLogs: []string{
				"ℹ️  checked 1",
			},
		},
		{
			name: "log_summary",
			op: func(t *testing.T, logger *Logger) {
				logger.Summary(&status.Summary{Examined: 3, Updated: 2})
			},
			wantLogs: []string{
				"✅ done: 3 processed, 2 updated",
			},
		},
		{
			name: "log_summary_with_failures",
			op: func(t *testing.T, logger *Logger) {
				logger.Summary(&status.Summary{
					Examined: 3,
					Updated:  1,
					Failures: []status.FileResult{{Path: "x.html", Outcome: status.OutcomeFailed}},
				})
			},
			wantLogs: []string{
				"⚠️  done: 3 processed, 1 updated, 1 failed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerVerbose(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.Nop(), WithVerbose(true))

	logger.LogFileResult(context.Background(), status.FileResult{Path: "a.html", Outcome: status.OutcomeUpdated})
	logger.LogFileResult(context.Background(), status.FileResult{Path: "b.html", Outcome: status.OutcomeUnchanged, Reason: "no-anchor"})

	out := buf.String()
	assert.Contains(t, out, "Updated a.html")
	assert.Contains(t, out, "Unchanged b.html (no-anchor)")
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
