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

package status

import (
	"fmt"
)

// FileFormatter defines how results, progress and the summary are rendered
type FileFormatter interface {
	// FormatFileResult formats a single file result
	FormatFileResult(r FileResult) string

	// FormatProgress formats a periodic progress message
	FormatProgress(examined, updated int) string

	// FormatSummary formats the final line of a run
	FormatSummary(s *Summary) string

	// FormatError formats a per-file error message
	FormatError(path string, err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct {
	DryRun bool
}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileResult formats a file result with emojis
func (f *DefaultFileFormatter) FormatFileResult(r FileResult) string {
	switch r.Outcome {
	case OutcomeUpdated:
		if f.DryRun {
			return fmt.Sprintf("📝 Would update %s", r.Path)
		}
		return fmt.Sprintf("📝 Updated %s", r.Path)
	case OutcomeFailed:
		return fmt.Sprintf("❌ Failed %s", r.Path)
	default:
		if r.Reason != "" {
			return fmt.Sprintf("👍 Unchanged %s (%s)", r.Path, r.Reason)
		}
		return fmt.Sprintf("👍 Unchanged %s", r.Path)
	}
}

// FormatProgress formats a progress message
func (f *DefaultFileFormatter) FormatProgress(examined, updated int) string {
	return fmt.Sprintf("⏳ processing: %d files (updated: %d)", examined, updated)
}

// FormatSummary formats the final counts
func (f *DefaultFileFormatter) FormatSummary(s *Summary) string {
	verb := "updated"
	if f.DryRun {
		verb = "need update"
	}
	msg := fmt.Sprintf("done: %d processed, %d %s", s.Examined, s.Updated, verb)
	if n := s.Failed(); n > 0 {
		msg += fmt.Sprintf(", %d failed", n)
	}
	return msg
}

// FormatError formats a per-file error message
func (f *DefaultFileFormatter) FormatError(path string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("error: %s - %v", path, err)
}
