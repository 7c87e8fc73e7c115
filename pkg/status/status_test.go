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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestSummary_Record(t *testing.T) {
	readErr := errors.New("permission denied")

	var s Summary
	s.Record(FileResult{Path: "a.html", Outcome: OutcomeUpdated})
	s.Record(FileResult{Path: "b.html", Outcome: OutcomeUnchanged, Reason: "no-anchor"})
	s.Record(FileResult{Path: "c.html", Outcome: OutcomeFailed, Err: readErr})
	s.Record(FileResult{Path: "d.html", Outcome: OutcomeUpdated})
	s.MissingRoot("public/land")

	want := Summary{
		Examined: 4,
		Updated:  2,
		Failures: []FileResult{
			{Path: "c.html", Outcome: OutcomeFailed, Err: readErr},
		},
		MissingRoots: []string{"public/land"},
	}
	if diff := cmp.Diff(want, s, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 1, s.Failed())
	assert.Equal(t, 1, s.Unchanged())
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeUpdated, "updated"},
		{OutcomeUnchanged, "unchanged"},
		{OutcomeFailed, "failed"},
		{OutcomeUnknown, "unknown"},
		{Outcome(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.String())
		})
	}
}
