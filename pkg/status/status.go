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

// 📊 Outcome is the result of processing one file
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeUpdated           // supplement written
	OutcomeUnchanged         // nothing to do
	OutcomeFailed            // read, decode or write error
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult describes one examined file
type FileResult struct {
	Path    string  // Path as discovered under its root
	Outcome Outcome // What happened
	Reason  string  // Why, for unchanged files
	Err     error   // Set when Outcome is OutcomeFailed
}

// 📈 Summary accumulates the results of a run
type Summary struct {
	Examined     int
	Updated      int
	Failures     []FileResult
	MissingRoots []string
}

// Record folds one file result into the summary.
func (s *Summary) Record(r FileResult) {
	s.Examined++
	switch r.Outcome {
	case OutcomeUpdated:
		s.Updated++
	case OutcomeFailed:
		s.Failures = append(s.Failures, r)
	}
}

// MissingRoot notes a root directory that did not exist.
func (s *Summary) MissingRoot(root string) {
	s.MissingRoots = append(s.MissingRoots, root)
}

// Failed returns the number of files that could not be processed.
func (s *Summary) Failed() int {
	return len(s.Failures)
}

// Unchanged returns the number of files left as they were.
func (s *Summary) Unchanged() int {
	return s.Examined - s.Updated - len(s.Failures)
}
