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

/*
Package status records what happened to each file during a run.

	+-----------+   FileResult   +---------+
	| operation | -------------> | Summary |
	+-----------+                +---------+
	                                  |
	                                  v
	                            FileFormatter

🎯 Purpose:
- Classifies each examined file as updated, unchanged, or failed
- Accumulates the run counters (examined, updated)
- Keeps failures and missing roots for the final report
- Formats progress and summary lines

The Summary is owned by a single run and returned to the caller. Nothing here
is global.
*/
package status
