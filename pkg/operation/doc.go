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
Package operation runs the supplement injection over listing trees.

	+--------+   paths   +-----------+   content   +---------------+
	| walker | --------> | processor | ----------> | text.Injector |
	+--------+           +-----------+             +---------------+
	                          |
	                          v
	                   status.Summary / log.Logger

🔄 Flow:
1. Checks each root, reporting and skipping missing ones
2. Walks the root for files matching the pattern, in lexical order
3. Reads, transforms and rewrites one file at a time
4. Records a status.FileResult per file and reports progress

Files are processed sequentially. A file that cannot be read, decoded or
written is recorded as failed and the run moves on. Only an error from the
walk itself stops the run.
*/
package operation
