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
Package config loads and validates the settings of a supplement run.

	+-------------+        +--------+        +----------+
	| .supplement | -----> | Config | -----> | Injector |
	| hcl/yaml/js |        +--------+        +----------+
	+-------------+

🎯 Purpose:
- Provides built-in defaults matching the listing site layout
- Reads HCL, YAML or JSON overrides
- Validates roots, the file pattern and the progress interval
- Resolves the supplement block and builds the text injector

A missing config file at the default path is not an error: the defaults are
used. A config file named explicitly must exist.
*/
package config
