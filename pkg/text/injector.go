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

package text

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultAnchor matches the closing tail of a listing page: the end of the
// inner content block, the end of its container, then the end of the body.
const DefaultAnchor = `</div>\s*</div>\s*</body>`

// separator sits between the inserted block and the anchor it precedes.
const separator = "\n    "

// ErrInvalidUTF8 is returned by Inject when content is not valid UTF-8.
var ErrInvalidUTF8 = errors.Base("content is not valid UTF-8")

// 🏷️ Reason explains why content was or was not modified
type Reason string

const (
	ReasonInserted            Reason = "inserted"
	ReasonAlreadySupplemented Reason = "already-supplemented"
	ReasonNoAnchor            Reason = "no-anchor"
)

// 📦 InjectionResult holds the outcome of a single injection
type InjectionResult struct {
	OriginalContent []byte
	ModifiedContent []byte
	WasModified     bool
	Reason          Reason
}

// 💉 Injector inserts Block before the first Anchor match unless Marker is
// already present.
type Injector struct {
	Marker string
	Block  string
	Anchor string

	re *regexp.Regexp
}

// NewInjector creates an injector using DefaultAnchor
func NewInjector(marker, block string) (*Injector, error) {
	inj := &Injector{
		Marker: marker,
		Block:  block,
		Anchor: DefaultAnchor,
	}
	if err := inj.Validate(); err != nil {
		return nil, err
	}
	return inj, nil
}

// Validate checks the injector settings and compiles the anchor.
func (inj *Injector) Validate() error {
	if inj.Marker == "" {
		return errors.Errorf("marker is required")
	}
	if inj.Block == "" {
		return errors.Errorf("supplement block is required")
	}
	// without the marker inside the block a second run would insert again
	if !strings.Contains(inj.Block, inj.Marker) {
		return errors.Errorf("supplement block does not contain marker %q", inj.Marker)
	}
	if inj.Anchor == "" {
		inj.Anchor = DefaultAnchor
	}
	re, err := regexp.Compile(inj.Anchor)
	if err != nil {
		return errors.Errorf("compiling anchor %q: %w", inj.Anchor, err)
	}
	inj.re = re
	return nil
}

// Inject applies the supplement to content. Only the first anchor match is
// used, so a file receives at most one block per call.
func (inj *Injector) Inject(ctx context.Context, content []byte) (*InjectionResult, error) {
	if inj.re == nil {
		if err := inj.Validate(); err != nil {
			return nil, err
		}
	}

	if !utf8.Valid(content) {
		return nil, errors.WithStack(ErrInvalidUTF8)
	}

	result := &InjectionResult{
		OriginalContent: content,
		ModifiedContent: content,
	}

	if bytes.Contains(content, []byte(inj.Marker)) {
		result.Reason = ReasonAlreadySupplemented
		return result, nil
	}

	loc := inj.re.FindIndex(content)
	if loc == nil {
		result.Reason = ReasonNoAnchor
		return result, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(content) + len(inj.Block) + len(separator))
	buf.Write(content[:loc[0]])
	buf.WriteString(inj.Block)
	buf.WriteString(separator)
	buf.Write(content[loc[0]:])

	result.ModifiedContent = buf.Bytes()
	result.WasModified = !bytes.Equal(result.ModifiedContent, content)
	result.Reason = ReasonInserted

	zerolog.Ctx(ctx).Trace().Int("offset", loc[0]).Int("bytes_added", len(result.ModifiedContent)-len(content)).Msg("supplement inserted")

	return result, nil
}

// Count returns the number of marker occurrences in content.
func (inj *Injector) Count(content []byte) int {
	return bytes.Count(content, []byte(inj.Marker))
}
