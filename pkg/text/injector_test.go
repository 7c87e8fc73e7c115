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
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

const (
	testMarker = "MARKER-SENTENCE"
	testBlock  = "<div class=\"supp\">MARKER-SENTENCE</div>"
)

func TestInjector_Inject(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		want         string
		wantReason   Reason
		wantModified bool
	}{
		{
			name:         "compact_anchor",
			content:      "<html><body><div><div>x</div></div></body></html>",
			want:         "<html><body><div><div>x" + testBlock + separator + "</div></div></body></html>",
			wantReason:   ReasonInserted,
			wantModified: true,
		},
		{
			name:         "whitespace_between_closers",
			content:      "<body>\n<div>\n<div>x\n    </div>\n  </div>\n</body>\n",
			want:         "<body>\n<div>\n<div>x\n    " + testBlock + separator + "</div>\n  </div>\n</body>\n",
			wantReason:   ReasonInserted,
			wantModified: true,
		},
		{
			name:         "first_match_only",
			content:      "</div></div></body>|</div></div></body>",
			want:         testBlock + separator + "</div></div></body>|</div></div></body>",
			wantReason:   ReasonInserted,
			wantModified: true,
		},
		{
			name:       "already_supplemented",
			content:    "<body><div><div>" + testBlock + "</div></div></body>",
			want:       "<body><div><div>" + testBlock + "</div></div></body>",
			wantReason: ReasonAlreadySupplemented,
		},
		{
			name:       "marker_anywhere",
			content:    "<!-- MARKER-SENTENCE --></div></div></body>",
			want:       "<!-- MARKER-SENTENCE --></div></div></body>",
			wantReason: ReasonAlreadySupplemented,
		},
		{
			name:       "no_anchor",
			content:    "<html><body><div>only one closer</div></body></html>",
			want:       "<html><body><div>only one closer</div></body></html>",
			wantReason: ReasonNoAnchor,
		},
		{
			name:       "text_between_closers",
			content:    "</div>x</div></body>",
			want:       "</div>x</div></body>",
			wantReason: ReasonNoAnchor,
		},
		{
			name:       "empty",
			content:    "",
			want:       "",
			wantReason: ReasonNoAnchor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inj, err := NewInjector(testMarker, testBlock)
			require.NoError(t, err)

			result, err := inj.Inject(context.Background(), []byte(tt.content))
			require.NoError(t, err)

			assert.Equal(t, tt.want, string(result.ModifiedContent), "content should match")
			assert.Equal(t, tt.content, string(result.OriginalContent), "original content should be kept")
			assert.Equal(t, tt.wantReason, result.Reason, "reason should match")
			assert.Equal(t, tt.wantModified, result.WasModified, "modified flag should match")
		})
	}
}

func TestInjector_Idempotent(t *testing.T) {
	inj, err := NewInjector(testMarker, testBlock)
	require.NoError(t, err)

	content := []byte("<html><body><div class=\"container\"><div class=\"grid\"></div>\n</div>\n</body></html>")

	first, err := inj.Inject(context.Background(), content)
	require.NoError(t, err)
	require.True(t, first.WasModified)

	second, err := inj.Inject(context.Background(), first.ModifiedContent)
	require.NoError(t, err)
	assert.False(t, second.WasModified, "second pass should not modify")
	assert.Equal(t, ReasonAlreadySupplemented, second.Reason)
	assert.Equal(t, 1, inj.Count(second.ModifiedContent), "exactly one marker expected")

	idx := strings.Index(string(second.ModifiedContent), testBlock)
	assert.True(t, strings.HasPrefix(string(second.ModifiedContent[idx+len(testBlock):]), separator+"</div>\n</div>\n</body>"),
		"closers should follow the block unchanged")
}

func TestInjector_InvalidUTF8(t *testing.T) {
	inj, err := NewInjector(testMarker, testBlock)
	require.NoError(t, err)

	_, err = inj.Inject(context.Background(), []byte{0xff, 0xfe, '<', '/', 'b'})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUTF8), "error should be ErrInvalidUTF8")
}

func TestInjector_Validate(t *testing.T) {
	tests := []struct {
		name        string
		injector    Injector
		errContains string
	}{
		{
			name:        "missing_marker",
			injector:    Injector{Block: testBlock},
			errContains: "marker is required",
		},
		{
			name:        "missing_block",
			injector:    Injector{Marker: testMarker},
			errContains: "supplement block is required",
		},
		{
			name:        "block_without_marker",
			injector:    Injector{Marker: testMarker, Block: "<div>other</div>"},
			errContains: "does not contain marker",
		},
		{
			name:        "bad_anchor",
			injector:    Injector{Marker: testMarker, Block: testBlock, Anchor: "(</div>"},
			errContains: "compiling anchor",
		},
		{
			name:     "default_anchor",
			injector: Injector{Marker: testMarker, Block: testBlock},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inj := tt.injector
			err := inj.Validate()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultAnchor, inj.Anchor)
		})
	}
}
