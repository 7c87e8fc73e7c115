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

// Package supplement provides the markup block injected into listing pages.
package supplement

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/net/html"
)

// DefaultMarker is the heading sentence of the embedded block. Its presence in
// a page means the page was already supplemented.
const DefaultMarker = "掲載外の購入希望者情報についても対応可能な場合があります"

//go:embed buyer_supplement.html
var defaultBlock string

// 📦 Block is a supplement ready for injection
type Block struct {
	Source string // "embedded" or the file it was loaded from
	Markup string
}

// Default returns the embedded buyer information block.
func Default() *Block {
	return &Block{
		Source: "embedded",
		Markup: defaultBlock,
	}
}

// 📥 Load reads a supplement from path. Markdown files are rendered to HTML,
// anything else with an .html or .htm extension is used as is.
func Load(ctx context.Context, path string) (*Block, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading supplement")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading supplement file: %w", err)
	}

	var markup string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm":
		markup = string(data)
	case ".md", ".markdown":
		markup, err = RenderMarkdown(data)
		if err != nil {
			return nil, errors.Errorf("rendering %s: %w", path, err)
		}
	default:
		return nil, errors.Errorf("unsupported supplement extension %q", ext)
	}

	if strings.TrimSpace(markup) == "" {
		return nil, errors.Errorf("supplement file %s is empty", path)
	}

	if err := ValidateFragment(markup); err != nil {
		return nil, errors.Errorf("validating %s: %w", path, err)
	}

	return &Block{Source: path, Markup: markup}, nil
}

// RenderMarkdown converts markdown into an HTML fragment wrapped in a div, so
// the result lands in the page as a single element. Raw HTML in the source is
// kept.
func RenderMarkdown(src []byte) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	var buf bytes.Buffer
	buf.WriteString("\n    <div class=\"supplement\">\n")
	if err := md.Convert(src, &buf); err != nil {
		return "", errors.Errorf("converting markdown: %w", err)
	}
	buf.WriteString("    </div>\n")
	return buf.String(), nil
}

// void elements never take a closing tag
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// 🔍 ValidateFragment reports an error if markup opens or closes elements out
// of order. The block is spliced in between closing tags of the page, so any
// imbalance would shift the page structure.
func ValidateFragment(markup string) error {
	z := html.NewTokenizer(strings.NewReader(markup))
	var stack []string

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return errors.Errorf("tokenizing fragment: %w", err)
			}
			if len(stack) > 0 {
				return errors.Errorf("unclosed <%s>", stack[len(stack)-1])
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if voidElements[tag] {
				continue
			}
			stack = append(stack, tag)
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if voidElements[tag] {
				continue
			}
			if len(stack) == 0 {
				return errors.Errorf("unexpected </%s>", tag)
			}
			if top := stack[len(stack)-1]; top != tag {
				return errors.Errorf("</%s> closes <%s>", tag, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
}
