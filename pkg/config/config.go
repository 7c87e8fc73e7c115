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

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/supplement/pkg/supplement"
	"github.com/walteh/supplement/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultPath is where the CLI looks for a config file
	DefaultPath = ".supplement.hcl"

	// DefaultPattern selects listing pages under each root
	DefaultPattern = "**/*.html"

	// DefaultProgressInterval is how many files pass between progress lines
	DefaultProgressInterval = 500
)

// DefaultRoots are the house and land listing trees
var DefaultRoots = []string{"public/house", "public/land"}

// 📚 Config represents the complete configuration
type Config struct {
	Roots            []string `json:"roots,omitempty" yaml:"roots,omitempty" hcl:"roots,optional"`                                    // Root directories to walk
	Pattern          string   `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"`                              // doublestar pattern relative to each root
	Marker           string   `json:"marker,omitempty" yaml:"marker,omitempty" hcl:"marker,optional"`                                 // Idempotency guard
	SupplementFile   string   `json:"supplement_file,omitempty" yaml:"supplement_file,omitempty" hcl:"supplement_file,optional"`       // Optional block override
	ProgressInterval int      `json:"progress_interval,omitempty" yaml:"progress_interval,omitempty" hcl:"progress_interval,optional"` // Files between progress lines

	location string
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if len(cfg.Roots) == 0 {
		cfg.Roots = append([]string(nil), DefaultRoots...)
	}
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	if cfg.Marker == "" {
		cfg.Marker = supplement.DefaultMarker
	}
	if cfg.ProgressInterval == 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}
}

// 🔍 Validate fills defaults and checks the configuration
func Validate(ctx context.Context, cfg *Config) error {
	cfg.applyDefaults()

	for i, root := range cfg.Roots {
		if strings.TrimSpace(root) == "" {
			return errors.Errorf("roots[%d] is empty", i)
		}
		cfg.Roots[i] = filepath.Clean(root)
	}

	if !doublestar.ValidatePattern(cfg.Pattern) {
		return errors.Errorf("invalid pattern %q", cfg.Pattern)
	}

	if cfg.ProgressInterval < 0 {
		return errors.Errorf("progress_interval must be positive, got %d", cfg.ProgressInterval)
	}

	zerolog.Ctx(ctx).Debug().Strs("roots", cfg.Roots).Str("pattern", cfg.Pattern).Msg("config validated")
	return nil
}

// Location returns the file the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📦 Supplement resolves the block to inject. A relative supplement_file is
// taken relative to the config file.
func (cfg *Config) Supplement(ctx context.Context) (*supplement.Block, error) {
	if cfg.SupplementFile == "" {
		return supplement.Default(), nil
	}

	path := cfg.SupplementFile
	if !filepath.IsAbs(path) && cfg.location != "" {
		path = filepath.Join(filepath.Dir(cfg.location), path)
	}

	block, err := supplement.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading supplement: %w", err)
	}
	return block, nil
}

// 💉 Injector builds the text injector for this configuration
func (cfg *Config) Injector(ctx context.Context) (*text.Injector, error) {
	block, err := cfg.Supplement(ctx)
	if err != nil {
		return nil, err
	}

	inj, err := text.NewInjector(cfg.Marker, block.Markup)
	if err != nil {
		return nil, errors.Errorf("creating injector from %s: %w", block.Source, err)
	}
	return inj, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s in %s", cfg.Pattern, strings.Join(cfg.Roots, ", "))
}
