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

package operation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/supplement/pkg/log"
	"github.com/walteh/supplement/pkg/status"
	"github.com/walteh/supplement/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the injector
type Options struct {
	// Injector transforms file content
	Injector *text.Injector
	// Logger reports progress and results
	Logger *log.Logger
	// Files reads and writes pages, defaults to the local disk
	Files FileManager
	// Pattern selects files under each root
	Pattern string
	// ProgressInterval is the number of files between progress lines
	ProgressInterval int
	// DryRun classifies files without writing them
	DryRun bool
}

// 💉 Injector applies the supplement to every matching file under a set of roots
type Injector struct {
	opts Options
}

// 🏭 New creates a new injector with the given options
func New(opts Options) (*Injector, error) {
	if opts.Injector == nil {
		return nil, errors.Errorf("text injector is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if opts.Pattern == "" {
		return nil, errors.Errorf("pattern is required")
	}
	if opts.Files == nil {
		opts.Files = NewOSFileManager()
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = 500
	}
	return &Injector{opts: opts}, nil
}

// 🏃 Process walks roots in order and injects the supplement into each
// matching file. The returned summary is complete up to the point of any
// walk error.
func (inj *Injector) Process(ctx context.Context, roots []string) (*status.Summary, error) {
	ctx = zerolog.Ctx(ctx).With().Str("run_id", uuid.NewString()).Bool("dry_run", inj.opts.DryRun).Logger().WithContext(ctx)
	logger := zerolog.Ctx(ctx)
	logger.Debug().Strs("roots", roots).Str("pattern", inj.opts.Pattern).Msg("starting run")

	inj.opts.Logger.Header(fmt.Sprintf("%s in %d roots", inj.opts.Pattern, len(roots)))
	if inj.opts.DryRun {
		inj.opts.Logger.Infof("dry run, no files will be written")
	}

	summary := &status.Summary{}
	defer inj.opts.Logger.Summary(summary)

	for _, root := range roots {
		ok, err := rootExists(root)
		if err != nil {
			return summary, err
		}
		if !ok {
			inj.opts.Logger.MissingRoot(root)
			summary.MissingRoot(root)
			continue
		}

		inj.opts.Logger.StartRoot(root)

		err = walkRoot(ctx, root, inj.opts.Pattern, func(path string) error {
			result := inj.processFile(ctx, path)
			summary.Record(result)
			inj.opts.Logger.LogFileResult(ctx, result)

			if summary.Examined%inj.opts.ProgressInterval == 0 {
				inj.opts.Logger.Progress(summary.Examined, summary.Updated)
			}
			return nil
		})
		if err != nil {
			return summary, errors.Errorf("walking %s: %w", root, err)
		}
	}

	return summary, nil
}

// 📄 processFile runs the read, transform and write cycle for one file
func (inj *Injector) processFile(ctx context.Context, path string) status.FileResult {
	content, err := inj.opts.Files.ReadFile(ctx, path)
	if err != nil {
		return status.FileResult{Path: path, Outcome: status.OutcomeFailed, Err: err}
	}

	result, err := inj.opts.Injector.Inject(ctx, content)
	if err != nil {
		return status.FileResult{Path: path, Outcome: status.OutcomeFailed, Err: err}
	}

	if !result.WasModified {
		if n := inj.opts.Injector.Count(content); n > 1 {
			zerolog.Ctx(ctx).Warn().Str("file", path).Int("markers", n).Msg("supplement appears more than once")
		}
		return status.FileResult{Path: path, Outcome: status.OutcomeUnchanged, Reason: string(result.Reason)}
	}

	if !inj.opts.DryRun {
		if err := inj.opts.Files.WriteFile(ctx, path, result.ModifiedContent); err != nil {
			return status.FileResult{Path: path, Outcome: status.OutcomeFailed, Err: err}
		}
	}

	return status.FileResult{Path: path, Outcome: status.OutcomeUpdated, Reason: string(result.Reason)}
}
