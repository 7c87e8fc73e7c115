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

package opts

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/supplement/pkg/config"
	"github.com/walteh/supplement/pkg/log"
	"github.com/walteh/supplement/pkg/operation"
	"github.com/walteh/supplement/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	Verbose    bool

	Config  *config.Config
	Console io.Writer
}

// NewInjector builds the operation injector from the loaded config.
func (o *RootOpts) NewInjector(ctx context.Context, dryRun bool) (*operation.Injector, error) {
	if o.Config == nil {
		return nil, errors.Errorf("config not loaded")
	}

	textInjector, err := o.Config.Injector(ctx)
	if err != nil {
		return nil, err
	}

	logger := log.New(o.Console, *zerolog.Ctx(ctx),
		log.WithVerbose(o.Verbose),
		log.WithFormatter(&status.DefaultFileFormatter{DryRun: dryRun}),
	)

	return operation.New(operation.Options{
		Injector:         textInjector,
		Logger:           logger,
		Pattern:          o.Config.Pattern,
		ProgressInterval: o.Config.ProgressInterval,
		DryRun:           dryRun,
	})
}

// Roots returns args when given, the configured roots otherwise.
func (o *RootOpts) Roots(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return o.Config.Roots
}
