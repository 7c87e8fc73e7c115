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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/supplement/cmd/supplement/opts"
	"gitlab.com/tozd/go/errors"
)

// NewInjectCmd creates a new inject command
func NewInjectCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject [root...]",
		Short: "Add the buyer supplement to listing pages",
		Long: `Inject walks the listing roots and adds the supplement block to every page
that does not have it yet. It will:
1. Skip roots that do not exist
2. Leave pages that already contain the marker untouched
3. Insert the block before the closing container and body tags
4. Print progress and a final summary

Roots given as arguments replace the configured roots.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunInject(cmd, opts, args)
		},
	}

	return cmd
}

// RunInject runs the injection. The root command uses it as its default action.
func RunInject(cmd *cobra.Command, opts *opts.RootOpts, args []string) error {
	ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "inject").Logger().WithContext(cmd.Context())

	inj, err := opts.NewInjector(ctx, false)
	if err != nil {
		return errors.Errorf("creating injector: %w", err)
	}

	if _, err := inj.Process(ctx, opts.Roots(args)); err != nil {
		return errors.Errorf("injecting supplement: %w", err)
	}

	return nil
}
