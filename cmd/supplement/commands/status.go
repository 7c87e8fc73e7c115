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

// ErrPending is returned by the status command when pages still need the supplement
var ErrPending = errors.Base("pages need the supplement")

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [root...]",
		Short: "Check which pages still need the supplement",
		Long: `Status runs the injection without writing anything and reports how many
pages would be updated. It fails when at least one page needs the supplement,
so it can guard a deploy.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "status").Logger().WithContext(cmd.Context())

			inj, err := opts.NewInjector(ctx, true)
			if err != nil {
				return errors.Errorf("creating injector: %w", err)
			}

			summary, err := inj.Process(ctx, opts.Roots(args))
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			if summary.Updated > 0 {
				return errors.Errorf("%w: %d of %d", ErrPending, summary.Updated, summary.Examined)
			}

			return nil
		},
	}

	return cmd
}
