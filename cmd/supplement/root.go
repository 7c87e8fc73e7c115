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

package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/walteh/supplement/cmd/supplement/commands"
	"github.com/walteh/supplement/cmd/supplement/opts"
	"github.com/walteh/supplement/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd creates the root command. Running it without a subcommand
// injects the supplement using the configured roots.
func newRootCmd(console, logOut io.Writer) *cobra.Command {
	o := &opts.RootOpts{Console: console}

	rootCmd := &cobra.Command{
		Use:   "supplement [root...]",
		Short: "Add the buyer supplement block to static listing pages",
		Long: `supplement inserts an informational block about unlisted buyers into the
house and land listing pages of the static site. Pages that already carry the
block are left alone, so the tool is safe to run repeatedly.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd, logOut, o.Debug)

			cfg, err := config.Resolve(ctx, o.ConfigFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			o.Config = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunInject(cmd, o, args)
		},
	}

	addRootFlags(rootCmd.PersistentFlags(), o)

	rootCmd.AddCommand(
		commands.NewInjectCmd(o),
		commands.NewStatusCmd(o),
		newVersionCmd(console),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(flags *pflag.FlagSet, o *opts.RootOpts) {
	flags.StringVarP(&o.ConfigFile, "config", "c", config.DefaultPath, "config file path (.hcl, .yaml or .json)")
	flags.BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	flags.BoolVarP(&o.Verbose, "verbose", "v", false, "print one line per file")
}

// setupLogging configures zerolog based on flags and stores the logger in
// the command context
func setupLogging(cmd *cobra.Command, out io.Writer, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	if out == nil {
		out = os.Stderr
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)
	return ctx
}
