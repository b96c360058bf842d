// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kevinoid/ytdl2rss/internal/info"
	"github.com/kevinoid/ytdl2rss/internal/output"
	"github.com/kevinoid/ytdl2rss/internal/watch"
)

func newWatchCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [flags] <info.json>...",
		Short: "Rebuild the feed whenever an input file changes",
		Long: `Build the feed, then rebuild it whenever an input file or the
configuration file changes. Requires --output. Runs until interrupted.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInputs(args); err != nil {
				return err
			}
			for _, a := range args {
				if a == info.StdinPath {
					return usageError(errWatchStdin)
				}
			}

			cfg, err := app.loadConfig(cmd)
			if err != nil {
				return err
			}
			if output.IsStdout(cfg.Output) {
				return usageError(errWatchOutput)
			}

			paths := append([]string(nil), args...)
			if app.flags.configPath != "" {
				paths = append(paths, app.flags.configPath)
			}

			first := true
			w := watch.New(paths, func(ctx context.Context) error {
				// Reload so edits to the config file take effect.
				if !first {
					if cfg, err = app.loadConfig(cmd); err != nil {
						return err
					}
				}
				first = false
				return app.generate(ctx, cmd, cfg, args)
			})
			return w.Watch(cmd.Context())
		},
	}
}
