// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kevinoid/ytdl2rss/internal/config"
	"github.com/kevinoid/ytdl2rss/internal/core/urlutil"
	"github.com/kevinoid/ytdl2rss/internal/feed"
	"github.com/kevinoid/ytdl2rss/internal/info"
	xglog "github.com/kevinoid/ytdl2rss/internal/log"
	"github.com/kevinoid/ytdl2rss/internal/metrics"
	"github.com/kevinoid/ytdl2rss/internal/output"
	"github.com/kevinoid/ytdl2rss/internal/version"
)

// Metric failure stages.
const (
	stageLoad   = "load"
	stageBuild  = "build"
	stageEncode = "encode"
	stageItems  = "items"
	stageWrite  = "write"
)

// app runs the feed pipeline. One app serves every run of a watch session,
// so metrics accumulate across rebuilds.
type app struct {
	flags    *flagValues
	recorder *metrics.Recorder
	runs     int
	now      func() time.Time
}

func newApp(flags *flagValues) *app {
	return &app{
		flags:    flags,
		recorder: metrics.NewRecorder(),
		now:      time.Now,
	}
}

// loadConfig merges defaults, the config file, the environment and flags,
// then validates the result and configures logging.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	// Log with the requested level and format from the first message on.
	xglog.Configure(xglog.Config{
		Level:  a.flags.logLevel,
		Format: a.flags.logFormat,
		Output: cmd.ErrOrStderr(),
	})

	cfg, err := config.NewLoader(a.flags.configPath).Load()
	if err != nil {
		return cfg, err
	}
	applyFlags(cmd, a.flags, &cfg)
	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	xglog.Configure(xglog.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	logger := xglog.WithComponent("cli")
	switch {
	case cfg.Base == "":
		logger.Warn().
			Str(xglog.FieldEvent, "config.base_missing").
			Msg("no base URL given, feed URLs will be relative; RSS requires absolute URLs")
	case !urlutil.IsAbsolute(cfg.Base):
		logger.Warn().
			Str(xglog.FieldEvent, "config.base_relative").
			Str(xglog.FieldBaseURL, urlutil.SanitizeURL(cfg.Base)).
			Msg("base URL has no scheme, feed URLs will not be absolute")
	}
	logger.Debug().
		Str(xglog.FieldEvent, "config.loaded").
		Str(xglog.FieldBaseURL, urlutil.SanitizeURL(cfg.Base)).
		Str(xglog.FieldPath, outputName(cfg.Output)).
		Bool("require_media", cfg.RequireMedia).
		Bool("require_items", cfg.RequireItems).
		Msg("configuration loaded")
	return cfg, nil
}

// generate reads inputs, builds the feed and writes it.
func (a *app) generate(ctx context.Context, cmd *cobra.Command, cfg config.Config, inputs []string) error {
	a.runs++
	ctx = xglog.ContextWithRunID(ctx, a.runs)
	logger := xglog.WithContext(ctx, xglog.WithComponent("cli"))
	ctx = logger.WithContext(ctx)

	err := a.run(ctx, cmd, cfg, inputs, logger)
	if cfg.MetricsFile != "" {
		if merr := a.recorder.WriteTextfile(cfg.MetricsFile); merr != nil {
			logger.Error().
				Err(merr).
				Str(xglog.FieldEvent, "metrics.write_failed").
				Str(xglog.FieldPath, cfg.MetricsFile).
				Msg("failed to write metrics file")
		}
	}
	return err
}

func (a *app) run(ctx context.Context, cmd *cobra.Command, cfg config.Config, inputs []string, logger zerolog.Logger) error {
	start := a.now()

	loader := info.NewLoader()
	loader.Stdin = cmd.InOrStdin()
	records, err := loader.Load(inputs)
	if err != nil {
		a.recorder.RecordFailure(stageLoad)
		if errors.Is(err, info.ErrStdinReused) {
			return usageError(err)
		}
		return err
	}

	res, err := feed.Build(records, cfg.FeedOptions())
	if err != nil {
		a.recorder.RecordFailure(stageBuild)
		return err
	}
	a.recorder.RecordBuild(res, a.now().Sub(start))
	logWarnings(logger, res.Warnings)

	// Validate has already checked the indent.
	indent, _ := feed.ParseIndent(cfg.Indent)
	data, err := res.Encode(indent)
	if err != nil {
		a.recorder.RecordFailure(stageEncode)
		return err
	}

	if res.Items == 0 && cfg.RequireItems {
		a.recorder.RecordFailure(stageItems)
		return noItemsError()
	}

	if err := output.Write(ctx, cfg.Output, cmd.OutOrStdout(), data); err != nil {
		a.recorder.RecordFailure(stageWrite)
		return err
	}
	a.recorder.RecordSuccess(len(data), a.now())

	logger.Info().
		Str(xglog.FieldEvent, "feed.written").
		Str(xglog.FieldPath, outputName(cfg.Output)).
		Int(xglog.FieldItems, res.Items).
		Int(xglog.FieldSkipped, res.Skipped).
		Int(xglog.FieldBytes, len(data)).
		Dur("elapsed", a.now().Sub(start)).
		Msg("feed written")

	if cfg.Summary {
		printSummary(cmd.ErrOrStderr(), res, len(data))
	}
	return nil
}

// logWarnings logs each recoverable problem found while building.
func logWarnings(logger zerolog.Logger, warnings []feed.Warning) {
	for _, w := range warnings {
		event := "feed.warning"
		if w.Skipped {
			event = "feed.item_skipped"
		}
		e := logger.Warn().
			Err(w.Err).
			Str(xglog.FieldEvent, event).
			Str(xglog.FieldSource, w.Source)
		if w.ID != "" {
			e = e.Str(xglog.FieldRecordID, w.ID)
		}
		if w.Index >= 0 {
			e = e.Int(xglog.FieldIndex, w.Index)
		}
		e.Msg(w.Error())
	}
}

func outputName(path string) string {
	if output.IsStdout(path) {
		return "stdout"
	}
	return path
}

func printSummary(w io.Writer, res *feed.Result, size int) {
	fmt.Fprintln(w, renderSummary(res))
	fmt.Fprintf(w, "%s: %d items, %d skipped, %s\n",
		version.Name, res.Items, res.Skipped, formatBytes(int64(size)))
}
