// SPDX-License-Identifier: MIT

// Package watch reruns feed generation when input files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	xglog "github.com/kevinoid/ytdl2rss/internal/log"
)

// DefaultDebounce is the quiet period after the last change before a
// rebuild starts. yt-dlp writes info JSON and media in several steps.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls Run once at start and again whenever one of Paths changes.
type Watcher struct {
	Paths    []string
	Debounce time.Duration
	// Run performs one build. Errors are logged and watching continues.
	Run func(ctx context.Context) error
	// Ready, if set, is called once the watches are in place.
	Ready func()

	logger zerolog.Logger
}

// New creates a Watcher for paths.
func New(paths []string, run func(ctx context.Context) error) *Watcher {
	return &Watcher{
		Paths:    paths,
		Debounce: DefaultDebounce,
		Run:      run,
		logger:   xglog.WithComponent("watch"),
	}
}

// Watch blocks until ctx is cancelled or the watcher fails.
func (w *Watcher) Watch(ctx context.Context) error {
	if len(w.Paths) == 0 {
		return errors.New("watch: no paths")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Parent directories are watched because downloaders and editors
	// replace files by renaming over them, which drops a file watch.
	files := make(map[string]bool, len(w.Paths))
	dirs := make(map[string]bool)
	for _, p := range w.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	w.logger.Info().
		Str(xglog.FieldEvent, "watch.started").
		Strs("paths", w.Paths).
		Msg("watching input files for changes")
	if w.Ready != nil {
		w.Ready()
	}

	w.runOnce(ctx)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str(xglog.FieldEvent, "watch.stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !files[abs] {
				continue
			}
			w.logger.Debug().
				Str(xglog.FieldEvent, "watch.file_changed").
				Str(xglog.FieldPath, event.Name).
				Str("op", event.Op.String()).
				Msg("input file changed")
			// Reset on each event so a burst of writes causes one rebuild.
			timer.Reset(debounce)

		case <-timer.C:
			w.runOnce(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().
				Err(err).
				Str(xglog.FieldEvent, "watch.error").
				Msg("file watcher error")
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	if err := w.Run(ctx); err != nil {
		w.logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "watch.rebuild_failed").
			Msg("rebuild failed")
	}
}

// relevant reports whether event may change file contents. Chmod is
// ignored; Remove is kept since a rename-over shows up as Remove+Create
// on some platforms.
func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}
