// SPDX-License-Identifier: MIT

//go:build windows

package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	xglog "github.com/kevinoid/ytdl2rss/internal/log"
)

// writeAtomic writes the feed using temp file + rename.
// Windows doesn't support atomic rename with fsync like Unix.
func writeAtomic(ctx context.Context, path string, data []byte) error {
	logger := xglog.FromContext(ctx)

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".ytdl2rss-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp feed file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			if err := os.Remove(tmpPath); err != nil {
				logger.Debug().Err(err).Msg("cleanup temp feed file")
			}
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write feed data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp feed file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename feed file: %w", err)
	}
	return nil
}
