// SPDX-License-Identifier: MIT

//go:build !windows

package output

import (
	"context"
	"fmt"

	"github.com/google/renameio/v2"

	xglog "github.com/kevinoid/ytdl2rss/internal/log"
)

// writeAtomic writes the feed with full durability guarantees using renameio.
// fsync before rename prevents a truncated feed after power failure.
func writeAtomic(ctx context.Context, path string, data []byte) error {
	logger := xglog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(FilePerm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending feed file: %w", err)
	}
	defer func() {
		// Removes the temp file if not committed.
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending feed file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write feed data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace feed file: %w", err)
	}
	return nil
}
