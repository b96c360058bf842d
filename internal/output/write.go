// SPDX-License-Identifier: MIT

// Package output writes the generated feed.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	xglog "github.com/kevinoid/ytdl2rss/internal/log"
)

// StdoutPath is the output path denoting standard output.
const StdoutPath = "-"

// FilePerm is the mode of newly created feed files. Feeds are usually
// served by a web server running as another user.
const FilePerm os.FileMode = 0o644

// IsStdout reports whether path denotes standard output.
func IsStdout(path string) bool {
	return path == "" || path == StdoutPath
}

// Write writes data to path atomically, or to stdout when path is empty
// or "-". Nothing is written to path unless data is written in full.
func Write(ctx context.Context, path string, stdout io.Writer, data []byte) error {
	logger := xglog.FromContext(ctx)

	if IsStdout(path) {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("write feed to stdout: %w", err)
		}
		return nil
	}

	if err := writeAtomic(ctx, path, data); err != nil {
		return err
	}
	logger.Debug().
		Str(xglog.FieldEvent, "output.written").
		Str(xglog.FieldPath, path).
		Int(xglog.FieldBytes, len(data)).
		Msg("wrote feed")
	return nil
}
