// SPDX-License-Identifier: MIT

package feed

import (
	"errors"
	"fmt"
)

// Reasons a record is skipped.
var (
	ErrMissingTitle  = errors.New("missing title")
	ErrMissingID     = errors.New("missing id and webpage_url")
	ErrNoMedia       = errors.New("no media file or URL")
	ErrMediaNotFound = errors.New("media file not found")
)

// Recoverable problems which do not skip the record.
var (
	ErrUnknownMediaType  = errors.New("unknown media type")
	ErrInvalidUploadDate = errors.New("invalid upload_date")
	ErrUnavailableEntry  = errors.New("unavailable playlist entry")
)

// Warning is a recoverable problem found while building the feed.
type Warning struct {
	// Index is the position of the video in the flattened input, or -1
	// for problems not tied to a single video.
	Index  int
	Source string
	ID     string
	// Skipped is set when the video produced no item.
	Skipped bool
	Err     error
}

func (w Warning) Error() string {
	switch {
	case w.ID != "":
		return fmt.Sprintf("%s: %s: %v", w.Source, w.ID, w.Err)
	case w.Index >= 0:
		return fmt.Sprintf("%s: video %d: %v", w.Source, w.Index, w.Err)
	default:
		return fmt.Sprintf("%s: %v", w.Source, w.Err)
	}
}

func (w Warning) Unwrap() error {
	return w.Err
}
