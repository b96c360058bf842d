// SPDX-License-Identifier: MIT

package feed

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/kevinoid/ytdl2rss/internal/core/urlutil"
	"github.com/kevinoid/ytdl2rss/internal/info"
)

// ChannelOverrides replace channel metadata derived from the input.
// Empty fields are not applied.
type ChannelOverrides struct {
	Title       string
	Link        string
	Description string
	Language    string
	Author      string
	Image       string
	Category    string
	Subcategory string
	// Explicit sets <itunes:explicit> when non-nil.
	Explicit *bool
}

// Options configure Build.
type Options struct {
	// Base is the URL at which the feed is served. Relative media and
	// image references are resolved against it.
	Base string
	// OutputPath is where the feed will be written, "" for stdout.
	OutputPath string
	Channel    ChannelOverrides
	// RequireMedia skips videos whose local media file cannot be found.
	RequireMedia bool
	// Stat is used to size local media files. Defaults to os.Stat.
	Stat func(name string) (fs.FileInfo, error)
}

// Outcome records what happened to one video.
type Outcome struct {
	Index  int
	ID     string
	Title  string
	Source string
	Length *int64
	// Err is the reason the video was skipped, nil if it was emitted.
	Err error
}

// Result of Build.
type Result struct {
	RSS      *RSS
	Warnings []Warning
	Outcomes []Outcome
	Items    int
	Skipped  int
}

type builder struct {
	opts     Options
	resolver *urlutil.Resolver
	stat     func(name string) (fs.FileInfo, error)
	result   *Result
}

// Build converts records into a podcast feed. Items appear in input order
// with playlists flattened in place. Problems with individual records are
// reported in Result.Warnings; an error is only returned for invalid
// options.
func Build(records []info.Record, opts Options) (*Result, error) {
	resolver, err := urlutil.NewResolver(opts.Base, opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", opts.Base, err)
	}

	b := &builder{
		opts:     opts,
		resolver: resolver,
		stat:     opts.Stat,
		result:   &Result{},
	}
	if b.stat == nil {
		b.stat = os.Stat
	}

	b.warnUnavailable(records)

	videos := info.Videos(records)
	items := make([]Item, 0, len(videos))
	emitted := make([]*info.Video, 0, len(videos))
	for i, v := range videos {
		item, length, err := b.item(i, v)
		b.result.Outcomes = append(b.result.Outcomes, Outcome{
			Index:  i,
			ID:     v.ID,
			Title:  v.Title,
			Source: v.Source,
			Length: length,
			Err:    err,
		})
		if err != nil {
			b.result.Skipped++
			b.warn(i, v, true, err)
			continue
		}
		items = append(items, item)
		emitted = append(emitted, v)
	}

	channel := b.channel(records, videos, emitted)
	channel.Items = items
	b.result.Items = len(items)
	b.result.RSS = &RSS{
		Version:     "2.0",
		XMLNSAtom:   NamespaceAtom,
		XMLNSITunes: NamespaceITunes,
		Channel:     channel,
	}
	return b.result, nil
}

func (b *builder) warn(index int, v *info.Video, skipped bool, err error) {
	b.result.Warnings = append(b.result.Warnings, Warning{
		Index:   index,
		Source:  v.Source,
		ID:      v.ID,
		Skipped: skipped,
		Err:     err,
	})
}

// warnUnavailable reports null playlist entries, depth first in input order.
func (b *builder) warnUnavailable(records []info.Record) {
	for _, r := range records {
		p, ok := r.(*info.Playlist)
		if !ok {
			continue
		}
		for _, idx := range p.Unavailable {
			b.result.Warnings = append(b.result.Warnings, Warning{
				Index:  -1,
				Source: p.Source,
				ID:     p.ID,
				Err:    fmt.Errorf("%w: entry %d", ErrUnavailableEntry, idx),
			})
		}
		b.warnUnavailable(p.Entries)
	}
}
