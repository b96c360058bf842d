// SPDX-License-Identifier: MIT

package feed

import (
	"github.com/kevinoid/ytdl2rss/internal/info"
	"github.com/kevinoid/ytdl2rss/internal/version"
)

// sharedPlaylist holds the playlist_* fields of videos downloaded as part
// of one playlist.
type sharedPlaylist struct {
	ID         string
	Title      string
	Uploader   string
	UploaderID string
}

func (s sharedPlaylist) empty() bool {
	return s == sharedPlaylist{}
}

// sharedPlaylistFields returns the playlist_* fields if every video that
// has any of them agrees on all of them.
func sharedPlaylistFields(videos []*info.Video) sharedPlaylist {
	var shared sharedPlaylist
	for _, v := range videos {
		p := sharedPlaylist{
			ID:         v.PlaylistID,
			Title:      v.PlaylistTitle,
			Uploader:   v.PlaylistUploader,
			UploaderID: v.PlaylistUploaderID,
		}
		if p.empty() {
			continue
		}
		if shared.empty() {
			shared = p
		} else if p != shared {
			return sharedPlaylist{}
		}
	}
	return shared
}

// channel derives channel metadata. Each field comes from the first
// top-level playlist, then the configured overrides, then defaults derived
// from the videos.
func (b *builder) channel(records []info.Record, videos, emitted []*info.Video) Channel {
	o := b.opts.Channel

	pl := &info.Playlist{}
	for _, r := range records {
		if p, ok := r.(*info.Playlist); ok {
			pl = p
			break
		}
	}
	shared := sharedPlaylistFields(videos)
	first := &info.Video{}
	if len(videos) > 0 {
		first = videos[0]
	}

	ch := Channel{
		Title:        firstText(pl.Title, o.Title, shared.Title, first.Uploader),
		Link:         firstText(pl.WebpageURL, o.Link, first.UploaderURL, first.ChannelURL),
		Language:     firstText(o.Language),
		ITunesAuthor: firstText(pl.Uploader, o.Author, shared.Uploader, first.Uploader),
		Generator:    version.Generator(),
	}
	ch.Description = firstText(pl.Description, o.Description, ch.Title)

	if date := b.latestUploadDate(pl, emitted); date != "" {
		ch.PubDate = date
	}

	var image string
	if thumb := pl.BestThumbnail(); thumb != "" {
		image = b.resolver.ResolveURL(thumb, pl.Source)
	} else if o.Image != "" {
		// Overrides come from the command line, so paths are relative to
		// the working directory.
		image = b.resolver.ResolveURL(o.Image, "")
	}
	if image != "" {
		ch.Image = &Image{URL: image, Title: ch.Title, Link: ch.Link}
		// Apple documents only <itunes:image>, so include both.
		ch.ITunesImage = &ITunesImage{Href: image}
	}

	if o.Category != "" {
		ch.ITunesCategory = &ITunesCategory{Text: o.Category}
		if o.Subcategory != "" {
			ch.ITunesCategory.Subcategory = &ITunesCategory{Text: o.Subcategory}
		}
	}

	switch {
	case o.Explicit != nil:
		ch.ITunesExplicit = explicitValue(*o.Explicit)
	case len(emitted) > 0:
		ch.ITunesExplicit = channelExplicit(emitted)
	}

	if b.resolver.Base != nil {
		ch.AtomLink = &AtomLink{
			Href: b.resolver.Base.String(),
			Rel:  "self",
			Type: "application/rss+xml",
		}
	}
	return ch
}

// latestUploadDate returns the playlist upload date, or the latest valid
// upload date of the emitted videos, formatted for <pubDate>.
func (b *builder) latestUploadDate(pl *info.Playlist, emitted []*info.Video) string {
	if pl.UploadDate != "" {
		if date, err := FormatDate(pl.UploadDate); err == nil {
			return date
		}
	}
	var latest string
	for _, v := range emitted {
		// YYYYMMDD sorts lexically.
		if v.UploadDate > latest {
			if _, err := parseUploadDate(v.UploadDate); err == nil {
				latest = v.UploadDate
			}
		}
	}
	if latest == "" {
		return ""
	}
	date, _ := FormatDate(latest)
	return date
}

// channelExplicit is only set when every video declares an age limit.
func channelExplicit(videos []*info.Video) string {
	adult := false
	for _, v := range videos {
		if v.AgeLimit == nil {
			return ""
		}
		if *v.AgeLimit > 0 {
			adult = true
		}
	}
	return explicitValue(adult)
}

func firstText(values ...string) string {
	for _, v := range values {
		if s := normalizeText(v); s != "" {
			return s
		}
	}
	return ""
}
