// SPDX-License-Identifier: MIT

// Package info decodes youtube-dl / yt-dlp info JSON into typed records.
//
// Every JSON value is classified exactly once, at decode time, as either a
// Video or a Playlist. Nothing downstream of this package sees raw JSON.
package info

// Record is a decoded info JSON value: either *Video or *Playlist.
type Record interface {
	// SourcePath is the path of the JSON file the record was read from,
	// or "-" for standard input.
	SourcePath() string
	isRecord()
}

// Thumbnail is one entry of the thumbnails list.
type Thumbnail struct {
	URL        string
	Width      int
	Height     int
	Preference float64
}

// Video is the info for a single downloaded video.
type Video struct {
	ID           string
	Title        string
	Description  string
	WebpageURL   string
	UploadDate   string // YYYYMMDD
	Duration     *float64
	Thumbnail    string
	Thumbnails   []Thumbnail
	Uploader     string
	UploaderID   string
	UploaderURL  string
	ChannelURL   string
	Extractor    string
	ExtractorKey string

	// Ext, ACodec and VCodec describe the downloaded media file.
	Ext    string
	ACodec string
	VCodec string
	// Filename is the path of the downloaded media file, relative to the
	// working directory of the downloader.
	Filename string
	// URL is the direct media URL, used when no file was written.
	URL      string
	Filesize *int64
	AgeLimit *int

	PlaylistID         string
	PlaylistTitle      string
	PlaylistUploader   string
	PlaylistUploaderID string

	Source string
}

// Playlist groups videos with shared channel level metadata.
type Playlist struct {
	ID          string
	Title       string
	Description string
	WebpageURL  string
	UploadDate  string
	Thumbnail   string
	Thumbnails  []Thumbnail
	Uploader    string
	UploaderID  string

	// Entries holds the decoded entries in playlist order. Nested
	// playlists are kept as *Playlist.
	Entries []Record
	// Unavailable lists the indexes of null entries, which yt-dlp writes
	// for deleted or private videos.
	Unavailable []int

	Source string
}

func (*Video) isRecord()    {}
func (*Playlist) isRecord() {}

// SourcePath implements Record.
func (v *Video) SourcePath() string { return v.Source }

// SourcePath implements Record.
func (p *Playlist) SourcePath() string { return p.Source }

// MediaRef returns the reference to the downloaded media: the written file
// when known, otherwise the direct media URL.
func (v *Video) MediaRef() string {
	return coalesce(v.Filename, v.URL)
}

// BestThumbnail returns the thumbnail field if set, otherwise the
// highest resolution (then highest preference) entry of Thumbnails.
func (v *Video) BestThumbnail() string {
	return bestThumbnail(v.Thumbnail, v.Thumbnails)
}

// BestThumbnail is the playlist equivalent of Video.BestThumbnail.
func (p *Playlist) BestThumbnail() string {
	return bestThumbnail(p.Thumbnail, p.Thumbnails)
}

func bestThumbnail(thumbnail string, thumbnails []Thumbnail) string {
	if thumbnail != "" {
		return thumbnail
	}

	var best Thumbnail
	for _, t := range thumbnails {
		if t.URL == "" {
			continue
		}
		area, bestArea := t.Width*t.Height, best.Width*best.Height
		if best.URL == "" || area > bestArea ||
			(area == bestArea && t.Preference > best.Preference) {
			best = t
		}
	}
	return best.URL
}

// Videos flattens records into the ordered list of videos they contain.
// Playlists are expanded in place, recursively.
func Videos(records []Record) []*Video {
	var out []*Video
	for _, r := range records {
		switch r := r.(type) {
		case *Video:
			out = append(out, r)
		case *Playlist:
			out = append(out, Videos(r.Entries)...)
		}
	}
	return out
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
