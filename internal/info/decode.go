// SPDX-License-Identifier: MIT

package info

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// probe is the minimal view used to classify a JSON object.
type probe struct {
	Type    looseString     `json:"_type"`
	Entries json.RawMessage `json:"entries"`
	Formats json.RawMessage `json:"formats"`
}

type rawThumbnail struct {
	URL        looseString `json:"url"`
	Width      looseNumber `json:"width"`
	Height     looseNumber `json:"height"`
	Preference looseNumber `json:"preference"`
}

type rawDownload struct {
	Filepath looseString `json:"filepath"`
	Filename looseString `json:"_filename"`
}

type rawVideo struct {
	ID                 looseString    `json:"id"`
	Title              looseString    `json:"title"`
	Description        looseString    `json:"description"`
	WebpageURL         looseString    `json:"webpage_url"`
	UploadDate         looseString    `json:"upload_date"`
	Duration           looseNumber    `json:"duration"`
	Thumbnail          looseString    `json:"thumbnail"`
	Thumbnails         []rawThumbnail `json:"thumbnails"`
	Uploader           looseString    `json:"uploader"`
	UploaderID         looseString    `json:"uploader_id"`
	UploaderURL        looseString    `json:"uploader_url"`
	ChannelURL         looseString    `json:"channel_url"`
	Extractor          looseString    `json:"extractor"`
	ExtractorKey       looseString    `json:"extractor_key"`
	Ext                looseString    `json:"ext"`
	ACodec             looseString    `json:"acodec"`
	VCodec             looseString    `json:"vcodec"`
	Filename           looseString    `json:"_filename"`
	PlainFilename      looseString    `json:"filename"`
	RequestedDownloads []rawDownload  `json:"requested_downloads"`
	URL                looseString    `json:"url"`
	Filesize           looseNumber    `json:"filesize"`
	FilesizeApprox     looseNumber    `json:"filesize_approx"`
	AgeLimit           looseNumber    `json:"age_limit"`
	PlaylistID         looseString    `json:"playlist_id"`
	PlaylistTitle      looseString    `json:"playlist_title"`
	PlaylistUploader   looseString    `json:"playlist_uploader"`
	PlaylistUploaderID looseString    `json:"playlist_uploader_id"`
}

type rawPlaylist struct {
	ID          looseString       `json:"id"`
	Title       looseString       `json:"title"`
	Description looseString       `json:"description"`
	WebpageURL  looseString       `json:"webpage_url"`
	UploadDate  looseString       `json:"upload_date"`
	Thumbnail   looseString       `json:"thumbnail"`
	Thumbnails  []rawThumbnail    `json:"thumbnails"`
	Uploader    looseString       `json:"uploader"`
	UploaderID  looseString       `json:"uploader_id"`
	Entries     []json.RawMessage `json:"entries"`
}

// decoder turns JSON values into records. loadRef, when set, loads
// playlist entries that name another info JSON file.
type decoder struct {
	loadRef func(ref, source string) ([]Record, error)
}

// Decode decodes every JSON value in data. A top-level array yields one
// record per element. Playlist entries referencing other files are
// rejected with ErrUnresolvedReference; use a Loader to follow them.
func Decode(data []byte, source string) ([]Record, error) {
	return DecodeStream(bytes.NewReader(data), source)
}

// DecodeStream decodes a stream of concatenated JSON values, as written by
// yt-dlp --print-json or -j for multiple videos.
func DecodeStream(r io.Reader, source string) ([]Record, error) {
	d := &decoder{}
	return d.decodeStream(r, source)
}

func (d *decoder) decodeStream(r io.Reader, source string) ([]Record, error) {
	dec := json.NewDecoder(r)
	var out []Record
	values := 0
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode JSON value %d: %w", values+1, err)
		}
		values++

		recs, err := d.decodeTop(raw, source)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	if values == 0 {
		return nil, fmt.Errorf("%w: no JSON value", ErrUnrecognized)
	}
	return out, nil
}

func (d *decoder) decodeTop(raw json.RawMessage, source string) ([]Record, error) {
	if jsonKind(raw) != "array" {
		rec, err := d.decodeValue(raw, source)
		if err != nil {
			return nil, err
		}
		return []Record{rec}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(elems))
	for i, elem := range elems {
		rec, err := d.decodeValue(elem, source)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (d *decoder) decodeValue(raw json.RawMessage, source string) (Record, error) {
	if kind := jsonKind(raw); kind != "object" {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrUnrecognized, kind)
	}

	var p probe
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	hasEntries := jsonKind(p.Entries) == "array"
	hasFormats := jsonKind(p.Formats) == "array"
	if hasEntries && hasFormats {
		return nil, fmt.Errorf("%w: object has both entries and formats", ErrUnrecognized)
	}
	if hasEntries || p.Type == "playlist" {
		return d.decodePlaylist(raw, source)
	}
	return decodeVideo(raw, source)
}

func (d *decoder) decodePlaylist(raw json.RawMessage, source string) (*Playlist, error) {
	var rp rawPlaylist
	if err := json.Unmarshal(raw, &rp); err != nil {
		return nil, fmt.Errorf("decode playlist: %w", err)
	}

	p := &Playlist{
		ID:          string(rp.ID),
		Title:       string(rp.Title),
		Description: string(rp.Description),
		WebpageURL:  string(rp.WebpageURL),
		UploadDate:  string(rp.UploadDate),
		Thumbnail:   string(rp.Thumbnail),
		Thumbnails:  thumbnails(rp.Thumbnails),
		Uploader:    string(rp.Uploader),
		UploaderID:  string(rp.UploaderID),
		Entries:     make([]Record, 0, len(rp.Entries)),
		Source:      source,
	}

	for i, entry := range rp.Entries {
		switch jsonKind(entry) {
		case "null":
			p.Unavailable = append(p.Unavailable, i)
		case "string":
			if d.loadRef == nil {
				return nil, fmt.Errorf("entry %d: %w", i, ErrUnresolvedReference)
			}
			var ref string
			if err := json.Unmarshal(entry, &ref); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			recs, err := d.loadRef(ref, source)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			p.Entries = append(p.Entries, recs...)
		default:
			rec, err := d.decodeValue(entry, source)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			p.Entries = append(p.Entries, rec)
		}
	}
	return p, nil
}

func decodeVideo(raw json.RawMessage, source string) (*Video, error) {
	var rv rawVideo
	if err := json.Unmarshal(raw, &rv); err != nil {
		return nil, fmt.Errorf("decode video: %w", err)
	}

	filename := coalesce(string(rv.Filename), string(rv.PlainFilename))
	if filename == "" {
		for _, dl := range rv.RequestedDownloads {
			if filename = coalesce(string(dl.Filepath), string(dl.Filename)); filename != "" {
				break
			}
		}
	}

	v := &Video{
		ID:                 string(rv.ID),
		Title:              string(rv.Title),
		Description:        string(rv.Description),
		WebpageURL:         string(rv.WebpageURL),
		UploadDate:         string(rv.UploadDate),
		Duration:           rv.Duration.ptr(),
		Thumbnail:          string(rv.Thumbnail),
		Thumbnails:         thumbnails(rv.Thumbnails),
		Uploader:           string(rv.Uploader),
		UploaderID:         string(rv.UploaderID),
		UploaderURL:        string(rv.UploaderURL),
		ChannelURL:         string(rv.ChannelURL),
		Extractor:          string(rv.Extractor),
		ExtractorKey:       string(rv.ExtractorKey),
		Ext:                string(rv.Ext),
		ACodec:             string(rv.ACodec),
		VCodec:             string(rv.VCodec),
		Filename:           filename,
		URL:                string(rv.URL),
		PlaylistID:         string(rv.PlaylistID),
		PlaylistTitle:      string(rv.PlaylistTitle),
		PlaylistUploader:   string(rv.PlaylistUploader),
		PlaylistUploaderID: string(rv.PlaylistUploaderID),
		Source:             source,
	}
	if size, ok := rv.Filesize.integer(); ok {
		v.Filesize = &size
	} else if size, ok := rv.FilesizeApprox.integer(); ok {
		v.Filesize = &size
	}
	if age, ok := rv.AgeLimit.integer(); ok {
		a := int(age)
		v.AgeLimit = &a
	}
	return v, nil
}

func thumbnails(raw []rawThumbnail) []Thumbnail {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Thumbnail, 0, len(raw))
	for _, t := range raw {
		out = append(out, Thumbnail{
			URL:        string(t.URL),
			Width:      int(t.Width.value),
			Height:     int(t.Height.value),
			Preference: t.Preference.value,
		})
	}
	return out
}

// jsonKind names the type of a JSON value from its first byte.
func jsonKind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "missing"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}

// looseString accepts strings, numbers, booleans and null. Extractors are
// not consistent about the JSON types of identifiers and dates.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	switch kind := jsonKind(b); kind {
	case "null":
		*s = ""
	case "string":
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case "number", "boolean":
		*s = looseString(bytes.TrimSpace(b))
	default:
		return fmt.Errorf("expected string, got %s", kind)
	}
	return nil
}

// looseNumber accepts numbers, numeric strings and null.
type looseNumber struct {
	value float64
	valid bool
}

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	switch kind := jsonKind(b); kind {
	case "null":
		*n = looseNumber{}
	case "number":
		v, err := strconv.ParseFloat(string(bytes.TrimSpace(b)), 64)
		if err != nil {
			return err
		}
		*n = looseNumber{value: v, valid: true}
	case "string":
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// Non-numeric strings are treated as unknown.
			*n = looseNumber{}
			return nil
		}
		*n = looseNumber{value: v, valid: true}
	default:
		return fmt.Errorf("expected number, got %s", kind)
	}
	return nil
}

func (n looseNumber) ptr() *float64 {
	if !n.valid {
		return nil
	}
	v := n.value
	return &v
}

func (n looseNumber) integer() (int64, bool) {
	if !n.valid {
		return 0, false
	}
	return int64(n.value), true
}
