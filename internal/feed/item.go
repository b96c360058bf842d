// SPDX-License-Identifier: MIT

package feed

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/kevinoid/ytdl2rss/internal/core/urlutil"
	"github.com/kevinoid/ytdl2rss/internal/info"
)

// guidNamespace scopes synthesized item GUIDs.
var guidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/kevinoid/ytdl2rss"))

// item maps one video. A non-nil error means the video is skipped.
// Recoverable problems are recorded as warnings.
func (b *builder) item(index int, v *info.Video) (Item, *int64, error) {
	if normalizeText(v.Title) == "" {
		return Item{}, nil, ErrMissingTitle
	}

	guid, err := itemGUID(v)
	if err != nil {
		return Item{}, nil, err
	}

	enclosure, err := b.enclosure(index, v)
	if err != nil {
		return Item{}, nil, err
	}

	item := Item{
		GUID:         guid,
		Title:        v.Title,
		Link:         v.WebpageURL,
		Description:  normalizeText(v.Description),
		Enclosure:    enclosure,
		ITunesAuthor: normalizeText(v.Uploader),
	}

	if v.UploadDate != "" {
		date, err := FormatDate(v.UploadDate)
		if err != nil {
			b.warn(index, v, false, err)
		} else {
			item.PubDate = date
		}
	}

	if d := v.Duration; d != nil && *d >= 0 && *d <= maxDuration {
		item.ITunesDuration = FormatDuration(*d)
	}

	if thumb := v.BestThumbnail(); thumb != "" {
		item.ITunesImage = &ITunesImage{Href: b.resolver.ResolveURL(thumb, v.Source)}
	}

	if v.AgeLimit != nil {
		item.ITunesExplicit = explicitValue(*v.AgeLimit > 0)
	}

	return item, enclosure.Length, nil
}

// itemGUID prefers the webpage URL, which is a permalink when absolute, and
// otherwise derives a stable name-based UUID from the extractor and id.
func itemGUID(v *info.Video) (GUID, error) {
	if v.WebpageURL != "" {
		return GUID{IsPermaLink: urlutil.IsAbsolute(v.WebpageURL), Value: v.WebpageURL}, nil
	}
	if v.ID == "" {
		return GUID{}, ErrMissingID
	}
	key := v.ExtractorKey
	if key == "" {
		key = v.Extractor
	}
	id := uuid.NewSHA1(guidNamespace, []byte(key+":"+v.ID))
	return GUID{Value: "urn:uuid:" + id.String()}, nil
}

func (b *builder) enclosure(index int, v *info.Video) (Enclosure, error) {
	var (
		enc     Enclosure
		fileExt string
	)
	ref := v.MediaRef()
	switch {
	case ref == "":
		return Enclosure{}, ErrNoMedia
	case ref == v.Filename:
		enc.URL = b.resolver.ResolvePath(ref, v.Source)
		fileExt = filepath.Ext(ref)

		local := urlutil.LocalPath(ref, v.Source)
		fi, err := b.stat(local)
		if err == nil && !fi.Mode().IsRegular() {
			err = fmt.Errorf("%s is not a regular file", local)
		}
		switch {
		case err == nil:
			size := fi.Size()
			enc.Length = &size
		case b.opts.RequireMedia:
			return Enclosure{}, fmt.Errorf("%w: %v", ErrMediaNotFound, err)
		default:
			b.warn(index, v, false, fmt.Errorf("%w: %v", ErrMediaNotFound, err))
		}
	default:
		enc.URL = b.resolver.ResolveURL(ref, v.Source)
		if u, err := url.Parse(ref); err == nil {
			fileExt = path.Ext(u.Path)
		}
	}

	// The downloader's size is only an estimate of the file written.
	if enc.Length == nil && v.Filesize != nil && *v.Filesize >= 0 {
		size := *v.Filesize
		enc.Length = &size
	}

	ext := v.Ext
	if ext == "" {
		ext = fileExt
	}
	mediaType, known := MediaType(ext, v.ACodec, v.VCodec)
	if !known {
		b.warn(index, v, false, fmt.Errorf("%w: extension %q", ErrUnknownMediaType, ext))
	}
	enc.Type = mediaType
	return enc, nil
}
