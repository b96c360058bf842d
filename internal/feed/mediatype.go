// SPDX-License-Identifier: MIT

package feed

import "strings"

// DefaultMediaType is used for extensions missing from the table.
const DefaultMediaType = "application/octet-stream"

// MediaType returns the MIME type, with an RFC 6381 codecs parameter when
// codecs are known, for a media file with extension ext and the given
// audio/video codecs as reported by youtube-dl. Codec "none" means the
// stream is absent. The boolean is false when ext is not recognised, in
// which case DefaultMediaType is returned.
func MediaType(ext, acodec, vcodec string) (string, bool) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	acodec = normalizeCodec(acodec)
	vcodec = normalizeCodec(vcodec)
	noCodec := acodec == "" && vcodec == ""

	prefix := "video/"
	if acodec != "" && vcodec == "" {
		prefix = "audio/"
	}

	var mediaType string
	switch ext {
	case "3g2":
		mediaType = prefix + "3gpp2"
	case "3gp":
		mediaType = prefix + "3gpp"
	case "avi":
		mediaType = "video/vnd.avi"
	case "f4a", "f4b", "f4p", "m4a", "m4b", "m4p", "m4r":
		// Audio extensions: assume audio when codecs are unknown.
		if noCodec {
			mediaType = "audio/mp4"
		} else {
			mediaType = prefix + "mp4"
		}
	case "f4v", "m4v", "mp4":
		mediaType = prefix + "mp4"
	case "flv":
		mediaType = "video/x-flv"
	case "gif":
		mediaType = "image/gif"
	case "mk3d", "mks", "mkv":
		mediaType = prefix + "x-matroska"
	case "mka":
		if noCodec {
			mediaType = "audio/x-matroska"
		} else {
			mediaType = prefix + "x-matroska"
		}
	case "mp3":
		mediaType = "audio/mpeg"
	case "ogg":
		// Xiph recommends .ogg for audio and .ogv for video.
		if vcodec == "" {
			mediaType = "audio/ogg"
		} else {
			mediaType = prefix + "ogg"
		}
	case "opus":
		// .opus is Opus in Ogg, per https://wiki.xiph.org/MIMETypesCodecs
		mediaType = "audio/ogg"
		if acodec == "" {
			acodec = "opus"
		}
	case "ogv":
		mediaType = prefix + "ogg"
	case "wav":
		mediaType = "audio/vnd.wave"
	case "webm":
		mediaType = prefix + "webm"
	case "aac":
		mediaType = "audio/aac"
	case "flac":
		mediaType = "audio/flac"
	case "mov":
		mediaType = "video/quicktime"
	default:
		return DefaultMediaType, false
	}

	if (acodec == "" && vcodec == "") || ext == "flv" || ext == "gif" || ext == "mp3" {
		return mediaType, true
	}

	// Space after ; and , as in RFC 6381 section 3.6 examples.
	switch {
	case acodec != "" && vcodec != "":
		return mediaType + `; codecs="` + vcodec + ", " + acodec + `"`, true
	case acodec != "":
		return mediaType + "; codecs=" + acodec, true
	default:
		return mediaType + "; codecs=" + vcodec, true
	}
}

func normalizeCodec(codec string) string {
	codec = strings.TrimSpace(codec)
	switch strings.ToLower(codec) {
	case "none":
		return ""
	case "h264":
		// RFC 6381 names H.264 by its sample entry.
		return "avc1"
	}
	return codec
}
