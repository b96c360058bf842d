// SPDX-License-Identifier: MIT

package feed

import (
	"fmt"
	"math"
	"strings"
	"time"

	unorm "golang.org/x/text/unicode/norm"
)

const uploadDateLayout = "20060102"

// maxDuration bounds durations written to <itunes:duration>. Larger values
// come from malformed input and do not fit in an int64 number of seconds.
const maxDuration = 1e12

// FormatDuration formats seconds for <itunes:duration>: HH:MM:SS from one
// hour up, MM:SS below. Fractional seconds are rounded.
func FormatDuration(seconds float64) string {
	total := int64(math.Round(seconds))
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatDate converts a YYYYMMDD upload date to an RFC 2822 date at
// midnight. The -0000 offset marks the time zone as unknown (RFC 2822
// section 3.3).
func FormatDate(yyyymmdd string) (string, error) {
	t, err := parseUploadDate(yyyymmdd)
	if err != nil {
		return "", err
	}
	return t.Format("Mon, 02 Jan 2006") + " 00:00:00 -0000", nil
}

func parseUploadDate(s string) (time.Time, error) {
	if len(s) != len(uploadDateLayout) || strings.Trim(s, "0123456789") != "" {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYYMMDD", ErrInvalidUploadDate, s)
	}
	t, err := time.Parse(uploadDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidUploadDate, s, err)
	}
	return t, nil
}

// normalizeText converts text to NFC and trims surrounding whitespace.
func normalizeText(s string) string {
	return strings.TrimSpace(unorm.NFC.String(s))
}

// explicitValue maps an age limit to <itunes:explicit>. yes/clean is
// accepted by Apple, Spotify and the W3C feed validator.
func explicitValue(adult bool) string {
	if adult {
		return "yes"
	}
	return "clean"
}
