// SPDX-License-Identifier: MIT

package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Encode serializes the feed as a UTF-8 XML document. An empty indent
// produces the document on a single line after the XML declaration.
func (r *Result) Encode(indent string) ([]byte, error) {
	if r == nil || r.RSS == nil {
		return nil, errors.New("encode feed: no document")
	}
	out, err := xml.MarshalIndent(r.RSS, "", indent)
	if err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}

	doc := make([]byte, 0, len(xmlHeader)+len(out)+1)
	doc = append(doc, xmlHeader...)
	doc = append(doc, out...)
	doc = append(doc, '\n')
	return doc, nil
}

// ParseIndent converts an indent option to the indent string. A number is
// a count of spaces, anything else is used as-is.
func ParseIndent(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		if strings.Trim(s, " \t") != "" {
			return "", fmt.Errorf("indent must be a number or spaces and tabs: %q", s)
		}
		return s, nil
	}
	if n < 0 {
		return "", fmt.Errorf("indent must not be negative: %d", n)
	}
	return strings.Repeat(" ", n), nil
}
