// SPDX-License-Identifier: MIT

// Package feed builds a podcast RSS 2.0 document from info records.
package feed

import "encoding/xml"

// XML namespaces declared on the <rss> element.
const (
	NamespaceAtom   = "http://www.w3.org/2005/Atom"
	NamespaceITunes = "http://www.itunes.com/dtds/podcast-1.0.dtd"
)

type RSS struct {
	XMLName     xml.Name `xml:"rss"`
	Version     string   `xml:"version,attr"`
	XMLNSAtom   string   `xml:"xmlns:atom,attr"`
	XMLNSITunes string   `xml:"xmlns:itunes,attr"`
	Channel     Channel  `xml:"channel"`
}

type Channel struct {
	Title          string          `xml:"title"`
	Link           string          `xml:"link"`
	Description    string          `xml:"description"`
	Language       string          `xml:"language,omitempty"`
	PubDate        string          `xml:"pubDate,omitempty"`
	Generator      string          `xml:"generator,omitempty"`
	Image          *Image          `xml:"image,omitempty"`
	AtomLink       *AtomLink       `xml:"atom:link,omitempty"`
	ITunesAuthor   string          `xml:"itunes:author,omitempty"`
	ITunesImage    *ITunesImage    `xml:"itunes:image,omitempty"`
	ITunesCategory *ITunesCategory `xml:"itunes:category,omitempty"`
	ITunesExplicit string          `xml:"itunes:explicit,omitempty"`
	Items          []Item          `xml:"item"`
}

type Image struct {
	URL   string `xml:"url"`
	Title string `xml:"title,omitempty"`
	Link  string `xml:"link,omitempty"`
}

type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type ITunesImage struct {
	Href string `xml:"href,attr"`
}

type ITunesCategory struct {
	Text        string          `xml:"text,attr"`
	Subcategory *ITunesCategory `xml:"itunes:category,omitempty"`
}

type Item struct {
	GUID           GUID         `xml:"guid"`
	Title          string       `xml:"title"`
	Link           string       `xml:"link,omitempty"`
	Description    string       `xml:"description,omitempty"`
	PubDate        string       `xml:"pubDate,omitempty"`
	Enclosure      Enclosure    `xml:"enclosure"`
	ITunesAuthor   string       `xml:"itunes:author,omitempty"`
	ITunesImage    *ITunesImage `xml:"itunes:image,omitempty"`
	ITunesDuration string       `xml:"itunes:duration,omitempty"`
	ITunesExplicit string       `xml:"itunes:explicit,omitempty"`
}

type GUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Enclosure describes the media file attached to an item. Length is
// omitted when the size is unknown.
type Enclosure struct {
	URL    string `xml:"url,attr"`
	Length *int64 `xml:"length,attr,omitempty"`
	Type   string `xml:"type,attr"`
}
