// SPDX-License-Identifier: MIT

// Package version holds the release version of ytdl2rss.
package version

// Version is the current application version.
const Version = "0.1.0"

// Name is the program name reported in the feed generator element.
const Name = "ytdl2rss"

// Generator returns the value of the RSS <generator> element.
func Generator() string {
	return Name + " " + Version
}
