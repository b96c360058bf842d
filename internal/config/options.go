// SPDX-License-Identifier: MIT

package config

import "github.com/kevinoid/ytdl2rss/internal/feed"

// FeedOptions returns the builder options for cfg.
func (c Config) FeedOptions() feed.Options {
	return feed.Options{
		Base:       c.Base,
		OutputPath: c.Output,
		Channel: feed.ChannelOverrides{
			Title:       c.Channel.Title,
			Link:        c.Channel.Link,
			Description: c.Channel.Description,
			Language:    c.Channel.Language,
			Author:      c.Channel.Author,
			Image:       c.Channel.Image,
			Category:    c.Channel.Category,
			Subcategory: c.Channel.Subcategory,
			Explicit:    c.Channel.ExplicitValue(),
		},
		RequireMedia: c.RequireMedia,
	}
}
