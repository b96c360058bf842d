// SPDX-License-Identifier: MIT

package config

import (
	"github.com/kevinoid/ytdl2rss/internal/feed"
	"github.com/kevinoid/ytdl2rss/internal/log"
	"github.com/kevinoid/ytdl2rss/internal/validate"
)

var webSchemes = []string{"http", "https"}

// Validate checks the merged configuration, reporting every invalid field.
// A base URL without a scheme is accepted here; the command warns about it.
func Validate(cfg Config) error {
	v := validate.New()

	v.URLReference("base", cfg.Base)
	v.OptionalURL("channel.link", cfg.Channel.Link, webSchemes)
	v.URLReference("channel.image", cfg.Channel.Image)
	v.Language("channel.language", cfg.Channel.Language)
	if cfg.Channel.Subcategory != "" {
		v.NotEmpty("channel.category", cfg.Channel.Category)
	}
	if cfg.Channel.Explicit != "" {
		if _, err := validate.ParseExplicit(cfg.Channel.Explicit); err != nil {
			v.AddError("channel.explicit", validate.ErrInvalidExplicit.Message, cfg.Channel.Explicit)
		}
	}

	v.Custom("indent", cfg.Indent, func(value any) error {
		_, err := feed.ParseIndent(value.(string))
		return err
	})

	if _, err := validate.ParseLogLevel(cfg.LogLevel); err != nil {
		v.AddError("log.level", validate.ErrInvalidLogLevel.Message, cfg.LogLevel)
	}
	v.OneOf("log.format", cfg.LogFormat, []string{log.FormatAuto, log.FormatConsole, log.FormatJSON})

	return v.Err()
}

// ExplicitValue returns the parsed channel explicit override, nil when unset.
// Call after Validate.
func (c Channel) ExplicitValue() *bool {
	if c.Explicit == "" {
		return nil
	}
	explicit, err := validate.ParseExplicit(c.Explicit)
	if err != nil {
		return nil
	}
	return &explicit
}
