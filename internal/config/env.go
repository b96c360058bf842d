// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kevinoid/ytdl2rss/internal/log"
)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "YTDL2RSS_"

// Environment variables.
const (
	EnvBase        = EnvPrefix + "BASE"
	EnvTitle       = EnvPrefix + "TITLE"
	EnvLink        = EnvPrefix + "LINK"
	EnvDescription = EnvPrefix + "DESCRIPTION"
	EnvLanguage    = EnvPrefix + "LANGUAGE"
	EnvAuthor      = EnvPrefix + "AUTHOR"
	EnvCategory    = EnvPrefix + "CATEGORY"
	EnvLogLevel    = EnvPrefix + "LOG_LEVEL"

	EnvRequireMedia = EnvPrefix + "REQUIRE_MEDIA"
	EnvRequireItems = EnvPrefix + "REQUIRE_ITEMS"
)

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		if value == "" {
			logger.Debug().
				Str("key", key).
				Str("default", defaultValue).
				Str("source", "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		logger.Debug().
			Str("key", key).
			Str("value", value).
			Str("source", "environment").
			Msg("using environment variable")
		return value
	}
	logger.Trace().
		Str("key", key).
		Str("default", defaultValue).
		Str("source", "default").
		Msg("using default value")
	return defaultValue
}

// ParseBool reads a boolean from environment variable or returns default value.
// It accepts "true", "false", "1", "0", "yes", "no" (case-insensitive).
func ParseBool(key string, defaultValue bool) bool {
	logger := log.WithComponent("config")
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		logger.Debug().Str("key", key).Bool("value", true).Str("source", "environment").Msg("using environment variable")
		return true
	case "false", "0", "no":
		logger.Debug().Str("key", key).Bool("value", false).Str("source", "environment").Msg("using environment variable")
		return false
	default:
		logger.Warn().
			Str("key", key).
			Str("value", v).
			Bool("default", defaultValue).
			Msg("invalid boolean in environment variable, using default")
		return defaultValue
	}
}
