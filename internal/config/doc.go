// SPDX-License-Identifier: MIT

// Package config loads ytdl2rss options.
//
// Precedence, lowest first: built-in defaults, the YAML file named by
// --config, YTDL2RSS_* environment variables, then command line flags.
// Flags are applied by the command after Load returns; Validate is run on
// the merged result.
package config
