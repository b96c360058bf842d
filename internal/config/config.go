// SPDX-License-Identifier: MIT

package config

// Config is the merged configuration for one invocation.
type Config struct {
	Base   string
	Output string
	Indent string

	Channel Channel

	RequireMedia bool
	RequireItems bool
	MetricsFile  string
	Summary      bool

	LogLevel  string
	LogFormat string
}

// Channel holds overrides for channel metadata.
type Channel struct {
	Title       string
	Link        string
	Description string
	Language    string
	Author      string
	Image       string
	Category    string
	Subcategory string
	// Explicit is "", or a value accepted by validate.ParseExplicit.
	Explicit string
}

// FileConfig is the YAML representation. Unknown keys are rejected.
type FileConfig struct {
	Base         string       `yaml:"base,omitempty"`
	Output       string       `yaml:"output,omitempty"`
	Indent       string       `yaml:"indent,omitempty"`
	Channel      *FileChannel `yaml:"channel,omitempty"`
	RequireMedia *bool        `yaml:"require_media,omitempty"`
	RequireItems *bool        `yaml:"require_items,omitempty"`
	MetricsFile  string       `yaml:"metrics_file,omitempty"`
	Log          *FileLog     `yaml:"log,omitempty"`
}

type FileChannel struct {
	Title       string `yaml:"title,omitempty"`
	Link        string `yaml:"link,omitempty"`
	Description string `yaml:"description,omitempty"`
	Language    string `yaml:"language,omitempty"`
	Author      string `yaml:"author,omitempty"`
	Image       string `yaml:"image,omitempty"`
	Category    string `yaml:"category,omitempty"`
	Subcategory string `yaml:"subcategory,omitempty"`
	Explicit    string `yaml:"explicit,omitempty"`
}

type FileLog struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "auto"
)

func setDefaults(cfg *Config) {
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
