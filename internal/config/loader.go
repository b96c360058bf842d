// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath string
}

// NewLoader creates a new configuration loader. configPath may be empty.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// Load loads configuration with precedence: ENV > File > Defaults.
// Flags are applied by the caller, which then calls Validate.
func (l *Loader) Load() (Config, error) {
	cfg := Config{}
	setDefaults(&cfg)

	if l.configPath != "" {
		fileCfg, err := loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		mergeFileConfig(&cfg, fileCfg)
	}

	mergeEnvConfig(&cfg)
	return cfg, nil
}

// loadFile loads configuration from a YAML file with STRICT parsing.
// Unknown fields will cause a fatal error to prevent misconfiguration.
func loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, ErrMultipleDocuments
	}

	return &fileCfg, nil
}

func mergeFileConfig(cfg *Config, f *FileConfig) {
	setString(&cfg.Base, f.Base)
	setString(&cfg.Output, f.Output)
	setString(&cfg.Indent, f.Indent)
	setString(&cfg.MetricsFile, f.MetricsFile)
	if f.RequireMedia != nil {
		cfg.RequireMedia = *f.RequireMedia
	}
	if f.RequireItems != nil {
		cfg.RequireItems = *f.RequireItems
	}
	if c := f.Channel; c != nil {
		setString(&cfg.Channel.Title, c.Title)
		setString(&cfg.Channel.Link, c.Link)
		setString(&cfg.Channel.Description, c.Description)
		setString(&cfg.Channel.Language, c.Language)
		setString(&cfg.Channel.Author, c.Author)
		setString(&cfg.Channel.Image, c.Image)
		setString(&cfg.Channel.Category, c.Category)
		setString(&cfg.Channel.Subcategory, c.Subcategory)
		setString(&cfg.Channel.Explicit, c.Explicit)
	}
	if f.Log != nil {
		setString(&cfg.LogLevel, f.Log.Level)
		setString(&cfg.LogFormat, f.Log.Format)
	}
}

func mergeEnvConfig(cfg *Config) {
	cfg.Base = ParseString(EnvBase, cfg.Base)
	cfg.Channel.Title = ParseString(EnvTitle, cfg.Channel.Title)
	cfg.Channel.Link = ParseString(EnvLink, cfg.Channel.Link)
	cfg.Channel.Description = ParseString(EnvDescription, cfg.Channel.Description)
	cfg.Channel.Language = ParseString(EnvLanguage, cfg.Channel.Language)
	cfg.Channel.Author = ParseString(EnvAuthor, cfg.Channel.Author)
	cfg.Channel.Category = ParseString(EnvCategory, cfg.Channel.Category)
	cfg.LogLevel = ParseString(EnvLogLevel, cfg.LogLevel)
	cfg.RequireMedia = ParseBool(EnvRequireMedia, cfg.RequireMedia)
	cfg.RequireItems = ParseBool(EnvRequireItems, cfg.RequireItems)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
