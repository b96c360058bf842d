// SPDX-License-Identifier: MIT

// Package urlutil resolves file paths and URLs found in info JSON into the
// URLs written to the feed.
package urlutil

import (
	"net/url"
	"path/filepath"
)

// SanitizeURL removes user info from a URL string for safe logging.
func SanitizeURL(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "invalid-url-redacted"
	}
	parsedURL.User = nil
	parsedURL.RawQuery = ""
	return parsedURL.String()
}

// IsAbsolute reports whether rawURL parses and carries a scheme.
func IsAbsolute(rawURL string) bool {
	u, err := url.Parse(rawURL)
	return err == nil && u.Scheme != ""
}

// Resolver maps references relative to an input JSON file to URLs relative
// to the feed, which is served from Base.
type Resolver struct {
	// Base is the URL at which the feed is served. May be nil, in which
	// case resolved references stay relative.
	Base *url.URL
	// OutputPath is the path the feed is written to. Empty means standard
	// output, and references are made relative to the working directory.
	OutputPath string
}

// NewResolver parses base and returns a Resolver for a feed written to
// outputPath.
func NewResolver(base, outputPath string) (*Resolver, error) {
	r := &Resolver{OutputPath: outputPath}
	if base != "" {
		u, err := url.Parse(base)
		if err != nil {
			return nil, err
		}
		r.Base = u
	}
	return r, nil
}

// ResolvePath resolves a filesystem path found in the JSON file at source
// ("-" for standard input) to a URL.
func (r *Resolver) ResolvePath(path, source string) string {
	if path == "" {
		return ""
	}
	rel := r.relativeToOutput(path, source)
	ref := &url.URL{Path: filepath.ToSlash(rel)}
	if r.Base == nil {
		return ref.String()
	}
	return r.Base.ResolveReference(ref).String()
}

// ResolveURL resolves a URL found in the JSON file at source. Absolute URLs
// are returned unchanged, scheme-relative URLs are resolved against Base and
// anything else is treated as a percent-encoded path.
func (r *Resolver) ResolveURL(ref, source string) string {
	if ref == "" || filepath.IsAbs(ref) {
		return r.ResolvePath(ref, source)
	}
	u, err := url.Parse(ref)
	if err != nil {
		return r.ResolvePath(ref, source)
	}
	if u.Scheme != "" {
		return ref
	}
	if u.Host != "" {
		if r.Base == nil {
			return ref
		}
		return r.Base.ResolveReference(u).String()
	}
	return r.ResolvePath(filepath.FromSlash(u.Path), source)
}

// LocalPath returns the filesystem path, relative to the working directory,
// of a path found in the JSON file at source.
func LocalPath(path, source string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(sourceDir(source), path)
}

func (r *Resolver) relativeToOutput(path, source string) string {
	target := LocalPath(path, source)
	outDir := "."
	if r.OutputPath != "" {
		outDir = filepath.Dir(r.OutputPath)
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return target
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return target
	}
	rel, err := filepath.Rel(absOut, absTarget)
	if err != nil {
		return absTarget
	}
	return rel
}

func sourceDir(source string) string {
	if source == "" || source == "-" {
		return "."
	}
	return filepath.Dir(source)
}
