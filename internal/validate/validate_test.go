// SPDX-License-Identifier: MIT
package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name           string
		value          string
		allowedSchemes []string
		wantErr        bool
	}{
		{"valid http", "http://example.com", []string{"http", "https"}, false},
		{"valid https", "https://example.com/feed.xml", []string{"http", "https"}, false},
		{"empty url", "", []string{"http"}, true},
		{"no host", "http://", []string{"http"}, true},
		{"invalid scheme", "ftp://example.com", []string{"http", "https"}, true},
		{"no scheme", "example.com", []string{"http"}, true},
		{"bad host", "http://exa mple.com", nil, true},
		{"with port", "http://example.com:8080", []string{"http"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.URL("testURL", tt.value, tt.allowedSchemes)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_OptionalURL(t *testing.T) {
	v := New()
	v.OptionalURL("link", "", []string{"https"})
	if !v.IsValid() {
		t.Fatalf("empty optional URL should be valid: %v", v.Err())
	}
	v.OptionalURL("link", "/relative", []string{"https"})
	if v.IsValid() {
		t.Fatal("relative optional URL should be invalid")
	}
}

func TestValidator_URLReference(t *testing.T) {
	v := New()
	v.URLReference("image", "")
	v.URLReference("image", "cover.jpg")
	v.URLReference("image", "https://example.com/cover.jpg")
	if !v.IsValid() {
		t.Fatalf("unexpected error: %v", v.Err())
	}
	v.URLReference("image", "%zz")
	if v.IsValid() {
		t.Fatal("expected error for bad escape")
	}
}

func TestValidator_Language(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false},
		{"en", false},
		{"en-US", false},
		{"de-AT", false},
		{"zh-Hant-TW", false},
		{"a", true},
		{"not a tag", true},
		{"toolongsubtag", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v := New()
			v.Language("language", tt.value)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_NotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"non-empty", "hello", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"tab only", "\t", true},
		{"newline only", "\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.NotEmpty("testField", tt.value)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_OneOf(t *testing.T) {
	allowed := []string{"auto", "console", "json"}

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"auto", false},
		{"json", false},
		{"JSON", true},
		{"", true},
	}

	for _, tt := range tests {
		v := New()
		v.OneOf("logFormat", tt.value, allowed)
		if tt.wantErr == v.IsValid() {
			t.Errorf("OneOf(%q): wantErr %v, err %v", tt.value, tt.wantErr, v.Err())
		}
	}
}

func TestValidator_Custom(t *testing.T) {
	minLen := func(v any) error {
		s, ok := v.(string)
		if !ok {
			return errors.New("expected string value")
		}
		if len(s) >= 3 {
			return nil
		}
		return errors.New("too short")
	}

	v := New()
	v.Custom("testField", "hello", minLen)
	if !v.IsValid() {
		t.Errorf("unexpected error: %v", v.Err())
	}
	v.Custom("testField", "hi", minLen)
	if v.IsValid() {
		t.Errorf("expected error, got none")
	}
}

func TestValidator_MultipleErrors(t *testing.T) {
	v := New()

	v.URL("base", "", []string{"http"})
	v.Language("language", "not a tag")
	v.NotEmpty("title", "")

	if v.IsValid() {
		t.Fatal("expected errors, got none")
	}
	err := v.Err()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var verr ValidationError
	if !errors.As(err, &verr) || len(verr.Errors()) != 3 {
		t.Fatalf("expected ValidationError with 3 errors, got %#v", err)
	}
	for _, field := range []string{"base", "language", "title"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error message should mention %q: %s", field, err)
		}
	}
}

func TestValidator_ErrIsNilWhenValid(t *testing.T) {
	v := New()
	v.URL("base", "https://example.com/feed.xml", []string{"http", "https"})
	v.Language("language", "en")
	if err := v.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLogLevel_IsValid(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  bool
	}{
		{LogLevelTrace, true},
		{LogLevelDebug, true},
		{LogLevelInfo, true},
		{LogLevelWarn, true},
		{LogLevelError, true},
		{LogLevel("invalid"), false},
		{LogLevel(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{" warn ", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"invalid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseExplicit(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"True", true, false},
		{"no", false, false},
		{"clean", false, false},
		{"false", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		got, err := ParseExplicit(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseExplicit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseExplicit(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
