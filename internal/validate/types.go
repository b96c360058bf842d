// SPDX-License-Identifier: MIT

package validate

import "strings"

// LogLevel represents valid log levels
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid checks if the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (l LogLevel) String() string {
	return string(l)
}

// ParseLogLevel parses a case-insensitive string into a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	level := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	if !level.IsValid() {
		return "", ErrInvalidLogLevel
	}
	return level, nil
}

// Explicit values accepted for the channel <itunes:explicit> override.
var explicitValues = map[string]bool{
	"yes":   true,
	"true":  true,
	"no":    false,
	"false": false,
	"clean": false,
}

// ParseExplicit parses an explicit-content flag.
func ParseExplicit(s string) (bool, error) {
	explicit, ok := explicitValues[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false, ErrInvalidExplicit
	}
	return explicit, nil
}

// Common validation errors
var (
	ErrInvalidLogLevel = &Error{
		Field:   "logLevel",
		Message: "invalid log level (must be: trace, debug, info, warn, error)",
	}
	ErrInvalidExplicit = &Error{
		Field:   "explicit",
		Message: "invalid explicit value (must be: yes, no, clean, true, false)",
	}
)
