// SPDX-License-Identifier: MIT

package info

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognized indicates a JSON value that is neither video nor playlist info.
	ErrUnrecognized = errors.New("unrecognized info JSON")
	// ErrStdinReused indicates "-" was given more than once.
	ErrStdinReused = errors.New("standard input may only be read once")
	// ErrReferenceDepth indicates playlist file references nested too deeply,
	// usually a reference cycle.
	ErrReferenceDepth = errors.New("playlist file references nested too deeply")
	// ErrUnresolvedReference indicates a playlist entry naming a file was
	// decoded without a loader to read it.
	ErrUnresolvedReference = errors.New("playlist entry references a file but no loader is configured")
)

// LoadError wraps a failure to read or decode one input.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
