// SPDX-License-Identifier: MIT

package info

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// StdinPath is the path argument denoting standard input.
const StdinPath = "-"

const defaultMaxDepth = 8

// Loader reads info JSON files and standard input into records.
type Loader struct {
	// Stdin is read when the path "-" is loaded. Defaults to os.Stdin.
	Stdin io.Reader
	// ReadFile reads an input file. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
	// MaxDepth bounds how deeply playlist file references may nest.
	MaxDepth int

	stdinUsed bool
}

// NewLoader returns a Loader reading from the process stdin and filesystem.
func NewLoader() *Loader {
	return &Loader{
		Stdin:    os.Stdin,
		ReadFile: os.ReadFile,
		MaxDepth: defaultMaxDepth,
	}
}

// Load reads every path in order and returns the records in input order.
// Any failure aborts the whole load.
func (l *Loader) Load(paths []string) ([]Record, error) {
	var out []Record
	for _, path := range paths {
		recs, err := l.LoadPath(path)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

// LoadPath reads a single path. "-" reads standard input, at most once per
// Loader.
func (l *Loader) LoadPath(path string) ([]Record, error) {
	return l.load(path, 0)
}

func (l *Loader) load(path string, depth int) ([]Record, error) {
	if depth > l.maxDepth() {
		return nil, &LoadError{Source: path, Err: ErrReferenceDepth}
	}

	d := &decoder{
		loadRef: func(ref, source string) ([]Record, error) {
			return l.load(resolveRef(ref, source), depth+1)
		},
	}

	if path == StdinPath && depth == 0 {
		if l.stdinUsed {
			return nil, ErrStdinReused
		}
		l.stdinUsed = true

		stdin := l.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		recs, err := d.decodeStream(stdin, StdinPath)
		if err != nil {
			return nil, &LoadError{Source: "<stdin>", Err: err}
		}
		return recs, nil
	}

	readFile := l.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	// #nosec G304 -- input paths are provided by the operator on the command line
	data, err := readFile(filepath.Clean(path))
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	recs, err := d.decodeStream(bytes.NewReader(data), path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return recs, nil
}

func (l *Loader) maxDepth() int {
	if l.MaxDepth > 0 {
		return l.MaxDepth
	}
	return defaultMaxDepth
}

// resolveRef interprets ref relative to the directory of source.
func resolveRef(ref, source string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	dir := "."
	if source != StdinPath {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, ref)
}
