// SPDX-License-Identifier: MIT

package main

import "errors"

// Process exit codes.
const (
	exitOK      = 0
	exitFatal   = 1
	exitUsage   = 2
	exitNoItems = 3
)

var (
	errNoInputs    = errors.New("no input files")
	errNoItems     = errors.New("feed has no items")
	errWatchStdin  = errors.New("watch cannot read standard input")
	errWatchOutput = errors.New("watch requires --output")
)

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

func noItemsError() error {
	return &exitError{code: exitNoItems, err: errNoItems}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFatal
}
