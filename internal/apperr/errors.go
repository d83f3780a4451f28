// Package apperr defines the failure categories of the pipeline. All of them
// are non-fatal: callers log the error and substitute a safe default.
package apperr

import "errors"

var (
	ErrRead       = errors.New("read failure")
	ErrSizeLookup = errors.New("size lookup failure")
	ErrWrite      = errors.New("write failure")
	ErrCopy       = errors.New("copy failure")
	ErrMkdir      = errors.New("directory create failure")
)
