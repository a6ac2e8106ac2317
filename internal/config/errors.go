package config

import (
	"errors"
	"fmt"
)

// ErrNotAnObject indicates that a config document parsed as valid JSON but
// its top-level value is not a JSON object.
var ErrNotAnObject = errors.New("top-level JSON value is not an object")

// ErrTrailingData indicates extra content after the top-level JSON value
// of a config document.
var ErrTrailingData = errors.New("trailing data after top-level JSON value")

// ErrInvalidOutputFile indicates an output filename containing a path
// separator; the destination directory is supplied separately.
var ErrInvalidOutputFile = errors.New("output filename must not contain a path separator")

// NotFoundError reports a required filesystem path that does not exist:
// the input config file, the output directory, or a sample_path value.
// Callers should use [errors.As] to match against it.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path %q does not exist: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError reports config file contents that are not a single valid
// JSON document, or a document whose top-level value is not an object.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing config file %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
