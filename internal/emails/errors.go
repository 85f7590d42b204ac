// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emails

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a missing input file. No output is produced.
	ErrNotFound = errors.New("input file not found")

	// ErrNoEmails is a notice rather than a failure: the input was read but
	// nothing matched, so no report was written.
	ErrNoEmails = errors.New("no emails found")

	errInvalidUTF8 = errors.New("content is not valid UTF-8 text")
)

// ReadError reports an input file that exists but could not be read as text.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a report file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
