package ir

import "errors"

// ErrEmptyInput is returned by a parser that refuses an empty (or
// whitespace-only) source file (§7).
var ErrEmptyInput = errors.New("empty input")

// ParseFailedError wraps a per-file parse failure. It is recoverable: the
// caller records the file in a failed-files counter and continues scanning
// (§7 propagation policy).
type ParseFailedError struct {
	File string
	Err  error
}

func (e *ParseFailedError) Error() string {
	return "parse failed for " + e.File + ": " + e.Err.Error()
}

func (e *ParseFailedError) Unwrap() error { return e.Err }
