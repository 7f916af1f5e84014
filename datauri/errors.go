package datauri

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeInvalidURI indicates input that is not a data: URI: the scheme
	// prefix is missing, or nothing follows it, or it has no comma separator.
	ErrCodeInvalidURI ErrorCode = "INVALID_URI"
	// ErrCodeInvalidBase64 indicates a base64-flagged payload that failed to decode.
	ErrCodeInvalidBase64 ErrorCode = "INVALID_BASE64"
	// ErrCodeUnknownMediaType indicates that no media type could be determined
	// while building a URI.
	ErrCodeUnknownMediaType ErrorCode = "UNKNOWN_MEDIA_TYPE"
)

// ErrSnifferUnavailable is returned by Builder.FromBytes when no content
// sniffer is configured. The raw-bytes path has no extension fallback, so a
// missing sniffer is a dependency failure rather than a property of the
// input; it is deliberately not an *Error.
var ErrSnifferUnavailable = errors.New("datauri: mime sniffer unavailable")

// Error is the error kind for all data URI failures. It carries a
// programmatic code, a human-readable message, and the underlying cause
// where one exists (base64 decode failures).
type Error struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("datauri: %s: %v", e.Msg, e.Err)
	}
	return "datauri: " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Code returns the error code for an error, or the empty code for nil errors
// and for failures that did not originate as an *Error (I/O errors,
// ErrSnifferUnavailable).
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Code
	}
	return ""
}

func newError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}

func wrapError(code ErrorCode, msg string, err error) error {
	return &Error{Code: code, Msg: msg, Err: err}
}
