package staged

import (
	"errors"
	"fmt"
)

const (
	reportStatus  = "status"
	reportNumstat = "numstat"
)

var (
	// ErrTruncated indicates that a record announced more fields than the
	// report contains.
	ErrTruncated = errors.New("report truncated")

	// ErrInvalidText indicates a field that must be text is not valid UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8")
)

// ParseError reports a structurally broken record. Record boundaries after
// it cannot be recovered, so classification stops.
type ParseError struct {
	Report string // "status" or "numstat"
	Code   string // status codes of the record; empty for numstat
	Record int    // zero-based record index
	Offset int    // byte offset of the record lead
	Err    error
}

func (e *ParseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("parse %s report: record %d (byte offset %d) with status %q: %v",
			e.Report, e.Record, e.Offset, e.Code, e.Err)
	}
	return fmt.Sprintf("parse %s report: record %d (byte offset %d): %v",
		e.Report, e.Record, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DecodeError reports a field that is not valid text.
type DecodeError struct {
	Report string
	Field  string // e.g. "lead", "old path", "new path"
	Record int
	Offset int // byte offset of the field
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s report: %s of record %d (byte offset %d): %v",
		e.Report, e.Field, e.Record, e.Offset, ErrInvalidText)
}

func (e *DecodeError) Unwrap() error {
	return ErrInvalidText
}
