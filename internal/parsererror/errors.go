// Package parsererror defines the typed errors raised while reading invoice
// documents and the stores derived from them.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrManualDeadlineMissing is wrapped by UnresolvedDeadlineError.
var ErrManualDeadlineMissing = errors.New("manual deadline requested but not supplied")

// ParseError represents a value that could not be converted.
type ParseError struct {
	Component string
	Field     string
	Value     string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Component, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError means the file is not an electronic invoice at all:
// unreadable, not XML, or missing a mandatory block.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	msg := fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// DataExtractionError means a document was readable but a value needed to
// build a row was missing or malformed.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
	Err       error
}

func (e *DataExtractionError) Error() string {
	msg := fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}

// UnresolvedDeadlineError aborts the extraction of one document: an
// installment has no deadline and manual entry was requested without a date.
type UnresolvedDeadlineError struct {
	FilePath       string
	DocumentNumber string
	Ordinal        int
	Advisory       string
}

func (e *UnresolvedDeadlineError) Error() string {
	return fmt.Sprintf("unresolved deadline for installment %d of document '%s' in '%s': %v",
		e.Ordinal, e.DocumentNumber, e.FilePath, ErrManualDeadlineMissing)
}

func (e *UnresolvedDeadlineError) Unwrap() error {
	return ErrManualDeadlineMissing
}

// PathError is a missing or unusable source, store or config location.
type PathError struct {
	Path   string
	Reason string
	Err    error
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid path '%s': %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid path '%s': %s", e.Path, e.Reason)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
