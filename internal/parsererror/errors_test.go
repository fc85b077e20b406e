package parsererror

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "parse error",
			err:      &ParseError{Component: "tabular", Field: "ImportoPagamento", Value: "abc", Err: errors.New("bad decimal")},
			expected: "tabular: failed to parse ImportoPagamento='abc': bad decimal",
		},
		{
			name:     "invalid format",
			err:      &InvalidFormatError{FilePath: "a.xml", ExpectedFormat: "FatturaElettronica", Msg: "missing body"},
			expected: "invalid format in file 'a.xml': missing body. Expected: FatturaElettronica",
		},
		{
			name:     "data extraction",
			err:      &DataExtractionError{FilePath: "a.xml", FieldName: "Data", Reason: "empty"},
			expected: "data extraction failed in file 'a.xml' for field 'Data': empty",
		},
		{
			name:     "unresolved deadline",
			err:      &UnresolvedDeadlineError{FilePath: "a.xml", DocumentNumber: "12/A", Ordinal: 2},
			expected: "unresolved deadline for installment 2 of document '12/A' in 'a.xml': manual deadline requested but not supplied",
		},
		{
			name:     "path without cause",
			err:      &PathError{Path: "/nope", Reason: "not a file or directory"},
			expected: "invalid path '/nope': not a file or directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	var unresolved error = &UnresolvedDeadlineError{Ordinal: 1}
	assert.ErrorIs(t, unresolved, ErrManualDeadlineMissing)

	pathErr := &PathError{Path: "x", Reason: "stat failed", Err: fs.ErrNotExist}
	assert.ErrorIs(t, pathErr, fs.ErrNotExist)

	formatErr := &InvalidFormatError{FilePath: "x", Err: fs.ErrPermission}
	assert.ErrorIs(t, formatErr, fs.ErrPermission)

	var target *PathError
	assert.True(t, errors.As(error(pathErr), &target))
	assert.Equal(t, "x", target.Path)
}
