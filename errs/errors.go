// Package errs defines the sentinel errors shared by the UFS codec, the table
// adapter and the conversion pipelines.
//
// Callers match them with errors.Is; the packages that return them wrap the
// sentinel with positional context (offset, line, column) using fmt.Errorf.
package errs

import "errors"

var (
	// ErrTruncatedInput indicates the binary buffer ended before a field completed.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMalformedDocument indicates internally inconsistent length, count or shape fields.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrEmptyInput indicates a table without data rows or a document without axis entries.
	ErrEmptyInput = errors.New("empty input")
	// ErrNonNumericCell indicates a table cell that does not parse as a number.
	ErrNonNumericCell = errors.New("non-numeric cell")
	// ErrShapeMismatch indicates a jagged matrix or axis/matrix dimension disagreement.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrLengthOverflow indicates a length or count that does not fit the uint32 wire field.
	ErrLengthOverflow = errors.New("length exceeds uint32 range")
	// ErrUnknownCompression indicates an unsupported archival compression name or type.
	ErrUnknownCompression = errors.New("unknown compression")
)
