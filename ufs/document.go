package ufs

import (
	"fmt"
	"math"

	"github.com/arloliu/ufsconv/errs"
)

// Policy defaults used when a document is built from a text table.
const (
	DefaultVersion     = "Version2"
	DefaultAxis1Label  = "Wavelength"
	DefaultAxis1Units  = "nm"
	DefaultAxis2Label  = "Time"
	DefaultAxis2Units  = "ps"
	DefaultDataLabel   = "DA"
	DefaultDataKind    = uint32(0)
	MetadataSourceLead = "Converted from"
)

// Axis is one labeled, unit-tagged sequence of sample coordinates.
type Axis struct {
	Label  string
	Units  string
	Values []float64
}

// Len returns the number of coordinates on the axis.
func (a Axis) Len() int {
	return len(a.Values)
}

// Bounds returns the first and last coordinate. ok is false for an empty axis.
func (a Axis) Bounds() (first, last float64, ok bool) {
	if len(a.Values) == 0 {
		return 0, 0, false
	}

	return a.Values[0], a.Values[len(a.Values)-1], true
}

// Document is one complete UFS measurement.
//
// Matrix[i][j] is the value at (Axis1.Values[i], Axis2.Values[j]).
type Document struct {
	// Version is the format tag. It is opaque and round-trips byte for byte.
	Version string
	// Axis1 is the primary sample axis (e.g. wavelength); one matrix row per entry.
	Axis1 Axis
	// Axis2 is the secondary sample axis (e.g. delay); one matrix column per entry.
	Axis2 Axis
	// DataLabel identifies the matrix contents (e.g. "DA").
	DataLabel string
	// DataKind is a reserved tag, written as 0.
	DataKind uint32
	// Matrix holds the data values, row-major.
	Matrix [][]float64
	// Metadata is free-form text stored as the final field.
	Metadata string
}

// Shape returns the matrix dimensions. cols is taken from the first row.
func (d *Document) Shape() (rows, cols int) {
	rows = len(d.Matrix)
	if rows > 0 {
		cols = len(d.Matrix[0])
	}

	return rows, cols
}

// Validate checks the document invariants required for serialization.
//
// Returns:
//   - error: ErrEmptyInput if either axis or the matrix is empty;
//     ErrShapeMismatch (also matching ErrMalformedDocument) for jagged rows or
//     axis lengths that disagree with the matrix; ErrLengthOverflow if a count
//     does not fit the uint32 wire fields
func (d *Document) Validate() error {
	rows, cols := d.Shape()

	if d.Axis1.Len() == 0 || d.Axis2.Len() == 0 || rows == 0 || cols == 0 {
		return fmt.Errorf("%w: axis1 has %d entries, axis2 has %d entries, matrix is %dx%d",
			errs.ErrEmptyInput, d.Axis1.Len(), d.Axis2.Len(), rows, cols)
	}

	if uint64(rows) > math.MaxUint32 || uint64(cols) > math.MaxUint32 {
		return fmt.Errorf("%w: matrix is %dx%d", errs.ErrLengthOverflow, rows, cols)
	}

	if d.Axis1.Len() != rows {
		return fmt.Errorf("%w: %w: axis1 has %d entries, matrix has %d rows",
			errs.ErrMalformedDocument, errs.ErrShapeMismatch, d.Axis1.Len(), rows)
	}
	if d.Axis2.Len() != cols {
		return fmt.Errorf("%w: %w: axis2 has %d entries, matrix has %d columns",
			errs.ErrMalformedDocument, errs.ErrShapeMismatch, d.Axis2.Len(), cols)
	}

	for i, row := range d.Matrix {
		if len(row) != cols {
			return fmt.Errorf("%w: %w: matrix row %d has %d values, want %d",
				errs.ErrMalformedDocument, errs.ErrShapeMismatch, i, len(row), cols)
		}
	}

	return nil
}

// EncodedSize returns the number of bytes Marshal produces for a valid document.
func (d *Document) EncodedSize() int {
	rows, cols := d.Shape()

	size := 4 + len(d.Version)
	size += 4 + len(d.Axis1.Label) + 4 + len(d.Axis1.Units) + 4 + 8*d.Axis1.Len()
	size += 4 + len(d.Axis2.Label) + 4 + len(d.Axis2.Units) + 4 + 8*d.Axis2.Len()
	size += 4 + len(d.DataLabel) + 4 + 4 + 4
	size += 8 * rows * cols
	size += 4 + len(d.Metadata)

	return size
}

// SourceMetadata returns the default metadata line for a document converted from source.
func SourceMetadata(source string) string {
	return MetadataSourceLead + " " + source
}
