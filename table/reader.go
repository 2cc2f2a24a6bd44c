package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/ufsconv/errs"
	"github.com/arloliu/ufsconv/ufs"
)

// Read parses a comma-separated table into a document.
//
// source names the input (usually its file name) and is recorded in the
// metadata as "<prefix> <source>".
func Read(r io.Reader, source string, opts ...Option) (*ufs.Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", source, err)
	}

	return FromRows(rows, source, opts...)
}

// FromRows builds a document from table rows.
//
// Row and field numbers in errors are 1-based.
//
// Returns:
//   - *ufs.Document: A valid document with the configured labels and metadata
//   - error: ErrEmptyInput without a header value or data row; ErrNonNumericCell
//     for a non-numeric cell; ErrShapeMismatch for a row of the wrong width
func FromRows(rows [][]string, source string, opts ...Option) (*ufs.Document, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: table %s has no header row", errs.ErrEmptyInput, source)
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: table %s header has no axis2 values", errs.ErrEmptyInput, source)
	}

	axis2, err := parseCells(header[1:], 1, 2)
	if err != nil {
		return nil, err
	}

	width := len(header)
	axis1 := make([]float64, 0, len(rows)-1)
	matrix := make([][]float64, 0, len(rows)-1)
	var trailer []string

	for i, row := range rows[1:] {
		rowNum := i + 2

		values, err := parseCells(row, rowNum, 1)
		if err != nil {
			if cfg.LegacyTrailer {
				trailer = joinRows(rows[rowNum-1:])
				break
			}

			return nil, err
		}

		if len(values) != width {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				errs.ErrShapeMismatch, rowNum, len(values), width)
		}

		axis1 = append(axis1, values[0])
		matrix = append(matrix, values[1:])
	}

	if len(matrix) == 0 {
		return nil, fmt.Errorf("%w: table %s has no data rows", errs.ErrEmptyInput, source)
	}

	metadata := source
	if cfg.MetadataPrefix != "" {
		metadata = cfg.MetadataPrefix + " " + source
	}
	if len(trailer) > 0 {
		metadata += "\n" + strings.Join(trailer, "\n")
	}

	doc := &ufs.Document{
		Version:   cfg.Version,
		Axis1:     ufs.Axis{Label: cfg.Axis1Label, Units: cfg.Axis1Units, Values: axis1},
		Axis2:     ufs.Axis{Label: cfg.Axis2Label, Units: cfg.Axis2Units, Values: axis2},
		DataLabel: cfg.DataLabel,
		DataKind:  ufs.DefaultDataKind,
		Matrix:    matrix,
		Metadata:  metadata,
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// parseCells parses every cell of a row; firstField is the 1-based field
// number of cells[0].
func parseCells(cells []string, rowNum, firstField int) ([]float64, error) {
	values := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := ParseNumber(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d, field %d: %q", errs.ErrNonNumericCell, rowNum, firstField+i, cell)
		}
		values[i] = v
	}

	return values, nil
}

func joinRows(rows [][]string) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}

	return lines
}
