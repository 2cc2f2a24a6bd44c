package table

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/arloliu/ufsconv/ufs"
)

// headerPlaceholder is written in the first cell of the header row.
const headerPlaceholder = "0"

// ToRows renders a document as table rows.
//
// The document must be valid; in particular the axis1 length must match the
// number of matrix rows, since every row starts with its axis1 value.
func ToRows(doc *ufs.Document, opts ...Option) ([][]string, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return toRows(doc, cfg)
}

func toRows(doc *ufs.Document, cfg *Config) ([][]string, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(doc.Matrix)+1)

	header := make([]string, 0, doc.Axis2.Len()+1)
	header = append(header, headerPlaceholder)
	for _, v := range doc.Axis2.Values {
		header = append(header, FormatNumber(v))
	}
	rows = append(rows, header)

	for i, values := range doc.Matrix {
		row := make([]string, 0, len(values)+1)
		row = append(row, FormatNumber(Round(doc.Axis1.Values[i], cfg.AxisDecimals)))
		for _, v := range values {
			row = append(row, FormatNumber(Round(v, cfg.ValueDecimals)))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Write renders a document as a comma-separated table.
//
// Nothing is written to w if the document is invalid.
func Write(w io.Writer, doc *ufs.Document, opts ...Option) error {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return err
	}

	rows, err := toRows(doc, cfg)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = cfg.CRLF
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}
