package ufs

import (
	"fmt"

	"github.com/arloliu/ufsconv/encoding"
	"github.com/arloliu/ufsconv/endian"
)

// Marshal validates doc and serializes it into the UFS container layout.
//
// The returned slice is owned by the caller.
//
// Returns:
//   - []byte: The encoded container
//   - error: Validate errors, or ErrLengthOverflow for an oversized text field
func Marshal(doc *Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	w := encoding.NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	rows, cols := doc.Shape()

	if err := w.WriteString(doc.Version); err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	if err := writeAxis(w, "axis1", doc.Axis1); err != nil {
		return nil, err
	}
	if err := writeAxis(w, "axis2", doc.Axis2); err != nil {
		return nil, err
	}

	if err := w.WriteString(doc.DataLabel); err != nil {
		return nil, fmt.Errorf("data label: %w", err)
	}
	w.WriteU32(doc.DataKind)
	if err := w.WriteCount(rows); err != nil {
		return nil, fmt.Errorf("matrix rows: %w", err)
	}
	if err := w.WriteCount(cols); err != nil {
		return nil, fmt.Errorf("matrix columns: %w", err)
	}
	for _, row := range doc.Matrix {
		w.WriteF64Array(row)
	}

	if err := w.WriteString(doc.Metadata); err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}

	return w.Detach(), nil
}

func writeAxis(w *encoding.Writer, name string, axis Axis) error {
	if err := w.WriteString(axis.Label); err != nil {
		return fmt.Errorf("%s label: %w", name, err)
	}
	if err := w.WriteString(axis.Units); err != nil {
		return fmt.Errorf("%s units: %w", name, err)
	}
	if err := w.WriteCount(axis.Len()); err != nil {
		return fmt.Errorf("%s count: %w", name, err)
	}
	w.WriteF64Array(axis.Values)

	return nil
}
