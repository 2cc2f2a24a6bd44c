package ufs

import (
	"fmt"
	"math"

	"github.com/arloliu/ufsconv/encoding"
	"github.com/arloliu/ufsconv/endian"
	"github.com/arloliu/ufsconv/errs"
)

// Unmarshal parses a complete UFS container.
//
// The matrix is sized from the dimension fields that precede it, not from the
// axis counts; use Document.Validate to check that both agree. Bytes after the
// metadata field are ignored.
//
// Returns:
//   - *Document: The fully populated document; never a partial one
//   - error: ErrTruncatedInput if the buffer ends inside a field (also
//     ErrMalformedDocument when a declared length overruns the buffer);
//     ErrEmptyInput if the matrix dimensions are zero
func Unmarshal(data []byte) (*Document, error) {
	d := decoder{r: encoding.NewReader(endian.GetUFSEngine()), buf: data}

	doc := &Document{}
	doc.Version = d.text("version")
	doc.Axis1 = d.axis("axis1")
	doc.Axis2 = d.axis("axis2")
	doc.DataLabel = d.text("data label")
	doc.DataKind = d.u32("data kind")
	rows := d.u32("matrix rows")
	cols := d.u32("matrix columns")
	if d.err != nil {
		return nil, d.err
	}

	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: matrix dimensions %dx%d at offset %d", errs.ErrEmptyInput, rows, cols, d.cursor)
	}

	doc.Matrix = d.matrix(rows, cols)
	doc.Metadata = d.text("metadata")
	if d.err != nil {
		return nil, d.err
	}

	return doc, nil
}

// decoder threads a single cursor through the field sequence and keeps the
// first error; every read after a failure is a no-op.
type decoder struct {
	r      encoding.Reader
	buf    []byte
	cursor int
	err    error
}

func (d *decoder) fail(field string, err error) {
	d.err = fmt.Errorf("decode %s: %w", field, err)
}

func (d *decoder) text(field string) string {
	if d.err != nil {
		return ""
	}

	s, next, err := d.r.ReadString(d.buf, d.cursor)
	if err != nil {
		d.fail(field, err)
		return ""
	}
	d.cursor = next

	return s
}

func (d *decoder) u32(field string) uint32 {
	if d.err != nil {
		return 0
	}

	v, next, err := d.r.ReadU32(d.buf, d.cursor)
	if err != nil {
		d.fail(field, err)
		return 0
	}
	d.cursor = next

	return v
}

func (d *decoder) f64s(field string, count int) []float64 {
	if d.err != nil {
		return nil
	}

	values, next, err := d.r.ReadF64Array(d.buf, d.cursor, count)
	if err != nil {
		d.fail(field, err)
		return nil
	}
	d.cursor = next

	return values
}

func (d *decoder) axis(name string) Axis {
	label := d.text(name + " label")
	units := d.text(name + " units")
	count := d.u32(name + " count")

	return Axis{
		Label:  label,
		Units:  units,
		Values: d.f64s(name+" values", int(count)),
	}
}

// matrix reads rows x cols doubles in one block and slices it into rows that
// share the backing array.
func (d *decoder) matrix(rows, cols uint32) [][]float64 {
	if d.err != nil {
		return nil
	}

	total := uint64(rows) * uint64(cols)
	if remaining := uint64(len(d.buf) - d.cursor); total > remaining/8 || total > math.MaxInt/8 {
		d.fail("matrix", fmt.Errorf("%w: %w: %dx%d matrix at offset %d needs %d doubles, %d bytes remain",
			errs.ErrMalformedDocument, errs.ErrTruncatedInput, rows, cols, d.cursor, total, remaining))

		return nil
	}

	block := d.f64s("matrix", int(total))
	if block == nil {
		return nil
	}

	matrix := make([][]float64, rows)
	for i := range matrix {
		start := i * int(cols)
		matrix[i] = block[start : start+int(cols) : start+int(cols)]
	}

	return matrix
}
