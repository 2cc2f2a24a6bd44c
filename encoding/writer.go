package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/ufsconv/endian"
	"github.com/arloliu/ufsconv/errs"
	"github.com/arloliu/ufsconv/internal/pool"
)

// MaxLength is the largest length or count a uint32 wire field can carry.
const MaxLength = math.MaxUint32

// Writer appends UFS primitives to a pooled byte buffer.
//
// The zero value is not usable; create writers with NewWriter.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a new primitive writer using the specified endian engine.
//
// Parameters:
//   - engine: Endian engine for byte order (GetUFSEngine for UFS files)
//
// Returns:
//   - *Writer: A writer backed by a buffer from the document pool
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		engine: engine,
		buf:    pool.GetDocumentBuffer(),
	}
}

// WriteBytes appends a 4-byte length followed by the raw bytes of value.
//
// An empty value still emits the 4-byte zero prefix.
//
// Returns:
//   - error: ErrLengthOverflow if len(value) exceeds MaxLength
func (w *Writer) WriteBytes(value []byte) error {
	w.mustBeOpen()

	if uint64(len(value)) > MaxLength {
		return fmt.Errorf("%w: byte string of %d bytes", errs.ErrLengthOverflow, len(value))
	}

	w.buf.Grow(4 + len(value))
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(len(value))) //nolint:gosec
	w.buf.B = append(w.buf.B, value...)

	return nil
}

// WriteString appends s as a length-prefixed byte string.
//
// The string's bytes are written as-is; callers pass already-encoded text.
func (w *Writer) WriteString(s string) error {
	w.mustBeOpen()

	if uint64(len(s)) > MaxLength {
		return fmt.Errorf("%w: string of %d bytes", errs.ErrLengthOverflow, len(s))
	}

	w.buf.Grow(4 + len(s))
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(len(s))) //nolint:gosec
	w.buf.B = append(w.buf.B, s...)

	return nil
}

// WriteU32 appends a 4-byte unsigned integer.
func (w *Writer) WriteU32(value uint32) {
	w.mustBeOpen()

	w.buf.Grow(4)
	w.buf.B = w.engine.AppendUint32(w.buf.B, value)
}

// WriteCount appends n as a uint32 count field.
//
// Returns:
//   - error: ErrLengthOverflow if n is negative or exceeds MaxLength
func (w *Writer) WriteCount(n int) error {
	if n < 0 || uint64(n) > MaxLength {
		return fmt.Errorf("%w: count %d", errs.ErrLengthOverflow, n)
	}
	w.WriteU32(uint32(n)) //nolint:gosec

	return nil
}

// WriteF64 appends an 8-byte IEEE-754 double.
func (w *Writer) WriteF64(value float64) {
	w.mustBeOpen()

	w.buf.Grow(8)
	w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(value))
}

// WriteF64Array appends every value consecutively with no length prefix.
//
// The buffer is grown once for the whole slice (8 bytes × len(values)).
func (w *Writer) WriteF64Array(values []float64) {
	w.mustBeOpen()

	if len(values) == 0 {
		return
	}

	w.buf.Grow(len(values) * 8)
	for _, v := range values {
		w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(v))
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	w.mustBeOpen()

	return w.buf.Len()
}

// Bytes returns the encoded bytes.
//
// The returned slice references the internal buffer and is only valid until
// the next write or Finish. Use Detach to obtain an owned copy.
func (w *Writer) Bytes() []byte {
	w.mustBeOpen()

	return w.buf.Bytes()
}

// Detach returns an owned copy of the encoded bytes and finishes the writer.
func (w *Writer) Detach() []byte {
	w.mustBeOpen()

	out := w.buf.Clone()
	w.Finish()

	return out
}

// Finish returns the buffer to the pool. The writer must not be used afterwards.
//
// Calling Finish more than once is a no-op.
func (w *Writer) Finish() {
	if w.buf != nil {
		pool.PutDocumentBuffer(w.buf)
		w.buf = nil
	}
}

func (w *Writer) mustBeOpen() {
	if w.buf == nil {
		panic("writer already finished - cannot use after Finish()")
	}
}
