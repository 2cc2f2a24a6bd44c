package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/ufsconv/endian"
	"github.com/arloliu/ufsconv/errs"
)

// Reader decodes UFS primitives from a fixed byte buffer.
//
// Every method is a pure function of (buffer, cursor): it returns the decoded
// value and the advanced cursor, and keeps no state between calls. On error the
// returned cursor equals the input cursor.
type Reader struct {
	engine endian.EndianEngine
}

// NewReader creates a new primitive reader using the specified endian engine.
//
// The reader is returned by value; it is immutable and can be shared freely.
func NewReader(engine endian.EndianEngine) Reader {
	return Reader{engine: engine}
}

// ReadBytes reads a 4-byte length and then that many raw bytes.
//
// The returned slice is a copy and does not alias buf. A zero length yields an
// empty, non-nil slice and advances the cursor by exactly 4.
//
// Returns:
//   - []byte: The byte string
//   - int: Cursor positioned after the byte string
//   - error: ErrTruncatedInput if the prefix is incomplete; ErrMalformedDocument
//     and ErrTruncatedInput if the declared length runs past the buffer
func (r Reader) ReadBytes(buf []byte, cursor int) ([]byte, int, error) {
	length, next, err := r.ReadU32(buf, cursor)
	if err != nil {
		return nil, cursor, err
	}

	if remaining := len(buf) - next; uint64(length) > uint64(remaining) {
		return nil, cursor, fmt.Errorf("%w: %w: byte string at offset %d declares %d bytes, %d remain",
			errs.ErrMalformedDocument, errs.ErrTruncatedInput, cursor, length, remaining)
	}

	end := next + int(length)
	out := make([]byte, length)
	copy(out, buf[next:end])

	return out, end, nil
}

// ReadString reads a length-prefixed byte string and returns it as a string.
func (r Reader) ReadString(buf []byte, cursor int) (string, int, error) {
	b, next, err := r.ReadBytes(buf, cursor)
	if err != nil {
		return "", cursor, err
	}

	return string(b), next, nil
}

// ReadU32 reads a 4-byte unsigned integer.
func (r Reader) ReadU32(buf []byte, cursor int) (uint32, int, error) {
	if err := need(buf, cursor, 4); err != nil {
		return 0, cursor, err
	}

	return r.engine.Uint32(buf[cursor : cursor+4]), cursor + 4, nil
}

// ReadF64 reads an 8-byte IEEE-754 double.
func (r Reader) ReadF64(buf []byte, cursor int) (float64, int, error) {
	if err := need(buf, cursor, 8); err != nil {
		return 0, cursor, err
	}

	return math.Float64frombits(r.engine.Uint64(buf[cursor : cursor+8])), cursor + 8, nil
}

// ReadF64Array reads count consecutive doubles.
//
// The byte requirement (8 × count) is checked before anything is allocated,
// so a hostile count cannot trigger a large allocation.
//
// Returns:
//   - []float64: The decoded values (empty, non-nil slice when count is 0)
//   - int: Cursor positioned after the last value
//   - error: ErrMalformedDocument for a negative count; ErrMalformedDocument and
//     ErrTruncatedInput if 8 × count bytes are not available
func (r Reader) ReadF64Array(buf []byte, cursor int, count int) ([]float64, int, error) {
	if count < 0 {
		return nil, cursor, fmt.Errorf("%w: negative count %d at offset %d", errs.ErrMalformedDocument, count, cursor)
	}
	if err := need(buf, cursor, 0); err != nil {
		return nil, cursor, err
	}

	size := uint64(count) * 8
	if remaining := len(buf) - cursor; size > uint64(remaining) {
		return nil, cursor, fmt.Errorf("%w: %w: %d doubles at offset %d need %d bytes, %d remain",
			errs.ErrMalformedDocument, errs.ErrTruncatedInput, count, cursor, size, remaining)
	}

	values := make([]float64, count)
	for i := range values {
		start := cursor + i*8
		values[i] = math.Float64frombits(r.engine.Uint64(buf[start : start+8]))
	}

	return values, cursor + count*8, nil
}

// need checks that n bytes are available at cursor.
func need(buf []byte, cursor int, n int) error {
	if cursor < 0 || cursor > len(buf) {
		return fmt.Errorf("%w: cursor %d outside buffer of %d bytes", errs.ErrTruncatedInput, cursor, len(buf))
	}
	if len(buf)-cursor < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, %d remain", errs.ErrTruncatedInput, n, cursor, len(buf)-cursor)
	}

	return nil
}

var ufsReader = NewReader(endian.GetUFSEngine())

// ReadBytes reads a big-endian length-prefixed byte string. See Reader.ReadBytes.
func ReadBytes(buf []byte, cursor int) ([]byte, int, error) {
	return ufsReader.ReadBytes(buf, cursor)
}

// ReadU32 reads a big-endian uint32. See Reader.ReadU32.
func ReadU32(buf []byte, cursor int) (uint32, int, error) {
	return ufsReader.ReadU32(buf, cursor)
}

// ReadF64 reads a big-endian double. See Reader.ReadF64.
func ReadF64(buf []byte, cursor int) (float64, int, error) {
	return ufsReader.ReadF64(buf, cursor)
}

// ReadF64Array reads count big-endian doubles. See Reader.ReadF64Array.
func ReadF64Array(buf []byte, cursor int, count int) ([]float64, int, error) {
	return ufsReader.ReadF64Array(buf, cursor, count)
}
