package encoding

import (
	"testing"

	"github.com/arloliu/ufsconv/endian"
	"github.com/arloliu/ufsconv/errs"
	"github.com/stretchr/testify/require"
)

func TestReadBytes(t *testing.T) {
	buf := []byte{0, 0, 0, 2, 'n', 'm', 0xaa}

	value, cursor, err := ReadBytes(buf, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("nm"), value)
	require.Equal(t, 6, cursor)

	// The result must not alias the input buffer
	value[0] = 'X'
	require.Equal(t, byte('n'), buf[4])
}

func TestReadBytes_ZeroLength(t *testing.T) {
	buf := []byte{0, 0, 0, 0}

	value, cursor, err := ReadBytes(buf, 0)
	require.NoError(t, err)
	require.NotNil(t, value)
	require.Empty(t, value)
	require.Equal(t, 4, cursor)
}

func TestReadBytes_Truncated(t *testing.T) {
	tests := []struct {
		name      string
		buf       []byte
		malformed bool
	}{
		{name: "empty buffer", buf: nil},
		{name: "partial prefix", buf: []byte{0, 0, 0}},
		{name: "declared length past end", buf: []byte{0, 0, 0, 5, 'a', 'b'}, malformed: true},
		{name: "huge declared length", buf: []byte{0xff, 0xff, 0xff, 0xff}, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, cursor, err := ReadBytes(tt.buf, 0)
			require.ErrorIs(t, err, errs.ErrTruncatedInput)
			if tt.malformed {
				require.ErrorIs(t, err, errs.ErrMalformedDocument)
			} else {
				require.NotErrorIs(t, err, errs.ErrMalformedDocument)
			}
			require.Nil(t, value)
			require.Equal(t, 0, cursor)
		})
	}
}

func TestReadString(t *testing.T) {
	r := NewReader(endian.GetUFSEngine())
	buf := append([]byte{0, 0, 0, 4}, "Time"...)

	s, cursor, err := r.ReadString(buf, 0)
	require.NoError(t, err)
	require.Equal(t, "Time", s)
	require.Equal(t, 8, cursor)

	_, cursor, err = r.ReadString(buf[:6], 0)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.Equal(t, 0, cursor)
}

func TestReadU32(t *testing.T) {
	buf := []byte{0xde, 0xad, 0, 0, 0, 3}

	v, cursor, err := ReadU32(buf, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(3), v)
	require.Equal(t, 6, cursor)

	_, cursor, err = ReadU32(buf, 3)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.Equal(t, 3, cursor)
}

func TestReadU32_CursorOutOfRange(t *testing.T) {
	buf := []byte{0, 0, 0, 1}

	_, _, err := ReadU32(buf, -1)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)

	_, _, err = ReadU32(buf, 5)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestReadF64(t *testing.T) {
	buf := []byte{0x40, 0x79, 0, 0, 0, 0, 0, 0}

	v, cursor, err := ReadF64(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 400.0, v)
	require.Equal(t, 8, cursor)

	_, _, err = ReadF64(buf[:7], 0)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestReadF64_LittleEndianReader(t *testing.T) {
	r := NewReader(endian.GetLittleEndianEngine())
	buf := []byte{0, 0, 0, 0, 0, 0, 0x79, 0x40}

	v, _, err := r.ReadF64(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 400.0, v)
}

func TestReadF64Array(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()
	w.WriteU32(99)
	w.WriteF64Array([]float64{0, 1, 2})

	values, cursor, err := ReadF64Array(w.Bytes(), 4, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, values)
	require.Equal(t, 28, cursor)
}

func TestReadF64Array_ZeroCount(t *testing.T) {
	values, cursor, err := ReadF64Array([]byte{1, 2}, 2, 0)
	require.NoError(t, err)
	require.NotNil(t, values)
	require.Empty(t, values)
	require.Equal(t, 2, cursor)
}

func TestReadF64Array_Errors(t *testing.T) {
	buf := make([]byte, 20)

	_, cursor, err := ReadF64Array(buf, 0, 3)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.ErrorIs(t, err, errs.ErrMalformedDocument)
	require.Equal(t, 0, cursor)

	_, _, err = ReadF64Array(buf, 0, -1)
	require.ErrorIs(t, err, errs.ErrMalformedDocument)

	// A count close to the uint32 limit must fail without allocating
	_, _, err = ReadF64Array(buf, 0, 1<<30)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)

	_, _, err = ReadF64Array(buf, 21, 0)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}
