package encoding

import (
	"math"
	"testing"

	"github.com/arloliu/ufsconv/endian"
	"github.com/arloliu/ufsconv/errs"
	"github.com/stretchr/testify/require"
)

func TestWriter_New(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	require.NotNil(t, w)
	require.Equal(t, 0, w.Len())
	require.Empty(t, w.Bytes())
}

func TestWriter_WriteBytes(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	require.NoError(t, w.WriteBytes([]byte("DA")))
	require.Equal(t, []byte{0, 0, 0, 2, 'D', 'A'}, w.Bytes())
}

func TestWriter_WriteBytes_Empty(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	require.NoError(t, w.WriteBytes(nil))
	require.NoError(t, w.WriteBytes([]byte{}))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, w.Bytes())
}

func TestWriter_WriteString(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	require.NoError(t, w.WriteString("Version2"))
	require.Equal(t, append([]byte{0, 0, 0, 8}, "Version2"...), w.Bytes())
}

func TestWriter_WriteU32(t *testing.T) {
	tests := []struct {
		name     string
		engine   endian.EndianEngine
		value    uint32
		expected []byte
	}{
		{"big endian zero", endian.GetUFSEngine(), 0, []byte{0, 0, 0, 0}},
		{"big endian", endian.GetUFSEngine(), 0x01020304, []byte{1, 2, 3, 4}},
		{"big endian max", endian.GetUFSEngine(), math.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff}},
		{"little endian", endian.GetLittleEndianEngine(), 0x01020304, []byte{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(tt.engine)
			defer w.Finish()

			w.WriteU32(tt.value)
			require.Equal(t, tt.expected, w.Bytes())
		})
	}
}

func TestWriter_WriteCount(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	require.NoError(t, w.WriteCount(3))
	require.Equal(t, []byte{0, 0, 0, 3}, w.Bytes())

	err := w.WriteCount(-1)
	require.ErrorIs(t, err, errs.ErrLengthOverflow)

	if n := math.MaxInt; uint64(n) > math.MaxUint32 {
		err = w.WriteCount(n)
		require.ErrorIs(t, err, errs.ErrLengthOverflow)
	}

	// Failed writes leave the buffer untouched
	require.Equal(t, 4, w.Len())
}

func TestWriter_WriteF64(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	w.WriteF64(1.0)
	require.Equal(t, []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, w.Bytes())
}

func TestWriter_WriteF64Array(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	values := []float64{400.0, -0.5, math.Inf(1), math.SmallestNonzeroFloat64}
	w.WriteF64Array(values)
	require.Equal(t, len(values)*8, w.Len())

	decoded, cursor, err := ReadF64Array(w.Bytes(), 0, len(values))
	require.NoError(t, err)
	require.Equal(t, len(values)*8, cursor)
	require.Equal(t, values, decoded)
}

func TestWriter_WriteF64Array_Empty(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	w.WriteF64Array(nil)
	require.Equal(t, 0, w.Len())
}

func TestWriter_WriteF64_NaNBitsPreserved(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	nan := math.Float64frombits(0x7ff8000000000001)
	w.WriteF64(nan)

	v, _, err := ReadF64(w.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, math.Float64bits(nan), math.Float64bits(v))
}

func TestWriter_Detach(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	w.WriteU32(7)

	out := w.Detach()
	require.Equal(t, []byte{0, 0, 0, 7}, out)

	require.Panics(t, func() { w.WriteU32(1) })
	require.Panics(t, func() { _ = w.Bytes() })

	// Finish after Detach is a no-op
	require.NotPanics(t, w.Finish)
}

func TestWriter_GrowsBeyondPooledBuffer(t *testing.T) {
	w := NewWriter(endian.GetUFSEngine())
	defer w.Finish()

	values := make([]float64, 40000)
	for i := range values {
		values[i] = float64(i)
	}
	w.WriteF64Array(values)
	require.Equal(t, 320000, w.Len())

	decoded, _, err := ReadF64Array(w.Bytes(), 0, len(values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}
