package ufs

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/arloliu/ufsconv/encoding"
	"github.com/arloliu/ufsconv/endian"
	"github.com/arloliu/ufsconv/errs"
	"github.com/stretchr/testify/require"
)

type layout struct {
	b []byte
}

func (l *layout) str(s string) *layout {
	l.b = binary.BigEndian.AppendUint32(l.b, uint32(len(s)))
	l.b = append(l.b, s...)

	return l
}

func (l *layout) u32(v uint32) *layout {
	l.b = binary.BigEndian.AppendUint32(l.b, v)
	return l
}

func (l *layout) f64(values ...float64) *layout {
	for _, v := range values {
		l.b = binary.BigEndian.AppendUint64(l.b, math.Float64bits(v))
	}

	return l
}

func TestMarshal_Layout(t *testing.T) {
	doc := sampleDocument()

	expected := (&layout{}).
		str("Version2").
		str("Wavelength").str("nm").u32(2).f64(400, 401).
		str("Time").str("ps").u32(3).f64(0, 1, 2).
		str("DA").u32(0).u32(2).u32(3).
		f64(1, 2, 3).f64(4, 5, 6).
		str("Converted from sample.csv").b

	data, err := Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, expected, data)
}

func TestMarshal_RejectsInvalid(t *testing.T) {
	doc := sampleDocument()
	doc.Matrix[0] = doc.Matrix[0][:1]

	data, err := Marshal(doc)
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
	require.Nil(t, data)

	_, err = Marshal(&Document{})
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestMarshal_EmptyTextFields(t *testing.T) {
	doc := sampleDocument()
	doc.Version = ""
	doc.Metadata = ""

	data, err := Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0}, data[:4])
	require.Equal(t, []byte{0, 0, 0, 0}, data[len(data)-4:])

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	require.Empty(t, decoded.Version)
	require.Empty(t, decoded.Metadata)
}

func TestRoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := Marshal(doc)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	require.NoError(t, decoded.Validate())
	require.Equal(t, doc, decoded)
}

func TestRoundTrip_OpaqueVersionAndSpecialValues(t *testing.T) {
	doc := sampleDocument()
	doc.Version = "V\x00\xff2"
	doc.DataKind = 7
	doc.Matrix[0][0] = math.Inf(-1)
	doc.Matrix[1][2] = math.Copysign(0, -1)
	doc.Axis2.Values[1] = 1e-300

	data, err := Marshal(doc)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, doc.Version, decoded.Version)
	require.Equal(t, uint32(7), decoded.DataKind)
	require.True(t, math.IsInf(decoded.Matrix[0][0], -1))
	require.True(t, math.Signbit(decoded.Matrix[1][2]))
	require.Equal(t, 1e-300, decoded.Axis2.Values[1])
}

func TestUnmarshal_TruncatedAtEveryOffset(t *testing.T) {
	data, err := Marshal(sampleDocument())
	require.NoError(t, err)

	for n := range len(data) {
		doc, err := Unmarshal(data[:n])
		require.ErrorIs(t, err, errs.ErrTruncatedInput, "cut at %d", n)
		require.Nil(t, doc, "cut at %d", n)
	}
}

func TestUnmarshal_IgnoresTrailingBytes(t *testing.T) {
	data, err := Marshal(sampleDocument())
	require.NoError(t, err)

	doc, err := Unmarshal(append(data, 0xde, 0xad))
	require.NoError(t, err)
	require.Equal(t, sampleDocument(), doc)
}

func TestUnmarshal_UsesMatrixDimensions(t *testing.T) {
	// Axis counts claim 2x3, the matrix dimensions say 1x2.
	data := (&layout{}).
		str("Version2").
		str("Wavelength").str("nm").u32(2).f64(400, 401).
		str("Time").str("ps").u32(3).f64(0, 1, 2).
		str("DA").u32(0).u32(1).u32(2).
		f64(9, 8).
		str("meta").b

	doc, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 8}}, doc.Matrix)
	require.Equal(t, "meta", doc.Metadata)
	require.Len(t, doc.Axis1.Values, 2)

	require.ErrorIs(t, doc.Validate(), errs.ErrShapeMismatch)
}

func TestUnmarshal_ZeroDimensions(t *testing.T) {
	data := (&layout{}).
		str("Version2").
		str("Wavelength").str("nm").u32(0).
		str("Time").str("ps").u32(0).
		str("DA").u32(0).u32(0).u32(0).
		str("meta").b

	_, err := Unmarshal(data)
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestUnmarshal_HostileDimensions(t *testing.T) {
	data := (&layout{}).
		str("V").
		str("").str("").u32(1).f64(1).
		str("").str("").u32(1).f64(1).
		str("").u32(0).u32(0xffffffff).u32(0xffffffff).
		f64(1).b

	_, err := Unmarshal(data)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.ErrorIs(t, err, errs.ErrMalformedDocument)
}

func TestUnmarshal_HostileTextLength(t *testing.T) {
	data := (&layout{}).u32(0x7fffffff).b

	_, err := Unmarshal(data)
	require.ErrorIs(t, err, errs.ErrMalformedDocument)
	require.Contains(t, err.Error(), "decode version")
}

func TestUnmarshal_RowsDoNotOverlap(t *testing.T) {
	data, err := Marshal(sampleDocument())
	require.NoError(t, err)

	doc, err := Unmarshal(data)
	require.NoError(t, err)

	// Appending to one row must not overwrite the next
	doc.Matrix[0] = append(doc.Matrix[0], 99)
	require.Equal(t, []float64{4, 5, 6}, doc.Matrix[1])
}

func TestUnmarshal_LargeMatrix(t *testing.T) {
	const rows, cols = 300, 500

	doc := &Document{
		Version:   DefaultVersion,
		Axis1:     Axis{Label: "Wavelength", Units: "nm", Values: make([]float64, rows)},
		Axis2:     Axis{Label: "Time", Units: "ps", Values: make([]float64, cols)},
		DataLabel: "DA",
		Matrix:    make([][]float64, rows),
	}
	for i := range rows {
		doc.Axis1.Values[i] = 350 + float64(i)
		doc.Matrix[i] = make([]float64, cols)
		for j := range cols {
			doc.Matrix[i][j] = math.Sin(float64(i*cols+j)) * 1e-3
		}
	}
	for j := range cols {
		doc.Axis2.Values[j] = float64(j) * 0.1
	}

	data, err := Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, doc.EncodedSize(), len(data))

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, doc.Matrix, decoded.Matrix)
}

func TestMarshal_ReadableByPrimitiveCodec(t *testing.T) {
	data, err := Marshal(sampleDocument())
	require.NoError(t, err)

	r := encoding.NewReader(endian.GetUFSEngine())
	version, cursor, err := r.ReadString(data, 0)
	require.NoError(t, err)
	require.Equal(t, "Version2", version)

	label, cursor, err := r.ReadString(data, cursor)
	require.NoError(t, err)
	require.Equal(t, "Wavelength", label)

	_, cursor, err = r.ReadString(data, cursor)
	require.NoError(t, err)

	count, _, err := r.ReadU32(data, cursor)
	require.NoError(t, err)
	require.Equal(t, uint32(2), count)
}
