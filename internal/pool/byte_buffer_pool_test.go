package pool

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, bb.Cap())
}

func TestByteBuffer_WriteAndClone(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("UFS"))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	clone := bb.Clone()
	require.Equal(t, []byte("UFS"), clone)

	// Mutating the clone must not touch the buffer
	clone[0] = 'X'
	require.Equal(t, []byte("UFS"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(32)
	_, _ = bb.Write([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no growth when capacity suffices", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("abcd"))
		bb.Grow(16)

		assert.GreaterOrEqual(t, bb.Cap(), 4+DocumentBufferDefaultSize)
		assert.Equal(t, []byte("abcd"), bb.Bytes())
	})

	t.Run("grows at least by required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(DocumentBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, bb.Cap(), DocumentBufferDefaultSize*3)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * DocumentBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())

	_, err = bb.WriteTo(failingWriter{})
	require.Error(t, err)
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	// A returned buffer must come back empty
	again := p.Get()
	require.Equal(t, 0, again.Len())

	// nil is ignored
	p.Put(nil)
}

func TestByteBufferPool_DropsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.Grow(1024)
	require.Greater(t, bb.Cap(), 16)
	p.Put(bb)

	fresh := p.Get()
	require.LessOrEqual(t, fresh.Cap(), 16)
}

func TestDocumentBuffer(t *testing.T) {
	bb := GetDocumentBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutDocumentBuffer(bb)
}
