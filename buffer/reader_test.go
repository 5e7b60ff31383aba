package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/serialcore/corerr"
	"github.com/arloliu/serialcore/endian"
)

func TestReader_ReadAdvancesCursor(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4}, endian.GetLittleEndianEngine())
	require.True(t, r.IsReady())

	span, err := r.Read(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, span)
	require.Equal(t, 2, r.Cursor())
	require.Equal(t, 2, r.BytesRemaining())
}

func TestReader_ReadUnderflowLeavesCursor(t *testing.T) {
	r := NewReader([]byte{1, 2}, endian.GetLittleEndianEngine())

	_, err := r.Read(5)
	require.ErrorIs(t, err, corerr.ErrBufferUnderflow)
	require.Equal(t, 0, r.Cursor())
}

func TestReader_PeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{1, 2, 3}, endian.GetLittleEndianEngine())

	span, err := r.Peek(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, span)
	require.Equal(t, 0, r.Cursor())
}

func TestReader_CursorRewind(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4}, endian.GetLittleEndianEngine())
	_, err := r.Read(4)
	require.NoError(t, err)

	r.CursorToStart()
	require.Equal(t, 0, r.Cursor())

	r.CursorToEnd()
	require.Equal(t, 4, r.Cursor())

	require.True(t, r.SetCursor(2))
	require.False(t, r.SetCursor(5))
}

func TestStreamingReader_AddData(t *testing.T) {
	r := NewStreamingReader(endian.GetLittleEndianEngine())
	require.False(t, r.IsReady())

	require.NoError(t, r.AddData([]byte{1, 2}, false))
	require.False(t, r.IsReady())

	_, err := r.Read(4)
	require.ErrorIs(t, err, corerr.ErrBufferUnderflow)

	require.NoError(t, r.AddData([]byte{3, 4}, true))
	require.True(t, r.IsReady())

	span, err := r.Read(4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, span)

	err = r.AddData([]byte{5}, false)
	require.ErrorIs(t, err, corerr.ErrNotReady)
}

func TestReader_BorrowBytes(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4}, endian.GetLittleEndianEngine())

	span := r.BorrowBytes(1, 2)
	require.Equal(t, []byte{2, 3}, span)
	require.Nil(t, r.BorrowBytes(3, 5))
}
