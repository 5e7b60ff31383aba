package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/endian"
)

func TestFixedArray_Roundtrip(t *testing.T) {
	items := []int32{10, 20, 30}
	out := roundtripWriter(t, endian.GetLittleEndianEngine(), func(w *buffer.Writer) error {
		return WriteFixedArray(w, items, WriteInt32)
	})
	require.Len(t, out, 12)

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	got, err := ReadFixedArray(r, 3, ReadInt32)
	require.NoError(t, err)
	require.Equal(t, items, got)
}

func TestFixedArray_ShortReadFails(t *testing.T) {
	items := []int32{1, 2}
	out := roundtripWriter(t, endian.GetLittleEndianEngine(), func(w *buffer.Writer) error {
		return WriteFixedArray(w, items, WriteInt32)
	})

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	_, err := ReadFixedArray(r, 3, ReadInt32)
	require.Error(t, err)
}
