package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/endian"
)

func TestBitset_WidthSelection(t *testing.T) {
	require.Equal(t, 1, bitsetWidth(1))
	require.Equal(t, 1, bitsetWidth(8))
	require.Equal(t, 2, bitsetWidth(9))
	require.Equal(t, 2, bitsetWidth(16))
	require.Equal(t, 4, bitsetWidth(17))
	require.Equal(t, 4, bitsetWidth(32))
	require.Equal(t, 8, bitsetWidth(33))
	require.Equal(t, 8, bitsetWidth(64))
}

func TestBitset_RoundtripEachWidth(t *testing.T) {
	cases := []struct {
		n    int
		bits uint64
	}{
		{5, 0b10101},
		{16, 0xBEEF},
		{32, 0xDEADBEEF},
		{64, 0xFFFFFFFFFFFFFFFF},
	}

	for _, c := range cases {
		out := roundtripWriter(t, endian.GetLittleEndianEngine(), func(w *buffer.Writer) error {
			return WriteBitset(w, c.bits, c.n)
		})
		require.Len(t, out, bitsetWidth(c.n))

		r := buffer.NewReader(out, endian.GetLittleEndianEngine())
		got, err := ReadBitset(r, c.n)
		require.NoError(t, err)
		require.Equal(t, c.bits&bitsetMask(c.n), got)
	}
}

func TestBitset_StrayHighBitsMasked(t *testing.T) {
	out := roundtripWriter(t, endian.GetLittleEndianEngine(), func(w *buffer.Writer) error {
		return WriteBitset(w, 0xFF, 4)
	})

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	got, err := ReadBitset(r, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0F), got)
}
