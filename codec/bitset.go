package codec

import "github.com/arloliu/serialcore/buffer"

// bitsetWidth returns the narrowest of {1, 2, 4, 8} octets that can hold n
// bits, per spec.md §4.3.
func bitsetWidth(n int) int {
	switch {
	case n <= 8:
		return 1
	case n <= 16:
		return 2
	case n <= 32:
		return 4
	default:
		return 8
	}
}

// bitsetMask returns a mask with the low n bits set.
func bitsetMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(n)) - 1
}

// WriteBitset encodes a bitset of n (n <= 64) significant bits as an
// unsigned integer of the narrowest width in {1, 2, 4, 8} octets that
// holds them; bits outside n are forced to zero before encoding (spec.md
// §4.3).
func WriteBitset(w *buffer.Writer, bits uint64, n int) error {
	masked := bits & bitsetMask(n)

	switch bitsetWidth(n) {
	case 1:
		return WriteUint8(w, uint8(masked))
	case 2:
		return WriteUint16(w, uint16(masked))
	case 4:
		return WriteUint32(w, uint32(masked))
	default:
		return WriteUint64(w, masked)
	}
}

// ReadBitset decodes a bitset of n (n <= 64) significant bits, masking off
// any stray bits beyond n in the decoded word.
func ReadBitset(r *buffer.Reader, n int) (uint64, error) {
	var v uint64
	var err error

	switch bitsetWidth(n) {
	case 1:
		var u8 uint8
		u8, err = ReadUint8(r)
		v = uint64(u8)
	case 2:
		var u16 uint16
		u16, err = ReadUint16(r)
		v = uint64(u16)
	case 4:
		var u32 uint32
		u32, err = ReadUint32(r)
		v = uint64(u32)
	default:
		v, err = ReadUint64(r)
	}
	if err != nil {
		return 0, err
	}

	return v & bitsetMask(n), nil
}
