package codec

import (
	"math"

	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/corerr"
)

// WriteSize writes n as the canonical SizeWire: an unsigned 64-bit value,
// regardless of the host counter width that produced it (spec.md §3).
func WriteSize(w *buffer.Writer, n uint64) error {
	return WriteUint64(w, n)
}

// ReadSize reads a raw SizeWire value with no narrowing.
func ReadSize(r *buffer.Reader) (uint64, error) {
	return ReadUint64(r)
}

// ReadSizeAsInt reads a SizeWire and narrows it into a host int, failing
// with corerr.ErrSizeOverflow if the value doesn't fit (spec.md §3, §8).
// The output is left untouched on failure.
func ReadSizeAsInt(r *buffer.Reader) (int, error) {
	n, err := ReadSize(r)
	if err != nil {
		return 0, err
	}

	if n > math.MaxInt {
		return 0, corerr.ErrSizeOverflow
	}

	return int(n), nil
}

// ReadSizeAsUint32 reads a SizeWire and narrows it into a uint32, failing
// with corerr.ErrSizeOverflow if the value would truncate.
func ReadSizeAsUint32(r *buffer.Reader) (uint32, error) {
	n, err := ReadSize(r)
	if err != nil {
		return 0, err
	}

	if n > math.MaxUint32 {
		return 0, corerr.ErrSizeOverflow
	}

	return uint32(n), nil
}
