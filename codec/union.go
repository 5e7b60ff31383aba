package codec

import (
	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/corerr"
)

// WriteUnion encodes a discriminated union's selected alternative: a
// SizeWire index (0 <= index < n) followed by encode(w) for that
// alternative (spec.md §4.3). It is the caller's responsibility to ensure
// index < n; WriteUnion fails with corerr.ErrInvalidVariantIndex otherwise
// rather than writing an unreadable tag.
func WriteUnion(w *buffer.Writer, index, n uint64, encode func(*buffer.Writer) error) error {
	if index >= n {
		return corerr.ErrInvalidVariantIndex
	}
	if err := WriteSize(w, index); err != nil {
		return err
	}

	return encode(w)
}

// ReadUnionTag decodes a union's SizeWire index and validates it against
// the alternative count n, without touching the selected alternative's
// payload. Callers dispatch on the returned index to invoke the matching
// decode function.
func ReadUnionTag(r *buffer.Reader, n uint64) (uint64, error) {
	index, err := ReadSize(r)
	if err != nil {
		return 0, err
	}
	if index >= n {
		return 0, corerr.ErrInvalidVariantIndex
	}

	return index, nil
}
