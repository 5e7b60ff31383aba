package codec

import "github.com/arloliu/serialcore/buffer"

// WriteSequence encodes a variable-length sequence (vector, list, deque)
// of T as a SizeWire count followed by count encodings of T (spec.md
// §4.3).
func WriteSequence[T any](w *buffer.Writer, items []T, encode func(*buffer.Writer, T) error) error {
	if err := WriteSize(w, uint64(len(items))); err != nil {
		return err
	}
	for _, v := range items {
		if err := encode(w, v); err != nil {
			return err
		}
	}

	return nil
}

// ReadSequence decodes a SizeWire-prefixed sequence of T.
//
// The count is only used to pre-size the result slice; a count larger
// than the bytes actually available fails on the first short element read
// rather than over-allocating or reading past the end (spec.md §4.3,
// §8 "Length-prefix safety").
func ReadSequence[T any](r *buffer.Reader, decode func(*buffer.Reader) (T, error)) ([]T, error) {
	n, err := ReadSizeAsInt(r)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, capHint(n, r.BytesRemaining()))
	for range n {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// capHint bounds a pre-allocation hint by the bytes actually remaining, so
// a maliciously or corruptly large count prefix can't force a huge
// allocation before the short read that will fail it.
func capHint(n, bytesRemaining int) int {
	if n > bytesRemaining {
		return bytesRemaining
	}

	return n
}
