package codec

import "github.com/arloliu/serialcore/buffer"

// WriteSet encodes a set/unordered-set of T with the same wire form as a
// sequence: a SizeWire count followed by count encodings of T (spec.md
// §4.3). The iteration order of items is whatever the caller supplies;
// sets carry no intrinsic order on the wire.
func WriteSet[T any](w *buffer.Writer, items []T, encode func(*buffer.Writer, T) error) error {
	return WriteSequence(w, items, encode)
}

// ReadSet decodes a sequence-framed set of T into a map, so duplicate
// elements on the wire are tolerated by idempotent insertion (spec.md
// §4.3). T must be comparable to serve as a map key.
func ReadSet[T comparable](r *buffer.Reader, decode func(*buffer.Reader) (T, error)) (map[T]struct{}, error) {
	n, err := ReadSizeAsInt(r)
	if err != nil {
		return nil, err
	}

	out := make(map[T]struct{}, capHint(n, r.BytesRemaining()))
	for range n {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out[v] = struct{}{}
	}

	return out, nil
}
