package codec

import "github.com/arloliu/serialcore/buffer"

// WriteMap encodes a map/unordered-map of (K,V) as a SizeWire count
// followed by count encodings of K then V, alternating (spec.md §4.3).
// keys and values must be parallel slices of equal length; iteration
// order is whatever the caller supplies.
func WriteMap[K, V any](w *buffer.Writer, keys []K, values []V, encodeKey func(*buffer.Writer, K) error, encodeVal func(*buffer.Writer, V) error) error {
	if err := WriteSize(w, uint64(len(keys))); err != nil {
		return err
	}
	for i, k := range keys {
		if err := encodeKey(w, k); err != nil {
			return err
		}
		if err := encodeVal(w, values[i]); err != nil {
			return err
		}
	}

	return nil
}

// ReadMap decodes a sequence-framed (K,V) map. Duplicate keys on the wire
// retain the first written value (spec.md §4.3) — later duplicates are
// still fully consumed from the stream, just not inserted.
func ReadMap[K comparable, V any](r *buffer.Reader, decodeKey func(*buffer.Reader) (K, error), decodeVal func(*buffer.Reader) (V, error)) (map[K]V, error) {
	n, err := ReadSizeAsInt(r)
	if err != nil {
		return nil, err
	}

	out := make(map[K]V, capHint(n, r.BytesRemaining()))
	for range n {
		k, err := decodeKey(r)
		if err != nil {
			return nil, err
		}
		v, err := decodeVal(r)
		if err != nil {
			return nil, err
		}
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}

	return out, nil
}
