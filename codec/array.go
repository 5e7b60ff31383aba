package codec

import "github.com/arloliu/serialcore/buffer"

// WriteFixedArray encodes n encodings of T with no length prefix — N is
// static and known to both sides (spec.md §4.3).
func WriteFixedArray[T any](w *buffer.Writer, items []T, encode func(*buffer.Writer, T) error) error {
	for _, v := range items {
		if err := encode(w, v); err != nil {
			return err
		}
	}

	return nil
}

// ReadFixedArray decodes exactly n encodings of T into a freshly allocated
// slice. Unlike a variable sequence there is no count prefix to validate;
// a short read simply fails on the element that ran out of bytes.
func ReadFixedArray[T any](r *buffer.Reader, n int, decode func(*buffer.Reader) (T, error)) ([]T, error) {
	out := make([]T, n)
	for i := range n {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
