package codec

import "github.com/arloliu/serialcore/buffer"

// WriteOptional encodes presence followed by encode(w) iff present
// (spec.md §4.3).
func WriteOptional(w *buffer.Writer, present bool, encode func(*buffer.Writer) error) error {
	if err := WriteBool(w, present); err != nil {
		return err
	}
	if !present {
		return nil
	}

	return encode(w)
}

// ReadOptional decodes a presence flag and, if present, invokes decode to
// consume the value. It returns whether a value was present.
func ReadOptional(r *buffer.Reader, decode func(*buffer.Reader) error) (bool, error) {
	present, err := ReadBool(r)
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}

	return true, decode(r)
}
