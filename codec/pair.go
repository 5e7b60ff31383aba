package codec

import "github.com/arloliu/serialcore/buffer"

// WritePair encodes a pair as its two fields in declared order, with no
// length prefix (spec.md §4.3) — field A then field B.
func WritePair(w *buffer.Writer, writeA, writeB func(*buffer.Writer) error) error {
	if err := writeA(w); err != nil {
		return err
	}

	return writeB(w)
}

// ReadPair decodes a pair's two fields in declared order.
func ReadPair(r *buffer.Reader, readA, readB func(*buffer.Reader) error) error {
	if err := readA(r); err != nil {
		return err
	}

	return readB(r)
}

// WriteTuple encodes an arbitrary-arity tuple as its fields in declared
// order, with no prefix (spec.md §4.3). Each element of fields writes
// exactly one field to w.
func WriteTuple(w *buffer.Writer, fields ...func(*buffer.Writer) error) error {
	for _, f := range fields {
		if err := f(w); err != nil {
			return err
		}
	}

	return nil
}

// ReadTuple decodes an arbitrary-arity tuple's fields in declared order.
func ReadTuple(r *buffer.Reader, fields ...func(*buffer.Reader) error) error {
	for _, f := range fields {
		if err := f(r); err != nil {
			return err
		}
	}

	return nil
}
