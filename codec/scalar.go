// Package codec implements the type-directed encoding and decoding of
// every wire shape the core supports: fixed-width scalars, strings,
// optionals, unions, pairs/tuples, fixed arrays, variable sequences, sets,
// maps, and bitsets (spec.md §4.2, §4.3).
//
// Every function here takes a *buffer.Writer or *buffer.Reader and leaves
// the cursor exactly where the primitive invariants in spec.md §8 require:
// advanced by the encoded/decoded width on success, unchanged on failure.
// Grounded on the teacher's encoding/numeric_raw.go raw-width read/write
// loop and section/numeric_header.go's unsigned-bit-pattern trick for
// signed/float fields.
package codec

import (
	"math"

	"github.com/arloliu/serialcore/buffer"
)

// WriteUint8 writes a single octet.
func WriteUint8(w *buffer.Writer, v uint8) error {
	return w.Write([]byte{v})
}

// ReadUint8 reads a single octet.
func ReadUint8(r *buffer.Reader) (uint8, error) {
	b, err := r.Read(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// WriteUint16 writes v in the buffer's declared byte order.
func WriteUint16(w *buffer.Writer, v uint16) error {
	buf := make([]byte, 2)
	w.Endian().PutUint16(buf, v)

	return w.Write(buf)
}

// ReadUint16 reads a uint16 in the buffer's declared byte order.
func ReadUint16(r *buffer.Reader) (uint16, error) {
	b, err := r.Read(2)
	if err != nil {
		return 0, err
	}

	return r.Endian().Uint16(b), nil
}

// WriteUint32 writes v in the buffer's declared byte order.
func WriteUint32(w *buffer.Writer, v uint32) error {
	buf := make([]byte, 4)
	w.Endian().PutUint32(buf, v)

	return w.Write(buf)
}

// ReadUint32 reads a uint32 in the buffer's declared byte order.
func ReadUint32(r *buffer.Reader) (uint32, error) {
	b, err := r.Read(4)
	if err != nil {
		return 0, err
	}

	return r.Endian().Uint32(b), nil
}

// WriteUint64 writes v in the buffer's declared byte order.
func WriteUint64(w *buffer.Writer, v uint64) error {
	buf := make([]byte, 8)
	w.Endian().PutUint64(buf, v)

	return w.Write(buf)
}

// ReadUint64 reads a uint64 in the buffer's declared byte order.
func ReadUint64(r *buffer.Reader) (uint64, error) {
	b, err := r.Read(8)
	if err != nil {
		return 0, err
	}

	return r.Endian().Uint64(b), nil
}

// WriteInt8 writes a signed 8-bit integer via its unsigned bit pattern.
func WriteInt8(w *buffer.Writer, v int8) error {
	return WriteUint8(w, uint8(v))
}

// ReadInt8 reads a signed 8-bit integer via its unsigned bit pattern.
func ReadInt8(r *buffer.Reader) (int8, error) {
	v, err := ReadUint8(r)

	return int8(v), err
}

// WriteInt16 writes a signed 16-bit integer via its unsigned bit pattern.
func WriteInt16(w *buffer.Writer, v int16) error {
	return WriteUint16(w, uint16(v))
}

// ReadInt16 reads a signed 16-bit integer via its unsigned bit pattern.
func ReadInt16(r *buffer.Reader) (int16, error) {
	v, err := ReadUint16(r)

	return int16(v), err
}

// WriteInt32 writes a signed 32-bit integer via its unsigned bit pattern.
func WriteInt32(w *buffer.Writer, v int32) error {
	return WriteUint32(w, uint32(v))
}

// ReadInt32 reads a signed 32-bit integer via its unsigned bit pattern.
func ReadInt32(r *buffer.Reader) (int32, error) {
	v, err := ReadUint32(r)

	return int32(v), err
}

// WriteInt64 writes a signed 64-bit integer via its unsigned bit pattern.
func WriteInt64(w *buffer.Writer, v int64) error {
	return WriteUint64(w, uint64(v))
}

// ReadInt64 reads a signed 64-bit integer via its unsigned bit pattern.
func ReadInt64(r *buffer.Reader) (int64, error) {
	v, err := ReadUint64(r)

	return int64(v), err
}

// WriteFloat32 writes an IEEE-754 binary32 via its bitwise reinterpretation.
func WriteFloat32(w *buffer.Writer, v float32) error {
	return WriteUint32(w, math.Float32bits(v))
}

// ReadFloat32 reads an IEEE-754 binary32 via its bitwise reinterpretation.
func ReadFloat32(r *buffer.Reader) (float32, error) {
	bits, err := ReadUint32(r)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// WriteFloat64 writes an IEEE-754 binary64 via its bitwise reinterpretation.
func WriteFloat64(w *buffer.Writer, v float64) error {
	return WriteUint64(w, math.Float64bits(v))
}

// ReadFloat64 reads an IEEE-754 binary64 via its bitwise reinterpretation.
func ReadFloat64(r *buffer.Reader) (float64, error) {
	bits, err := ReadUint64(r)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// WriteBool writes a bool as a single octet, 0 or 1.
func WriteBool(w *buffer.Writer, v bool) error {
	if v {
		return WriteUint8(w, 1)
	}

	return WriteUint8(w, 0)
}

// ReadBool reads a bool; any non-zero octet decodes as true.
func ReadBool(r *buffer.Reader) (bool, error) {
	v, err := ReadUint8(r)
	if err != nil {
		return false, err
	}

	return v != 0, nil
}
