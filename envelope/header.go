package envelope

import (
	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/codec"
)

// HeaderSize is the fixed wire width, in octets, of a Header: this
// specification mandates the single 8-bit-version + 16-bit-id + 8-bit-flags
// layout below, not the teacher's legacy 16-bit-version + 16-bit-id form.
const HeaderSize = 24

// Header is the 24-octet frame that precedes every record's body on the
// wire, grounded on section.NumericHeader's fixed-offset Parse/Bytes shape
// but redefined to this layout (field order fixed):
//
//	offset  width  field
//	0       4      checksum   int32, 0 = absent
//	4       2      id         uint16
//	6       1      version    uint8, 0 = none
//	7       1      flags      Flags octet
//	8       8      body_size  uint64, octets of body
//	16      8      timestamp  int64 ms since epoch, 0 = absent
type Header struct {
	Checksum  int32
	ID        uint16
	Version   uint8
	Flags     Flags
	BodySize  uint64
	Timestamp int64
}

// write emits the header's 24 octets at the writer's current cursor.
func (h Header) write(w *buffer.Writer) error {
	if err := codec.WriteInt32(w, h.Checksum); err != nil {
		return err
	}
	if err := codec.WriteUint16(w, h.ID); err != nil {
		return err
	}
	if err := codec.WriteUint8(w, h.Version); err != nil {
		return err
	}
	if err := codec.WriteUint8(w, uint8(h.Flags)); err != nil {
		return err
	}
	if err := codec.WriteUint64(w, h.BodySize); err != nil {
		return err
	}

	return codec.WriteInt64(w, h.Timestamp)
}

// readHeader decodes a 24-octet Header at the reader's current cursor.
func readHeader(r *buffer.Reader) (Header, error) {
	var h Header

	checksum, err := codec.ReadInt32(r)
	if err != nil {
		return Header{}, err
	}
	id, err := codec.ReadUint16(r)
	if err != nil {
		return Header{}, err
	}
	version, err := codec.ReadUint8(r)
	if err != nil {
		return Header{}, err
	}
	flags, err := codec.ReadUint8(r)
	if err != nil {
		return Header{}, err
	}
	bodySize, err := codec.ReadUint64(r)
	if err != nil {
		return Header{}, err
	}
	timestamp, err := codec.ReadInt64(r)
	if err != nil {
		return Header{}, err
	}

	h.Checksum = checksum
	h.ID = id
	h.Version = version
	h.Flags = Flags(flags)
	h.BodySize = bodySize
	h.Timestamp = timestamp

	return h, nil
}
