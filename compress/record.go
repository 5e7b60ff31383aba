package compress

import (
	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/codec"
	"github.com/arloliu/serialcore/corerr"
	"github.com/arloliu/serialcore/record"
)

// WrappedRecord adapts an inner record.Record so its body is transparently
// compressed on encode and decompressed on decode. The envelope that frames
// a WrappedRecord never sees the inner record's raw bytes — only the
// compressed form plus the two SizeWire length prefixes below — so
// compression composes with the envelope's own header/checksum framing
// without either package needing to know about the other.
//
// Wire form of a WrappedRecord's body: SizeWire raw_size, SizeWire
// compressed_size, compressed_size octets.
type WrappedRecord struct {
	Inner record.Record
	Codec Codec
}

// Wrap returns a record.Record that compresses inner's body with codec.
func Wrap(inner record.Record, codec Codec) *WrappedRecord {
	return &WrappedRecord{Inner: inner, Codec: codec}
}

func (w *WrappedRecord) ID() uint16     { return w.Inner.ID() }
func (w *WrappedRecord) Version() uint8 { return w.Inner.Version() }

func (w *WrappedRecord) SerializeBody(wr *buffer.Writer) error {
	scratch := buffer.NewWriter(wr.Endian(), 0)
	if err := w.Inner.SerializeBody(scratch); err != nil {
		return err
	}
	raw := scratch.Finalize()

	compressed, err := w.Codec.Compress(raw)
	if err != nil {
		return err
	}

	if err := codec.WriteSize(wr, uint64(len(raw))); err != nil {
		return err
	}
	if err := codec.WriteSize(wr, uint64(len(compressed))); err != nil {
		return err
	}

	return wr.Write(compressed)
}

func (w *WrappedRecord) DeserializeBody(r *buffer.Reader) error {
	rawLen, err := codec.ReadSizeAsInt(r)
	if err != nil {
		return err
	}
	compLen, err := codec.ReadSizeAsInt(r)
	if err != nil {
		return err
	}

	compressed, err := r.Read(compLen)
	if err != nil {
		return err
	}

	raw, err := w.Codec.Decompress(compressed)
	if err != nil {
		return err
	}
	if len(raw) != rawLen {
		return corerr.ErrSizeMismatch
	}

	scratch := buffer.NewReader(raw, r.Endian())

	return w.Inner.DeserializeBody(scratch)
}
