package envelope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/endian"
	"github.com/arloliu/serialcore/record"
)

func TestWriterSession_WritesMultipleRecordsBackToBack(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	s := NewWriterSession(w)

	first := &helloRecord{AUint16: 1, AString: "one"}
	second := &helloRecord{AUint16: 2, AString: "two"}

	require.NoError(t, s.Write(first))
	require.NoError(t, s.Write(second))
	out := s.Finalize()

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())

	got1 := &helloRecord{}
	require.NoError(t, Deserialize(r, got1))
	require.Equal(t, first.AUint16, got1.AUint16)
	require.Equal(t, first.AString, got1.AString)

	got2 := &helloRecord{}
	require.NoError(t, Deserialize(r, got2))
	require.Equal(t, second.AUint16, got2.AUint16)
	require.Equal(t, second.AString, got2.AString)

	require.Equal(t, 0, r.BytesRemaining())
}

func TestReadRecord_DispatchesByHeaderID(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	require.NoError(t, Serialize(w, &helloRecord{AUint16: 7, AString: "seven"}))
	out := w.Finalize()

	reg := record.NewRegistry()
	reg.Register(42, func() record.Record { return &helloRecord{} })

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	got, err := ReadRecord(r, reg)
	require.NoError(t, err)

	hello, ok := got.(*helloRecord)
	require.True(t, ok)
	require.Equal(t, uint16(7), hello.AUint16)
	require.Equal(t, "seven", hello.AString)
}

func TestReadRecord_UnknownIDFails(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	require.NoError(t, Serialize(w, &helloRecord{AUint16: 1, AString: "x"}))
	out := w.Finalize()

	reg := record.NewRegistry()
	r := buffer.NewReader(out, endian.GetLittleEndianEngine())

	_, err := ReadRecord(r, reg)
	require.Error(t, err)
}
