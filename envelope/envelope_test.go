package envelope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/codec"
	"github.com/arloliu/serialcore/corelog"
	"github.com/arloliu/serialcore/corerr"
	"github.com/arloliu/serialcore/endian"
)

// helloRecord mirrors the worked scenario {a_uint16=655, a_string="hello world"}.
type helloRecord struct {
	AUint16 uint16
	AString string
}

func (r *helloRecord) ID() uint16     { return 42 }
func (r *helloRecord) Version() uint8 { return 1 }

func (r *helloRecord) SerializeBody(w *buffer.Writer) error {
	if err := codec.WriteUint16(w, r.AUint16); err != nil {
		return err
	}

	return codec.WriteString(w, r.AString)
}

func (r *helloRecord) DeserializeBody(rd *buffer.Reader) error {
	v, err := codec.ReadUint16(rd)
	if err != nil {
		return err
	}
	s, err := codec.ReadString(rd)
	if err != nil {
		return err
	}
	r.AUint16 = v
	r.AString = s

	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEnvelope_RoundtripHelloRecord(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	rec := &helloRecord{AUint16: 655, AString: "hello world"}

	require.NoError(t, Serialize(w, rec))
	out := w.Finalize()
	require.Len(t, out, HeaderSize+2+8+len("hello world"))

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	got := &helloRecord{}
	require.NoError(t, Deserialize(r, got))
	require.Equal(t, rec, got)
	require.Equal(t, 0, r.BytesRemaining())
}

func TestEnvelope_Idempotence(t *testing.T) {
	rec := &helloRecord{AUint16: 1, AString: "round"}

	w1 := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	require.NoError(t, Serialize(w1, rec, withClock(fixedClock(time.UnixMilli(1000)))))
	out1 := w1.Finalize()

	r := buffer.NewReader(out1, endian.GetLittleEndianEngine())
	got := &helloRecord{}
	require.NoError(t, Deserialize(r, got))

	w2 := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	require.NoError(t, Serialize(w2, got, withClock(fixedClock(time.UnixMilli(1000)))))
	out2 := w2.Finalize()

	require.Equal(t, out1, out2)
}

func TestEnvelope_ChecksumMismatchOnOctetFlip(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	rec := &helloRecord{AUint16: 655, AString: "hello world"}
	require.NoError(t, Serialize(w, rec))
	out := w.Finalize()

	out[len(out)-1] ^= 0xFF

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	got := &helloRecord{}
	err := Deserialize(r, got)
	require.ErrorIs(t, err, corerr.ErrChecksumMismatch)
}

func TestEnvelope_EndianMismatchFatal(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	rec := &helloRecord{AUint16: 1, AString: "x"}
	require.NoError(t, Serialize(w, rec))
	out := w.Finalize()

	r := buffer.NewReader(out, endian.GetBigEndianEngine())
	got := &helloRecord{}
	err := Deserialize(r, got)
	require.ErrorIs(t, err, corerr.ErrInvalidEndian)
}

func TestEnvelope_IDMismatchFatal(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	rec := &helloRecord{AUint16: 1, AString: "x"}
	require.NoError(t, Serialize(w, rec))
	out := w.Finalize()

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	got := recordWithID{&helloRecord{}, 43}
	err := Deserialize(r, got)
	require.ErrorIs(t, err, corerr.ErrInvalidID)
}

// recordWithID overrides ID() for tests exercising id mismatch without a
// second full record type.
type recordWithID struct {
	*helloRecord
	id uint16
}

func (r recordWithID) ID() uint16 { return r.id }

func TestEnvelope_VersionMismatchNonStrictWarnsAndSucceeds(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	rec := &helloRecord{AUint16: 1, AString: "x"}
	require.NoError(t, Serialize(w, rec))
	out := w.Finalize()

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	got := &recordWithVersion{&helloRecord{}, 2}
	logger := &recordingLogger{}
	err := Deserialize(r, got, WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, []corelog.Level{corelog.LevelWarn}, logger.levels)
}

// recordingLogger keeps the level of every Log call it receives.
type recordingLogger struct {
	levels []corelog.Level
}

func (l *recordingLogger) Log(level corelog.Level, _ corelog.Loc, _ string, _ ...any) {
	l.levels = append(l.levels, level)
}

func TestEnvelope_VersionMismatchStrictFatal(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	rec := &helloRecord{AUint16: 1, AString: "x"}
	require.NoError(t, Serialize(w, rec))
	out := w.Finalize()

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	got := &recordWithVersion{&helloRecord{}, 2}
	err := Deserialize(r, got, WithStrict(true))
	require.ErrorIs(t, err, corerr.ErrVersionMismatch)
}

type recordWithVersion struct {
	*helloRecord
	version uint8
}

func (r recordWithVersion) Version() uint8 { return r.version }

func TestEnvelope_BodySizeExceedsRemainingFatal(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	rec := &helloRecord{AUint16: 1, AString: "x"}
	require.NoError(t, Serialize(w, rec))
	out := w.Finalize()

	r := buffer.NewReader(out[:HeaderSize+1], endian.GetLittleEndianEngine())
	got := &helloRecord{}
	err := Deserialize(r, got)
	require.Error(t, err)
}

func TestEnvelope_WithoutChecksum(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	rec := &helloRecord{AUint16: 7, AString: "nochecksum"}
	require.NoError(t, Serialize(w, rec, WithChecksum(false)))
	out := w.Finalize()

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	got := &helloRecord{}
	require.NoError(t, Deserialize(r, got))
	require.Equal(t, rec, got)
}

func TestDeserializeHeader_PeeksWithoutBody(t *testing.T) {
	w := buffer.NewWriter(endian.GetLittleEndianEngine(), 0)
	rec := &helloRecord{AUint16: 9, AString: "peek"}
	require.NoError(t, Serialize(w, rec, withClock(fixedClock(time.UnixMilli(42)))))
	out := w.Finalize()

	r := buffer.NewReader(out, endian.GetLittleEndianEngine())
	h, err := DeserializeHeader(r)
	require.NoError(t, err)
	require.Equal(t, uint16(42), h.ID)
	require.Equal(t, uint8(1), h.Version)
	require.Equal(t, int64(42), h.Timestamp)
	require.Equal(t, HeaderSize, r.Cursor())
}
