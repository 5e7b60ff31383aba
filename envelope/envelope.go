package envelope

import (
	"fmt"
	"time"

	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/codec"
	"github.com/arloliu/serialcore/corelog"
	"github.com/arloliu/serialcore/corerr"
	"github.com/arloliu/serialcore/endian"
	"github.com/arloliu/serialcore/internal/hash"
	"github.com/arloliu/serialcore/options"
	"github.com/arloliu/serialcore/record"
)

// Option configures a single Serialize or Deserialize call.
type Option = options.Option[*config]

type config struct {
	checksum  bool
	timestamp bool
	strict    bool
	logger    corelog.Logger
	now       func() time.Time
}

func defaultConfig() *config {
	return &config{
		checksum:  true,
		timestamp: true,
		logger:    corelog.NoOp(),
		now:       time.Now,
	}
}

// WithChecksum toggles whether Serialize computes and back-fills a checksum
// (default true).
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *config) { c.checksum = enabled })
}

// WithTimestamp toggles whether Serialize stamps the header's timestamp
// field with the current time (default true).
func WithTimestamp(enabled bool) Option {
	return options.NoError(func(c *config) { c.timestamp = enabled })
}

// WithStrict makes a version mismatch on Deserialize fatal instead of a
// logged warning (default false).
func WithStrict(enabled bool) Option {
	return options.NoError(func(c *config) { c.strict = enabled })
}

// WithLogger injects the diagnostics sink used for warnings and decode
// errors (default corelog.NoOp(); a nil l also selects corelog.NoOp()).
func WithLogger(l corelog.Logger) Option {
	return options.NoError(func(c *config) {
		if l == nil {
			l = corelog.NoOp()
		}
		c.logger = l
	})
}

// withClock overrides the time source used for the header's timestamp
// field; unexported, used by tests that need deterministic golden vectors.
func withClock(now func() time.Time) Option {
	return options.NoError(func(c *config) { c.now = now })
}

// Serialize writes rec's envelope and body to w using the two-pass
// reserve/body/back-fill protocol (spec.md §4.4):
//
//  1. remember p0, reserve 24 octets of header room
//  2. invoke rec.SerializeBody, note the post-body cursor p1
//  3. rewind to p0, construct and write the header
//  4. if checksum is enabled, compute it over [p0+4, p1), rewind, back-fill
//     the 4-byte checksum field, and restore the cursor to p1
//
// Any failing step aborts the whole operation; the writer is left in
// whatever state the failing primitive left it in and must be discarded by
// the caller for this record (earlier, already-completed records in the
// same writer are unaffected).
func Serialize(w *buffer.Writer, rec record.Record, opts ...Option) error {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	p0 := w.Cursor()
	if err := w.WriteZero(HeaderSize); err != nil {
		return err
	}

	if err := rec.SerializeBody(w); err != nil {
		return fmt.Errorf("%w: %w", corerr.ErrBodyNotSerialized, err)
	}
	p1 := w.Cursor()

	if !w.SetCursor(p0) {
		return corerr.ErrCursorOutOfRange
	}

	header := Header{
		ID:       rec.ID(),
		Version:  rec.Version(),
		BodySize: uint64(p1 - p0 - HeaderSize),
		Flags: Flags(0).
			WithLittleEndian(endianIsLittle(w)).
			WithChecksum(cfg.checksum).
			WithTimestamp(cfg.timestamp).
			WithStrict(cfg.strict),
	}
	if cfg.timestamp {
		header.Timestamp = cfg.now().UnixMilli()
	}

	if err := header.write(w); err != nil {
		return err
	}

	if cfg.checksum {
		covered := w.BorrowBytes(p0+checksumRangeStart, p1-(p0+checksumRangeStart))
		checksum := computeChecksum(header.BodySize, covered)

		if !w.SetCursor(p0) {
			return corerr.ErrCursorOutOfRange
		}
		if err := writeChecksumField(w, checksum); err != nil {
			return err
		}
	}

	if !w.SetCursor(p1) {
		return corerr.ErrCursorOutOfRange
	}

	return nil
}

// Deserialize reads one record's envelope and body from r into rec,
// validating every field per spec.md §4.4: endian, id, version (strict or
// warned), body_size, and checksum. Every decode failure is logged at
// corelog.LevelError before it is returned.
func Deserialize(r *buffer.Reader, rec record.Record, opts ...Option) (err error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			cfg.logger.Log(corelog.LevelError, corelog.Loc{File: "envelope/envelope.go", Func: "Deserialize"},
				"record decode failed", "error", err)
		}
	}()

	c0Header := r.Cursor()
	header, err := readHeader(r)
	if err != nil {
		return err
	}

	if header.Flags.LittleEndian() != endianIsLittle(r) {
		return corerr.ErrInvalidEndian
	}
	if header.ID != rec.ID() {
		return corerr.ErrInvalidID
	}
	if header.Version != rec.Version() {
		if header.Flags.Strict() || cfg.strict {
			return corerr.ErrVersionMismatch
		}
		cfg.logger.Log(corelog.LevelWarn, corelog.Loc{File: "envelope/envelope.go", Func: "Deserialize"},
			"record version mismatch", "want", rec.Version(), "got", header.Version,
			"type_key", hash.TypeKey(fmt.Sprintf("%T", rec)))
	}
	if header.BodySize > uint64(r.BytesRemaining()) {
		return corerr.ErrBufferUnderflow
	}

	c0 := r.Cursor()
	if err := rec.DeserializeBody(r); err != nil {
		return fmt.Errorf("%w: %w", corerr.ErrBodyNotDeserialized, err)
	}
	c1 := r.Cursor()

	if uint64(c1-c0) != header.BodySize {
		return corerr.ErrSizeMismatch
	}

	if header.Flags.Checksum() {
		covered := r.BorrowBytes(c0Header+checksumRangeStart, c1-(c0Header+checksumRangeStart))
		want := computeChecksum(header.BodySize, covered)
		if want != header.Checksum {
			return corerr.ErrChecksumMismatch
		}
	}

	return nil
}

// DeserializeHeader peeks the 24-octet header at r's cursor, advances the
// cursor past it, and returns it without invoking any body handler.
func DeserializeHeader(r *buffer.Reader) (Header, error) {
	return readHeader(r)
}

// ReadRecord peeks the header's id, asks reg to construct the matching
// concrete Record, rewinds, and fully deserializes into it. Lets a reader
// decode a stream of mixed record types without already knowing which type
// comes next (spec.md's reader otherwise requires the caller to supply the
// target record up front).
func ReadRecord(r *buffer.Reader, reg *record.Registry, opts ...Option) (record.Record, error) {
	start := r.Cursor()

	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	if !r.SetCursor(start) {
		return nil, corerr.ErrCursorOutOfRange
	}

	rec, ok := reg.New(header.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", corerr.ErrUnknownRecordID, header.ID)
	}

	if err := Deserialize(r, rec, opts...); err != nil {
		return nil, err
	}

	return rec, nil
}

// writeChecksumField overwrites just the 4-octet checksum slot at the
// writer's current cursor (which must already be positioned at p0).
func writeChecksumField(w *buffer.Writer, checksum int32) error {
	return codec.WriteInt32(w, checksum)
}

// endianIsLittle reports whether b's declared byte order is little-endian.
func endianIsLittle(b interface{ Endian() endian.EndianEngine }) bool {
	return endian.IsLittleEndian(b.Endian())
}
