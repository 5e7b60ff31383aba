package envelope

import (
	"github.com/arloliu/serialcore/buffer"
	"github.com/arloliu/serialcore/record"
)

// WriterSession encodes many records back-to-back into one Buffer, each
// wrapped in its own envelope. Grounded on the teacher's NumericEncoder,
// which is "not reusable after Finish" but accepts many metrics per blob
// via repeated StartMetricID/EndMetric — here each Write call plays the
// role of one StartMetricID/EndMetric pair, since an envelope's header and
// checksum are self-contained per record rather than shared across a blob.
//
// A WriterSession is not reusable after Finalize, and not safe for
// concurrent use.
type WriterSession struct {
	w    *buffer.Writer
	opts []Option
}

// NewWriterSession returns a session that writes envelopes into w. opts
// apply to every record written through the session unless a call to
// Write supplies its own, which are appended after (and so can override)
// the session-level options.
func NewWriterSession(w *buffer.Writer, opts ...Option) *WriterSession {
	return &WriterSession{w: w, opts: opts}
}

// Write serializes rec into the session's buffer as a new envelope,
// immediately after whatever was written before it.
func (s *WriterSession) Write(rec record.Record, opts ...Option) error {
	merged := make([]Option, 0, len(s.opts)+len(opts))
	merged = append(merged, s.opts...)
	merged = append(merged, opts...)

	return Serialize(s.w, rec, merged...)
}

// Len reports how many bytes have been written so far.
func (s *WriterSession) Len() int { return s.w.Len() }

// Finalize closes the session and returns the accumulated bytes. The
// session's Writer must not be used afterward.
func (s *WriterSession) Finalize() []byte { return s.w.Finalize() }
