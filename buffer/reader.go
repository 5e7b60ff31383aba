package buffer

import (
	"github.com/arloliu/serialcore/corerr"
	"github.com/arloliu/serialcore/endian"
)

// Reader is a Buffer opened for decoding. Its cursor is interior-mutable —
// every primitive read advances it — which is why a single Reader must
// never be shared across goroutines (spec.md §5).
type Reader struct {
	Buffer
}

// NewReader creates a Reader over data with the given declared byte order.
// The reader is immediately ready: all bytes are present up front.
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{Buffer: Buffer{data: data, engine: engine, ready: true}}
}

// NewStreamingReader creates a Reader with no data yet; bytes arrive via
// AddData. Useful when the full payload isn't available up front (e.g.
// reading off a socket).
func NewStreamingReader(engine endian.EndianEngine) *Reader {
	return &Reader{Buffer: Buffer{engine: engine}}
}

// AddData appends more bytes to a streaming reader. final marks the reader
// ready, after which no further bytes may be appended. Returns
// corerr.ErrNotReady if the reader is already ready.
func (r *Reader) AddData(data []byte, final bool) error {
	if r.ready {
		return corerr.ErrNotReady
	}

	r.data = append(r.data, data...)
	if final {
		r.ready = true
	}

	return nil
}

// BytesRemaining returns the number of unread bytes from the cursor to the
// end of the stored data.
func (r *Reader) BytesRemaining() int { return len(r.data) - r.cursor }

// Read consumes n bytes starting at the cursor and advances it by n. On
// underflow the cursor is left unchanged and corerr.ErrBufferUnderflow is
// returned (spec.md §8, "Cursor invariants"). The returned slice aliases
// the reader's storage and is valid only until the next ReleaseBytes call.
func (r *Reader) Read(n int) ([]byte, error) {
	span, err := r.checkRead(n)
	if err != nil {
		return nil, err
	}
	r.cursor += n

	return span, nil
}

// Peek returns the next n bytes without advancing the cursor.
func (r *Reader) Peek(n int) ([]byte, error) {
	return r.checkRead(n)
}
