package buffer

import (
	"github.com/arloliu/serialcore/corerr"
	"github.com/arloliu/serialcore/endian"
)

// Writer is a Buffer opened for encoding. It grows its storage
// geometrically up to an optional caller-declared max size; exceeding that
// size fails the write without mutating cursor or length (spec.md §5,
// "Allocation policy").
//
// A Writer is not reusable after Finalize; callers construct a new one for
// further encoding. It is not safe for concurrent use.
type Writer struct {
	Buffer
	maxSize int // 0 means unbounded
}

// NewWriter creates a Writer with the given declared byte order. maxSize
// caps total storage growth; 0 means unbounded (bounded only by available
// memory).
func NewWriter(engine endian.EndianEngine, maxSize int) *Writer {
	return &Writer{
		Buffer:  Buffer{engine: engine},
		maxSize: maxSize,
	}
}

// MaxSize returns the writer's declared maximum size, or 0 if unbounded.
func (w *Writer) MaxSize() int { return w.maxSize }

// Write writes n=len(data) bytes at the current cursor position.
//
// If the cursor lies within already-allocated storage (e.g. after a
// rewind via SetCursor), the bytes are overwritten in place — this is how
// the envelope back-fills its header and checksum. Otherwise storage is
// grown to accommodate the write. On failure (size would exceed maxSize,
// or the writer is already finalized) the cursor and length are left
// exactly as they were (spec.md §8, "Cursor invariants").
func (w *Writer) Write(data []byte) error {
	if w.ready {
		return corerr.ErrNotReady
	}

	n := len(data)
	end := w.cursor + n

	if end <= len(w.data) {
		copy(w.data[w.cursor:end], data)
		w.cursor = end

		return nil
	}

	if w.maxSize > 0 && end > w.maxSize {
		return corerr.ErrBufferOverflow
	}

	w.growTo(end)
	copy(w.data[w.cursor:end], data)
	w.cursor = end

	return nil
}

// WriteZero writes n zero bytes at the cursor through Write (overwriting
// any stored bytes in that span, growing storage past the end) and advances
// the cursor by n. Used by the envelope to reserve header room before the
// body is known (spec.md §4.4, step 2).
func (w *Writer) WriteZero(n int) error {
	return w.Write(make([]byte, n))
}

// growTo grows the backing slice so its length is at least n. When the
// capacity is exhausted it adds defaultGrowth bytes while the capacity is
// at most 4*defaultGrowth (1KiB), otherwise 25% of the capacity, clamped to
// at least what's required. Mirrors the teacher's pool.ByteBuffer.Grow.
func (w *Writer) growTo(n int) {
	if cap(w.data) >= n {
		w.data = w.data[:n]

		return
	}

	growBy := defaultGrowth
	if cap(w.data) > 4*defaultGrowth {
		growBy = cap(w.data) / 4
	}
	newCap := cap(w.data) + growBy
	if newCap < n {
		newCap = n
	}

	newData := make([]byte, n, newCap)
	copy(newData, w.data)
	w.data = newData
}

// Finalize transitions the writer to ready, truncating the underlying
// storage to the current cursor position. After Finalize no further writes
// are accepted.
func (w *Writer) Finalize() []byte {
	w.data = w.data[:w.cursor]
	w.ready = true

	return w.data
}
