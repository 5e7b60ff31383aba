// Package buffer implements the cursor-based, bounds-checked byte storage
// that every codec and the envelope build on.
//
// A Buffer owns a contiguous byte slice, a cursor in [0, length], and a
// declared byte order (endian.EndianEngine). It does not interpret any
// bytes — that is ScalarCodec/CompositeCodec's job (package codec) — it
// only positions a cursor and bounds-checks spans, the way
// internal/pool.ByteBuffer bounds-checks growth in the teacher repo, with
// an explicit cursor and readiness state machine layered on top for the
// rewind-and-back-fill pattern the envelope needs (spec.md §4.4).
package buffer

import (
	"github.com/arloliu/serialcore/corerr"
	"github.com/arloliu/serialcore/endian"
)

// defaultGrowth is the growth chunk added when a writer's capacity runs out
// while that capacity is at most 4*defaultGrowth; larger buffers grow by a
// quarter of their capacity instead. Mirrors pool.BlobBufferDefaultSize's
// role, scaled down for a general-purpose core.
const defaultGrowth = 256

// Buffer is the shared cursor/endian/readiness state for both Writer and
// Reader. It is not constructed directly; use NewWriter or NewReader.
type Buffer struct {
	data   []byte
	cursor int
	engine endian.EndianEngine
	ready  bool
}

// Len returns the number of bytes currently stored.
func (b *Buffer) Len() int { return len(b.data) }

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor to pos. Returns false (cursor unchanged) if
// pos is outside [0, length].
func (b *Buffer) SetCursor(pos int) bool {
	if pos < 0 || pos > len(b.data) {
		return false
	}
	b.cursor = pos

	return true
}

// CursorToStart rewinds the cursor to 0.
func (b *Buffer) CursorToStart() { b.cursor = 0 }

// CursorToEnd advances the cursor to the current length.
func (b *Buffer) CursorToEnd() { b.cursor = len(b.data) }

// IsReady reports whether the buffer has reached its terminal readiness
// state: for a writer, Finalize has been called; for a reader, construction
// supplied the complete payload or a terminal AddData(final=true) call was made.
func (b *Buffer) IsReady() bool { return b.ready }

// Endian returns the buffer's declared byte order.
func (b *Buffer) Endian() endian.EndianEngine { return b.engine }

// BorrowBytes returns an immutable view of [start, start+n) without moving
// the cursor, or an empty slice if the span is out of range. The returned
// span is only valid until the next ReleaseBytes call.
func (b *Buffer) BorrowBytes(start, n int) []byte {
	if start < 0 || n < 0 || start+n > len(b.data) {
		return nil
	}

	return b.data[start : start+n : start+n]
}

// ReleaseBytes transfers ownership of the underlying storage to the caller
// and resets the buffer to empty with the cursor at 0. Any span previously
// returned by BorrowBytes must not be used after this call mutates the buffer
// for further use (the slice itself remains valid memory, only this Buffer's
// further writes are no longer guaranteed not to alias it).
func (b *Buffer) ReleaseBytes() []byte {
	out := b.data
	b.data = nil
	b.cursor = 0

	return out
}

// checkRead validates that n bytes can be read starting at the cursor and
// returns the span, without moving the cursor.
func (b *Buffer) checkRead(n int) ([]byte, error) {
	if b.cursor+n > len(b.data) {
		return nil, corerr.ErrBufferUnderflow
	}

	return b.data[b.cursor : b.cursor+n], nil
}
