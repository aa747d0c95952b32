// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stream provides the buffered I/O layer codecs compose over: a
// single-producer/single-consumer byte ring (Buffer) and BufReader/
// BufWriter/BufStream wrappers around an arbitrary io.Reader/io.Writer.
package stream

import "bytes"

// DefaultBufferSize is used by constructors that don't specify a size.
const DefaultBufferSize = 8 * 1024

// Buffer is a ring-like byte buffer with a read cursor r and a write cursor
// w over a fixed-capacity region, maintaining 0 <= r <= w <= cap(buf).
// The readable slice is buf[r:w]; the writable slice is buf[w:cap(buf)].
// A Buffer is owned exclusively by its enclosing reader/writer.
type Buffer struct {
	buf []byte
	r   int
	w   int
}

// NewBuffer allocates a Buffer with the given fixed capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &Buffer{buf: make([]byte, capacity)}
}

// Capacity returns the fixed capacity C.
func (b *Buffer) Capacity() int { return len(b.buf) }

// Readable returns the number of bytes available to read, w-r.
func (b *Buffer) Readable() int { return b.w - b.r }

// Writable returns the number of bytes of free space, C-w.
func (b *Buffer) Writable() int { return len(b.buf) - b.w }

// Empty reports whether r == w.
func (b *Buffer) Empty() bool { return b.r == b.w }

// ReadSlice returns the readable region [r, w) without copying.
func (b *Buffer) ReadSlice() []byte { return b.buf[b.r:b.w] }

// WriteSlice returns the writable region [w, C) without copying.
func (b *Buffer) WriteSlice() []byte { return b.buf[b.w:] }

// WriteTo copies min(w-r, len(dst)) bytes into dst, advances r, and resets
// both cursors to 0 once fully drained (r == w).
func (b *Buffer) WriteTo(dst []byte) int {
	n := copy(dst, b.buf[b.r:b.w])
	b.r += n
	if b.r == b.w {
		b.r, b.w = 0, 0
	}
	return n
}

// ReadFrom copies min(C-w, len(src)) bytes from src, advancing w.
func (b *Buffer) ReadFrom(src []byte) int {
	n := copy(b.buf[b.w:], src)
	b.w += n
	return n
}

// Advance marks n bytes of the readable region consumed without copying
// them out (used when a caller already inspected the slice via ReadSlice).
func (b *Buffer) Advance(n int) {
	b.r += n
	if b.r == b.w {
		b.r, b.w = 0, 0
	}
}

// Fill marks n bytes of the writable region produced without copying them
// in (used when a caller already wrote directly into WriteSlice).
func (b *Buffer) Fill(n int) { b.w += n }

// Reset resets both cursors to 0, discarding any buffered content.
func (b *Buffer) Reset() { b.r, b.w = 0, 0 }

// ResetData compacts the buffer by shifting [r, w) down to offset 0.
func (b *Buffer) ResetData() {
	n := copy(b.buf, b.buf[b.r:b.w])
	b.r = 0
	b.w = n
}

// FindFlag returns the readable prefix ending immediately after the first
// occurrence of pattern, or nil if pattern does not occur in [r, w).
func (b *Buffer) FindFlag(pattern []byte) []byte {
	idx := bytes.Index(b.buf[b.r:b.w], pattern)
	if idx < 0 {
		return nil
	}
	end := idx + len(pattern)
	return b.buf[b.r : b.r+end]
}
