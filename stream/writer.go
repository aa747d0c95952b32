// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"io"

	"code.hybscloud.com/uvio/errs"
)

// BufWriter wraps an io.Writer with a Buffer, offering Write, Flush and
// WriteAll. Write buffers small payloads and flushes through directly once
// a payload no longer fits; it never partially buffers the tail of a write
// that doesn't fit.
type BufWriter struct {
	io  io.Writer
	buf *Buffer
}

// NewBufWriter wraps w with a Buffer of the given size (DefaultBufferSize
// if size <= 0).
func NewBufWriter(w io.Writer, size int) *BufWriter {
	return &BufWriter{io: w, buf: NewBuffer(size)}
}

// Inner returns the wrapped io.Writer.
func (w *BufWriter) Inner() io.Writer { return w.io }

// Write buffers src if it fits in the writable slice; otherwise it flushes
// whatever was buffered and writes src directly through to the underlying
// writer (no partial buffering of the tail).
func (w *BufWriter) Write(src []byte) (int, error) {
	if w.buf.Writable() >= len(src) {
		return w.buf.ReadFrom(src), nil
	}

	if w.buf.Readable() > 0 {
		if err := w.Flush(); err != nil {
			return 0, err
		}
	}

	n, err := w.io.Write(src)
	if err != nil {
		return n, err
	}
	return n, nil
}

// Flush drains the readable slice to the underlying writer, resetting
// cursors to 0.
func (w *BufWriter) Flush() error {
	for w.buf.Readable() > 0 {
		n, err := w.io.Write(w.buf.ReadSlice())
		if n > 0 {
			w.buf.Advance(n)
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return errs.ErrWriteZero
		}
	}
	w.buf.Reset()
	return nil
}

// WriteAll is Write(src) followed by Flush().
func (w *BufWriter) WriteAll(src []byte) error {
	if _, err := w.Write(src); err != nil {
		return err
	}
	return w.Flush()
}

// ReadFrom implements io.ReaderFrom: it flushes anything already buffered,
// then copies src straight to the underlying writer with io.Copy, bypassing
// the buffer.
func (w *BufWriter) ReadFrom(src io.Reader) (int64, error) {
	if err := w.Flush(); err != nil {
		return 0, err
	}
	return io.Copy(w.io, src)
}
