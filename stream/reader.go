// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"errors"
	"io"

	"code.hybscloud.com/uvio/errs"
)

var errTerminatorNotFound = errors.New("stream: terminator not found within buffer capacity")

// BufReader wraps an io.Reader with a Buffer, offering Read, ReadExact,
// ReadUntil and ReadLine. The caller observes bytes in the order they were
// supplied by the source regardless of internal buffering.
type BufReader struct {
	io  io.Reader
	buf *Buffer

	// pending carries an error that arrived alongside data from the
	// underlying reader (permitted by the io.Reader contract) until the
	// buffered data has been handed to the caller.
	pending error
}

// NewBufReader wraps r with a Buffer of the given size (DefaultBufferSize
// if size <= 0).
func NewBufReader(r io.Reader, size int) *BufReader {
	return &BufReader{io: r, buf: NewBuffer(size)}
}

// Inner returns the wrapped io.Reader.
func (r *BufReader) Inner() io.Reader { return r.io }

// Read implements io.Reader over the buffered source.
func (r *BufReader) Read(dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Large reads bypass the buffer: drain what's buffered, then read the
	// remainder directly into dst to avoid an extra copy.
	if len(dst) > r.buf.Capacity() {
		n := r.buf.WriteTo(dst)
		rest := dst[n:]
		if len(rest) == 0 {
			return n, nil
		}
		rn, err := r.io.Read(rest)
		return n + rn, err
	}

	if !r.buf.Empty() {
		return r.buf.WriteTo(dst), nil
	}

	if r.pending != nil {
		err := r.pending
		r.pending = nil
		return 0, err
	}

	for {
		if r.buf.Writable() < len(dst) {
			r.buf.ResetData()
		}
		n, err := r.io.Read(r.buf.WriteSlice())
		r.buf.Fill(n)
		if err != nil {
			if r.buf.Empty() {
				return 0, err
			}
			r.pending = err
			return r.buf.WriteTo(dst), nil
		}
		if !r.buf.Empty() || n == 0 {
			return r.buf.WriteTo(dst), nil
		}
	}
}

// ReadExact fills dst completely, returning errs.ErrUnexpectedEOF if the
// source is exhausted before dst is full.
func (r *BufReader) ReadExact(dst []byte) error {
	got := 0
	for got < len(dst) {
		n, err := r.Read(dst[got:])
		got += n
		if err != nil {
			if err == io.EOF {
				return errs.ErrUnexpectedEOF
			}
			return err
		}
		if n == 0 {
			return errs.ErrUnexpectedEOF
		}
	}
	return nil
}

// ReadUntil scans for the first occurrence of terminator, appends
// [r, end-of-terminator) to out (terminator bytes included), and returns
// the number of bytes appended. It keeps refilling and re-searching the
// buffer until terminator is found; it never speculatively appends the
// un-terminated prefix to out before the terminator appears. The data up to
// and including terminator must therefore fit in the buffer: a full buffer
// with no terminator in it is reported as an Unclassified error.
func (r *BufReader) ReadUntil(out *[]byte, terminator []byte) (int, error) {
	start := len(*out)
	for {
		if slice := r.buf.FindFlag(terminator); slice != nil {
			*out = append(*out, slice...)
			r.buf.Advance(len(slice))
			return len(*out) - start, nil
		}

		if r.buf.Writable() == 0 {
			r.buf.ResetData()
			if r.buf.Writable() == 0 {
				return len(*out) - start, errs.Wrap(errTerminatorNotFound)
			}
		}
		n, err := r.io.Read(r.buf.WriteSlice())
		r.buf.Fill(n)
		if err != nil {
			if err == io.EOF {
				return len(*out) - start, errs.ErrUnexpectedEOF
			}
			return len(*out) - start, err
		}
	}
}

// ReadLine is ReadUntil(out, []byte("\n")).
func (r *BufReader) ReadLine(out *[]byte) (int, error) {
	return r.ReadUntil(out, []byte("\n"))
}

// WriteTo implements io.WriterTo, draining buffered and source bytes into
// dst without an intermediate caller-supplied buffer.
func (r *BufReader) WriteTo(dst io.Writer) (int64, error) {
	var total int64
	if !r.buf.Empty() {
		n, err := dst.Write(r.buf.ReadSlice())
		total += int64(n)
		r.buf.Advance(n)
		if err != nil {
			return total, err
		}
	}
	n, err := io.Copy(dst, r.io)
	total += n
	return total, err
}
