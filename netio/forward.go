// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netio

import "io"

// Forwarder relays raw bytes from a source stream to a destination
// stream, adapted from the teacher's framer.Forwarder for the
// byte-oriented (unframed) TCP proxy case: a demo collaborator, not part
// of the core algorithms.
//
// Two-phase per call, same retry contract as the teacher's version: on
// ErrWouldBlock/ErrMore, ForwardOnce returns the progress made so far and
// the caller must retry on the SAME Forwarder to finish the in-flight
// chunk.
type Forwarder struct {
	src io.Reader
	dst io.Writer

	buf   []byte
	need  int
	got   int
	state uint8 // 0: read, 1: write
}

// NewForwarder constructs a Forwarder relaying bytes from src to dst,
// using an internal buffer of the given size.
func NewForwarder(dst io.Writer, src io.Reader, bufSize int) *Forwarder {
	if bufSize <= 0 {
		bufSize = 32 * 1024
	}
	return &Forwarder{src: src, dst: dst, buf: make([]byte, bufSize)}
}

// ForwardOnce relays at most one buffer's worth of bytes. It returns
// (n, nil) once that chunk has been fully written to dst, or
// (n, ErrWouldBlock|ErrMore) when the phase it is in made partial
// progress and must be resumed.
func (f *Forwarder) ForwardOnce() (n int, err error) {
	if f.state == 0 {
		rn, re := f.src.Read(f.buf)
		if rn > 0 {
			f.need = rn
			f.got = 0
			f.state = 1
		}
		if re != nil {
			if re == ErrWouldBlock || re == ErrMore {
				return rn, re
			}
			if re == io.EOF && rn == 0 {
				return 0, io.EOF
			}
			if re != io.EOF {
				return rn, re
			}
			// (rn>0, io.EOF): forward this final chunk and return (n, nil);
			// the EOF surfaces from the source on a later call.
		}
		if rn == 0 {
			return 0, nil
		}
	}

	for f.got < f.need {
		wn, we := f.dst.Write(f.buf[f.got:f.need])
		f.got += wn
		if we != nil {
			if we == ErrWouldBlock || we == ErrMore {
				return wn, we
			}
			return wn, we
		}
		if wn == 0 {
			return 0, io.ErrShortWrite
		}
	}

	n = f.need
	f.state = 0
	f.need = 0
	f.got = 0
	return n, nil
}
