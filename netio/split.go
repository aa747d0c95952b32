// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netio

import "code.hybscloud.com/uvio/errs"

// OwnedReadHalf is the read-only half of a split TcpStream. It only ever
// touches the stream's read mutex, so it never contends with the
// corresponding OwnedWriteHalf.
type OwnedReadHalf struct {
	own *owner
	s   *TcpStream
}

// OwnedWriteHalf is the write-only half of a split TcpStream.
type OwnedWriteHalf struct {
	own *owner
	s   *TcpStream
}

// Split divides a TcpStream into independent read and write halves, each
// usable from its own task without the other half's direction being
// affected. The original TcpStream must not be used directly again until
// the halves are recombined with Reunite.
func Split(s *TcpStream) (*OwnedReadHalf, *OwnedWriteHalf) {
	return &OwnedReadHalf{own: s.own, s: s}, &OwnedWriteHalf{own: s.own, s: s}
}

// Read reads from the stream's read half.
func (r *OwnedReadHalf) Read(p []byte) (int, error) { return r.s.Read(p) }

// Write writes to the stream's write half.
func (w *OwnedWriteHalf) Write(p []byte) (int, error) { return w.s.Write(p) }

// Reunite recombines a read half and a write half back into the single
// TcpStream they were split from. It fails with errs.ErrReunite if the two
// halves do not share an origin.
func Reunite(r *OwnedReadHalf, w *OwnedWriteHalf) (*TcpStream, error) {
	if r.own != w.own {
		return nil, errs.ErrReunite
	}
	return r.s, nil
}
