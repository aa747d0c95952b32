// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netio

import (
	"context"
	"net"
	"sync"

	"code.hybscloud.com/uvio/errs"
)

// owner identifies the TcpStream a pair of owned halves were split from,
// so Reunite can check the halves actually share an origin.
type owner struct {
	conn net.Conn
}

// TcpStream is a connected TCP stream backed by a stdlib net.Conn. Reads
// are serialized against other reads, and writes against other writes, by
// a pair of direction-scoped mutexes; concurrent calls in the same
// direction block rather than corrupting the stream.
type TcpStream struct {
	own  *owner
	opts Options

	readMu  sync.Mutex
	writeMu sync.Mutex
}

// Connect dials a TCP address, honoring ctx for cancellation/deadline.
func Connect(ctx context.Context, address string, opts ...Option) (*TcpStream, error) {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, err
	}
	return newTcpStream(conn, o), nil
}

func newTcpStream(conn net.Conn, opts Options) *TcpStream {
	return &TcpStream{own: &owner{conn: conn}, opts: opts}
}

// BufferSizes returns the configured read and write buffer size defaults,
// for a caller that wraps this stream in a stream.BufStream.
func (s *TcpStream) BufferSizes() (read, write int) {
	return s.opts.ReadBufferSize, s.opts.WriteBufferSize
}

// LocalAddr returns the stream's local network address.
func (s *TcpStream) LocalAddr() net.Addr { return s.own.conn.LocalAddr() }

// RemoteAddr returns the stream's remote network address.
func (s *TcpStream) RemoteAddr() net.Addr { return s.own.conn.RemoteAddr() }

// Read reads from the stream, serialized against concurrent reads.
func (s *TcpStream) Read(p []byte) (int, error) {
	s.readMu.Lock()
	defer s.readMu.Unlock()
	return s.own.conn.Read(p)
}

// Write writes to the stream, serialized against concurrent writes. A
// zero-byte write with a nil error (the underlying conn made no progress)
// is reported as errs.ErrWriteZero rather than silently returning (0, nil).
func (s *TcpStream) Write(p []byte) (int, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	n, err := s.own.conn.Write(p)
	if n == 0 && err == nil && len(p) != 0 {
		return 0, errs.ErrWriteZero
	}
	return n, err
}

// Close closes the underlying connection.
func (s *TcpStream) Close() error { return s.own.conn.Close() }
