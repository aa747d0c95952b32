// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netio

import (
	"context"
	"net"
)

// TcpListener accepts incoming TCP connections.
type TcpListener struct {
	ln   net.Listener
	opts Options
}

// Bind starts listening on address.
func Bind(address string, opts ...Option) (*TcpListener, error) {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}
	return &TcpListener{ln: ln, opts: o}, nil
}

// Addr returns the listener's bound address.
func (l *TcpListener) Addr() net.Addr { return l.ln.Addr() }

// Accept waits for and returns the next connection. If ctx ends first it
// returns ctx.Err(); the listener is not closed, and the underlying accept
// call keeps waiting in the background.
func (l *TcpListener) Accept(ctx context.Context) (*TcpStream, error) {
	type result struct {
		conn net.Conn
		err  error
	}
	done := make(chan result, 1)
	go func() {
		conn, err := l.ln.Accept()
		done <- result{conn, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		return newTcpStream(r.conn, l.opts), nil
	}
}

// Close stops the listener.
func (l *TcpListener) Close() error { return l.ln.Close() }
