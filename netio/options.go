// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netio

// Options configures a TcpStream or TcpListener, following the same
// functional-options shape as the teacher's framer.Option.
type Options struct {
	// ReadBufferSize and WriteBufferSize size the stream.BufStream a
	// caller wraps around a TcpStream; netio itself only threads them
	// through to callers that ask for the configured default.
	ReadBufferSize  int
	WriteBufferSize int
}

var defaultOptions = Options{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// Option configures Options.
type Option func(*Options)

// WithBufferSize sets both the read and write buffer size defaults.
func WithBufferSize(size int) Option {
	return func(o *Options) { o.ReadBufferSize, o.WriteBufferSize = size, size }
}

// WithReadBufferSize sets the read buffer size default.
func WithReadBufferSize(size int) Option {
	return func(o *Options) { o.ReadBufferSize = size }
}

// WithWriteBufferSize sets the write buffer size default.
func WithWriteBufferSize(size int) Option {
	return func(o *Options) { o.WriteBufferSize = size }
}
