// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package http1 implements the HTTP/1.1 request/response codec:
// request-line/status-line and header parsing over a buffered stream,
// Content-Length-driven body framing, and the WebSocket upgrade
// handshake response.
package http1

// Request is a decoded or to-be-encoded HTTP/1.1 request.
type Request struct {
	Method  string
	URI     string
	Headers Headers
	Body    []byte
}

// Response is a decoded or to-be-encoded HTTP/1.1 response.
type Response struct {
	StatusCode int
	StatusText string
	Headers    Headers
	Body       []byte
}

// IsUpgrade reports whether the response carries an Upgrade header,
// meaning EncodeResponse writes the handshake form instead of a normal
// status line with a Content-Length body.
func (r *Response) IsUpgrade() bool {
	_, ok := r.Headers.Get("Upgrade")
	return ok
}
