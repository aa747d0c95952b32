// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package http1

import (
	"fmt"
	"strconv"
	"strings"

	"code.hybscloud.com/uvio/codec"
	"code.hybscloud.com/uvio/errs"
)

const (
	crlf     = "\r\n"
	crlfcrlf = "\r\n\r\n"
)

// DecodeRequest reads a request line, headers, and (if Content-Length is
// present) a body of exactly that many bytes.
func DecodeRequest(r codec.Reader) (*Request, error) {
	var line []byte
	if _, err := r.ReadUntil(&line, []byte(crlf)); err != nil {
		return nil, err
	}
	method, uri, _, err := parseStartLine(string(line))
	if err != nil {
		return nil, err
	}

	block, err := readHeaderBlock(r)
	if err != nil {
		return nil, err
	}

	req := &Request{Method: method, URI: uri, Headers: parseHeaders(block)}
	body, err := readBody(r, &req.Headers)
	if err != nil {
		return nil, err
	}
	req.Body = body
	return req, nil
}

// DecodeResponse reads a status line, headers, and (if Content-Length is
// present) a body of exactly that many bytes.
func DecodeResponse(r codec.Reader) (*Response, error) {
	var line []byte
	if _, err := r.ReadUntil(&line, []byte(crlf)); err != nil {
		return nil, err
	}
	_, codeField, text, err := parseStartLine(string(line))
	if err != nil {
		return nil, err
	}
	code, convErr := strconv.Atoi(codeField)
	if convErr != nil {
		return nil, errs.Wrap(convErr)
	}

	block, err := readHeaderBlock(r)
	if err != nil {
		return nil, err
	}

	resp := &Response{StatusCode: code, StatusText: text, Headers: parseHeaders(block)}
	body, err := readBody(r, &resp.Headers)
	if err != nil {
		return nil, err
	}
	resp.Body = body
	return resp, nil
}

// EncodeRequest writes req as a request line, headers, blank line, body,
// then flushes w.
func EncodeRequest(w codec.Writer, req *Request) error {
	if _, err := w.Write([]byte(fmt.Sprintf("%s %s HTTP/1.1\r\n", req.Method, req.URI))); err != nil {
		return err
	}
	if err := writeHeaders(w, req.Headers); err != nil {
		return err
	}
	if len(req.Body) > 0 {
		if _, err := w.Write(req.Body); err != nil {
			return err
		}
	}
	return w.Flush()
}

// EncodeResponse writes resp. When resp carries an Upgrade header it
// writes the WebSocket handshake form (101 Switching Protocols, no body,
// no Content-Length) instead of a normal status line.
func EncodeResponse(w codec.Writer, resp *Response) error {
	if resp.IsUpgrade() {
		return encodeHandshake(w, resp)
	}
	if _, err := w.Write([]byte(fmt.Sprintf("HTTP/1.1 %d %s\r\n", resp.StatusCode, resp.StatusText))); err != nil {
		return err
	}
	if err := writeHeaders(w, resp.Headers); err != nil {
		return err
	}
	if len(resp.Body) > 0 {
		if _, err := w.Write(resp.Body); err != nil {
			return err
		}
	}
	return w.Flush()
}

func encodeHandshake(w codec.Writer, resp *Response) error {
	if _, err := w.Write([]byte("HTTP/1.1 101 Switching Protocols\r\n")); err != nil {
		return err
	}
	for _, h := range resp.Headers.Entries() {
		if strings.EqualFold(h.Key, "Content-Length") {
			continue
		}
		if _, err := w.Write([]byte(h.Key + ": " + h.Value + crlf)); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte(crlf)); err != nil {
		return err
	}
	return w.Flush()
}

func writeHeaders(w codec.Writer, h Headers) error {
	for _, e := range h.Entries() {
		if _, err := w.Write([]byte(e.Key + ": " + e.Value + crlf)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(crlf))
	return err
}

// parseStartLine splits a request-line or status-line (terminator
// included) into its three whitespace-delimited fields.
func parseStartLine(line string) (field1, field2, field3 string, err error) {
	line = strings.TrimSuffix(line, crlf)
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return "", "", "", errs.Wrap(fmt.Errorf("malformed start line %q", line))
	}
	field1, field2 = parts[0], parts[1]
	if len(parts) == 3 {
		field3 = parts[2]
	}
	return field1, field2, field3, nil
}

// readHeaderBlock peeks the first two bytes after the start line: if they
// are themselves the blank-line terminator, there are no headers. Otherwise
// it keeps reading until the blank line that ends the header section,
// returning the full header block text (terminator included).
func readHeaderBlock(r codec.Reader) ([]byte, error) {
	peek := make([]byte, 2)
	if err := r.ReadExact(peek); err != nil {
		return nil, err
	}
	if string(peek) == crlf {
		return nil, nil
	}
	if _, err := r.ReadUntil(&peek, []byte(crlfcrlf)); err != nil {
		return nil, err
	}
	return peek, nil
}

func parseHeaders(block []byte) Headers {
	var h Headers
	if len(block) == 0 {
		return h
	}
	text := strings.TrimSuffix(string(block), crlfcrlf)
	for _, line := range strings.Split(text, crlf) {
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		h.Add(key, value)
	}
	return h
}

func readBody(r codec.Reader, h *Headers) ([]byte, error) {
	cl, ok := h.Get("Content-Length")
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(cl))
	if err != nil {
		return nil, errs.Wrap(err)
	}
	if n == 0 {
		return nil, nil
	}
	body := make([]byte, n)
	if err := r.ReadExact(body); err != nil {
		return nil, err
	}
	return body, nil
}
