// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"code.hybscloud.com/uvio/errs"
)

// chunkedReader delivers the bytes of data in fixed-size chunks, one Read
// call at a time, to exercise partial-read reassembly.
type chunkedReader struct {
	data      []byte
	chunkSize int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}
	n := c.chunkSize
	if n > len(p) {
		n = len(p)
	}
	if n > len(c.data) {
		n = len(c.data)
	}
	copy(p, c.data[:n])
	c.data = c.data[n:]
	return n, nil
}

func TestBufReader_ReadExact_PartialDelivery(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 300)
	r := NewBufReader(&chunkedReader{data: payload, chunkSize: 1}, 64)

	got := make([]byte, 300)
	if err := r.ReadExact(got); err != nil {
		t.Fatalf("ReadExact: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("payload mismatch")
	}
}

func TestBufReader_ReadExact_UnexpectedEOF(t *testing.T) {
	r := NewBufReader(bytes.NewReader([]byte("ab")), 16)
	got := make([]byte, 5)
	err := r.ReadExact(got)
	if !errs.Is(err, errs.UnexpectedEOF) {
		t.Fatalf("err = %v, want UnexpectedEOF", err)
	}
}

func TestBufReader_ReadUntil_IncludesTerminator(t *testing.T) {
	r := NewBufReader(bytes.NewReader([]byte("GET /x HTTP/1.1\r\nHost: a\r\n\r\nabc")), 32)
	var line []byte
	n, err := r.ReadUntil(&line, []byte("\r\n"))
	if err != nil {
		t.Fatalf("ReadUntil: %v", err)
	}
	if n != len(line) {
		t.Fatalf("n=%d len(line)=%d", n, len(line))
	}
	want := "GET /x HTTP/1.1\r\n"
	if string(line) != want {
		t.Fatalf("line = %q, want %q", line, want)
	}
	if !bytes.HasSuffix(line, []byte("\r\n")) {
		t.Fatal("result must end with terminator")
	}
}

func TestBufWriter_WriteAll_ThenReadExactRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	w := NewBufWriter(&buf, 4)
	payload := bytes.Repeat([]byte("y"), 37)
	if err := w.WriteAll(payload); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	r := NewBufReader(&buf, 4)
	got := make([]byte, len(payload))
	if err := r.ReadExact(got); err != nil {
		t.Fatalf("ReadExact: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("round-trip mismatch")
	}
}

func TestBufWriter_LargeWriteBypassesBuffer(t *testing.T) {
	var buf bytes.Buffer
	w := NewBufWriter(&buf, 4)
	payload := bytes.Repeat([]byte("z"), 64)
	n, err := w.Write(payload)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len(payload) {
		t.Fatalf("n = %d, want %d", n, len(payload))
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), payload) {
		t.Fatal("mismatch")
	}
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

func TestBufReader_PropagatesUnderlyingError(t *testing.T) {
	sentinel := errors.New("boom")
	r := NewBufReader(errReader{err: sentinel}, 16)
	_, err := r.Read(make([]byte, 4))
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want %v", err, sentinel)
	}
}
