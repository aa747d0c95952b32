// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ws

import (
	"bytes"
	"errors"
	"testing"

	"code.hybscloud.com/uvio/stream"
)

func TestAccept_RFC6455Vector(t *testing.T) {
	got := Accept("dGhlIHNhbXBsZSBub25jZQ==")
	want := "s3pPLMBiTxaQ9kYGzzhZRbK+xOo="
	if got != want {
		t.Fatalf("Accept() = %q, want %q", got, want)
	}
}

func TestEncodeDecode_ClientMasksServerUnmasks(t *testing.T) {
	f := &Frame{Fin: true, Opcode: OpText, Payload: []byte("hello")}

	var buf bytes.Buffer
	w := stream.NewBufWriter(&buf, 256)
	if err := Encode(w, RoleClient, f); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	raw := buf.Bytes()
	if raw[1]&0x80 == 0 {
		t.Fatal("client frame must have the mask bit set")
	}

	r := stream.NewBufReader(&buf, 256)
	got, err := Decode(r)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(got.Payload) != "hello" || got.Opcode != OpText || !got.Fin {
		t.Fatalf("got = %+v", got)
	}
}

func TestEncode_ServerDoesNotMask(t *testing.T) {
	f := &Frame{Fin: true, Opcode: OpClose, Payload: nil}
	var buf bytes.Buffer
	w := stream.NewBufWriter(&buf, 256)
	if err := Encode(w, RoleServer, f); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Bytes()[1]&0x80 != 0 {
		t.Fatal("server frame must not have the mask bit set")
	}
}

func TestDecode_FragmentedFrameIsUnsupported(t *testing.T) {
	// FIN=0, opcode=TEXT, unmasked, zero-length payload.
	raw := []byte{0x01, 0x00}
	r := stream.NewBufReader(bytes.NewReader(raw), 64)
	_, err := Decode(r)
	if !errors.Is(err, ErrUnsupportedFrame) {
		t.Fatalf("err = %v, want ErrUnsupportedFrame", err)
	}
}

func TestDecode_BinaryOpcodeIsUnsupported(t *testing.T) {
	// FIN=1, opcode=BINARY, unmasked, zero-length payload.
	raw := []byte{0x82, 0x00}
	r := stream.NewBufReader(bytes.NewReader(raw), 64)
	_, err := Decode(r)
	if !errors.Is(err, ErrUnsupportedFrame) {
		t.Fatalf("err = %v, want ErrUnsupportedFrame", err)
	}
}

func TestEncodeDecode_ExtendedLength16(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 300)
	f := &Frame{Fin: true, Opcode: OpText, Payload: payload}

	var buf bytes.Buffer
	w := stream.NewBufWriter(&buf, 1024)
	if err := Encode(w, RoleServer, f); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := stream.NewBufReader(&buf, 1024)
	got, err := Decode(r)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got.Payload, payload) {
		t.Fatal("extended-length-16 payload mismatch")
	}
}
