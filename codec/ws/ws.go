// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ws implements the WebSocket (RFC 6455) frame codec: FIN/opcode/
// mask/extended-length parsing, with client-masks-outbound,
// server-unmasks-inbound framing. The core path accepts only unfragmented
// TEXT and CLOSE frames; any other opcode or a FIN=0 fragment surfaces as
// ErrUnsupportedFrame rather than being silently reassembled.
package ws

import (
	"crypto/rand"
	"encoding/binary"
	"errors"

	"code.hybscloud.com/uvio/codec"
	"code.hybscloud.com/uvio/errs"
)

// Opcode identifies a WebSocket frame's payload interpretation.
type Opcode uint8

const (
	OpContinuation Opcode = 0x0
	OpText         Opcode = 0x1
	OpBinary       Opcode = 0x2
	OpClose        Opcode = 0x8
	OpPing         Opcode = 0x9
	OpPong         Opcode = 0xA
)

// Role determines whether Encode masks its output: clients must mask
// every frame they send, servers must not.
type Role uint8

const (
	RoleServer Role = iota
	RoleClient
)

// ErrUnsupportedFrame is returned by Decode for any frame outside the
// core path: fragmented (FIN=0) frames and opcodes other than TEXT and
// CLOSE. Callers that need PING/PONG/BINARY/CONT handling must inspect
// the frame themselves at a lower level; the codec does not reassemble
// fragments.
var ErrUnsupportedFrame = errors.New("ws: unsupported frame (fragmented or non-text/close opcode)")

// Frame is a single, already-unmasked WebSocket frame.
type Frame struct {
	Fin     bool
	Opcode  Opcode
	Payload []byte
}

// Decode reads one frame from r. It always honors the wire mask bit
// (unmasking the payload if present) regardless of role, since the mask
// bit alone determines whether the sender masked its output. Frames with
// FIN=0 or an opcode other than TEXT/CLOSE are rejected with
// ErrUnsupportedFrame.
func Decode(r codec.Reader) (*Frame, error) {
	var hdr [2]byte
	if err := r.ReadExact(hdr[:]); err != nil {
		return nil, err
	}
	fin := hdr[0]&0x80 != 0
	opcode := Opcode(hdr[0] & 0x0F)
	masked := hdr[1]&0x80 != 0
	length := uint64(hdr[1] & 0x7F)

	switch length {
	case 126:
		var ext [2]byte
		if err := r.ReadExact(ext[:]); err != nil {
			return nil, err
		}
		length = uint64(binary.BigEndian.Uint16(ext[:]))
	case 127:
		var ext [8]byte
		if err := r.ReadExact(ext[:]); err != nil {
			return nil, err
		}
		length = binary.BigEndian.Uint64(ext[:])
	}

	var maskKey [4]byte
	if masked {
		if err := r.ReadExact(maskKey[:]); err != nil {
			return nil, err
		}
	}

	payload := make([]byte, length)
	if err := r.ReadExact(payload); err != nil {
		return nil, err
	}
	if masked {
		for i := range payload {
			payload[i] ^= maskKey[i%4]
		}
	}

	if !fin || (opcode != OpText && opcode != OpClose) {
		return nil, ErrUnsupportedFrame
	}

	return &Frame{Fin: fin, Opcode: opcode, Payload: payload}, nil
}

// Encode writes f as a single frame whose FIN bit is taken from f.Fin,
// masking it when role is RoleClient.
func Encode(w codec.Writer, role Role, f *Frame) error {
	fin := byte(0)
	if f.Fin {
		fin = 0x80
	}
	hdr0 := fin | byte(f.Opcode&0x0F)

	masked := role == RoleClient
	maskBit := byte(0)
	if masked {
		maskBit = 0x80
	}

	n := len(f.Payload)
	var lenHdr []byte
	switch {
	case n < 126:
		lenHdr = []byte{maskBit | byte(n)}
	case n <= 0xFFFF:
		lenHdr = make([]byte, 3)
		lenHdr[0] = maskBit | 126
		binary.BigEndian.PutUint16(lenHdr[1:], uint16(n))
	default:
		lenHdr = make([]byte, 9)
		lenHdr[0] = maskBit | 127
		binary.BigEndian.PutUint64(lenHdr[1:], uint64(n))
	}

	if _, err := w.Write([]byte{hdr0}); err != nil {
		return err
	}
	if _, err := w.Write(lenHdr); err != nil {
		return err
	}

	payload := f.Payload
	if masked {
		var maskKey [4]byte
		if _, err := rand.Read(maskKey[:]); err != nil {
			return errs.Wrap(err)
		}
		if _, err := w.Write(maskKey[:]); err != nil {
			return err
		}
		out := make([]byte, n)
		for i, b := range payload {
			out[i] = b ^ maskKey[i%4]
		}
		payload = out
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return err
		}
	}
	return w.Flush()
}
