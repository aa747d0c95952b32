// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixed32 implements the Fixed-Length-32 codec: a 4-byte
// little-endian unsigned length prefix followed by that many payload
// bytes.
package fixed32

import (
	"encoding/binary"

	"code.hybscloud.com/uvio/codec"
)

// Encode writes length(message) as a 4-byte little-endian prefix, then
// message, then flushes w.
func Encode(w codec.Writer, message []byte) error {
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(message)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	return w.Flush()
}

// Decode reads a 4-byte little-endian length prefix, then exactly that
// many payload bytes.
func Decode(r codec.Reader) ([]byte, error) {
	var hdr [4]byte
	if err := r.ReadExact(hdr[:]); err != nil {
		return nil, err
	}
	length := binary.LittleEndian.Uint32(hdr[:])

	message := make([]byte, length)
	if err := r.ReadExact(message); err != nil {
		return nil, err
	}
	return message, nil
}
