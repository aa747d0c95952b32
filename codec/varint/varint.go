// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package varint implements the Varint-Length-Delimited codec: the message
// length is encoded as a network-order uint64 that is then re-serialized
// as a chain of 7-bit-per-byte continuation-coded bytes. The decoder
// byte-swaps the assembled value from network to host order only on
// little-endian hosts, using the same native-order detection the
// teacher's internal/bo package provides.
package varint

import (
	"math/bits"

	"code.hybscloud.com/uvio/codec"
	"code.hybscloud.com/uvio/errs"
	"code.hybscloud.com/uvio/internal/bo"
)

// maxVarintBytes bounds decode: 7 bits/byte * 10 bytes > 64 bits.
const maxVarintBytes = 10

var hostIsLittleEndian = bo.Native().String() == "LittleEndian"

// swapNetworkHost reverses the byte order of v when the host is
// little-endian, mirroring ntohll/htonll (both are self-inverse).
func swapNetworkHost(v uint64) uint64 {
	if hostIsLittleEndian {
		return bits.ReverseBytes64(v)
	}
	return v
}

// Encode writes len(message) varint-encoded, then message, then flushes w.
func Encode(w codec.Writer, message []byte) error {
	value := swapNetworkHost(uint64(len(message)))
	var b [1]byte
	for {
		cont := byte(0)
		if value>>7 != 0 {
			cont = 0x80
		}
		b[0] = byte(value&0x7F) | cont
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
		value >>= 7
		if cont == 0 {
			break
		}
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	return w.Flush()
}

// Decode reads a varint-chained length (failing Unclassified if it does
// not terminate within 10 bytes), then exactly that many payload bytes.
func Decode(r codec.Reader) ([]byte, error) {
	length, err := decodeLength(r)
	if err != nil {
		return nil, err
	}
	message := make([]byte, length)
	if err := r.ReadExact(message); err != nil {
		return nil, err
	}
	return message, nil
}

func decodeLength(r codec.Reader) (uint64, error) {
	var b [1]byte
	var value uint64
	for i := 0; i < maxVarintBytes; i++ {
		if err := r.ReadExact(b[:]); err != nil {
			return 0, err
		}
		value |= uint64(b[0]&0x7F) << (uint(i) * 7)
		if b[0]&0x80 == 0 {
			return swapNetworkHost(value), nil
		}
	}
	return 0, errs.Wrap(errVarintTooLong)
}

var errVarintTooLong = varintTooLongError{}

type varintTooLongError struct{}

func (varintTooLongError) Error() string {
	return "varint length did not terminate within 10 bytes"
}
