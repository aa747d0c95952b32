// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codec defines the shared Reader/Writer contract every concrete
// codec (fixed32, varint, http1, ws) composes over. Codecs never allocate
// a background task; they are pure per-invocation state machines driven by
// the caller's goroutine.
package codec

// Reader is the read-side contract a codec decodes from. *stream.BufReader
// satisfies it.
type Reader interface {
	ReadExact(dst []byte) error
	ReadUntil(out *[]byte, terminator []byte) (int, error)
}

// Writer is the write-side contract a codec encodes onto. *stream.BufWriter
// satisfies it.
type Writer interface {
	Write(p []byte) (int, error)
	Flush() error
}
