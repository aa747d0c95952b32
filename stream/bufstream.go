// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import "io"

// BufStream composes a BufReader and a BufWriter sharing the same
// underlying io.ReadWriter, each owning distinct buffer state.
type BufStream struct {
	*BufReader
	*BufWriter
}

// NewBufStream wraps rw with independent read-side and write-side buffers
// of the given sizes (DefaultBufferSize if either is <= 0).
func NewBufStream(rw io.ReadWriter, readSize, writeSize int) *BufStream {
	return &BufStream{
		BufReader: NewBufReader(rw, readSize),
		BufWriter: NewBufWriter(rw, writeSize),
	}
}
