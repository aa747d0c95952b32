// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ws

import (
	"crypto/sha1"
	"encoding/base64"
)

// handshakeGUID is the fixed RFC 6455 magic string concatenated onto the
// client's Sec-WebSocket-Key before hashing.
const handshakeGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

// Accept computes the Sec-WebSocket-Accept value a server returns for a
// client's Sec-WebSocket-Key during the upgrade handshake.
func Accept(key string) string {
	sum := sha1.Sum([]byte(key + handshakeGUID))
	return base64.StdEncoding.EncodeToString(sum[:])
}
