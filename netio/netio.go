// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package netio implements the Connection component: TcpStream/
// TcpListener, the owned-half split used to drive independent
// reader/writer tasks, and the reunite operation that recombines them.
//
// Concurrent reads, and concurrent writes, on the same TcpStream are
// forbidden; since Go goroutines run in true parallel (unlike the
// single-threaded cooperative loop this module's design is modeled on),
// that rule is enforced here with one mutex per direction rather than
// relied upon as a scheduling guarantee.
package netio

import (
	"code.hybscloud.com/iox"
)

// ErrWouldBlock and ErrMore are re-exported, the same pattern the
// teacher's framer package uses, for Forwarder's generic io.Reader/
// io.Writer contract: a caller that hands Forwarder a non-blocking
// transport built on iox gets partial-progress resumption for free.
// TcpStream itself is always backed by a stdlib net.Conn (from
// net.Dialer.DialContext or net.Listener.Accept), which blocks rather
// than returning these sentinels, so TcpStream.Read/Write never produce
// them.
var (
	// ErrWouldBlock means "no further progress without waiting". Any
	// returned byte count still represents real progress.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means the operation is still active and more data or
	// completions are expected from it.
	ErrMore = iox.ErrMore
)
