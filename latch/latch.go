// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package latch provides a countdown rendezvous primitive: coroutines can
// wait for a shared counter to reach zero without blocking the runtime,
// and the single 0-transition wakes every waiter exactly once.
package latch

import "sync/atomic"

// waiter is an intrusive LIFO stack node. release is closed exactly once,
// by whichever count-down observes the counter cross zero.
type waiter struct {
	release chan struct{}
	next    *waiter
}

// Latch is a one-shot countdown rendezvous. Construct with New; do not
// copy a Latch after first use.
type Latch struct {
	expected atomic.Int64
	head     atomic.Pointer[waiter]
}

// New constructs a Latch requiring `expected` count-downs before it opens.
func New(expected int64) *Latch {
	l := &Latch{}
	l.expected.Store(expected)
	return l
}

// TryWait reports whether the latch has already reached zero.
func (l *Latch) TryWait() bool {
	return l.expected.Load() <= 0
}

// CountDown atomically subtracts update (default 1) from the counter. Iff
// this call observes the counter cross from update down to 0, it notifies
// every waiter registered so far exactly once — because only the one
// decrement whose pre-value equals update can observe that transition,
// notify fires at most once per Latch lifetime.
func (l *Latch) CountDown(update int64) {
	if update <= 0 {
		update = 1
	}
	pre := l.expected.Add(-update) + update
	if pre == update {
		l.notifyAll()
	}
}

func (l *Latch) notifyAll() {
	head := l.head.Swap(nil)
	for head != nil {
		close(head.release)
		head = head.next
	}
}

// Wait blocks the calling goroutine until the latch reaches zero. Waiters
// registered after the 0-transition observe TryWait() == true and return
// immediately without ever entering the CAS loop, closing the race between
// a late waiter and notifyAll.
//
// Unlike the single-threaded event loop this primitive was modeled on,
// goroutines genuinely run concurrently, so CountDown crossing zero and a
// fresh Wait pushing its node can interleave in either order. notifyAll is
// written to be idempotent (an atomic swap-to-nil: whoever observes a
// non-nil head drains it, everyone else is a no-op), so Wait defensively
// re-checks after pushing and resolves the race itself if it lost it.
func (l *Latch) Wait() {
	if l.TryWait() {
		return
	}

	w := &waiter{release: make(chan struct{})}
	for {
		head := l.head.Load()
		w.next = head
		if l.head.CompareAndSwap(head, w) {
			break
		}
	}
	if l.TryWait() {
		l.notifyAll()
	}
	<-w.release
}

// ArriveAndWait is CountDown(update); Wait().
func (l *Latch) ArriveAndWait(update int64) {
	l.CountDown(update)
	l.Wait()
}
