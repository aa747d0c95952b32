// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package external defines the three async collaborators the core stays
// deliberately ignorant of: name resolution, timers, and worker-pool
// offload. Each is an interface plus a default stdlib-backed
// implementation; the core (loop, netio, stream, codec, latch) never
// imports this package — callers wire it in at the edges.
package external

import "context"

// Resolver resolves a host/service pair to an IPv4 address string.
// Failure is reported as errs.ResolvedFailed by implementations.
type Resolver interface {
	Resolve(ctx context.Context, host, service string) (string, error)
}

// Sleeper fires once after the given duration.
type Sleeper interface {
	Sleep(ctx context.Context, durationMs uint64) error
}

// Executor offloads fn to a worker pool and resumes the caller once fn
// returns.
type Executor interface {
	Execute(ctx context.Context, fn func()) error
}
