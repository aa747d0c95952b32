// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package external

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"code.hybscloud.com/uvio/errs"
)

// DefaultResolver resolves via net.DefaultResolver, reporting failure as
// errs.ResolvedFailed.
type DefaultResolver struct {
	logger *slog.Logger
}

// NewDefaultResolver returns a Resolver backed by net.DefaultResolver. A
// nil logger falls back to slog.Default().
func NewDefaultResolver(logger *slog.Logger) *DefaultResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultResolver{logger: logger}
}

func (r *DefaultResolver) Resolve(ctx context.Context, host, service string) (string, error) {
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil || len(ips) == 0 {
		r.logger.Warn("resolve failed", "host", host, "service", service, "err", err)
		return "", errs.New(errs.ResolvedFailed, errors.Join(errs.ErrResolveFailed, err))
	}
	return ips[0].String(), nil
}

// DefaultSleeper fires once after the requested delay using time.Timer.
type DefaultSleeper struct{}

func (DefaultSleeper) Sleep(ctx context.Context, durationMs uint64) error {
	t := time.NewTimer(time.Duration(durationMs) * time.Millisecond)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DefaultExecutor offloads work to a bounded pool of goroutines. Calls
// block once the pool is saturated rather than spawning unboundedly.
type DefaultExecutor struct {
	sem    chan struct{}
	logger *slog.Logger
}

// NewDefaultExecutor returns an Executor with poolSize concurrent
// workers. A nil logger falls back to slog.Default().
func NewDefaultExecutor(poolSize int, logger *slog.Logger) *DefaultExecutor {
	if poolSize <= 0 {
		poolSize = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultExecutor{sem: make(chan struct{}, poolSize), logger: logger}
}

func (e *DefaultExecutor) Execute(ctx context.Context, fn func()) error {
	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		e.logger.Warn("executor saturated, giving up", "err", ctx.Err())
		return ctx.Err()
	}

	done := make(chan struct{})
	go func() {
		defer func() {
			<-e.sem
			close(done)
		}()
		fn()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		// fn still runs to completion in the background; ctx cancellation
		// only stops the caller from waiting on it.
		return ctx.Err()
	}
}
