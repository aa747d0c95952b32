// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package external

import (
	"context"
	"testing"
	"time"

	"code.hybscloud.com/uvio/errs"
)

func TestDefaultResolver_FailsOnUnresolvableHost(t *testing.T) {
	r := NewDefaultResolver(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := r.Resolve(ctx, "this-host-does-not-exist.invalid", "http")
	if err == nil {
		t.Fatal("expected resolve failure")
	}
	if !errs.Is(err, errs.ResolvedFailed) {
		t.Fatalf("err = %v, want ResolvedFailed", err)
	}
}

func TestDefaultSleeper_FiresOnce(t *testing.T) {
	s := DefaultSleeper{}
	start := time.Now()
	if err := s.Sleep(context.Background(), 10); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Fatal("Sleep returned before its duration elapsed")
	}
}

func TestDefaultSleeper_CancelledByContext(t *testing.T) {
	s := DefaultSleeper{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Sleep(ctx, 10_000); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestDefaultExecutor_RunsAndBoundsConcurrency(t *testing.T) {
	e := NewDefaultExecutor(2, nil)
	ctx := context.Background()

	results := make(chan int, 3)
	for i := 0; i < 3; i++ {
		i := i
		go func() {
			_ = e.Execute(ctx, func() { results <- i })
		}()
	}
	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		seen[<-results] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct results, got %v", seen)
	}
}
