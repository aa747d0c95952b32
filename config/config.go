// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config holds the ambient tunables the core's external
// collaborators need: buffer sizing, read limits, DNS timeout,
// worker-pool size, and timer granularity. None of this parameterizes the
// core algorithms themselves (Task, StreamBuffer, codecs, Latch) — only
// their constructors and the external package's default implementations.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Runtime holds deployment knobs for the netio/stream/external layers.
type Runtime struct {
	ReadBufferSize  int           `yaml:"read_buffer_size"`
	WriteBufferSize int           `yaml:"write_buffer_size"`
	ReadLimit       int           `yaml:"read_limit"`
	ResolveTimeout  time.Duration `yaml:"resolve_timeout"`
	WorkerPoolSize  int           `yaml:"worker_pool_size"`
	SleepGranularity time.Duration `yaml:"sleep_granularity"`
}

// Default returns a Runtime with the library's baseline defaults.
func Default() Runtime {
	return Runtime{
		ReadBufferSize:   4096,
		WriteBufferSize:  4096,
		ReadLimit:        0,
		ResolveTimeout:   5 * time.Second,
		WorkerPoolSize:   8,
		SleepGranularity: time.Millisecond,
	}
}

// Option customizes a Runtime built programmatically, in the style of
// the teacher's framer.Option.
type Option func(*Runtime)

// WithBufferSizes sets ReadBufferSize and WriteBufferSize.
func WithBufferSizes(read, write int) Option {
	return func(r *Runtime) { r.ReadBufferSize, r.WriteBufferSize = read, write }
}

// WithReadLimit sets ReadLimit.
func WithReadLimit(limit int) Option {
	return func(r *Runtime) { r.ReadLimit = limit }
}

// WithResolveTimeout sets ResolveTimeout.
func WithResolveTimeout(d time.Duration) Option {
	return func(r *Runtime) { r.ResolveTimeout = d }
}

// WithWorkerPoolSize sets WorkerPoolSize.
func WithWorkerPoolSize(n int) Option {
	return func(r *Runtime) { r.WorkerPoolSize = n }
}

// New builds a Runtime starting from Default() and applying opts in order.
func New(opts ...Option) Runtime {
	r := Default()
	for _, fn := range opts {
		fn(&r)
	}
	return r
}

// Load reads a YAML file at path into a Runtime seeded with Default(), so
// an omitted field keeps its library default rather than zeroing out.
func Load(path string) (Runtime, error) {
	r := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Runtime{}, err
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Runtime{}, err
	}
	return r, nil
}
