// Package pool reuses per-parse allocations across parse calls.
package pool

import "sync"

// Pool is a typed sync.Pool. Objects are reset when they are returned so that
// Get always hands out a clean value.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool. reset may be nil.
func New[T any](factory func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		pool:  sync.Pool{New: func() any { return factory() }},
		reset: reset,
	}
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

// Put resets obj and returns it to the pool. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}
	p.pool.Put(obj)
}
