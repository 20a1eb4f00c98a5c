package doctree

import "sync"

// Lazy is a concurrency-safe memoizing cell. The wrapped function runs at
// most once, on first access, even under concurrent first access from
// multiple goroutines; every Get returns the same value. Consumers that
// derive expensive per-node state (for example a UI layer caching resolved
// item lists) can use it to avoid recomputation.
type Lazy[T any] struct {
	once sync.Once
	fn   func() T
	v    T
}

// NewLazy returns a cell that computes its value with fn on first Get.
func NewLazy[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

// Get returns the memoized value, computing it on first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.v = l.fn()
		l.fn = nil
	})
	return l.v
}
