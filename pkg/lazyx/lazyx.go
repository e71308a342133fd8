// Package lazyx provides one-time, thread-safe initialization primitives:
// a memoizing supplier, an error-caching once wrapper, and keyed
// memoization with duplicate-call suppression.
package lazyx

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/Abraxas-365/corekit/pkg/errx"
)

// Supplier is a thread-safe memoizing supplier: the initializer runs at most
// once, on the first Get from any goroutine, and every call returns the
// identical cached value.
//
// Reads take a lock-free fast path on the cache slot; only the first
// initialization goes through the mutex, where the slot is re-checked before
// computing. Once populated the slot never changes.
type Supplier[T any] struct {
	init func() T
	mu   sync.Mutex
	slot atomic.Pointer[T]
}

// Memoize wraps initializer into a Supplier.
//
// The initializer must be non-nil and must produce a present value: a nil
// initializer panics here, and an initializer yielding a nil pointer,
// interface, map, slice, func or chan panics on the first Get. Both are
// programmer errors, not recoverable conditions.
func Memoize[T any](initializer func() T) *Supplier[T] {
	if initializer == nil {
		panic(errx.Validation("lazyx: initializer must not be nil"))
	}
	return &Supplier[T]{init: initializer}
}

// Get returns the memoized value, computing it on the first call.
func (s *Supplier[T]) Get() T {
	if p := s.slot.Load(); p != nil {
		return *p
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check: another goroutine may have initialized while we waited.
	if p := s.slot.Load(); p != nil {
		return *p
	}

	v := s.init()
	if isAbsent(v) {
		panic(errx.IllegalState("lazyx: initializer returned a nil value"))
	}
	s.slot.Store(&v)
	return v
}

// Initialized reports whether the value has been computed, without
// triggering initialization.
func (s *Supplier[T]) Initialized() bool {
	return s.slot.Load() != nil
}

// isAbsent reports whether v is a nil value of a nilable kind. Value types
// cannot be absent: for them, slot occupancy alone distinguishes computed
// from not-yet-computed.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
