package lazyx

import (
	"sync"
)

// MemoizeErr wraps fn so it executes at most once, regardless of how many
// goroutines call the returned function simultaneously. Both the value and
// the error are cached: a failed first call stays failed.
//
// Use Memoize when the initializer cannot fail; use a Group when failures
// should be retried.
func MemoizeErr[T any](fn func() (T, error)) func() (T, error) {
	var (
		once sync.Once
		val  T
		err  error
	)
	return func() (T, error) {
		once.Do(func() {
			val, err = fn()
		})
		return val, err
	}
}
