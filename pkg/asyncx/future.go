package asyncx

import (
	"context"

	"github.com/google/uuid"
)

// Future represents a value that will be available asynchronously.
// Create one with Run and retrieve its value with Await or AwaitCtx.
type Future[T any] struct {
	id    string
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:   uuid.NewString(),
		done: make(chan struct{}),
	}
}

// Run executes fn in a goroutine and returns a Future for its result.
// The goroutine starts immediately.
func Run[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}

// Resolved returns an already-completed Future carrying v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.value = v
	close(f.done)
	return f
}

// Failed returns an already-failed Future carrying err.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	f.err = err
	close(f.done)
	return f
}

// ID returns the future's correlation id, used in logs.
func (f *Future[T]) ID() string {
	return f.id
}

// Await blocks until the Future completes and returns its value and error.
// Safe to call from any number of goroutines, before or after completion.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitCtx is Await that also gives up when ctx is done. The underlying
// computation keeps running; only the wait is abandoned.
func (f *Future[T]) AwaitCtx(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the future has completed, without blocking.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
