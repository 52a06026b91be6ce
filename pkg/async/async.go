package async

import (
	"context"
	"time"
)

// Future represents the eventual result of an asynchronous computation.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Async executes fn in its own goroutine and immediately returns a Future
// for its result. If ctx is already cancelled when Async is called, the
// goroutine exits without running fn and the future completes with the
// context error; otherwise observing cancellation is fn's responsibility.
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns an already-completed future holding v. Await returns
// immediately. Useful for values whose computation turned out to be
// synchronous, and for driving future consumers deterministically in tests.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{result: v, done: make(chan struct{})}
	close(f.done)
	return f
}

// Failed returns an already-completed future holding err.
func Failed[T any](err error) *Future[T] {
	f := &Future[T]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the computation completes and returns its result and
// error. It may be called any number of times; every call returns the same
// values.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the computation to complete with a timeout.
// If the timeout elapses first it returns ErrTimeout; the computation
// itself keeps running and a later Await still yields its result.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
