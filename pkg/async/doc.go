// Package async provides a small, generic Future type for running a
// computation asynchronously and waiting for its completion.
//
// A Future is obtained from Async, which starts the supplied function in
// its own goroutine and returns immediately. The caller waits for the
// result with Await, bounds the wait with AwaitWithTimeout, or polls with
// IsComplete. Resolved and Failed construct pre-completed futures, which
// make consumers of futures easy to drive deterministically in tests.
//
// Async is context-aware: if the provided context is cancelled before the
// computation starts, the goroutine aborts early and the Future completes
// with the context error. A computation already in flight is expected to
// observe the context itself.
//
// # Usage
//
//	future := async.Async(ctx, func(ctx context.Context) ([]string, error) {
//	    return fetchNames(ctx)
//	})
//
//	// do other work …
//	names, err := future.Await()
//	if err != nil {
//	    return err
//	}
//
// Futures are lightweight wrappers around a goroutine and a channel; the
// package introduces no error types beyond ErrTimeout and otherwise
// returns whatever the user callback produced.
package async
