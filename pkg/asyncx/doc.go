// Package asyncx provides futures and concurrency helpers for building
// non-blocking Go services: fan-out, worker pools, retries, timeouts,
// fire-and-forget and best-effort consumption, all with first-class
// context support.
//
// # Futures
//
// A [Future] represents a value that will be computed asynchronously.
// Use [Run] to start work immediately in a goroutine and [Future.Await] to
// block until the result is ready. Await is safe to call from multiple
// goroutines, before or after the future settles, and always observes the
// same final value. [Future.AwaitCtx] additionally gives up when the context
// is done. [Resolved] and [Failed] build already-settled futures, which is
// mostly useful in tests.
//
//	fut := asyncx.Run(func() (*Report, error) {
//	    return builder.Build(ctx, id)
//	})
//
//	// ... do other work ...
//
//	report, err := fut.Await()
//
// # Best-effort consumption
//
// [Consume] blocks until a future settles and hands the value to a consumer
// exactly once. If the future fails (including cancellation when using
// [ConsumeCtx]) the failure is logged at warn level and absorbed; the
// consumer is never invoked and nothing is reported to the caller.
//
// This weak guarantee is deliberate and the helper is named for it: use it
// only on best-effort notification paths (cache warming, metrics, audit
// trails), never where correctness depends on delivery.
//
//	asyncx.Consume(fut, func(r *Report) {
//	    notifier.Send(r)
//	})
//
// The logger used for the absorbed failures can be replaced with
// [SetLogger], e.g. with logx.NewNopLogger in tests.
//
// # Fan-out
//
// [All] runs a set of functions concurrently and collects every result in
// the original order. It returns the first error but still waits for all
// goroutines to finish, preventing leaks. [AllSettled] never short-circuits
// and returns one [Result] per function. [Race] returns whichever result
// arrives first.
//
// # Concurrent collection helpers
//
// [Map] applies a transformation to every element of a slice concurrently,
// preserving order. [ForEach] is the side-effect variant. [Pool] is the
// bounded alternative, limiting concurrency to a fixed number of workers via
// a weighted semaphore.
//
//	results, err := asyncx.Pool(ctx, 10, items, func(ctx context.Context, item Item) (Result, error) {
//	    return process(ctx, item)
//	})
//
// # Retry and timeout
//
// [Retry] calls a function up to n times, returning as soon as it succeeds.
// [RetryWithBackoff] doubles the wait after every failure and respects
// context cancellation between attempts. [WithTimeout] runs a function with
// a hard deadline.
//
// # Rate-limiting wrappers
//
// [Debounced] coalesces bursts of calls into one invocation after the burst
// stops; [Throttled] drops calls that arrive within the interval.
//
// One-time initialization lives in the lazyx package.
package asyncx
