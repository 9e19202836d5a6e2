// Package worker provides a bounded goroutine pool for batch dispatch.
//
// The Pool runs a fixed number of worker goroutines pulling jobs from a
// queue whose capacity equals the worker count, so producers submitting
// jobs are throttled to roughly the pool's own pace: Submit blocks until a
// slot frees. This is what lets callers generate work lazily instead of
// materializing it up front.
//
// # Basic Usage
//
//	pool := worker.NewPool(8)
//	pool.Start(ctx)
//
//	for _, b := range work {
//	    if !pool.Submit(func() { handle(b) }) {
//	        break // context cancelled
//	    }
//	}
//	pool.Drain() // waits for every submitted job
//
// # Shutdown
//
// Drain closes the intake and waits for all submitted jobs to finish.
// In-flight jobs are never cancelled; the context passed to Start only
// unblocks producers stuck in Submit.
package worker
