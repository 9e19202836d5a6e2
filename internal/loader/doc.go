// Package loader schedules concurrent batched document insertion.
//
// A collection is populated by partitioning the sequence range
// [1, documentCount] into batches of at most 1000 documents. Batches run as
// tasks on a bounded worker pool; each task synthesizes its own documents,
// picks an entry point through the cluster.Selector, and sends the whole
// batch as a single request.
//
// # Completion policy
//
// Populate drains: it waits for every batch, including batches still in
// flight after another batch has failed, then reports the first failure in
// batch order. It never cancels outstanding work and never retries.
// Documents from successful batches stay inserted even when the call as a
// whole reports failure.
//
// # Concurrency
//
// Two independent bounds apply: the worker count caps how many batch tasks
// execute at once, and the insert concurrency semaphore caps how many
// insert requests are outstanding on the wire.
package loader
