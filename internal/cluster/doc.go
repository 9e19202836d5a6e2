// Package cluster tracks the entry points of the target database cluster.
//
// Entry points are interchangeable: any one of them may serve any request.
// The set is immutable once created and can therefore be shared across
// concurrent tasks without locking.
//
// # Entry point selection
//
// The Selector interface decides which entry point a single request goes to:
//
//	sel := cluster.Random{}
//	ep := sel.Pick(c.Endpoints())
//
// Random spreads batches uniformly with no session affinity. RoundRobin
// cycles through the list deterministically. Weighted or health-aware
// strategies can be added without touching the callers.
package cluster
