// Package workload drives one configured use case against the cluster.
//
// The Engine runs reconcile → populate → report as a single blocking call:
//
//	engine := workload.New(cfg)
//	result, err := engine.Run(ctx)
//	if err == nil {
//	    fmt.Println(result.Report())
//	}
//
// When the reconciled database turns out to be pre-existing and complete,
// population is skipped entirely and the result says so. With
// IdleAfterCompletion set, Run parks after population until the context is
// cancelled, matching deployments that keep the generator process alive.
//
// Each use case is meant to run on its own goroutine; a failing workload
// reports its error to its caller and never takes the process down.
package workload
