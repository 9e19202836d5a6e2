// Package metrics exposes Prometheus metrics for the load generator.
//
// Counters track inserted documents, batch outcomes and topology actions;
// a histogram tracks per-batch insert latency. Serve publishes the default
// registry on the configured metrics port:
//
//	go func() {
//	    if err := metrics.Serve(ctx, cfg.MetricsPort); err != nil {
//	        logger.Errorf("metrics listener failed: %v", err)
//	    }
//	}()
package metrics
