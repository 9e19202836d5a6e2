// Package topology reconciles the desired database layout with the cluster.
//
// The reconciler runs once per workload invocation. It inspects the cluster
// through the Gateway and decides between three outcomes:
//
//   - the database is missing: create it and all N collections (c1..cN)
//   - the database exists and drop_first is set, or any collection is
//     missing: drop the whole database and recreate it from scratch
//   - the database exists with every collection: reuse it untouched
//
// Incomplete topologies are never patched incrementally. The procedure takes
// no distributed lock and assumes a single reconciling process per database.
package topology
