// Package arango provides a thin client for the ArangoDB HTTP data-plane API.
//
// The client covers exactly the operations the workloads need: database and
// collection existence checks, create/drop, and batched document insertion.
// There is no retry policy and no per-request timeout; connection pooling is
// whatever the default HTTP transport provides.
//
// # Existence checks
//
// DatabaseExists and CollectionExists deliberately collapse every
// non-success outcome, including transport failures, to false. Callers that
// need stronger guarantees must re-check. This coarse policy is confined to
// these two methods so a stricter variant can replace them without touching
// the callers' decision logic.
//
// # Errors
//
// Create and drop operations return typed errors:
//
//	var exists *arango.AlreadyExistsError
//	if errors.As(err, &exists) {
//	    // 409 with a duplicate marker in the body
//	}
//
// Any other non-success status is reported as *InvalidResponseError carrying
// the status code and raw body. Network-level failures are reported as
// *TransportError, distinct from HTTP error statuses.
package arango
