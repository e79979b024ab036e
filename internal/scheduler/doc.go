// Package scheduler computes the order in which computation nodes of a built
// graph are processed.
//
// The order is produced by a depth-first traversal with an explicit stack
// that is gated on readiness: a node is pushed only once every one of its
// predecessors has been visited. Data nodes participate in the traversal
// but are left out of the result.
//
// The traversal is deterministic. Entries are pushed in entry order, and
// the successors of a visited node are scanned from last to first so that
// the first successor is popped first.
package scheduler
