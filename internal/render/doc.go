// Package render lays a built graph out for visualization.
//
// Walk performs a breadth-first traversal over data and computation nodes
// alike and returns a Plan: one Record per outgoing edge, in visitation
// order, followed by the exit data nodes. WriteDOT serializes a Plan as a
// Graphviz digraph. The same graph always produces the same bytes.
package render
