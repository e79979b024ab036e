// Package graph holds the computation graph built from a network descriptor.
//
// # Model
//
// The graph is bipartite. Data nodes ("blobs") are tensor slots; computation
// nodes ("layers") are declared operations. Every edge runs from a data node
// to the layer consuming it, or from a layer to a data node it produces:
//
//	data ──▶ conv1 ──▶ conv1 ──▶ relu1 ──▶ conv1_0
//	(blob)   (layer)   (blob)    (layer)   (blob)
//
// # Storage
//
// The Graph is an arena. It owns every Node in insertion order and nodes are
// addressed by their ID, which is the node's index in that arena. Adjacency
// is stored as ordered lists of IDs on each node; nodes never hold pointers
// to each other.
//
// For a layer, the predecessor list is its inputs in bottom order and the
// successor list is its outputs in top order. For a blob, the predecessor
// list holds its producer (at most one) and the successor list its consumers.
//
// # Lifecycle
//
//  1. Population: the builder adds nodes and connects them (AddData,
//     AddComputation, Connect).
//  2. Seal: entry and exit nodes are computed once. Any later structural
//     mutation fails with ErrSealed.
//  3. Annotation: shape inference writes each blob's shape at most once
//     (SetShape).
//
// The graph is not safe for concurrent mutation; the whole pipeline runs on a
// single goroutine.
package graph
