package graph

import "errors"

var (
	// ErrSealed is returned when the graph structure is modified after Seal.
	ErrSealed = errors.New("graph is sealed")
	// ErrKindMismatch is returned for an edge that does not join a data node
	// and a computation node.
	ErrKindMismatch = errors.New("edge must join a data node and a computation node")
	// ErrMultipleProducers is returned when a second layer would write a data node.
	ErrMultipleProducers = errors.New("data node already has a producer")
	// ErrDuplicateName is returned when a name is reused within one namespace.
	ErrDuplicateName = errors.New("duplicate node name")
	// ErrNotData is returned when a shape is assigned to a computation node.
	ErrNotData = errors.New("node is not a data node")
	// ErrShapeAssigned is returned when a data node's shape is written twice.
	ErrShapeAssigned = errors.New("shape already assigned")
	// ErrUnknownNode is returned for an ID outside the arena.
	ErrUnknownNode = errors.New("unknown node")
)
