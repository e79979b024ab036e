package graph

import "github.com/vk/nnc/internal/layer"

// ID addresses a node within its Graph.
type ID int

// NoID is returned where a node reference is absent.
const NoID ID = -1

// Kind distinguishes data nodes from computation nodes.
type Kind int

const (
	// Data is a tensor slot ("blob").
	Data Kind = iota
	// Computation is a declared operation ("layer").
	Computation
)

func (k Kind) String() string {
	switch k {
	case Data:
		return "data"
	case Computation:
		return "computation"
	}
	return "unknown"
}

// Node is a single vertex of the graph. Adjacency lists are append-only and
// are only extended through Graph.Connect.
type Node struct {
	id    ID
	name  string
	kind  Kind
	preds []ID
	succs []ID

	// shape is set on data nodes once inference reaches their producer.
	shape layer.Shape
	// layer is set on computation nodes.
	layer layer.Layer
}

func (n *Node) ID() ID       { return n.id }
func (n *Node) Name() string { return n.name }
func (n *Node) Kind() Kind   { return n.kind }

// Indegree is the number of predecessors.
func (n *Node) Indegree() int { return len(n.preds) }

// Outdegree is the number of successors.
func (n *Node) Outdegree() int { return len(n.succs) }

// Predecessors returns a copy of the ordered predecessor list.
func (n *Node) Predecessors() []ID { return append([]ID(nil), n.preds...) }

// Successors returns a copy of the ordered successor list.
func (n *Node) Successors() []ID { return append([]ID(nil), n.succs...) }

// Predecessor returns the i-th predecessor. It panics if i is out of range.
func (n *Node) Predecessor(i int) ID { return n.preds[i] }

// Successor returns the i-th successor. It panics if i is out of range.
func (n *Node) Successor(i int) ID { return n.succs[i] }

// Producer returns the layer that writes this data node, if any.
func (n *Node) Producer() (ID, bool) {
	if n.kind != Data || len(n.preds) == 0 {
		return NoID, false
	}
	return n.preds[0], true
}

// Consumers returns the layers that read this data node.
func (n *Node) Consumers() []ID {
	if n.kind != Data {
		return nil
	}
	return n.Successors()
}

// Shape returns the data node's shape and whether it has been computed.
func (n *Node) Shape() (layer.Shape, bool) {
	return n.shape.Clone(), n.shape != nil
}

// Layer returns the variant of a computation node, or nil for data nodes.
func (n *Node) Layer() layer.Layer { return n.layer }

// Inputs returns the data nodes a computation node reads, in bottom order.
func (n *Node) Inputs() []ID {
	if n.kind != Computation {
		return nil
	}
	return n.Predecessors()
}

// Outputs returns the data nodes a computation node writes, in top order.
func (n *Node) Outputs() []ID {
	if n.kind != Computation {
		return nil
	}
	return n.Successors()
}
