package graph

import (
	"fmt"

	"github.com/vk/nnc/internal/layer"
)

// Graph owns the full node set of one network.
type Graph struct {
	// Name is the network name used when rendering.
	Name string

	nodes   []*Node
	data    map[string]ID
	layers  map[string]ID
	entries []ID
	exits   []ID
	sealed  bool
}

// New creates an empty, unsealed graph.
func New(name string) *Graph {
	return &Graph{
		Name:   name,
		data:   make(map[string]ID),
		layers: make(map[string]ID),
	}
}

// AddData appends a data node. Names must be unique among data nodes.
func (g *Graph) AddData(name string) (ID, error) {
	if g.sealed {
		return NoID, ErrSealed
	}
	if _, exists := g.data[name]; exists {
		return NoID, fmt.Errorf("%w: data %q", ErrDuplicateName, name)
	}
	id := g.add(&Node{name: name, kind: Data})
	g.data[name] = id
	return id, nil
}

// AddComputation appends a computation node carrying l. Names must be unique
// among computation nodes.
func (g *Graph) AddComputation(l layer.Layer) (ID, error) {
	if g.sealed {
		return NoID, ErrSealed
	}
	name := l.Name()
	if _, exists := g.layers[name]; exists {
		return NoID, fmt.Errorf("%w: layer %q", ErrDuplicateName, name)
	}
	id := g.add(&Node{name: name, kind: Computation, layer: l})
	g.layers[name] = id
	return id, nil
}

func (g *Graph) add(n *Node) ID {
	n.id = ID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return n.id
}

// Connect appends the edge from -> to, recording to as a successor of from
// and from as a predecessor of to.
func (g *Graph) Connect(from, to ID) error {
	if g.sealed {
		return ErrSealed
	}
	src, dst := g.Node(from), g.Node(to)
	if src == nil || dst == nil {
		return fmt.Errorf("%w: edge %d -> %d", ErrUnknownNode, from, to)
	}
	if src.kind == dst.kind {
		return fmt.Errorf("%w: %q -> %q", ErrKindMismatch, src.name, dst.name)
	}
	if dst.kind == Data && len(dst.preds) > 0 {
		return fmt.Errorf("%w: %q", ErrMultipleProducers, dst.name)
	}
	src.succs = append(src.succs, to)
	dst.preds = append(dst.preds, from)
	return nil
}

// Seal computes the entry and exit nodes and freezes the structure.
// Calling Seal again is a no-op.
func (g *Graph) Seal() {
	if g.sealed {
		return
	}
	for _, n := range g.nodes {
		if n.Indegree() == 0 {
			g.entries = append(g.entries, n.id)
		}
		if n.Outdegree() == 0 {
			g.exits = append(g.exits, n.id)
		}
	}
	g.sealed = true
}

// Sealed reports whether Seal has run.
func (g *Graph) Sealed() bool { return g.sealed }

// SetShape records the shape of a data node. Each shape is written once.
func (g *Graph) SetShape(id ID, s layer.Shape) error {
	n := g.Node(id)
	if n == nil {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	if n.kind != Data {
		return fmt.Errorf("%w: %q", ErrNotData, n.name)
	}
	if n.shape != nil {
		return fmt.Errorf("%w: %q is %s", ErrShapeAssigned, n.name, n.shape)
	}
	if s == nil {
		s = layer.Shape{}
	}
	for _, d := range s {
		if d < 0 {
			return fmt.Errorf("negative dimension in shape %s for %q", s, n.name)
		}
	}
	n.shape = s.Clone()
	return nil
}

// Node returns the node with the given ID, or nil if it does not exist.
func (g *Graph) Node(id ID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// Len is the total number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []*Node { return append([]*Node(nil), g.nodes...) }

// Layers returns the computation node IDs in insertion order.
func (g *Graph) Layers() []ID {
	var out []ID
	for _, n := range g.nodes {
		if n.kind == Computation {
			out = append(out, n.id)
		}
	}
	return out
}

// DataByName looks up a data node.
func (g *Graph) DataByName(name string) (*Node, bool) {
	id, ok := g.data[name]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// LayerByName looks up a computation node.
func (g *Graph) LayerByName(name string) (*Node, bool) {
	id, ok := g.layers[name]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// Entries returns the nodes with indegree 0, in insertion order. It is empty
// until the graph is sealed.
func (g *Graph) Entries() []ID { return append([]ID(nil), g.entries...) }

// Exits returns the nodes with outdegree 0, in insertion order. It is empty
// until the graph is sealed.
func (g *Graph) Exits() []ID { return append([]ID(nil), g.exits...) }
