package graph

import (
	"fmt"
	"sort"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components returns the weakly connected components of the graph. Each
// component lists its IDs in ascending order; components are ordered by
// their smallest ID.
func (g *Graph) Components() [][]ID {
	u := simple.NewUndirectedGraph()
	for _, n := range g.nodes {
		u.AddNode(simple.Node(n.id))
	}
	for _, n := range g.nodes {
		for _, s := range n.succs {
			u.SetEdge(u.NewEdge(simple.Node(n.id), simple.Node(s)))
		}
	}

	var out [][]ID
	for _, c := range topo.ConnectedComponents(u) {
		out = append(out, sortedIDs(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// CheckAcyclic returns an error naming the nodes of a cycle if one exists.
func (g *Graph) CheckAcyclic() error {
	d := simple.NewDirectedGraph()
	for _, n := range g.nodes {
		d.AddNode(simple.Node(n.id))
	}
	for _, n := range g.nodes {
		for _, s := range n.succs {
			if s == n.id {
				return fmt.Errorf("cycle detected involving node %q", n.name)
			}
			d.SetEdge(d.NewEdge(simple.Node(n.id), simple.Node(s)))
		}
	}
	if _, err := topo.Sort(d); err != nil {
		var names []string
		if unorderable, ok := err.(topo.Unorderable); ok {
			for _, c := range unorderable {
				for _, id := range sortedIDs(c) {
					names = append(names, g.nodes[id].name)
				}
			}
		}
		return fmt.Errorf("cycle detected involving nodes %v", names)
	}
	return nil
}

func sortedIDs(nodes []gonum.Node) []ID {
	ids := make([]ID, len(nodes))
	for i, n := range nodes {
		ids[i] = ID(n.ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
