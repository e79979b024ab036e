package render

import (
	"fmt"

	"github.com/vk/nnc/internal/graph"
)

// Seed selects where the breadth-first traversal starts.
type Seed int

const (
	// SeedAll starts from every entry node, in entry order.
	SeedAll Seed = iota
	// SeedFirst starts from the first entry node only. Parts of the graph
	// that are not reachable from it are not rendered.
	SeedFirst
)

func (s Seed) String() string {
	switch s {
	case SeedAll:
		return "all"
	case SeedFirst:
		return "first"
	}
	return fmt.Sprintf("Seed(%d)", int(s))
}

// ParseSeed maps "all" and "first" to their Seed.
func ParseSeed(s string) (Seed, error) {
	switch s {
	case "all":
		return SeedAll, nil
	case "first":
		return SeedFirst, nil
	}
	return 0, fmt.Errorf("unknown render seed %q (want all or first)", s)
}

// Record is one rendered edge together with its source node.
type Record struct {
	From graph.ID
	To   graph.ID
}

// Plan is the rendering order of a graph.
type Plan struct {
	Records []Record
	// Terminals are the exit data nodes, labeled once more after the edges.
	Terminals []graph.ID
	// Visited is the number of nodes the traversal reached.
	Visited int
}

// Complete reports whether the traversal reached every node of g.
func (p *Plan) Complete(g *graph.Graph) bool {
	return p.Visited == g.Len()
}

// Walk traverses g breadth first from the entries selected by seed.
func Walk(g *graph.Graph, seed Seed) *Plan {
	plan := &Plan{}
	visited := make([]bool, g.Len())

	entries := g.Entries()
	if seed == SeedFirst && len(entries) > 1 {
		entries = entries[:1]
	}

	queue := make([]graph.ID, 0, g.Len())
	for _, id := range entries {
		visited[id] = true
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		plan.Visited++

		n := g.Node(id)
		for i := 0; i < n.Outdegree(); i++ {
			succ := n.Successor(i)
			plan.Records = append(plan.Records, Record{From: id, To: succ})
			if !visited[succ] {
				visited[succ] = true
				queue = append(queue, succ)
			}
		}
	}

	for _, id := range g.Exits() {
		if g.Node(id).Kind() == graph.Data {
			plan.Terminals = append(plan.Terminals, id)
		}
	}
	return plan
}
