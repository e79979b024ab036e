package scheduler

import (
	"github.com/vk/nnc/internal/graph"
)

// Schedule returns the computation nodes of g in a dependency-respecting
// order. Every computation node of an acyclic graph appears exactly once.
func Schedule(g *graph.Graph) []graph.ID {
	visited := make([]bool, g.Len())
	order := make([]graph.ID, 0, len(g.Layers()))

	stack := g.Entries()
	for len(stack) > 0 {
		top := len(stack) - 1
		id := stack[top]
		stack = stack[:top]

		if visited[id] {
			continue
		}
		visited[id] = true

		n := g.Node(id)
		if n.Kind() == graph.Computation {
			order = append(order, id)
		}

		for i := n.Outdegree() - 1; i >= 0; i-- {
			succ := n.Successor(i)
			if visited[succ] {
				continue
			}
			if ready(g.Node(succ), visited) {
				stack = append(stack, succ)
			}
		}
	}
	return order
}

func ready(n *graph.Node, visited []bool) bool {
	for i := 0; i < n.Indegree(); i++ {
		if !visited[n.Predecessor(i)] {
			return false
		}
	}
	return true
}
