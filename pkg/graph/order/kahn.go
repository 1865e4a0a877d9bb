package order

import (
	"github.com/glyphstack/tablepack/pkg/graph"
	"github.com/glyphstack/tablepack/pkg/pqueue"
)

// Kahn returns a topological ordering of all nodes using Kahn's algorithm:
// nodes whose remaining in-degree reaches zero become eligible, and among
// eligible nodes the one with the smallest id is placed next, so repeated
// runs on the same graph yield the same order. Placing a node decrements
// the in-degree of its children.
//
// The ordering is simply *some* valid topological order - no distance or
// layout awareness. Returns graph.ErrGraphHasCycle if not every node can
// be placed.
func Kahn(g *graph.Graph) ([]graph.NodeID, error) {
	n := g.NodeCount()
	remaining := make([]int, n)
	ready := pqueue.New(n)
	for id := 0; id < n; id++ {
		remaining[id] = g.InDegree(graph.NodeID(id))
		if remaining[id] == 0 {
			ready.Push(id, pqueue.Key{Rank: int64(id)})
		}
	}

	out := make([]graph.NodeID, 0, n)
	for {
		id, _, ok := ready.Pop()
		if !ok {
			break
		}
		out = append(out, graph.NodeID(id))
		for _, l := range g.Links(graph.NodeID(id)) {
			remaining[l.Target]--
			if remaining[l.Target] == 0 {
				ready.Push(int(l.Target), pqueue.Key{Rank: int64(l.Target)})
			}
		}
	}

	if len(out) != n {
		return nil, graph.ErrGraphHasCycle
	}
	return out, nil
}
