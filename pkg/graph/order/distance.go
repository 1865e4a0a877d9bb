package order

import (
	"github.com/glyphstack/tablepack/pkg/graph"
	"github.com/glyphstack/tablepack/pkg/pqueue"
)

// ShortestDistance returns a topological ordering that places, among all
// currently eligible nodes, the one with the smallest effective distance
// next. The effective distance is the cached Dijkstra distance from the
// root plus the node's priority bias, clamped at zero. Ties are broken by
// discovery order - the position of the offset field that first made the
// node eligible - and finally by node id.
//
// The dependency-respecting placement is the same as [Kahn]'s; only the
// choice among eligible nodes differs. Returns graph.ErrGraphHasCycle if
// not every node can be placed.
func ShortestDistance(g *graph.Graph) ([]graph.NodeID, error) {
	n := g.NodeCount()
	dist := g.Distances()

	remaining := make([]int, n)
	ready := pqueue.New(n)
	seq := int64(0)

	push := func(id graph.NodeID) {
		ready.Push(int(id), pqueue.Key{Rank: effectiveDistance(g, dist, id), Seq: seq})
		seq++
	}

	for id := 0; id < n; id++ {
		remaining[id] = g.InDegree(graph.NodeID(id))
	}
	for id := 0; id < n; id++ {
		if remaining[id] == 0 {
			push(graph.NodeID(id))
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
				push(l.Target)
			}
		}
	}

	if len(out) != n {
		return nil, graph.ErrGraphHasCycle
	}
	return out, nil
}

// effectiveDistance applies the node's priority bias to its cached
// distance. Negative bias pulls a node earlier, positive pushes it later;
// the result never goes below zero so a heavily bumped node cannot
// outrank the root.
func effectiveDistance(g *graph.Graph, dist []int64, id graph.NodeID) int64 {
	d := dist[id] + g.Priority(id)
	if d < 0 {
		return 0
	}
	return d
}
