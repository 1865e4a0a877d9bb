package graph

import (
	"math"

	"github.com/glyphstack/tablepack/pkg/pqueue"
)

// unreachable is the cached distance of a node with no path from the root.
// Validated graphs have none, but the cache must stay well defined while
// a duplicate waits to be rewired.
const unreachable = math.MaxInt64

// Distances returns the shortest weighted distance from the root to every
// node, indexed by id. The weight of a link is the child's payload length
// plus 2^16 for a 16-bit link or 2^32 for a 32-bit link (see
// [Width.Weight]), so narrow links dominate the metric and their children
// sort closest. A node's priority bias is not included here; sorts add it
// on top (see [Graph.Priority]).
//
// The result is a cached, read-only view. The cache is maintained
// incrementally: a mutation dirties only the affected node and its
// descendants, and the next call re-runs Dijkstra over that dirty region
// alone, seeded with the distances of its clean parents. When nothing is
// dirty the call is O(1).
func (g *Graph) Distances() []int64 {
	if !g.distReady {
		g.recomputeAll()
	} else if g.anyDirty() {
		g.recomputeDirty()
	}
	return g.dist
}

// markDirty invalidates the cached distance of id and every node reachable
// from it. Kept cheap: a single DFS with a visited set, no recomputation.
func (g *Graph) markDirty(id NodeID) {
	if !g.distReady {
		return // everything recomputes on the next Distances call anyway
	}
	seen := make([]bool, len(g.nodes))
	var dfs func(NodeID)
	dfs = func(n NodeID) {
		if seen[n] {
			return
		}
		seen[n] = true
		g.distDirty[n] = true
		for _, l := range g.nodes[n].links {
			dfs(l.Target)
		}
	}
	dfs(id)
}

func (g *Graph) anyDirty() bool {
	for _, d := range g.distDirty {
		if d {
			return true
		}
	}
	return false
}

// recomputeAll runs Dijkstra from the root over the whole graph.
func (g *Graph) recomputeAll() {
	for i := range g.nodes {
		g.dist[i] = unreachable
		g.distDirty[i] = false
	}
	if g.root == InvalidNode {
		g.distReady = true
		return
	}

	q := pqueue.New(len(g.nodes))
	g.dist[g.root] = 0
	q.Push(int(g.root), pqueue.Key{Rank: 0})

	for {
		id, key, ok := q.Pop()
		if !ok {
			break
		}
		g.relax(NodeID(id), key.Rank, q, nil)
	}
	g.distReady = true
}

// recomputeDirty re-runs Dijkstra restricted to the dirty region. Dirty
// sets are closed under descendants (markDirty guarantees it), so every
// link from a clean node into the region carries a final distance and can
// seed it, and no link leaves the region toward a stale clean node.
func (g *Graph) recomputeDirty() {
	dirty := make(map[NodeID]bool)
	for i, d := range g.distDirty {
		if d {
			dirty[NodeID(i)] = true
		}
	}

	q := pqueue.New(len(dirty))
	for id := range dirty {
		best := int64(unreachable)
		if id == g.root {
			best = 0
		}
		for _, in := range g.incoming[id] {
			parent := in.Target
			if dirty[parent] || g.dist[parent] == unreachable {
				continue
			}
			if d := g.dist[parent] + in.Width.Weight(g.nodes[id].byteLength); d < best {
				best = d
			}
		}
		g.dist[id] = best
		if best != unreachable {
			q.Push(int(id), pqueue.Key{Rank: best})
		}
	}

	for {
		id, key, ok := q.Pop()
		if !ok {
			break
		}
		g.relax(NodeID(id), key.Rank, q, dirty)
	}

	for id := range dirty {
		g.distDirty[id] = false
	}
}

// relax settles node id at distance d and relaxes its outgoing links.
// When scope is non-nil only links into scope are considered.
func (g *Graph) relax(id NodeID, d int64, q *pqueue.Queue, scope map[NodeID]bool) {
	if d > g.dist[id] {
		return // stale pop
	}
	for _, l := range g.nodes[id].links {
		if scope != nil && !scope[l.Target] {
			continue
		}
		next := d + l.Width.Weight(g.nodes[l.Target].byteLength)
		if next < g.dist[l.Target] {
			g.dist[l.Target] = next
			q.Update(int(l.Target), pqueue.Key{Rank: next})
		}
	}
}
