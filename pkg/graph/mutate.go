package graph

import (
	"errors"
	"slices"
)

// ErrUnknownLink is returned by [Graph.RewireLink] when the field index
// does not name an existing link of the parent.
var ErrUnknownLink = errors.New("unknown link field index")

// Duplicate creates a copy of the node with identical payload length,
// priority and outgoing links, and returns the copy's id. The copy shares
// the original's children - links are copied as-is, not deepened - and has
// no incoming links until the caller retargets exactly one offending link
// at it with [Graph.RewireLink]. Acyclicity is preserved: a childless-
// on-the-incoming-side node cannot close a cycle.
//
// The in-degrees of the shared children are updated incrementally; no
// other cached state is touched until the rewire.
func (g *Graph) Duplicate(id NodeID) (NodeID, error) {
	if !g.has(id) {
		return InvalidNode, ErrUnknownNode
	}

	src := g.nodes[id]
	dup := g.AddNode(src.byteLength)
	g.nodes[dup].priority = src.priority
	g.nodes[dup].links = slices.Clone(src.links)

	for _, l := range src.links {
		g.inDegree[l.Target]++
		g.incoming[l.Target] = append(g.incoming[l.Target], Link{Target: dup, Width: l.Width})
	}
	return dup, nil
}

// RewireLink retargets the parent's field-th link at newTarget. Only the
// link's head moves; its direction and field width are unchanged, so the
// graph stays acyclic as long as newTarget is not an ancestor of parent -
// which holds for the one caller that matters, overflow resolution, where
// newTarget is always a fresh duplicate.
//
// The in-degree caches of the old and new targets are adjusted, and the
// distances of both targets and their descendants are invalidated.
func (g *Graph) RewireLink(parent NodeID, field int, newTarget NodeID) error {
	if !g.has(parent) || !g.has(newTarget) {
		return ErrUnknownNode
	}
	links := g.nodes[parent].links
	if field < 0 || field >= len(links) {
		return ErrUnknownLink
	}
	if newTarget == parent {
		return ErrSelfLink
	}

	old := links[field].Target
	if old == newTarget {
		return nil
	}
	links[field].Target = newTarget

	g.inDegree[old]--
	g.inDegree[newTarget]++
	g.dropIncoming(old, parent, links[field].Width)
	g.incoming[newTarget] = append(g.incoming[newTarget], Link{Target: parent, Width: links[field].Width})

	g.markDirty(old)
	g.markDirty(newTarget)
	return nil
}

// BumpPriority adds delta to the priority of each listed node. Priority
// is a bias added to the node's distance when distance-based sorts rank
// candidates: a negative delta pulls the nodes earlier in future layouts,
// a positive delta pushes them later. The graph shape and the distance
// cache are untouched - the bias is applied at sort time.
//
// Unknown ids are ignored.
func (g *Graph) BumpPriority(ids []NodeID, delta int64) {
	for _, id := range ids {
		if g.has(id) {
			g.nodes[id].priority += delta
		}
	}
}

// dropIncoming removes one reverse-adjacency entry recording a link from
// parent with the given width.
func (g *Graph) dropIncoming(id, parent NodeID, w Width) {
	in := g.incoming[id]
	for i, l := range in {
		if l.Target == parent && l.Width == w {
			g.incoming[id] = slices.Delete(in, i, i+1)
			return
		}
	}
}
