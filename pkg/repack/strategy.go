package repack

import "github.com/glyphstack/tablepack/pkg/graph"

// pair identifies a (parent, child) combination for per-iteration
// deduplication of resolutions.
type pair struct {
	parent, child graph.NodeID
}

// resolveOverflows applies one resolution strategy per overflowing link,
// in the deterministic order CheckOverflow reports them (parent position,
// then field index). Two strategies are available:
//
//   - Duplication, when the child has more than one distinct incoming
//     link: the child cannot be moved closer to all of its parents at
//     once, but a private copy can be placed arbitrarily close to the one
//     parent that needs it. The copy is created with [graph.Graph.Duplicate]
//     and only the offending link is rewired to it.
//   - Priority bump, otherwise: duplicating a single-parent child would be
//     a no-op, so instead every child of the overflowing parent is pulled
//     earlier in the next distance sort by one link-weight of bias. The
//     bias covers only the width constant, never the child's byte length,
//     so bumped siblings keep their relative ordering by size.
//
// Each (parent, child) pair is duplicated at most once per iteration and
// each parent's children are bumped at most once per iteration; later
// overflows on the same pair or parent are left for the next round, where
// the refreshed layout decides whether they still overflow. Strategies do
// not fail: an unresolvable overflow simply persists into the next check.
func resolveOverflows(g *graph.Graph, overflows []Overflow) (duplications, bumps int) {
	duplicated := make(map[pair]bool)
	bumped := make(map[graph.NodeID]bool)

	for _, of := range overflows {
		if g.InDegree(of.Child) > 1 {
			p := pair{parent: of.Parent, child: of.Child}
			if duplicated[p] {
				continue
			}
			duplicated[p] = true

			dup, err := g.Duplicate(of.Child)
			if err != nil {
				continue // unknown id can only mean the overflow is stale
			}
			if err := g.RewireLink(of.Parent, of.Field, dup); err != nil {
				continue
			}
			duplications++
			continue
		}

		if bumped[of.Parent] {
			continue
		}
		bumped[of.Parent] = true
		for _, l := range g.Links(of.Parent) {
			g.BumpPriority([]graph.NodeID{l.Target}, -l.Width.Weight(0))
		}
		bumps++
	}
	return duplications, bumps
}
