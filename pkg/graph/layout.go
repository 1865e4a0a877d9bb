package graph

import "errors"

var (
	// ErrIncompleteOrder is returned by [Graph.ComputeLayout] when the
	// order does not contain every node exactly once.
	ErrIncompleteOrder = errors.New("order must contain every node exactly once")

	// ErrNotTopological is returned by [Graph.ComputeLayout] when a parent
	// is placed after one of its children. Sorts never produce such an
	// order; seeing this error indicates a bug in the caller.
	ErrNotTopological = errors.New("order is not a valid topological ordering")
)

// Layout assigns every node an absolute byte position for a given
// topological order. It is a derived, disposable view: the repacker
// computes a fresh one each iteration and never stores it on the graph.
type Layout struct {
	// Order is the topological ordering the positions were derived from.
	Order []NodeID
	// Total is the serialized size of the whole graph in bytes.
	Total int

	pos []int // byte position per node id
}

// Pos returns the absolute byte position of the node, the sum of the
// payload lengths of all nodes preceding it in the layout's order.
func (l *Layout) Pos(id NodeID) int { return l.pos[id] }

// ComputeLayout derives byte positions from a topological ordering of all
// nodes. Returns ErrIncompleteOrder if order misses or repeats a node, or
// ErrNotTopological if any link points backward; both are programmer
// errors, not runtime conditions after a correct sort.
func (g *Graph) ComputeLayout(order []NodeID) (*Layout, error) {
	if len(order) != len(g.nodes) {
		return nil, ErrIncompleteOrder
	}

	l := &Layout{
		Order: order,
		pos:   make([]int, len(g.nodes)),
	}
	rank := make([]int, len(g.nodes)) // position in order, for the topology check
	seen := make([]bool, len(g.nodes))
	offset := 0
	for i, id := range order {
		if !g.has(id) || seen[id] {
			return nil, ErrIncompleteOrder
		}
		seen[id] = true
		rank[id] = i
		l.pos[id] = offset
		offset += g.nodes[id].byteLength
	}
	l.Total = offset

	for id := range g.nodes {
		for _, link := range g.nodes[id].links {
			if rank[link.Target] < rank[NodeID(id)] {
				return nil, ErrNotTopological
			}
		}
	}
	return l, nil
}
