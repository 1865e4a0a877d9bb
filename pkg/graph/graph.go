package graph

import "errors"

var (
	// ErrUnknownNode is returned by [Graph.AddLink], [Graph.Duplicate] and
	// related methods when a node id is out of range for the arena.
	ErrUnknownNode = errors.New("unknown node id")

	// ErrSelfLink is returned by [Graph.AddLink] when parent and child are
	// the same node. Self-loops are forbidden by construction.
	ErrSelfLink = errors.New("node must not link to itself")

	// ErrEmptyGraph is returned by [Graph.Validate] for a graph with no nodes.
	ErrEmptyGraph = errors.New("graph has no nodes")

	// ErrRootHasParents is returned by [Graph.Validate] when the designated
	// root has incoming links. The root represents the top-level table and
	// must be the unique entry point.
	ErrRootHasParents = errors.New("root node has incoming links")

	// ErrDetachedNode is returned by [Graph.Validate] when a node other than
	// the root has no incoming links, meaning it can never be reached from
	// the top-level table.
	ErrDetachedNode = errors.New("node is not reachable from the root")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a cycle is
	// detected. Offsets are strictly positive, so a cyclic graph can never
	// be laid out. Cycles are detected using depth-first search with
	// white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// NodeID identifies a node within a graph's arena. Ids are dense, start at
// zero, and are never reused: duplicating a node always yields a fresh id.
type NodeID int

// InvalidNode is the id returned by operations that fail to produce a node.
const InvalidNode NodeID = -1

// Width is the byte width of an offset field inside a node's payload.
type Width uint8

const (
	// Width16 is a 16-bit offset field.
	Width16 Width = 2
	// Width32 is a 32-bit "extension" offset field, used to bypass the
	// narrow 16-bit limit.
	Width32 Width = 4
)

// String returns "16" or "32" for the known widths.
func (w Width) String() string {
	if w == Width32 {
		return "32"
	}
	return "16"
}

// Weight returns the sort weight contributed by a link of this width
// pointing at a child of the given payload length. The large additive
// constant strongly penalizes narrow links so that distance-based sorts
// place 16-bit-linked children closest to their parents.
func (w Width) Weight(childLen int) int64 {
	if w == Width32 {
		return int64(childLen) + 1<<32
	}
	return int64(childLen) + 1<<16
}

// Link is one outgoing offset from a node. The link's index in
// [Graph.Links] equals the position of the corresponding offset field
// within the parent's payload.
type Link struct {
	Target NodeID
	Width  Width
}

// node is one arena entry. Fields are only mutated through Graph methods
// so the in-degree and distance caches stay consistent.
type node struct {
	byteLength int
	priority   int64
	links      []Link
}

// Graph is an arena of subtable nodes connected by offset links.
// The zero value is not usable - use New.
type Graph struct {
	nodes    []node
	root     NodeID
	inDegree []int

	// incoming mirrors the link relation in reverse: incoming[id] holds one
	// entry per link pointing at id, with Target set to the parent. It is
	// what lets distance recomputation seed a dirty region from its clean
	// parents instead of re-running Dijkstra over the whole graph.
	incoming [][]Link

	// Distance cache, maintained by distance.go.
	dist      []int64
	distDirty []bool
	distReady bool // true once dist holds valid values for all non-dirty nodes
}

// New creates an empty graph. The first node added becomes the root;
// use [Graph.SetRoot] to designate a different one.
func New() *Graph {
	return &Graph{root: InvalidNode}
}

// AddNode appends a node with the given payload byte length to the arena
// and returns its id. The length excludes the node's outgoing offset
// fields; those are accounted for by the links' field widths. The first
// node added becomes the root.
func (g *Graph) AddNode(byteLength int) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{byteLength: byteLength})
	g.inDegree = append(g.inDegree, 0)
	g.incoming = append(g.incoming, nil)
	g.dist = append(g.dist, 0)
	g.distDirty = append(g.distDirty, true)
	if g.root == InvalidNode {
		g.root = id
	}
	return id
}

// AddLink appends an outgoing offset link from parent to child. Links are
// stored in call order, which must match the order of the offset fields in
// the parent's payload. Returns ErrUnknownNode if either endpoint does not
// exist, or ErrSelfLink if parent == child.
func (g *Graph) AddLink(parent, child NodeID, w Width) error {
	if !g.has(parent) || !g.has(child) {
		return ErrUnknownNode
	}
	if parent == child {
		return ErrSelfLink
	}
	g.nodes[parent].links = append(g.nodes[parent].links, Link{Target: child, Width: w})
	g.inDegree[child]++
	g.incoming[child] = append(g.incoming[child], Link{Target: parent, Width: w})
	g.markDirty(child)
	return nil
}

// SetRoot designates the root node. Returns ErrUnknownNode if id does not
// exist.
func (g *Graph) SetRoot(id NodeID) error {
	if !g.has(id) {
		return ErrUnknownNode
	}
	g.root = id
	g.distReady = false
	return nil
}

// Root returns the designated root node, or InvalidNode for an empty graph.
func (g *Graph) Root() NodeID { return g.root }

// NodeCount returns the number of nodes in the arena, duplicates included.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ByteLength returns the payload length of the node, or 0 if id is unknown.
func (g *Graph) ByteLength(id NodeID) int {
	if !g.has(id) {
		return 0
	}
	return g.nodes[id].byteLength
}

// Priority returns the node's priority bias. Negative values pull the node
// earlier in distance-based sorts, positive values push it later.
func (g *Graph) Priority(id NodeID) int64 {
	if !g.has(id) {
		return 0
	}
	return g.nodes[id].priority
}

// Links returns the node's outgoing links in offset-field order.
// The returned slice is a read-only view - use [Graph.AddLink] and
// [Graph.RewireLink] to modify it.
func (g *Graph) Links(id NodeID) []Link {
	if !g.has(id) {
		return nil
	}
	return g.nodes[id].links
}

// InDegree returns the cached number of incoming links, or 0 if id is
// unknown. Multiple links from the same parent count separately.
func (g *Graph) InDegree(id NodeID) int {
	if !g.has(id) {
		return 0
	}
	return g.inDegree[id]
}

// EdgeCount returns the total number of links in the graph.
func (g *Graph) EdgeCount() int {
	total := 0
	for i := range g.nodes {
		total += len(g.nodes[i].links)
	}
	return total
}

// Validate checks graph integrity and returns nil if the graph is a well
// formed subtable DAG:
//
//  1. The graph is non-empty and the root has no incoming links.
//  2. Every other node has at least one incoming link.
//  3. The link relation is acyclic.
//
// Link targets are validated at AddLink time and cannot dangle. Validate
// runs in O(V+E) time; call it once before repacking rather than after
// every mutation - duplication only adds a childless node and rewiring
// only retargets an existing link, so mutations preserve acyclicity by
// construction.
func (g *Graph) Validate() error {
	if len(g.nodes) == 0 {
		return ErrEmptyGraph
	}
	if g.inDegree[g.root] != 0 {
		return ErrRootHasParents
	}
	for id := range g.nodes {
		if NodeID(id) != g.root && g.inDegree[id] == 0 {
			return ErrDetachedNode
		}
	}
	return g.detectCycles()
}

func (g *Graph) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make([]int, len(g.nodes))
	var hasCycle bool

	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		color[id] = gray
		for _, l := range g.nodes[id].links {
			switch color[l.Target] {
			case white:
				dfs(l.Target)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for id := range g.nodes {
		if color[id] == white {
			dfs(NodeID(id))
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

func (g *Graph) has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}
