// Package graph provides the in-memory subtable graph that the repacking
// engine lays out and mutates.
//
// # Overview
//
// Binary container formats store parent-to-child relationships as byte
// offsets held in fixed-width integer fields. A table is therefore a
// directed acyclic graph of variable-sized subtables connected by positive
// offsets, and serializing it means choosing a linear byte layout in which
// every offset fits its field. This package provides that graph: an arena
// of nodes addressed by integer id, each node carrying its payload length
// and an ordered list of outgoing offset links.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode] (the first node
// added becomes the root), and connect them with [Graph.AddLink]. Link
// order matters: it mirrors the order the offset fields appear inside the
// parent's payload and is used for deterministic tie-breaking:
//
//	g := graph.New()
//	root := g.AddNode(10)
//	child := g.AddNode(4)
//	g.AddLink(root, child, graph.Width16)
//
// Use [Graph.Validate] to verify structural integrity before handing the
// graph to the repacker.
//
// # Mutations
//
// The repacker resolves offset overflows by mutating the graph in place:
//
//   - [Graph.Duplicate] copies a shared node so one parent can have a
//     private copy placed arbitrarily close to it. The copy shares the
//     original's children and has no incoming links until
//     [Graph.RewireLink] retargets exactly one offending edge.
//   - [Graph.BumpPriority] biases nodes toward earlier placement in
//     distance-based sorts without changing the graph shape.
//
// Node ids are never reused; duplication only ever grows the arena.
//
// # Cached State
//
// The graph maintains two per-node caches: the in-degree (count of incoming
// links) and the shortest weighted distance from the root (see
// [Graph.Distances]). Both are maintained incrementally - a mutation
// invalidates only the directly affected nodes and their descendants, and
// distance recomputation re-runs Dijkstra over that dirty region alone,
// seeded from the distances of its unaffected parents.
//
// # Layouts
//
// A [Layout] assigns every node an absolute byte position as the prefix sum
// of the payload lengths of all nodes preceding it in a topological order.
// Layouts are derived, disposable views computed by [Graph.ComputeLayout];
// they are never stored as graph state.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. A graph is exclusively
// owned by one in-flight repack run; abandoning a run mid-way leaves the
// graph partially mutated and unusable for further repacking.
package graph
