// Package order provides the two topological sorts the repacker chooses
// layouts with.
//
// # Overview
//
// Both sorts produce a total ordering of all graph nodes in which every
// link points forward. They differ in what they optimize:
//
//   - [Kahn] is the plain in-degree-driven sort. It is layout-agnostic,
//     runs in near-linear time, and is roughly twice as fast as the
//     distance sort. The repacker uses it once, as the very first sort of
//     a run, because it is frequently sufficient on its own.
//   - [ShortestDistance] ranks eligible nodes by their cached Dijkstra
//     distance from the root (see [graph.Graph.Distances]) plus their
//     priority bias. Children behind narrow 16-bit links carry much
//     smaller distances than those behind 32-bit links, so the sort packs
//     them close to their parents and avoids most offset overflows.
//
// Both sorts are deterministic: ties are broken by discovery order (the
// position of the corresponding offset field inside the parent's payload)
// and finally by node id, via the lazy-deletion priority queue in
// [github.com/glyphstack/tablepack/pkg/pqueue].
package order
