// Package repack implements the iterative offset-overflow resolution
// engine for subtable graphs.
//
// # Overview
//
// Serializing a subtable graph means choosing a linear byte layout - a
// topological ordering - such that every parent-to-child offset fits in
// its fixed-width field. Offset fields are narrow (usually 16 bits) and
// real-world subtables are large, so this search is NP-hard in general:
// sometimes no ordering works without also restructuring the graph.
//
// [Run] drives the search as a small state machine:
//
//	Initial → KahnSorting → DistanceSorting → Done | Failed
//
// The first round sorts with Kahn's algorithm (fast, frequently
// sufficient). If the resulting layout overflows, the engine applies one
// resolution strategy per overflowing link and falls back to the
// shortest-distance sort for all remaining rounds - it never reverts to
// Kahn's. The loop ends when a layout checks clean (Done) or the
// iteration budget runs out (Failed).
//
// # Resolution Strategies
//
// Two graph mutations resolve overflows, chosen by the shape of the
// overflow:
//
//   - A shared child (more than one incoming link) is duplicated and the
//     offending link rewired to the private copy, which the next sort can
//     place right next to the one parent that needed it.
//   - A single-parent child triggers a priority bump of all its parent's
//     children, biasing the next distance sort to pull that whole sibling
//     group closer.
//
// Strategies are applied in a fixed deterministic order (parent position,
// then field index), sequentially - a bump changes which later links
// would still overflow, so ordering affects convergence, not just speed.
// Repeated runs on identical input therefore produce identical results.
//
// # Outcomes
//
// Success yields the final node ordering plus every link's resolved
// offset value; the caller writes payloads in that order and patches the
// offset fields. Failure yields the surviving overflows for diagnostics.
// Neither is a Go error: errors are reserved for invalid input graphs
// (cycles, detached nodes) and internal invariant violations such as a
// negative offset. The engine holds no state across runs.
package repack
