// Package pkg provides the core libraries for tablepack offset repacking.
//
// # Overview
//
// Tablepack repacks graphs of binary subtables connected by bounded
// offset fields, searching for a byte layout in which every offset fits
// its field. The pkg directory is organized into these areas:
//
//  1. [graph] - The subtable graph: nodes, links, mutations, distances
//  2. [graph/order] - Topological orderings (Kahn, shortest-distance)
//  3. [repack] - The resolution loop: overflow checking and strategies
//  4. [graphfile] - JSON serialization of graphs and results
//  5. [render] - Graphviz node-link diagrams
//  6. [cache] - Content-addressed result caching
//
// # Architecture
//
// The typical data flow through tablepack:
//
//	graph.json
//	     ↓
//	[graphfile] package (decode and validate)
//	     ↓
//	[repack] package (sort → check → resolve, iterated)
//	     ↓
//	[graphfile] package (result with final order and offsets)
//
// # Quick Start
//
//	g, err := graphfile.ImportGraph("graph.json")
//	if err != nil { ... }
//	res, err := repack.Run(g, repack.Options{})
//	if err != nil { ... }
//	if res.Status == repack.StateDone {
//	    // res.Order and res.Offsets describe the packed layout
//	}
//
// [graph]: github.com/glyphstack/tablepack/pkg/graph
// [graph/order]: github.com/glyphstack/tablepack/pkg/graph/order
// [repack]: github.com/glyphstack/tablepack/pkg/repack
// [graphfile]: github.com/glyphstack/tablepack/pkg/graphfile
// [render]: github.com/glyphstack/tablepack/pkg/render
// [cache]: github.com/glyphstack/tablepack/pkg/cache
package pkg
