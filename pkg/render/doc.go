// Package render visualizes subtable graphs as node-link diagrams.
//
// # Overview
//
// This package turns a [graph.Graph] into Graphviz DOT and renders it to
// SVG. It is used by the CLI's visualize command to inspect inputs and
// to understand why a repack failed.
//
//	dot := render.ToDOT(g, render.Options{Detailed: true})
//	svg, err := render.SVG(dot)
//
// # Annotations
//
// Nodes are labeled with their id and byte length. Wide (32-bit) links
// are drawn with a bold edge so the expensive fields stand out. When
// overflows from a failed repack run are passed in [Options], the
// offending links are drawn in red with the offset the layout would
// have required.
//
// [graph.Graph]: github.com/glyphstack/tablepack/pkg/graph
package render
