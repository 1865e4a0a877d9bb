// Package graphfile provides JSON import and export for subtable graphs
// and repack results.
//
// # Overview
//
// The repacking engine is format-agnostic: a collaborator parses a
// concrete container format into a graph, and consumes the final ordering
// and offsets. This package is the file-based version of that
// collaborator boundary. It is what the tablepack CLI reads and writes,
// and it doubles as a fixture format for tests and for sharing problem
// graphs between tools.
//
// # Graph Format
//
// A graph file is a JSON object with a "root" id and a "nodes" array:
//
//	{
//	  "root": 0,
//	  "nodes": [
//	    {"id": 0, "size": 10, "links": [{"to": 1, "width": 16}, {"to": 2, "width": 32}]},
//	    {"id": 1, "size": 4},
//	    {"id": 2, "size": 6}
//	  ]
//	}
//
// Node ids must be dense, starting at zero, matching the engine's arena
// addressing. "size" is the payload byte length excluding offset fields.
// Links are listed in offset-field order; "width" is 16 or 32 and
// defaults to 16. "priority" is optional and defaults to zero.
//
// # Result Format
//
// Repack results serialize with their status, iteration count, final
// order and resolved offsets (on success) or surviving overflows (on
// failure). The format round-trips: export followed by import yields an
// identical structure.
package graphfile
