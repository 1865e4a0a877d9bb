package graphfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/glyphstack/tablepack/pkg/graph"
)

var (
	// ErrSparseIDs is returned by [ReadGraph] when node ids are not
	// dense starting at zero. The engine's arena addressing depends on
	// dense ids.
	ErrSparseIDs = errors.New("node ids must be dense, starting at 0")

	// ErrBadWidth is returned by [ReadGraph] for a link width other
	// than 16 or 32.
	ErrBadWidth = errors.New("link width must be 16 or 32")
)

type graphJSON struct {
	Root  graph.NodeID `json:"root"`
	Nodes []nodeJSON   `json:"nodes"`
}

type nodeJSON struct {
	ID       graph.NodeID `json:"id"`
	Size     int          `json:"size"`
	Priority int64        `json:"priority,omitempty"`
	Links    []linkJSON   `json:"links,omitempty"`
}

type linkJSON struct {
	To    graph.NodeID `json:"to"`
	Width int          `json:"width,omitempty"` // 16 (default) or 32
}

// ReadGraph decodes a JSON subtable graph from r.
//
// Nodes must carry dense ids starting at zero; links reference nodes by
// id and are applied in listed order, which must mirror the order of the
// offset fields in the parent's payload. Returns an error if the JSON is
// malformed, ids are sparse, a width is invalid, or a link references an
// unknown node. The graph is not validated beyond that - callers hand it
// to the repacker, which validates before sorting.
//
// ReadGraph does not close r.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := graph.New()
	for i, n := range data.Nodes {
		if n.ID != graph.NodeID(i) {
			return nil, fmt.Errorf("node %d: %w", n.ID, ErrSparseIDs)
		}
		id := g.AddNode(n.Size)
		if n.Priority != 0 {
			g.BumpPriority([]graph.NodeID{id}, n.Priority)
		}
	}
	for _, n := range data.Nodes {
		for _, l := range n.Links {
			w, err := widthFromJSON(l.Width)
			if err != nil {
				return nil, fmt.Errorf("link %d→%d: %w", n.ID, l.To, err)
			}
			if err := g.AddLink(n.ID, l.To, w); err != nil {
				return nil, fmt.Errorf("link %d→%d: %w", n.ID, l.To, err)
			}
		}
	}
	if err := g.SetRoot(data.Root); err != nil {
		return nil, fmt.Errorf("root %d: %w", data.Root, err)
	}
	return g, nil
}

// ImportGraph reads a JSON graph file at path.
func ImportGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// WriteGraph encodes the graph as indented JSON and writes it to w.
// The output can be re-imported with [ReadGraph] for round-trip
// processing.
func WriteGraph(g *graph.Graph, w io.Writer) error {
	out := graphJSON{
		Root:  g.Root(),
		Nodes: make([]nodeJSON, g.NodeCount()),
	}
	for id := 0; id < g.NodeCount(); id++ {
		nid := graph.NodeID(id)
		n := nodeJSON{
			ID:       nid,
			Size:     g.ByteLength(nid),
			Priority: g.Priority(nid),
		}
		for _, l := range g.Links(nid) {
			n.Links = append(n.Links, linkJSON{To: l.Target, Width: widthToJSON(l.Width)})
		}
		out.Nodes[id] = n
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportGraph writes the graph to a JSON file at path.
func ExportGraph(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

func widthFromJSON(w int) (graph.Width, error) {
	switch w {
	case 0, 16:
		return graph.Width16, nil
	case 32:
		return graph.Width32, nil
	default:
		return 0, ErrBadWidth
	}
}

func widthToJSON(w graph.Width) int {
	if w == graph.Width32 {
		return 32
	}
	return 16
}
