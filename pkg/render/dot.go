package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/glyphstack/tablepack/pkg/graph"
	"github.com/glyphstack/tablepack/pkg/repack"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes byte lengths and non-zero priorities in node
	// labels. When false, only the node id is shown.
	Detailed bool

	// Overflows marks offending links from a failed repack run. Matching
	// edges are drawn in red, labeled with the offset the layout would
	// have required.
	Overflows []repack.Overflow
}

// ToDOT converts a subtable graph to Graphviz DOT format. The root is
// drawn with a double border; 32-bit links are drawn bold. The resulting
// DOT string can be rendered with [SVG].
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for id := 0; id < g.NodeCount(); id++ {
		nid := graph.NodeID(id)
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(g, nid, opts.Detailed))}
		if nid == g.Root() {
			attrs = append(attrs, "peripheries=2")
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for id := 0; id < g.NodeCount(); id++ {
		nid := graph.NodeID(id)
		for field, l := range g.Links(nid) {
			attrs := fmtEdgeAttrs(nid, field, l, opts.Overflows)
			if len(attrs) == 0 {
				fmt.Fprintf(&buf, "  %d -> %d;\n", id, l.Target)
				continue
			}
			fmt.Fprintf(&buf, "  %d -> %d [%s];\n", id, l.Target, strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(g *graph.Graph, id graph.NodeID, detailed bool) string {
	if !detailed {
		return strconv.Itoa(int(id))
	}
	parts := []string{fmt.Sprintf("%d", id), fmt.Sprintf("%dB", g.ByteLength(id))}
	if p := g.Priority(id); p != 0 {
		parts = append(parts, fmt.Sprintf("prio %+d", p))
	}
	return strings.Join(parts, "\n")
}

func fmtEdgeAttrs(parent graph.NodeID, field int, l graph.Link, overflows []repack.Overflow) []string {
	var attrs []string
	if l.Width == graph.Width32 {
		attrs = append(attrs, "style=bold", `label="32"`)
	}
	for _, o := range overflows {
		if o.Parent == parent && o.Field == field {
			attrs = append(attrs, "color=red", "fontcolor=red",
				fmt.Sprintf("label=%q", fmt.Sprintf("+%d", o.Offset)))
			break
		}
	}
	return attrs
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
