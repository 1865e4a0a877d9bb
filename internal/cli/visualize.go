package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgerrors "github.com/glyphstack/tablepack/pkg/errors"
	"github.com/glyphstack/tablepack/pkg/graphfile"
	"github.com/glyphstack/tablepack/pkg/render"
)

// visualizeCommand creates the visualize command for rendering node-link
// diagrams of subtable graphs.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		format     string
		output     string
		detailed   bool
		resultPath string
	)

	cmd := &cobra.Command{
		Use:   "visualize [graph.json]",
		Short: "Render a subtable graph as a node-link diagram",
		Long: `Render a subtable graph as a node-link diagram.

The visualize command takes a graph.json file and renders it to Graphviz DOT
or SVG. 32-bit links are drawn bold, the root with a double border.

Pass --result with the result.json of a failed repack run to draw the
unresolved overflows in red, labeled with the offsets the layout would
have required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd.Context(), args[0], format, output, detailed, resultPath)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include byte lengths and priorities in node labels")
	cmd.Flags().StringVar(&resultPath, "result", "", "result.json of a failed run; its overflows are highlighted")

	return cmd
}

// runVisualize loads the graph and renders it.
func (c *CLI) runVisualize(ctx context.Context, input, format, output string, detailed bool, resultPath string) error {
	if err := pkgerrors.ValidateOutputFormat(format); err != nil {
		return err
	}

	g, err := graphfile.ImportGraph(input)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidGraph, err, "load graph %s", input)
	}

	opts := render.Options{Detailed: detailed}
	if resultPath != "" {
		f, err := os.Open(resultPath)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "load result %s", resultPath)
		}
		res, err := graphfile.ReadResult(f)
		f.Close()
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidInput, err, "load result %s", resultPath)
		}
		if len(res.Overflows) == 0 {
			printWarning("Result has no overflows, nothing to highlight")
		}
		opts.Overflows = res.Overflows
	}

	dot := render.ToDOT(g, opts)

	var out []byte
	switch format {
	case "dot":
		out = []byte(dot)
	case "svg":
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		out, err = render.SVG(dot)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render svg: %w", err)
		}
		spinner.Stop()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + "." + format
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Visualization complete")
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), 0, false)

	return nil
}
