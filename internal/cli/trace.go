package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pkgerrors "github.com/glyphstack/tablepack/pkg/errors"
	"github.com/glyphstack/tablepack/pkg/graphfile"
	"github.com/glyphstack/tablepack/pkg/repack"
)

// traceCommand creates the trace command for inspecting the resolution loop.
func (c *CLI) traceCommand() *cobra.Command {
	var (
		plain         bool
		maxIterations int
		shortLimit    uint64
		wideLimit     uint64
	)

	cmd := &cobra.Command{
		Use:   "trace [graph.json]",
		Short: "Inspect the resolution loop iteration by iteration",
		Long: `Inspect the resolution loop iteration by iteration.

The trace command repacks the graph while recording every round of the
sort-check-resolve loop: which sort ran, how many overflows were found and
how they were resolved (duplications, priority bumps). The recorded rounds
are shown in an interactive viewer, or as a plain table with --plain.

Tracing never reads or writes the result cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrace(args[0], repackParams{
				maxIterations: maxIterations,
				shortLimit:    shortLimit,
				wideLimit:     wideLimit,
			}, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the trace table instead of the interactive viewer")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "resolution round budget (default: max(16, subtable count))")
	cmd.Flags().Uint64Var(&shortLimit, "short-limit", 0, "maximum offset through a 16-bit field (default: 65535)")
	cmd.Flags().Uint64Var(&wideLimit, "wide-limit", 0, "maximum offset through a 32-bit field (default: 4294967295)")

	return cmd
}

// runTrace repacks with a recorder attached and presents the rounds.
func (c *CLI) runTrace(input string, p repackParams, plain bool) error {
	g, err := graphfile.ImportGraph(input)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidGraph, err, "load graph %s", input)
	}

	rec := &repack.Recorder{}
	opts := c.repackOptions(p)
	opts.Hooks = rec
	if !plain {
		// Debug lines would tear the interactive viewer.
		opts.Logger = nil
	}

	res, err := repack.Run(g, opts)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidGraph, err, "repack %s", input)
	}

	if plain {
		fmt.Println(renderTraceTable(rec.Records, -1))
		printTraceOutcome(res)
		return nil
	}

	model := newTraceModel(input, rec.Records, res)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("trace viewer: %w", err)
	}
	return nil
}

func printTraceOutcome(res repack.Result) {
	if res.Status == repack.StateFailed {
		printError("Failed after %d iterations, %d overflows remain", res.Iterations, len(res.Overflows))
		return
	}
	printSuccess("Resolved in %d iterations", res.Iterations)
}
