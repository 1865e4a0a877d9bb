package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/glyphstack/tablepack/pkg/cache"
	pkgerrors "github.com/glyphstack/tablepack/pkg/errors"
	"github.com/glyphstack/tablepack/pkg/graphfile"
	"github.com/glyphstack/tablepack/pkg/repack"
)

// repackCommand creates the repack command, the main entry point of the CLI.
func (c *CLI) repackCommand() *cobra.Command {
	var (
		output        string
		noCache       bool
		maxIterations int
		shortLimit    uint64
		wideLimit     uint64
	)

	cmd := &cobra.Command{
		Use:   "repack [graph.json]",
		Short: "Resolve offset overflows and emit the final layout",
		Long: `Resolve offset overflows and emit the final layout.

The repack command takes a graph.json file describing subtables and their
offset fields, searches for a byte ordering in which every offset fits its
field, and writes a result.json with the final order and encoded offsets.

When no fitting layout is found within the iteration budget the command
writes the surviving overflows instead and exits with an error.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRepack(cmd.Context(), args[0], repackParams{
				output:        output,
				noCache:       noCache,
				maxIterations: maxIterations,
				shortLimit:    shortLimit,
				wideLimit:     wideLimit,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.result.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "resolution round budget (default: max(16, subtable count))")
	cmd.Flags().Uint64Var(&shortLimit, "short-limit", 0, "maximum offset through a 16-bit field (default: 65535)")
	cmd.Flags().Uint64Var(&wideLimit, "wide-limit", 0, "maximum offset through a 32-bit field (default: 4294967295)")

	return cmd
}

type repackParams struct {
	output        string
	noCache       bool
	maxIterations int
	shortLimit    uint64
	wideLimit     uint64
}

// repackOptions merges config defaults with command-line flags, flags
// winning.
func (c *CLI) repackOptions(p repackParams) repack.Options {
	opts := repack.Options{
		Limits:        repack.DefaultLimits(),
		MaxIterations: c.Config.Repack.MaxIterations,
		Logger:        c.Logger,
	}
	if c.Config.Repack.ShortLimit > 0 {
		opts.Limits.Short = c.Config.Repack.ShortLimit
	}
	if c.Config.Repack.WideLimit > 0 {
		opts.Limits.Wide = c.Config.Repack.WideLimit
	}
	if p.shortLimit > 0 {
		opts.Limits.Short = p.shortLimit
	}
	if p.wideLimit > 0 {
		opts.Limits.Wide = p.wideLimit
	}
	if p.maxIterations > 0 {
		opts.MaxIterations = p.maxIterations
	}
	return opts
}

// runRepack loads the graph, repacks it and writes the result.
func (c *CLI) runRepack(ctx context.Context, input string, p repackParams) error {
	if err := pkgerrors.ValidatePath(input); err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "load graph %s", input)
	}
	g, err := graphfile.ReadGraph(bytes.NewReader(data))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidGraph, err, "load graph %s", input)
	}

	opts := c.repackOptions(p)

	store, err := c.newCache(p.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	key := cache.ResultKey(cache.Hash(data), opts.Limits.Short, opts.Limits.Wide, opts.MaxIterations)

	var res repack.Result
	cacheHit := false
	if cached, hit, err := store.Get(ctx, key); err == nil && hit {
		if res, err = graphfile.ReadResult(bytes.NewReader(cached)); err == nil {
			cacheHit = true
		}
	}

	nodes := g.NodeCount()
	links := g.EdgeCount()

	if !cacheHit {
		prog := newProgress(c.Logger)
		res, err = repack.Run(g, opts)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidGraph, err, "repack %s", input)
		}
		prog.done(fmt.Sprintf("Repacked %d subtables", nodes))

		var buf bytes.Buffer
		if err := graphfile.WriteResult(res, &buf); err == nil {
			ttl := time.Duration(c.Config.Cache.TTLHours) * time.Hour
			if err := store.Set(ctx, key, buf.Bytes(), ttl); err != nil {
				c.Logger.Debug("cache store failed", "err", err)
			}
		}
	}

	outputPath := p.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".result.json"
	}
	if err := graphfile.ExportResult(res, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	if res.Status == repack.StateFailed {
		printError("Repack failed with %d unresolved overflows", len(res.Overflows))
		printOverflowTable(res.Overflows, opts.Limits)
		printFile(outputPath)
		printStats(nodes, links, res.Iterations, cacheHit)
		return pkgerrors.New(pkgerrors.ErrCodeRepackFailed, "%d overflows remain after %d iterations", len(res.Overflows), res.Iterations)
	}

	printSuccess("Repack complete")
	printFile(outputPath)
	printStats(nodes, links, res.Iterations, cacheHit)
	printNewline()
	printNextStep("Inspect", "tablepack trace "+input)

	return nil
}
