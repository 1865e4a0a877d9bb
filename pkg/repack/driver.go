package repack

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/glyphstack/tablepack/pkg/graph"
	"github.com/glyphstack/tablepack/pkg/graph/order"
)

// State identifies a stage of the repack state machine.
type State int

const (
	// StateInitial is the state before the first sort runs.
	StateInitial State = iota
	// StateKahnSorting runs the fast, layout-agnostic Kahn sort. Entered
	// exactly once, for the first round of a run.
	StateKahnSorting
	// StateDistanceSorting runs the layout-aware shortest-distance sort.
	// Once entered, the run stays here - it never reverts to Kahn's.
	StateDistanceSorting
	// StateDone means a layout with no overflowing links was found.
	StateDone
	// StateFailed means overflows remained after the iteration budget
	// was exhausted.
	StateFailed
)

// String returns the state name as used in logs and trace output.
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateKahnSorting:
		return "kahn"
	case StateDistanceSorting:
		return "distance"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures a repack run. The zero value selects the real-world
// field limits, a budget proportional to the graph size, no logging and
// no hooks.
type Options struct {
	// Limits are the maximum encodable offsets per field width.
	// The zero value means DefaultLimits.
	Limits Limits

	// MaxIterations bounds the number of sort-check-resolve rounds and
	// guards against pathological inputs that never converge with the
	// available strategies. Zero or negative means max(16, node count).
	MaxIterations int

	// Logger, when non-nil, receives a debug line per round.
	Logger *log.Logger

	// Hooks, when non-nil, receives an IterationRecord per round.
	Hooks Hooks
}

// ResolvedOffset is the final encoded value of one link under the
// produced layout. The caller patches the parent's field-th offset field
// with Offset when emitting the blob.
type ResolvedOffset struct {
	Parent graph.NodeID
	Child  graph.NodeID
	Field  int
	Width  graph.Width
	Offset int64
}

// Result is the outcome of a repack run.
type Result struct {
	// Status is StateDone on success, StateFailed when the budget ran out
	// with overflows remaining.
	Status State

	// Order is the final ordering of all nodes, duplicates included.
	// Only populated on success.
	Order []graph.NodeID

	// Offsets holds the resolved offset of every link, in layout order
	// (parent position, then field index). Only populated on success.
	Offsets []ResolvedOffset

	// Overflows lists the links still overflowing when the budget was
	// exhausted, for diagnostics. Only populated on failure.
	Overflows []Overflow

	// Iterations is the number of sort-check-resolve rounds executed.
	Iterations int
}

// Run repacks the graph: it alternates topological sorting, overflow
// checking and graph-mutating resolution until a layout with no
// overflowing offsets is found or the iteration budget is exhausted.
//
// The first round uses Kahn's sort; every later round uses the
// shortest-distance sort. The graph is mutated in place (duplications,
// priority bumps) and must not be touched by other code while the run is
// in flight. A budget-exhausted run is not an error - it yields a Result
// with Status StateFailed and the surviving overflows. Errors are
// reserved for invalid input graphs and internal invariant violations.
func Run(g *graph.Graph, opts Options) (Result, error) {
	limits := opts.Limits
	if limits == (Limits{}) {
		limits = DefaultLimits()
	}
	budget := opts.MaxIterations
	if budget <= 0 {
		budget = max(16, g.NodeCount())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	hooks := opts.Hooks
	if hooks == nil {
		hooks = nopHooks{}
	}

	if err := g.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid input graph: %w", err)
	}

	state := StateKahnSorting
	iterations := 0
	for {
		var (
			ord []graph.NodeID
			err error
		)
		switch state {
		case StateKahnSorting:
			ord, err = order.Kahn(g)
		case StateDistanceSorting:
			ord, err = order.ShortestDistance(g)
		}
		if err != nil {
			return Result{}, fmt.Errorf("%s sort: %w", state, err)
		}

		layout, err := g.ComputeLayout(ord)
		if err != nil {
			return Result{}, fmt.Errorf("%s layout: %w", state, err)
		}

		overflows, err := CheckOverflow(g, layout, limits)
		if err != nil {
			return Result{}, fmt.Errorf("%s overflow check: %w", state, err)
		}
		iterations++

		rec := IterationRecord{
			Iteration:  iterations,
			State:      state,
			Nodes:      g.NodeCount(),
			TotalBytes: layout.Total,
			Overflows:  len(overflows),
		}

		if len(overflows) == 0 {
			hooks.OnIteration(rec)
			logger.Debug("repack converged",
				"iteration", iterations, "state", state, "nodes", g.NodeCount(), "bytes", layout.Total)
			return Result{
				Status:     StateDone,
				Order:      layout.Order,
				Offsets:    resolvedOffsets(g, layout),
				Iterations: iterations,
			}, nil
		}

		if iterations >= budget {
			hooks.OnIteration(rec)
			logger.Debug("repack budget exhausted",
				"iteration", iterations, "overflows", len(overflows))
			return Result{
				Status:     StateFailed,
				Overflows:  overflows,
				Iterations: iterations,
			}, nil
		}

		rec.Duplications, rec.Bumps = resolveOverflows(g, overflows)
		rec.Nodes = g.NodeCount() // duplication may have grown the arena
		hooks.OnIteration(rec)
		logger.Debug("repack iteration",
			"iteration", iterations, "state", state, "overflows", len(overflows),
			"duplications", rec.Duplications, "bumps", rec.Bumps)

		state = StateDistanceSorting
	}
}

// resolvedOffsets collects the final offset of every link under the
// layout, in layout order.
func resolvedOffsets(g *graph.Graph, l *graph.Layout) []ResolvedOffset {
	var out []ResolvedOffset
	for _, parent := range l.Order {
		for field, link := range g.Links(parent) {
			out = append(out, ResolvedOffset{
				Parent: parent,
				Child:  link.Target,
				Field:  field,
				Width:  link.Width,
				Offset: int64(l.Pos(link.Target)) - int64(l.Pos(parent)),
			})
		}
	}
	return out
}
