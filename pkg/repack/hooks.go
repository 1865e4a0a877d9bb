package repack

// IterationRecord describes one sort-check-resolve round of a repack run.
type IterationRecord struct {
	Iteration    int   // 1-based round counter
	State        State // the sorting state the round ran in
	Nodes        int   // node count after resolutions, duplicates included
	TotalBytes   int   // serialized size of the round's layout
	Overflows    int   // overflowing links found by the check
	Duplications int   // node duplications applied this round
	Bumps        int   // priority bumps applied this round
}

// Hooks receives events from a repack run. Implementations must not
// mutate the graph; they exist for tracing, metrics and tests. Register
// hooks via [Options.Hooks]; the default is a no-op.
type Hooks interface {
	// OnIteration is called at the end of every round, including the
	// final one that produced a verdict.
	OnIteration(rec IterationRecord)
}

type nopHooks struct{}

func (nopHooks) OnIteration(IterationRecord) {}

// Recorder is a Hooks implementation that appends every record to
// Records. Used by the trace command and by tests to assert on
// convergence behavior.
type Recorder struct {
	Records []IterationRecord
}

// OnIteration implements [Hooks].
func (r *Recorder) OnIteration(rec IterationRecord) {
	r.Records = append(r.Records, rec)
}
