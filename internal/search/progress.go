package search

import (
	"time"

	"github.com/slotworks/trackgen/internal/monitoring"
)

// SplitResult summarizes what happened to one split during a run.
type SplitResult struct {
	Split Split

	// Found counts the layouts this split contributed to the track set.
	Found int

	// Nodes counts the search tree nodes the split visited.
	Nodes int64

	// BudgetExhausted is set when the split stopped on its time budget
	// rather than finishing its tree.
	BudgetExhausted bool

	// Skipped splits were pruned by the planner; Reason says why.
	Skipped bool
	Reason  string

	Elapsed time.Duration
}

// ProgressReporter receives per-split lifecycle events during a run.
// Implementations must be safe for concurrent use when Workers > 1.
type ProgressReporter interface {
	SplitStarted(s Split)
	SplitFinished(r SplitResult)
}

// LogReporter logs split progress through the monitoring package.
type LogReporter struct{}

func (LogReporter) SplitStarted(s Split) {
	monitoring.Tagf("search", "split %s started", s)
}

func (LogReporter) SplitFinished(r SplitResult) {
	switch {
	case r.Skipped:
		monitoring.Tagf("search", "split %s skipped: %s", r.Split, r.Reason)
	case r.BudgetExhausted:
		monitoring.Tagf("search", "split %s budget exhausted after %v: %d tracks, %d nodes",
			r.Split, r.Elapsed, r.Found, r.Nodes)
	default:
		monitoring.Tagf("search", "split %s done in %v: %d tracks, %d nodes",
			r.Split, r.Elapsed, r.Found, r.Nodes)
	}
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) SplitStarted(Split)        {}
func (NopReporter) SplitFinished(SplitResult) {}
