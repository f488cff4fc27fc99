// Package search implements the track generation engine: it partitions a
// request into turn splits, explores each split with a randomized
// depth-first search over section placements, and collects closed,
// non-self-intersecting layouts into a deduplicated track set.
package search

import (
	"fmt"
	"time"

	"github.com/slotworks/trackgen/internal/layout"
)

// Request describes one generation run.
type Request struct {
	// Turns and Straights fix the section inventory: every produced layout
	// uses exactly Turns turn sections and Straights straight sections.
	Turns     int
	Straights int

	// Prefix pins the first sections of every layout. Layouts are still
	// deduplicated by their rotation/mirror-invariant signature, so the
	// prefix constrains the search, not the stored representative.
	Prefix layout.Sequence

	// AllowIntersections accepts layouts whose centerline crosses itself,
	// for figure-eight style tracks with crossing pieces. It also disables
	// the joint clearance check.
	AllowIntersections bool

	// MaxTracks caps the number of stored layouts. 0 means the default of
	// 100.
	MaxTracks int

	// SplitTimeout bounds the wall-clock time spent on each split. 0 means
	// no budget.
	SplitTimeout time.Duration

	// Seed fixes the branch shuffling for reproducible runs. 0 derives a
	// seed from the clock.
	Seed int64

	// Workers is the number of splits explored concurrently. 0 means 1.
	Workers int

	// LimitRuns prunes monotonous layouts: no more than count/2 + 1
	// consecutive sections of the same kind, where count is that kind's
	// total in the split inventory.
	LimitRuns bool
}

// Validate checks the request before any geometry work happens.
func (r *Request) Validate() error {
	if r.Turns < 0 {
		return fmt.Errorf("turns must be non-negative, got %d", r.Turns)
	}
	if r.Straights < 0 {
		return fmt.Errorf("straights must be non-negative, got %d", r.Straights)
	}
	if r.Turns+r.Straights == 0 {
		return fmt.Errorf("at least one section is required")
	}
	if len(r.Prefix) > r.Turns+r.Straights {
		return fmt.Errorf("prefix has %d sections but the request only has %d", len(r.Prefix), r.Turns+r.Straights)
	}
	ps, pl, pr := r.Prefix.Counts()
	if ps > r.Straights {
		return fmt.Errorf("prefix uses %d straights but the request only has %d", ps, r.Straights)
	}
	if pl+pr > r.Turns {
		return fmt.Errorf("prefix uses %d turns but the request only has %d", pl+pr, r.Turns)
	}
	if r.MaxTracks < 0 {
		return fmt.Errorf("max tracks must be non-negative, got %d", r.MaxTracks)
	}
	if r.SplitTimeout < 0 {
		return fmt.Errorf("split timeout must be non-negative, got %v", r.SplitTimeout)
	}
	if r.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", r.Workers)
	}
	return nil
}

func (r *Request) maxTracks() int {
	if r.MaxTracks == 0 {
		return 100
	}
	return r.MaxTracks
}

func (r *Request) workers() int {
	if r.Workers == 0 {
		return 1
	}
	return r.Workers
}
