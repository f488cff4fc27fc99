package layout

import (
	"sync"

	"github.com/google/uuid"

	"github.com/slotworks/trackgen/internal/geom"
)

// Track is a validated, closed track layout: the section sequence paired
// with its centerline trace. Tracks are immutable once created.
type Track struct {
	// ID is assigned on insertion into a TrackSet if empty.
	ID string

	// Sequence is the section ordering that produced the trace.
	Sequence Sequence

	// Signature is the rotation/mirror-invariant dedup key.
	Signature string

	// Trace is the centerline path in absolute coordinates, one primitive
	// per section. The track surface occupies a corridor of fixed width
	// around it.
	Trace []geom.Primitive

	// Length is the total centerline length in meters.
	Length float64
}

// NewTrack builds a Track from a sequence and its trace, computing the
// signature and length.
func NewTrack(seq Sequence, trace []geom.Primitive) *Track {
	var length float64
	for _, p := range trace {
		length += p.Length()
	}
	return &Track{
		Sequence:  seq,
		Signature: seq.Signature(),
		Trace:     trace,
		Length:    length,
	}
}

// TrackSet is the deduplicated, capacity-bounded collection of accepted
// tracks for one generation run. It is safe for concurrent use: splits
// running on parallel workers insert through TryAdd, which performs the
// duplicate check, the cap check and the insert as one step.
type TrackSet struct {
	mu    sync.Mutex
	max   int
	bySig map[string]*Track
	order []*Track
}

// NewTrackSet creates a TrackSet holding at most max tracks.
func NewTrackSet(max int) *TrackSet {
	return &TrackSet{
		max:   max,
		bySig: make(map[string]*Track),
	}
}

// TryAdd inserts t unless an equivalent layout is already present or the set
// is full. It assigns t.ID when empty and reports whether t was added.
func (ts *TrackSet) TryAdd(t *Track) bool {
	sig := t.Signature
	if sig == "" {
		sig = t.Sequence.Signature()
		t.Signature = sig
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if len(ts.order) >= ts.max {
		return false
	}
	if _, dup := ts.bySig[sig]; dup {
		return false
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	ts.bySig[sig] = t
	ts.order = append(ts.order, t)
	return true
}

// Full reports whether the cap has been reached. Splits poll this on every
// backtracking step to stop promptly.
func (ts *TrackSet) Full() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.order) >= ts.max
}

// Len returns the number of stored tracks.
func (ts *TrackSet) Len() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.order)
}

// Contains reports whether a layout with the given signature is stored.
func (ts *TrackSet) Contains(signature string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	_, ok := ts.bySig[signature]
	return ok
}

// Tracks returns the stored tracks in insertion order. The returned slice is
// a copy; the tracks themselves are shared and immutable.
func (ts *TrackSet) Tracks() []*Track {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	out := make([]*Track, len(ts.order))
	copy(out, ts.order)
	return out
}
