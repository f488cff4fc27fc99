package search

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/slotworks/trackgen/internal/config"
	"github.com/slotworks/trackgen/internal/geom"
	"github.com/slotworks/trackgen/internal/layout"
	"github.com/slotworks/trackgen/internal/monitoring"
	"github.com/slotworks/trackgen/internal/timeutil"
)

// Engine runs generation requests against one geometry configuration.
type Engine struct {
	cfg      *config.Config
	clock    timeutil.Clock
	reporter ProgressReporter
}

// NewEngine creates an engine with the real clock and log-based progress
// reporting.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		cfg:      cfg,
		clock:    timeutil.RealClock{},
		reporter: LogReporter{},
	}
}

// SetClock replaces the engine clock. Tests use a mock to drive split
// budgets without sleeping.
func (e *Engine) SetClock(c timeutil.Clock) { e.clock = c }

// SetReporter replaces the progress reporter. Passing nil silences progress.
func (e *Engine) SetReporter(r ProgressReporter) {
	if r == nil {
		r = NopReporter{}
	}
	e.reporter = r
}

// Generate runs the request and returns the deduplicated track set together
// with one result per planned split. The error covers request validation
// and context cancellation only; an exhausted or empty search is not an
// error, it is a set with fewer tracks than asked for.
func (e *Engine) Generate(ctx context.Context, req Request) (*layout.TrackSet, []SplitResult, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	params := geom.Params{
		TurnRadius:     e.cfg.GetTurnSectionRadius(),
		StraightLength: e.cfg.GetStraightSectionLength(),
	}
	closure := geom.Closure{
		LapTolerance:         e.cfg.GetLapTolerance(),
		OrientationTolerance: e.cfg.GetOrientationTolerance(),
	}
	minClearance := e.cfg.GetMinClearance()
	if req.AllowIntersections {
		minClearance = 0
	}

	plans := planSplits(&req, closure.OrientationTolerance)

	// The prefix trace is split-independent, so one bad prefix invalidates
	// the whole run: warn once and report every live split as skipped.
	if !req.AllowIntersections && len(req.Prefix) > 0 {
		if reason, ok := prefixFeasible(params, closure.LapTolerance, req.Prefix); !ok {
			monitoring.Tagf("search", "infeasible request: %s", reason)
			for i := range plans {
				if !plans[i].Skip {
					plans[i].Skip = true
					plans[i].Reason = reason
				}
			}
		}
	}

	seed := req.Seed
	if seed == 0 {
		seed = e.clock.Now().UnixNano()
	}

	tracks := layout.NewTrackSet(req.maxTracks())
	results := make([]SplitResult, len(plans))
	for i := range results {
		results[i].Split = plans[i].Split
	}

	run := func(i int) {
		plan := plans[i]
		if plan.Skip {
			results[i] = SplitResult{Split: plan.Split, Skipped: true, Reason: plan.Reason}
			e.reporter.SplitFinished(results[i])
			return
		}
		e.reporter.SplitStarted(plan.Split)
		r := &splitRunner{
			req:          &req,
			split:        plan.Split,
			params:       params,
			closure:      closure,
			minClearance: minClearance,
			clock:        e.clock,
			tracks:       tracks,
			rng:          rand.New(rand.NewSource(seed + int64(i)*1_000_003)),
		}
		results[i] = r.run(ctx)
		e.reporter.SplitFinished(results[i])
	}

	workers := req.workers()
	if workers <= 1 || len(plans) <= 1 {
		for i := range plans {
			if ctx.Err() != nil {
				break
			}
			run(i)
		}
	} else {
		idx := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range idx {
					run(i)
				}
			}()
		}
		for i := range plans {
			idx <- i
		}
		close(idx)
		wg.Wait()
	}

	if err := ctx.Err(); err != nil {
		return tracks, results, err
	}
	return tracks, results, nil
}

// prefixFeasible traces the prefix alone and reports whether it is free of
// self-intersections. A prefix that crosses itself makes every completion
// invalid, so the run can stop before any split starts.
func prefixFeasible(params geom.Params, lapTol float64, prefix layout.Sequence) (reason string, ok bool) {
	tr := geom.NewTracer(params, lapTol)
	for i, s := range prefix {
		tr.Extend(s)
		if tr.LastIntersects() {
			return "prefix " + prefix.String() + " self-intersects at section " + prefix[:i+1].String(), false
		}
	}
	return "", true
}

// splitRunner owns the depth-first exploration of one split. It is used by
// a single goroutine; only the track set is shared.
type splitRunner struct {
	req          *Request
	split        Split
	params       geom.Params
	closure      geom.Closure
	minClearance float64
	clock        timeutil.Clock
	tracks       *layout.TrackSet
	rng          *rand.Rand

	tracer *geom.Tracer
	seq    layout.Sequence

	start           time.Time
	nodes           int64
	found           int
	budgetExhausted bool
	ctx             context.Context
}

func (r *splitRunner) run(ctx context.Context) SplitResult {
	r.ctx = ctx
	r.start = r.clock.Now()
	r.tracer = geom.NewTracer(r.params, r.closure.LapTolerance)
	r.seq = make(layout.Sequence, 0, r.req.Turns+r.req.Straights)

	straights := r.split.Straights
	lefts := r.split.Lefts
	rights := r.split.Rights
	for _, s := range r.req.Prefix {
		switch s {
		case geom.Straight:
			straights--
		case geom.TurnLeft:
			lefts--
		case geom.TurnRight:
			rights--
		}
		r.tracer.Extend(s)
		r.seq = append(r.seq, s)
	}

	r.dfs(straights, lefts, rights)

	return SplitResult{
		Split:           r.split,
		Found:           r.found,
		Nodes:           r.nodes,
		BudgetExhausted: r.budgetExhausted,
		Elapsed:         r.clock.Since(r.start),
	}
}

// dfs explores placements for the remaining section inventory. It returns
// true when the split should stop entirely, which unwinds the recursion.
func (r *splitRunner) dfs(straights, lefts, rights int) bool {
	r.nodes++
	if r.ctx.Err() != nil {
		return true
	}
	if r.req.SplitTimeout > 0 && r.clock.Since(r.start) > r.req.SplitTimeout {
		r.budgetExhausted = true
		return true
	}
	if r.tracks.Full() {
		return true
	}

	if straights == 0 && lefts == 0 && rights == 0 {
		r.complete()
		return false
	}

	kinds := make([]geom.Segment, 0, 3)
	if straights > 0 {
		kinds = append(kinds, geom.Straight)
	}
	if lefts > 0 {
		kinds = append(kinds, geom.TurnLeft)
	}
	if rights > 0 {
		kinds = append(kinds, geom.TurnRight)
	}
	r.rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

	for _, k := range kinds {
		if r.req.LimitRuns && r.runTooLong(k) {
			continue
		}
		r.tracer.Extend(k)
		r.seq = append(r.seq, k)
		if !r.req.AllowIntersections && r.tracer.LastIntersects() {
			r.tracer.Backtrack()
			r.seq = r.seq[:len(r.seq)-1]
			continue
		}
		ns, nl, nr := straights, lefts, rights
		switch k {
		case geom.Straight:
			ns--
		case geom.TurnLeft:
			nl--
		case geom.TurnRight:
			nr--
		}
		stop := r.dfs(ns, nl, nr)
		r.tracer.Backtrack()
		r.seq = r.seq[:len(r.seq)-1]
		if stop {
			return true
		}
	}
	return false
}

// complete runs the full-length acceptance checks on the current trace.
func (r *splitRunner) complete() {
	if !r.closure.Closed(r.tracer.Pose()) {
		return
	}
	if !r.tracer.ClearanceOK(r.minClearance) {
		return
	}
	track := layout.NewTrack(r.seq.Clone(), r.tracer.Primitives())
	if r.tracks.TryAdd(track) {
		r.found++
	}
}

// runTooLong reports whether appending k would exceed the run-length cap of
// count/2 + 1 consecutive sections of one kind.
func (r *splitRunner) runTooLong(k geom.Segment) bool {
	var count int
	switch k {
	case geom.Straight:
		count = r.split.Straights
	case geom.TurnLeft:
		count = r.split.Lefts
	case geom.TurnRight:
		count = r.split.Rights
	}
	limit := count/2 + 1

	run := 1
	for i := len(r.seq) - 1; i >= 0 && r.seq[i] == k; i-- {
		run++
	}
	return run > limit
}
