package search

import (
	"testing"
	"time"
)

func TestPlanSplitsNetRotation(t *testing.T) {
	req := &Request{Turns: 6, Straights: 2}
	plans := planSplits(req, 0.01)
	if len(plans) != 7 {
		t.Fatalf("got %d plans, want 7", len(plans))
	}
	wantLive := map[int]bool{0: true, 3: true, 6: true}
	for _, p := range plans {
		if wantLive[p.Split.Lefts] == p.Skip {
			t.Errorf("split %s: skip = %v, reason %q", p.Split, p.Skip, p.Reason)
		}
		if p.Split.Lefts+p.Split.Rights != 6 || p.Split.Straights != 2 {
			t.Errorf("split %s has wrong inventory", p.Split)
		}
	}
}

func TestPlanSplitsWideOrientationTolerance(t *testing.T) {
	// At 60° or more of angular slack a 60° residual rotation can still
	// close, so no split is pruned on net rotation.
	req := &Request{Turns: 5}
	for _, p := range planSplits(req, 1.1) {
		if p.Skip {
			t.Errorf("split %s skipped under wide tolerance: %s", p.Split, p.Reason)
		}
	}
}

func TestPlanSplitsPrefixChirality(t *testing.T) {
	req := &Request{Turns: 6, Prefix: mustSequence("LL")}
	for _, p := range planSplits(req, 0.01) {
		switch p.Split.Lefts {
		case 0:
			if !p.Skip {
				t.Error("split 0L/6R cannot host an LL prefix")
			}
		case 3, 6:
			if p.Skip {
				t.Errorf("split %s skipped: %s", p.Split, p.Reason)
			}
		}
	}
}

func TestRequestDefaults(t *testing.T) {
	r := &Request{Turns: 6}
	if got := r.maxTracks(); got != 100 {
		t.Errorf("default max tracks = %d, want 100", got)
	}
	if got := r.workers(); got != 1 {
		t.Errorf("default workers = %d, want 1", got)
	}
}

func TestRequestValidateAccepts(t *testing.T) {
	r := &Request{
		Turns:        8,
		Straights:    4,
		Prefix:       mustSequence("SL"),
		MaxTracks:    10,
		SplitTimeout: time.Second,
		Workers:      2,
	}
	if err := r.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestSplitString(t *testing.T) {
	s := Split{Lefts: 3, Rights: 2, Straights: 4}
	if got := s.String(); got != "3L/2R/4S" {
		t.Errorf("String = %q", got)
	}
}
