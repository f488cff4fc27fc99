package layout

import (
	"fmt"
	"sync"
	"testing"

	"github.com/slotworks/trackgen/internal/geom"
)

func mustTrack(t *testing.T, letters string) *Track {
	t.Helper()
	seq, err := ParseSequence(letters)
	if err != nil {
		t.Fatal(err)
	}
	params := geom.Params{TurnRadius: 0.3, StraightLength: 0.345}
	tr := geom.NewTracer(params, 0.05)
	for _, s := range seq {
		tr.Extend(s)
	}
	return NewTrack(seq, tr.Primitives())
}

func TestNewTrackComputesSignatureAndLength(t *testing.T) {
	track := mustTrack(t, "LLLLLL")
	if track.Signature != "LLLLLL" {
		t.Errorf("signature = %q, want LLLLLL", track.Signature)
	}
	want := 6 * 0.3 * geom.TurnSweep
	if diff := track.Length - want; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("length = %g, want %g", track.Length, want)
	}
}

func TestTrackSetRejectsEquivalentLayouts(t *testing.T) {
	ts := NewTrackSet(10)

	if !ts.TryAdd(mustTrack(t, "SSRRRSSRRR")) {
		t.Fatal("first insert must succeed")
	}
	// A rotation and the mirror image describe the same physical track.
	if ts.TryAdd(mustTrack(t, "SRRRSSRRRS")) {
		t.Error("rotated duplicate must be rejected")
	}
	if ts.TryAdd(mustTrack(t, "SSLLLSSLLL")) {
		t.Error("mirrored duplicate must be rejected")
	}
	if ts.Len() != 1 {
		t.Errorf("Len = %d, want 1", ts.Len())
	}
}

func TestTrackSetRespectsCap(t *testing.T) {
	ts := NewTrackSet(2)

	if !ts.TryAdd(mustTrack(t, "LLLLLL")) {
		t.Fatal("insert under cap must succeed")
	}
	if !ts.TryAdd(mustTrack(t, "SLLLSLLL")) {
		t.Fatal("insert under cap must succeed")
	}
	if !ts.Full() {
		t.Error("set should report full at cap")
	}
	if ts.TryAdd(mustTrack(t, "SSLLLSSLLL")) {
		t.Error("insert past cap must be rejected")
	}
	if ts.Len() != 2 {
		t.Errorf("Len = %d, want 2", ts.Len())
	}
}

func TestTrackSetAssignsIDs(t *testing.T) {
	ts := NewTrackSet(4)
	track := mustTrack(t, "LLLLLL")
	if track.ID != "" {
		t.Fatal("fresh track should have no ID")
	}
	ts.TryAdd(track)
	if track.ID == "" {
		t.Error("TryAdd must assign an ID")
	}
	if !ts.Contains(track.Signature) {
		t.Error("Contains must report the stored signature")
	}
}

func TestTrackSetConcurrentTryAdd(t *testing.T) {
	// Many goroutines race the same two layouts plus unique fillers; exactly
	// one copy of each layout may survive and the cap must hold.
	const maxTracks = 8
	ts := NewTrackSet(maxTracks)

	seqs := []string{"LLLLLL", "SLLLSLLL"}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		dupes := []*Track{mustTrack(t, seqs[0]), mustTrack(t, seqs[1])}
		// Filler with a unique signature per goroutine.
		fillerSeq, _ := ParseSequence("SSLLLSSLLL")
		filler := &Track{
			Sequence:  fillerSeq,
			Signature: fmt.Sprintf("filler-%d", i),
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, track := range dupes {
				ts.TryAdd(track)
			}
			ts.TryAdd(filler)
		}()
	}
	wg.Wait()

	if ts.Len() > maxTracks {
		t.Errorf("Len = %d exceeds cap %d", ts.Len(), maxTracks)
	}
	for _, s := range seqs {
		seq, _ := ParseSequence(s)
		if !ts.Contains(seq.Signature()) {
			t.Errorf("layout %s missing after concurrent inserts", s)
		}
	}

	seen := make(map[string]bool)
	for _, track := range ts.Tracks() {
		if seen[track.Signature] {
			t.Errorf("duplicate signature %q stored", track.Signature)
		}
		seen[track.Signature] = true
	}
}
