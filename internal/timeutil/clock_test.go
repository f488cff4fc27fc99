package timeutil

import (
	"testing"
	"time"
)

func TestMockClockAdvance(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	if got := c.Now(); !got.Equal(start) {
		t.Fatalf("Now() = %v, want %v", got, start)
	}

	c.Advance(90 * time.Second)
	if got := c.Since(start); got != 90*time.Second {
		t.Errorf("Since(start) = %v, want 90s", got)
	}

	c.Set(start)
	if got := c.Since(start); got != 0 {
		t.Errorf("Since(start) after Set = %v, want 0", got)
	}
}

func TestRealClockMonotonicEnough(t *testing.T) {
	c := RealClock{}
	before := c.Now()
	if c.Since(before) < 0 {
		t.Error("Since returned a negative duration")
	}
}
