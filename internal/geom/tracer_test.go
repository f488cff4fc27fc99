package geom

import (
	"math"
	"testing"
)

func extendAll(tr *Tracer, seq string) {
	for _, c := range seq {
		switch c {
		case 'S':
			tr.Extend(Straight)
		case 'L':
			tr.Extend(TurnLeft)
		case 'R':
			tr.Extend(TurnRight)
		}
	}
}

func TestTracerExtendBacktrack(t *testing.T) {
	tr := NewTracer(testParams, 0.05)

	tr.Extend(Straight)
	tr.Extend(TurnLeft)
	if tr.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tr.Len())
	}
	poseAfterTwo := tr.Pose()

	tr.Extend(TurnRight)
	tr.Backtrack()
	if tr.Len() != 2 {
		t.Fatalf("Len after backtrack = %d, want 2", tr.Len())
	}
	if tr.Pose() != poseAfterTwo {
		t.Errorf("pose after backtrack = %+v, want %+v", tr.Pose(), poseAfterTwo)
	}

	tr.Reset()
	if tr.Len() != 0 || tr.Pose() != (Pose{}) {
		t.Errorf("Reset did not return to origin: len=%d pose=%+v", tr.Len(), tr.Pose())
	}
}

func TestTracerDetectsSelfCrossing(t *testing.T) {
	// A straight up, five left turns (300°), then a straight that cuts
	// back through the first one.
	tr := NewTracer(testParams, 0.05)
	extendAll(tr, "SLLLLL")
	if tr.LastIntersects() {
		t.Fatal("trace should be clean before the final straight")
	}
	tr.Extend(Straight)
	if !tr.LastIntersects() {
		t.Error("final straight crosses the first one and must be detected")
	}
}

func TestTracerHexagonIsClean(t *testing.T) {
	// Every placement of a closed hexagon must pass the incremental check,
	// including the final arc that touches the first one at the origin.
	tr := NewTracer(testParams, 0.05)
	for i := 0; i < 6; i++ {
		tr.Extend(TurnLeft)
		if tr.LastIntersects() {
			t.Fatalf("hexagon flagged as self-intersecting at arc %d", i+1)
		}
	}
}

func TestTracerClosedLayoutWithStraightsIsClean(t *testing.T) {
	tr := NewTracer(testParams, 0.05)
	for i, c := range "SLLLSLLL" {
		switch c {
		case 'S':
			tr.Extend(Straight)
		case 'L':
			tr.Extend(TurnLeft)
		}
		if tr.LastIntersects() {
			t.Fatalf("SLLLSLLL flagged as self-intersecting at section %d", i+1)
		}
	}

	c := Closure{LapTolerance: 0.05, OrientationTolerance: 0.01}
	if !c.Closed(tr.Pose()) {
		t.Errorf("SLLLSLLL should close, final pose %+v", tr.Pose())
	}
}

func TestTracerClearance(t *testing.T) {
	tr := NewTracer(testParams, 0.05)
	extendAll(tr, "SLLLSLLL")

	// The two half-circle caps are 2r apart at their nearest joints.
	if !tr.ClearanceOK(0.6 * testParams.StraightLength) {
		t.Error("SLLLSLLL should satisfy the default clearance")
	}
	if tr.ClearanceOK(10) {
		t.Error("absurdly large clearance requirement should fail")
	}
	if !tr.ClearanceOK(0) {
		t.Error("zero clearance disables the check")
	}
}

func TestTracerPathLength(t *testing.T) {
	tr := NewTracer(testParams, 0.05)
	extendAll(tr, "SLLLSLLL")

	want := 2*testParams.StraightLength + 6*testParams.TurnRadius*TurnSweep
	if got := tr.PathLength(); math.Abs(got-want) > 1e-12 {
		t.Errorf("PathLength = %g, want %g", got, want)
	}
}

func TestTracerPrimitivesCopy(t *testing.T) {
	tr := NewTracer(testParams, 0.05)
	extendAll(tr, "SL")

	prims := tr.Primitives()
	if len(prims) != 2 {
		t.Fatalf("Primitives returned %d entries, want 2", len(prims))
	}
	tr.Backtrack()
	if len(prims) != 2 {
		t.Error("returned slice must not alias the tracer's internal state")
	}
}
