package geom

import "math"

// jointEps is the shared-endpoint slack for interior joints. Consecutive
// primitives meet exactly by construction, so only float noise needs
// absorbing; the loop-closing joint gets the lap tolerance instead.
const jointEps = 1e-6

// Tracer builds a centerline trace incrementally and supports backtracking,
// which is how the search engine explores placements: extend one section,
// test the new primitive against the earlier ones, back out on failure.
// A Tracer is not safe for concurrent use; each split owns its own.
type Tracer struct {
	params     Params
	closureTol float64

	poses []Pose // poses[0] is the origin; len(poses) == len(prims)+1
	prims []Primitive
}

// NewTracer creates a tracer starting at the origin pose. closureTol is the
// lap tolerance: the final primitive of a closed lap ends up to that far
// from the start of the first one, and that contact must not read as a
// self-intersection.
func NewTracer(params Params, closureTol float64) *Tracer {
	return &Tracer{
		params:     params,
		closureTol: closureTol,
		poses:      []Pose{{}},
	}
}

// Len returns the number of sections placed so far.
func (t *Tracer) Len() int { return len(t.prims) }

// Pose returns the pose at the end of the trace.
func (t *Tracer) Pose() Pose { return t.poses[len(t.poses)-1] }

// Extend places one section at the end of the trace.
func (t *Tracer) Extend(s Segment) {
	next, prim := t.params.Extend(t.Pose(), s)
	t.poses = append(t.poses, next)
	t.prims = append(t.prims, prim)
}

// Backtrack removes the most recently placed section.
func (t *Tracer) Backtrack() {
	if len(t.prims) == 0 {
		return
	}
	t.prims = t.prims[:len(t.prims)-1]
	t.poses = t.poses[:len(t.poses)-1]
}

// Reset returns the tracer to the origin pose with no sections placed.
func (t *Tracer) Reset() {
	t.prims = t.prims[:0]
	t.poses = t.poses[:1]
}

// LastIntersects tests the newest primitive against all earlier ones except
// its immediate predecessor (adjacent primitives necessarily touch at their
// shared joint). Against the first primitive the lap tolerance is used as
// the joint slack, so a closing lap is not rejected for touching its own
// start.
func (t *Tracer) LastIntersects() bool {
	n := len(t.prims)
	if n < 3 {
		return false
	}
	last := t.prims[n-1]
	for i := 0; i < n-2; i++ {
		tol := jointEps
		if i == 0 {
			tol = math.Max(t.closureTol, jointEps)
		}
		if Intersects(last, t.prims[i], tol) {
			return true
		}
	}
	return false
}

// ClearanceOK reports whether every pair of non-adjacent section joints is
// at least min apart. The track corridor has physical width, so joints that
// come too close produce layouts that cannot be assembled even when the
// centerlines do not cross. min <= 0 disables the check.
func (t *Tracer) ClearanceOK(min float64) bool {
	if min <= 0 {
		return true
	}
	m := len(t.poses)
	for i := 0; i < m; i++ {
		for j := i + 2; j < m; j++ {
			if i == 0 && j == m-1 {
				continue // closing joint coincides with the origin
			}
			if math.Hypot(t.poses[j].X-t.poses[i].X, t.poses[j].Y-t.poses[i].Y) < min {
				return false
			}
		}
	}
	return true
}

// Primitives returns a copy of the trace so far.
func (t *Tracer) Primitives() []Primitive {
	out := make([]Primitive, len(t.prims))
	copy(out, t.prims)
	return out
}

// PathLength returns the total centerline length of the trace so far.
func (t *Tracer) PathLength() float64 {
	var total float64
	for _, p := range t.prims {
		total += p.Length()
	}
	return total
}
