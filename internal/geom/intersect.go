package geom

import "math"

// eps bounds for the intersection tests. Section dimensions are fractions of
// a meter, so absolute epsilons are safe here.
const (
	geomEps  = 1e-9
	angleEps = 1e-7
)

type point struct{ x, y float64 }

// Intersects reports whether two non-adjacent primitives cross. Crossing
// points lying within jointTol of an endpoint of both primitives are the
// construction joints of a lap (in particular the closing contact at the
// origin) and do not count.
func Intersects(a, b Primitive, jointTol float64) bool {
	if jointTol < geomEps {
		jointTol = geomEps
	}

	var pts []point
	var overlap float64

	switch av := a.(type) {
	case Line:
		switch bv := b.(type) {
		case Line:
			pts, overlap = lineLine(av, bv)
		case Arc:
			pts = lineArc(av, bv)
		}
	case Arc:
		switch bv := b.(type) {
		case Line:
			pts = lineArc(bv, av)
		case Arc:
			pts, overlap = arcArc(av, bv)
		}
	}

	// Any finite shared stretch is an overlap regardless of endpoints.
	if overlap > jointTol {
		return true
	}

	for _, p := range pts {
		if nearEndpoint(a, p, jointTol) && nearEndpoint(b, p, jointTol) {
			continue
		}
		return true
	}
	return false
}

// nearEndpoint reports whether p lies within tol of either endpoint of prim.
func nearEndpoint(prim Primitive, p point, tol float64) bool {
	sx, sy := prim.Start()
	if math.Hypot(p.x-sx, p.y-sy) <= tol {
		return true
	}
	ex, ey := prim.End()
	return math.Hypot(p.x-ex, p.y-ey) <= tol
}

// lineLine returns the crossing points of two segments and, for collinear
// segments, the length of their shared stretch.
func lineLine(a, b Line) ([]point, float64) {
	rx, ry := a.X2-a.X1, a.Y2-a.Y1
	sx, sy := b.X2-b.X1, b.Y2-b.Y1
	qpx, qpy := b.X1-a.X1, b.Y1-a.Y1

	rxs := rx*sy - ry*sx
	if math.Abs(rxs) < geomEps {
		// Parallel. Collinear only if b's origin sits on a's line.
		if math.Abs(qpx*ry-qpy*rx) > geomEps {
			return nil, 0
		}
		rr := rx*rx + ry*ry
		if rr < geomEps*geomEps {
			return nil, 0 // degenerate
		}
		t0 := (qpx*rx + qpy*ry) / rr
		t1 := t0 + (sx*rx+sy*ry)/rr
		lo, hi := math.Min(t0, t1), math.Max(t0, t1)
		lo, hi = math.Max(lo, 0), math.Min(hi, 1)
		if lo > hi {
			return nil, 0
		}
		mid := (lo + hi) / 2
		p := point{a.X1 + mid*rx, a.Y1 + mid*ry}
		return []point{p}, (hi - lo) * math.Sqrt(rr)
	}

	t := (qpx*sy - qpy*sx) / rxs
	u := (qpx*ry - qpy*rx) / rxs
	if t < -geomEps || t > 1+geomEps || u < -geomEps || u > 1+geomEps {
		return nil, 0
	}
	return []point{{a.X1 + t*rx, a.Y1 + t*ry}}, 0
}

// lineArc returns the points where a segment crosses a circular arc.
func lineArc(l Line, a Arc) []point {
	dx, dy := l.X2-l.X1, l.Y2-l.Y1
	fx, fy := l.X1-a.CX, l.Y1-a.CY

	qa := dx*dx + dy*dy
	if qa < geomEps*geomEps {
		return nil
	}
	qb := 2 * (fx*dx + fy*dy)
	qc := fx*fx + fy*fy - a.R*a.R

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		if disc < -geomEps {
			return nil
		}
		disc = 0 // tangency
	}
	sq := math.Sqrt(disc)

	var pts []point
	for _, t := range []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if t < -geomEps || t > 1+geomEps {
			continue
		}
		p := point{l.X1 + t*dx, l.Y1 + t*dy}
		if angleOnArc(a, p) {
			pts = append(pts, p)
		}
	}
	if disc == 0 && len(pts) == 2 {
		pts = pts[:1] // tangency produced the same point twice
	}
	return pts
}

// arcArc returns the crossing points of two arcs and, for arcs on the same
// circle, the length of their shared stretch.
func arcArc(a, b Arc) ([]point, float64) {
	dx, dy := b.CX-a.CX, b.CY-a.CY
	d := math.Hypot(dx, dy)

	// Same circle: compare angular intervals.
	if d < geomEps && math.Abs(a.R-b.R) < geomEps {
		return sameCircle(a, b)
	}

	if d > a.R+b.R+geomEps || d < math.Abs(a.R-b.R)-geomEps || d < geomEps {
		return nil, 0
	}

	// Radical line construction.
	t := (a.R*a.R - b.R*b.R + d*d) / (2 * d)
	h2 := a.R*a.R - t*t
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	mx := a.CX + t*dx/d
	my := a.CY + t*dy/d
	ox, oy := -dy/d*h, dx/d*h

	candidates := []point{{mx + ox, my + oy}}
	if h > geomEps {
		candidates = append(candidates, point{mx - ox, my - oy})
	}

	var pts []point
	for _, p := range candidates {
		if angleOnArc(a, p) && angleOnArc(b, p) {
			pts = append(pts, p)
		}
	}
	return pts, 0
}

// sameCircle handles arcs sharing a center and radius: a full lap built from
// turns of one chirality puts many primitives on one circle, so non-adjacent
// pairs must still be told apart from genuine retracing.
func sameCircle(a, b Arc) ([]point, float64) {
	s1, w1 := ccwInterval(a)
	s2, w2 := ccwInterval(b)

	overlap := circularOverlap(s1, w1, s2, w2)
	if overlap > angleEps {
		return nil, overlap * a.R
	}

	// No shared stretch; endpoints may still touch.
	var pts []point
	for _, p := range endpointsOf(a) {
		if angleOnArc(b, p) {
			pts = append(pts, p)
		}
	}
	for _, p := range endpointsOf(b) {
		if angleOnArc(a, p) {
			pts = append(pts, p)
		}
	}
	return pts, 0
}

func endpointsOf(p Primitive) []point {
	sx, sy := p.Start()
	ex, ey := p.End()
	return []point{{sx, sy}, {ex, ey}}
}

// ccwInterval normalizes an arc to a counter-clockwise angular interval
// (start, width) with width >= 0.
func ccwInterval(a Arc) (float64, float64) {
	if a.Sweep >= 0 {
		return normAngle(a.StartAngle), a.Sweep
	}
	return normAngle(a.StartAngle + a.Sweep), -a.Sweep
}

// circularOverlap returns the overlap of two CCW angular intervals on the
// unit circle, in radians.
func circularOverlap(s1, w1, s2, w2 float64) float64 {
	// Shift so interval 1 starts at zero, then interval 2 may straddle the
	// wrap point; test both unwrapped placements.
	rel := normAngle(s2 - s1)
	best := 0.0
	for _, start := range []float64{rel, rel - 2*math.Pi} {
		lo := math.Max(0, start)
		hi := math.Min(w1, start+w2)
		if hi-lo > best {
			best = hi - lo
		}
	}
	return best
}

// angleOnArc reports whether a point on the arc's circle lies within its
// swept interval (with a small angular slack at the ends).
func angleOnArc(a Arc, p point) bool {
	phi := math.Atan2(p.y-a.CY, p.x-a.CX)
	start, width := ccwInterval(a)
	d := normAngle(phi - start)
	return d <= width+angleEps || d >= 2*math.Pi-angleEps
}

// normAngle wraps an angle to [0, 2π).
func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
