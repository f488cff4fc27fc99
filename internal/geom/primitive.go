package geom

import "math"

// Primitive is one centerline element of a trace: a Line or an Arc, in
// absolute plane coordinates. The figure exporter reads these directly.
type Primitive interface {
	// Start returns the first endpoint.
	Start() (x, y float64)
	// End returns the last endpoint.
	End() (x, y float64)
	// Length returns the arc length along the primitive.
	Length() float64

	sealed()
}

// Line is a straight centerline segment.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Start returns the first endpoint.
func (l Line) Start() (float64, float64) { return l.X1, l.Y1 }

// End returns the last endpoint.
func (l Line) End() (float64, float64) { return l.X2, l.Y2 }

// Length returns the segment length.
func (l Line) Length() float64 { return math.Hypot(l.X2-l.X1, l.Y2-l.Y1) }

func (Line) sealed() {}

// Arc is a circular centerline arc. Sweep is signed: positive is
// counter-clockwise. The arc runs from StartAngle to StartAngle+Sweep,
// angles measured from the center.
type Arc struct {
	CX, CY     float64
	R          float64
	StartAngle float64
	Sweep      float64
}

// Start returns the first endpoint.
func (a Arc) Start() (float64, float64) {
	return a.CX + a.R*math.Cos(a.StartAngle), a.CY + a.R*math.Sin(a.StartAngle)
}

// End returns the last endpoint.
func (a Arc) End() (float64, float64) {
	e := a.StartAngle + a.Sweep
	return a.CX + a.R*math.Cos(e), a.CY + a.R*math.Sin(e)
}

// Length returns the arc length.
func (a Arc) Length() float64 { return a.R * math.Abs(a.Sweep) }

func (Arc) sealed() {}
