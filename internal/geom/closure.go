package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// closureEps absorbs float rounding at the tolerance boundary: a final pose
// exactly at the tolerance must pass.
const closureEps = 1e-12

// Closure decides whether a trace's final pose closes the loop back onto the
// origin pose. It is only meaningful for complete sequences; partial traces
// are never tested.
type Closure struct {
	LapTolerance         float64 // meters, >= 0
	OrientationTolerance float64 // radians, >= 0
}

// Closed reports whether final lies within the positional and angular
// tolerances of the origin pose. The heading difference is wrapped to
// (-π, π] so twelve left turns (720°) still count as aligned.
func (c Closure) Closed(final Pose) bool {
	dist := math.Hypot(final.X, final.Y)
	if dist > c.LapTolerance && !scalar.EqualWithinAbs(dist, c.LapTolerance, closureEps) {
		return false
	}
	delta := math.Abs(WrapAngle(final.Heading))
	return delta <= c.OrientationTolerance || scalar.EqualWithinAbs(delta, c.OrientationTolerance, closureEps)
}
