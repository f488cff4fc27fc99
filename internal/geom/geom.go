// Package geom is the geometry kernel for track generation. It turns segment
// sequences into centerline traces (lines and 60° arcs), decides loop closure
// against configured tolerances, and detects self-intersections between
// trace primitives.
//
// Conventions: poses live in plane coordinates in meters, heading 0 points
// along +Y and grows counter-clockwise. The origin pose is (0, 0, 0).
package geom

import "math"

// TurnSweep is the arc angle subtended by one turn section.
const TurnSweep = math.Pi / 3

// Segment identifies one fixed-geometry track section kind.
type Segment int

const (
	// Straight is a straight section of configured length.
	Straight Segment = iota
	// TurnLeft is a 60° left-hand turn section.
	TurnLeft
	// TurnRight is a 60° right-hand turn section.
	TurnRight
)

// String returns the single-letter encoding used throughout the tool.
func (s Segment) String() string {
	switch s {
	case Straight:
		return "S"
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	}
	return "?"
}

// Pose is a position and direction of travel along the centerline.
type Pose struct {
	X, Y    float64
	Heading float64 // radians, 0 = +Y, counter-clockwise
}

// WrapAngle wraps an angle to (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Params are the fixed section dimensions threaded into every kernel call.
type Params struct {
	TurnRadius     float64 // meters, > 0
	StraightLength float64 // meters, > 0
}

// Extend advances pose by one section and returns the new pose together with
// the centerline primitive the section occupies. Pure and deterministic; the
// turn displacement telescopes (it is a difference of radius vectors), so
// error does not accumulate beyond float rounding over realistic sequences.
func (p Params) Extend(pose Pose, s Segment) (Pose, Primitive) {
	switch s {
	case TurnLeft:
		h2 := pose.Heading + TurnSweep
		cx := pose.X - p.TurnRadius*math.Cos(pose.Heading)
		cy := pose.Y - p.TurnRadius*math.Sin(pose.Heading)
		next := Pose{
			X:       cx + p.TurnRadius*math.Cos(h2),
			Y:       cy + p.TurnRadius*math.Sin(h2),
			Heading: h2,
		}
		return next, Arc{CX: cx, CY: cy, R: p.TurnRadius, StartAngle: pose.Heading, Sweep: TurnSweep}
	case TurnRight:
		h2 := pose.Heading - TurnSweep
		cx := pose.X + p.TurnRadius*math.Cos(pose.Heading)
		cy := pose.Y + p.TurnRadius*math.Sin(pose.Heading)
		next := Pose{
			X:       cx - p.TurnRadius*math.Cos(h2),
			Y:       cy - p.TurnRadius*math.Sin(h2),
			Heading: h2,
		}
		return next, Arc{CX: cx, CY: cy, R: p.TurnRadius, StartAngle: pose.Heading + math.Pi, Sweep: -TurnSweep}
	default:
		next := Pose{
			X:       pose.X - p.StraightLength*math.Sin(pose.Heading),
			Y:       pose.Y + p.StraightLength*math.Cos(pose.Heading),
			Heading: pose.Heading,
		}
		return next, Line{X1: pose.X, Y1: pose.Y, X2: next.X, Y2: next.Y}
	}
}
