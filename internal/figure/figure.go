// Package figure renders accepted track layouts: one PNG map per track and
// an HTML gallery for browsing a whole run's output.
package figure

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/slotworks/trackgen/internal/geom"
	"github.com/slotworks/trackgen/internal/layout"
)

// arcSamples is the number of chords used to approximate one 60° arc.
// At the catalogue radius the chord error is well under a millimeter.
const arcSamples = 24

// padding is the margin added around the layout bounds, in meters.
const padding = 0.1

// samplePath flattens a trace into a polyline through all primitives in
// order.
func samplePath(trace []geom.Primitive) plotter.XYs {
	var pts plotter.XYs
	for i, p := range trace {
		switch v := p.(type) {
		case geom.Line:
			if i == 0 {
				pts = append(pts, plotter.XY{X: v.X1, Y: v.Y1})
			}
			pts = append(pts, plotter.XY{X: v.X2, Y: v.Y2})
		case geom.Arc:
			start := 1
			if i == 0 {
				start = 0
			}
			for s := start; s <= arcSamples; s++ {
				a := v.StartAngle + v.Sweep*float64(s)/arcSamples
				pts = append(pts, plotter.XY{
					X: v.CX + v.R*math.Cos(a),
					Y: v.CY + v.R*math.Sin(a),
				})
			}
		}
	}
	return pts
}

// bounds returns a square, padded bounding box so maps keep a 1:1 aspect
// ratio regardless of layout shape.
func bounds(pts plotter.XYs) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	half := math.Max(xmax-xmin, ymax-ymin)/2 + padding
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	return cx - half, cx + half, cy - half, cy + half
}

// RenderPNG writes a map of one track to path.
func RenderPNG(track *layout.Track, path string) error {
	pts := samplePath(track.Trace)
	if len(pts) == 0 {
		return fmt.Errorf("track %s has an empty trace", track.Sequence)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Track Map: %s", track.Sequence)
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"
	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = bounds(pts)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(2)
	p.Add(line)

	// Mark the start/finish joint.
	startPt, err := plotter.NewScatter(plotter.XYs{pts[0]})
	if err != nil {
		return err
	}
	startPt.Radius = vg.Points(4)
	p.Add(startPt)

	if err := p.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save track map: %w", err)
	}
	return nil
}

// RenderAll writes one PNG per track into dir and returns the file paths in
// track order.
func RenderAll(tracks []*layout.Track, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create figure dir: %w", err)
	}
	paths := make([]string, 0, len(tracks))
	for i, track := range tracks {
		path := filepath.Join(dir, fmt.Sprintf("track_%02d_%s.png", i+1, track.Sequence))
		if err := RenderPNG(track, path); err != nil {
			return paths, fmt.Errorf("track %d (%s): %w", i+1, track.Sequence, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
