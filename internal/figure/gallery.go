package figure

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/slotworks/trackgen/internal/layout"
)

// RenderGallery writes a single self-contained HTML page with one chart per
// track, for browsing a run's output without opening individual PNGs.
func RenderGallery(tracks []*layout.Track, path string) error {
	page := components.NewPage()
	page.PageTitle = "Track Gallery"

	for i, track := range tracks {
		pts := samplePath(track.Trace)
		data := make([]opts.ScatterData, 0, len(pts))
		for _, p := range pts {
			data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
		}

		xmin, xmax, ymin, ymax := bounds(pts)

		scatter := charts.NewScatter()
		scatter.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "600px"}),
			charts.WithTitleOpts(opts.Title{
				Title:    fmt.Sprintf("Track %d: %s", i+1, track.Sequence),
				Subtitle: fmt.Sprintf("length=%.3fm sections=%d", track.Length, len(track.Sequence)),
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithXAxisOpts(opts.XAxis{Min: xmin, Max: xmax, Name: "X (m)"}),
			charts.WithYAxisOpts(opts.YAxis{Min: ymin, Max: ymax, Name: "Y (m)"}),
		)
		scatter.AddSeries("centerline", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

		page.AddCharts(scatter)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gallery file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}
