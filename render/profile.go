package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Profile renders a 2D line chart of one cross-section of a field as PNG.
func Profile(w io.Writer, title, xLabel, yLabel string, xs, values []float64, width, height int) error {
	if len(xs) != len(values) {
		return fmt.Errorf("profile %q: %d x values for %d samples", title, len(xs), len(values))
	}
	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: xLabel,
		},
		YAxis: chart.YAxis{
			Name: yLabel,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yLabel,
				XValues: xs,
				YValues: values,
				Style: chart.Style{
					StrokeColor: drawing.Color{A: 255},
					StrokeWidth: 1.5,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render profile %q: %w", title, err)
	}
	return nil
}
