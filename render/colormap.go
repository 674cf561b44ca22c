package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Binary maps t in [0, 1] from white to black.
func Binary(t float64) drawing.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	g := uint8(255*(1-t) + 0.5)
	return drawing.Color{R: g, G: g, B: g, A: 255}
}
