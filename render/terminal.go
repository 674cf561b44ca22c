package render

import (
	"github.com/guptarohit/asciigraph"
)

const terminalWidth = 72

// Terminal 截面曲线的字符画预览，点数过多时先降采样
func Terminal(caption string, values []float64) string {
	data := values
	if len(values) > terminalWidth {
		data = make([]float64, terminalWidth)
		for i := range data {
			data[i] = values[i*(len(values)-1)/(terminalWidth-1)]
		}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(terminalWidth),
		asciigraph.Caption(caption),
	)
}
