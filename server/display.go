package server

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"wellplot/calculator"
	"wellplot/model"
	"wellplot/render"
)

// Display holds the calculation result and its rendered figures for all
// connected clients.
type Display struct {
	res     *calculator.Result
	figures map[string]*render.Figure
	width   int
	height  int
	step    int

	mu   sync.RWMutex // 保护 view 和 pngs
	view model.View
	pngs map[string][]byte
}

func NewDisplay(res *calculator.Result, figures map[string]*render.Figure, width, height, step int, view model.View) (*Display, error) {
	d := &Display{
		res:     res,
		figures: figures,
		width:   width,
		height:  height,
		step:    step,
	}
	if err := d.SetView(view); err != nil {
		return nil, err
	}
	return d, nil
}

// SetView 以新的视角重新渲染所有图
func (d *Display) SetView(view model.View) error {
	start := time.Now()
	images, err := render.RenderAll(d.figures, d.width, d.height, view)
	if err != nil {
		return err
	}
	pngs := make(map[string][]byte, len(images))
	for name, img := range images {
		var buf bytes.Buffer
		if err := render.EncodePNG(&buf, img); err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		pngs[name] = buf.Bytes()
	}

	d.mu.Lock()
	d.view = view
	d.pngs = pngs
	d.mu.Unlock()

	log.WithFields(log.Fields{
		"azimuth":   view.Azimuth,
		"elevation": view.Elevation,
		"cost":      time.Since(start),
	}).Info("设置视角")
	return nil
}

func (d *Display) View() model.View {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.view
}

func (d *Display) PNG(name string) ([]byte, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	data, ok := d.pngs[name]
	return data, ok
}

func (d *Display) PushData() model.PushData {
	return calculator.BuildPushData(d.res, d.View(), d.step, render.FigureNames)
}
