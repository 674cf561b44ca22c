package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"wellplot/calculator"
	"wellplot/model"
)

const (
	margin      = 40
	titleHeight = 24
)

var (
	background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	axisColor  = drawing.Color{R: 0x80, G: 0x80, B: 0x80, A: 255}
	textColor  = color.RGBA{A: 255}
)

// Figure is a 3D contour plot of one field, independent of the view it is
// rendered from.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	ZLabel string

	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64

	Contours []Contour
}

// Contour3D traces levels iso-lines of field over mesh.
func Contour3D(title, zLabel string, mesh *calculator.Mesh, field *calculator.Field, levels int) *Figure {
	start := time.Now()
	zMin, zMax := field.Bounds()
	f := &Figure{
		Title:    title,
		XLabel:   "x",
		YLabel:   "y",
		ZLabel:   zLabel,
		XMin:     mesh.X[0],
		XMax:     mesh.X[len(mesh.X)-1],
		YMin:     mesh.Y[0],
		YMax:     mesh.Y[len(mesh.Y)-1],
		ZMin:     zMin,
		ZMax:     zMax,
		Contours: Contours(mesh, field, levels),
	}

	segments := 0
	for _, c := range f.Contours {
		segments += len(c.Segments)
	}
	log.WithFields(log.Fields{
		"title":    title,
		"levels":   levels,
		"segments": segments,
		"cost":     time.Since(start),
	}).Debug("等值线计算完成")
	return f
}

// normalize 数据坐标映射到单位立方体
func (f *Figure) normalize(x, y, z float64) [3]float64 {
	return [3]float64{
		unit(x, f.XMin, f.XMax),
		unit(y, f.YMin, f.YMax),
		unit(z, f.ZMin, f.ZMax),
	}
}

func unit(v, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (v-min)/(max-min) - 0.5
}

// Render draws the figure from the given view into a new image.
func (f *Figure) Render(width, height int, view model.View) (*image.RGBA, error) {
	if width <= 2*margin || height <= 2*margin+titleHeight {
		return nil, fmt.Errorf("figure size %dx%d too small", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return nil, fmt.Errorf("raster context: %w", err)
	}

	cam := NewCamera(view)
	cam.Fit(margin, margin+titleHeight, float64(width-margin), float64(height-margin))

	f.drawAxes(gc, img, cam)

	gc.SetLineWidth(1)
	for i, c := range f.Contours {
		if len(c.Segments) == 0 {
			continue
		}
		t := 0.0
		if len(f.Contours) > 1 {
			t = float64(i) / float64(len(f.Contours)-1)
		}
		gc.SetStrokeColor(Binary(t))
		gc.BeginPath()
		for _, s := range c.Segments {
			x1, y1 := cam.Project(f.normalize(s.X1, s.Y1, c.Level))
			x2, y2 := cam.Project(f.normalize(s.X2, s.Y2, c.Level))
			gc.MoveTo(x1, y1)
			gc.LineTo(x2, y2)
		}
		gc.Stroke()
	}

	drawText(img, (width-len(f.Title)*7)/2, margin/2+13, f.Title)
	return img, nil
}

// drawAxes 绘制坐标轴线框和刻度
func (f *Figure) drawAxes(gc *drawing.RasterGraphicContext, img *image.RGBA, cam *Camera) {
	gc.SetStrokeColor(axisColor)
	gc.SetLineWidth(0.8)
	gc.BeginPath()
	for _, e := range cubeEdges() {
		x1, y1 := cam.Project(e[0])
		x2, y2 := cam.Project(e[1])
		gc.MoveTo(x1, y1)
		gc.LineTo(x2, y2)
	}
	gc.Stroke()

	lo := -0.5
	label := func(p [3]float64, text string) {
		x, y := cam.Project(p)
		drawText(img, int(x)-len(text)*7/2, int(y)+4, text)
	}
	label([3]float64{lo, lo - 0.08, lo}, fmt.Sprintf("%.3g", f.XMin))
	label([3]float64{-lo, lo - 0.08, lo}, fmt.Sprintf("%.3g", f.XMax))
	label([3]float64{0, lo - 0.15, lo}, f.XLabel)
	label([3]float64{-lo + 0.08, lo, lo}, fmt.Sprintf("%.3g", f.YMin))
	label([3]float64{-lo + 0.08, -lo, lo}, fmt.Sprintf("%.3g", f.YMax))
	label([3]float64{-lo + 0.15, 0, lo}, f.YLabel)
	label([3]float64{lo - 0.08, -lo, lo}, fmt.Sprintf("%.3g", f.ZMin))
	label([3]float64{lo - 0.08, -lo, -lo}, fmt.Sprintf("%.3g", f.ZMax))
	label([3]float64{lo - 0.15, -lo, 0}, f.ZLabel)
}

func cubeEdges() [][2][3]float64 {
	corners := cubeCorners()
	var res [][2][3]float64
	for i := 0; i < 8; i++ {
		for bit := 0; bit < 3; bit++ {
			j := i | 1<<bit
			if j != i {
				res = append(res, [2][3]float64{corners[i], corners[j]})
			}
		}
	}
	return res
}

func drawText(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG 写入 PNG 文件，目录不存在时创建
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
