package render

import (
	"bytes"
	"image"
	"image/gif"
	"image/png"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellplot/calculator"
	"wellplot/model"
)

func testResult(t *testing.T, samples int) *calculator.Result {
	t.Helper()
	c, err := calculator.NewCalculator(model.Params{WidthX: 1, WidthY: 1, N: 2, Samples: samples, Levels: 10}, 1)
	require.NoError(t, err)
	return c.Run()
}

func TestBinary(t *testing.T) {
	assert.Equal(t, uint8(255), Binary(0).R)
	assert.Equal(t, uint8(0), Binary(1).R)
	assert.Equal(t, uint8(255), Binary(-3).G)
	assert.Equal(t, uint8(0), Binary(7).B)
	assert.Greater(t, Binary(0.2).R, Binary(0.8).R)
}

func TestCameraFit(t *testing.T) {
	for _, view := range []model.View{DefaultView, {Azimuth: 0, Elevation: 0}, {Azimuth: 135, Elevation: 60}} {
		cam := NewCamera(view)
		cam.Fit(10, 20, 110, 220)
		for _, p := range cubeCorners() {
			x, y := cam.Project(p)
			assert.True(t, x >= 10-1e-9 && x <= 110+1e-9, "view %+v x %g", view, x)
			assert.True(t, y >= 20-1e-9 && y <= 220+1e-9, "view %+v y %g", view, y)
		}
	}
}

// 俯视时深度只与 z 有关
func TestCameraDepthFromAbove(t *testing.T) {
	cam := NewCamera(model.View{Azimuth: 0, Elevation: 90})
	assert.InDelta(t, 0.5, cam.Depth([3]float64{0.3, -0.2, 0.5}), 1e-12)
	assert.InDelta(t, -0.5, cam.Depth([3]float64{-0.4, 0.1, -0.5}), 1e-12)
}

func TestLevelValues(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, LevelValues(0, 4, 3))
	assert.Nil(t, LevelValues(0, 1, 0))
}

func TestIsolinesCircle(t *testing.T) {
	mesh := calculator.NewMesh(calculator.Linspace(-1, 1, 81), calculator.Linspace(-1, 1, 81))
	field := calculator.Evaluate(mesh, func(x, y float64) float64 { return x*x + y*y }, 1)

	segments := Isolines(mesh, field, 0.25)
	require.NotEmpty(t, segments)
	for _, s := range segments {
		assert.InDelta(t, 0.5, math.Hypot(s.X1, s.Y1), 0.01)
		assert.InDelta(t, 0.5, math.Hypot(s.X2, s.Y2), 0.01)
	}

	assert.Empty(t, Isolines(mesh, field, 5))
	assert.Empty(t, Isolines(mesh, field, -1))
}

func TestIsolinesSaddle(t *testing.T) {
	mesh := calculator.NewMesh([]float64{0, 1}, []float64{0, 1})
	field := calculator.NewField(2, 2)
	field.Set(0, 0, 1)
	field.Set(1, 1, 1)
	// 中心值 0.5 高于 0.4，角 1、3 被分开
	segments := Isolines(mesh, field, 0.4)
	require.Len(t, segments, 2)
	for _, s := range segments {
		assert.True(t, s.X1 == 0.4 || s.X1 == 1 || s.X1 == 0.6 || s.X1 == 0, "%+v", s)
	}
	assert.Len(t, Isolines(mesh, field, 0.6), 2)
}

func TestContoursWavefunction(t *testing.T) {
	res := testResult(t, 60)
	contours := Contours(res.Mesh, res.Psi, 10)
	require.Len(t, contours, 10)
	for i, c := range contours {
		assert.NotEmpty(t, c.Segments, "level %d", i)
		if i > 0 {
			assert.Greater(t, c.Level, contours[i-1].Level)
		}
	}
}

func TestFigureRender(t *testing.T) {
	res := testResult(t, 40)
	figures := Figures(res)
	require.Len(t, figures, len(FigureNames))

	images, err := RenderAll(figures, 320, 240, DefaultView)
	require.NoError(t, err)
	for _, name := range FigureNames {
		img := images[name]
		require.NotNil(t, img, name)
		assert.Equal(t, image.Rect(0, 0, 320, 240), img.Bounds())

		dark := 0
		for y := 0; y < 240; y++ {
			for x := 0; x < 320; x++ {
				if img.RGBAAt(x, y).R < 128 {
					dark++
				}
			}
		}
		assert.Greater(t, dark, 100, name)
	}

	_, err = figures[FigureWavefunction].Render(50, 50, DefaultView)
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	res := testResult(t, 20)
	img, err := Contour3D("psi", "psi", res.Mesh, res.Psi, 5).Render(200, 160, DefaultView)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "psi.png")
	require.NoError(t, SavePNG(path, img))

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestProfile(t *testing.T) {
	res := testResult(t, 50)
	var buf bytes.Buffer
	err := Profile(&buf, "diagonal", "x", "psi", res.Mesh.X, res.Psi.Diagonal(), 400, 300)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)

	assert.Error(t, Profile(&buf, "bad", "x", "y", []float64{1, 2}, []float64{1}, 400, 300))
}

func TestTerminal(t *testing.T) {
	res := testResult(t, 200)
	out := Terminal("psi diagonal", res.Psi.Diagonal())
	assert.Contains(t, out, "psi diagonal")
	assert.Greater(t, len(strings.Split(out, "\n")), 10)
}

func TestSpin(t *testing.T) {
	res := testResult(t, 20)
	f := Contour3D("psi", "psi", res.Mesh, res.Psi, 4)

	var buf bytes.Buffer
	require.NoError(t, Spin(&buf, f, 160, 140, DefaultView, 3))
	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 3)

	assert.Error(t, Spin(&buf, f, 160, 140, DefaultView, 0))
}
