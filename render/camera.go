package render

import (
	"math"

	"wellplot/model"
)

// Camera is an orthographic view of the unit cube [-0.5, 0.5]^3, oriented
// by azimuth (rotation about z) and elevation (tilt above the xy plane).
type Camera struct {
	right [3]float64
	up    [3]float64
	eye   [3]float64

	scale  float64
	offset [2]float64
}

// DefaultView 常见绘图库三维坐标轴的默认视角
var DefaultView = model.View{Azimuth: -60, Elevation: 30}

func NewCamera(view model.View) *Camera {
	a := view.Azimuth * math.Pi / 180
	e := view.Elevation * math.Pi / 180
	return &Camera{
		right: [3]float64{-math.Sin(a), math.Cos(a), 0},
		up:    [3]float64{-math.Sin(e) * math.Cos(a), -math.Sin(e) * math.Sin(a), math.Cos(e)},
		eye:   [3]float64{math.Cos(e) * math.Cos(a), math.Cos(e) * math.Sin(a), math.Sin(e)},
		scale: 1,
	}
}

// view 投影到视平面，未缩放
func (c *Camera) view(p [3]float64) (u, v float64) {
	u = p[0]*c.right[0] + p[1]*c.right[1] + p[2]*c.right[2]
	v = p[0]*c.up[0] + p[1]*c.up[1] + p[2]*c.up[2]
	return u, v
}

// Depth grows towards the viewer.
func (c *Camera) Depth(p [3]float64) float64 {
	return p[0]*c.eye[0] + p[1]*c.eye[1] + p[2]*c.eye[2]
}

// Fit scales and centers the projected cube inside the pixel rectangle
// [x0, x1] x [y0, y1].
func (c *Camera) Fit(x0, y0, x1, y1 float64) {
	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)
	for _, p := range cubeCorners() {
		u, v := c.view(p)
		minU, maxU = math.Min(minU, u), math.Max(maxU, u)
		minV, maxV = math.Min(minV, v), math.Max(maxV, v)
	}
	c.scale = math.Min((x1-x0)/(maxU-minU), (y1-y0)/(maxV-minV))
	c.offset[0] = (x0+x1)/2 - c.scale*(minU+maxU)/2
	c.offset[1] = (y0+y1)/2 + c.scale*(minV+maxV)/2
}

// Project maps a point of the unit cube to pixel coordinates, y pointing down.
func (c *Camera) Project(p [3]float64) (x, y float64) {
	u, v := c.view(p)
	return c.offset[0] + c.scale*u, c.offset[1] - c.scale*v
}

func cubeCorners() [8][3]float64 {
	var res [8][3]float64
	for i := 0; i < 8; i++ {
		res[i] = [3]float64{
			float64(i&1) - 0.5,
			float64(i>>1&1) - 0.5,
			float64(i>>2&1) - 0.5,
		}
	}
	return res
}
