package render

import (
	"wellplot/calculator"
)

type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Contour 某一层级的等值线
type Contour struct {
	Level    float64
	Segments []Segment
}

// LevelValues spreads n levels evenly strictly inside (min, max).
func LevelValues(min, max float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	res := make([]float64, n)
	step := (max - min) / float64(n+1)
	for k := range res {
		res[k] = min + step*float64(k+1)
	}
	return res
}

// 每个单元格的四个角：0 左下，1 右下，2 右上，3 左上
// 四条边：0 下，1 右，2 上，3 左
var edgeTable = [16][][2]int{
	{},
	{{3, 0}},
	{{0, 1}},
	{{3, 1}},
	{{1, 2}},
	nil, // 鞍点
	{{0, 2}},
	{{3, 2}},
	{{2, 3}},
	{{0, 2}},
	nil, // 鞍点
	{{1, 2}},
	{{1, 3}},
	{{0, 1}},
	{{0, 3}},
	{},
}

// Isolines traces the level set field == level with marching squares.
// Segment endpoints are in mesh coordinates.
func Isolines(mesh *calculator.Mesh, field *calculator.Field, level float64) []Segment {
	var res []Segment
	for row := 0; row+1 < field.Rows(); row++ {
		lower, upper := field.Row(row), field.Row(row+1)
		for col := 0; col+1 < field.Cols(); col++ {
			v := [4]float64{lower[col], lower[col+1], upper[col+1], upper[col]}
			idx := 0
			for k := 0; k < 4; k++ {
				if v[k] >= level {
					idx |= 1 << k
				}
			}
			if idx == 0 || idx == 15 {
				continue
			}

			edges := edgeTable[idx]
			if edges == nil {
				center := (v[0] + v[1] + v[2] + v[3]) / 4
				edges = saddle(idx, center >= level)
			}

			x0, x1 := mesh.X[col], mesh.X[col+1]
			y0, y1 := mesh.Y[row], mesh.Y[row+1]
			for _, e := range edges {
				ax, ay := edgePoint(e[0], v, level, x0, x1, y0, y1)
				bx, by := edgePoint(e[1], v, level, x0, x1, y0, y1)
				res = append(res, Segment{X1: ax, Y1: ay, X2: bx, Y2: by})
			}
		}
	}
	return res
}

func saddle(idx int, centerAbove bool) [][2]int {
	// 5: 角 0、2 在上方；10: 角 1、3 在上方
	if idx == 5 {
		if centerAbove {
			return [][2]int{{0, 1}, {2, 3}}
		}
		return [][2]int{{3, 0}, {1, 2}}
	}
	if centerAbove {
		return [][2]int{{3, 0}, {1, 2}}
	}
	return [][2]int{{0, 1}, {2, 3}}
}

// edgePoint 在单元格某条边上线性插值
func edgePoint(edge int, v [4]float64, level, x0, x1, y0, y1 float64) (x, y float64) {
	switch edge {
	case 0:
		return x0 + (x1-x0)*fraction(v[0], v[1], level), y0
	case 1:
		return x1, y0 + (y1-y0)*fraction(v[1], v[2], level)
	case 2:
		return x1 - (x1-x0)*fraction(v[2], v[3], level), y1
	default:
		return x0, y1 - (y1-y0)*fraction(v[3], v[0], level)
	}
}

func fraction(a, b, level float64) float64 {
	if a == b {
		return 0.5
	}
	return (level - a) / (b - a)
}

// Contours traces n evenly spaced levels of field.
func Contours(mesh *calculator.Mesh, field *calculator.Field, n int) []Contour {
	min, max := field.Bounds()
	levels := LevelValues(min, max, n)
	res := make([]Contour, 0, len(levels))
	for _, level := range levels {
		res = append(res, Contour{Level: level, Segments: Isolines(mesh, field, level)})
	}
	return res
}
