package calculator

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns num evenly spaced samples over [start, end], endpoints
// included. num must be at least 2.
func Linspace(start, end float64, num int) []float64 {
	xs := floats.Span(make([]float64, num), start, end)
	xs[num-1] = end
	return xs
}

// Mesh 二维坐标网格，行对应 y，列对应 x
type Mesh struct {
	X []float64
	Y []float64
}

func NewMesh(xs, ys []float64) *Mesh {
	return &Mesh{X: xs, Y: ys}
}

// 单位正方形上的均匀网格
func NewUnitMesh(samples int) *Mesh {
	return NewMesh(Linspace(0, 1, samples), Linspace(0, 1, samples))
}

func (m *Mesh) Rows() int { return len(m.Y) }

func (m *Mesh) Cols() int { return len(m.X) }

// Point 返回网格点 [row][col] 的坐标
func (m *Mesh) Point(row, col int) (x, y float64) {
	return m.X[col], m.Y[row]
}

// Field is a row-major 2D array of values sampled on a Mesh.
type Field struct {
	rows int
	cols int
	data []float64
}

func NewField(rows, cols int) *Field {
	return &Field{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

func (f *Field) Rows() int { return f.rows }

func (f *Field) Cols() int { return f.cols }

func (f *Field) At(row, col int) float64 {
	return f.data[row*f.cols+col]
}

func (f *Field) Set(row, col int, v float64) {
	f.data[row*f.cols+col] = v
}

// Row 返回一行的视图，不拷贝
func (f *Field) Row(row int) []float64 {
	return f.data[row*f.cols : (row+1)*f.cols]
}

func (f *Field) Column(col int) []float64 {
	res := make([]float64, f.rows)
	for row := 0; row < f.rows; row++ {
		res[row] = f.At(row, col)
	}
	return res
}

// Diagonal 主对角线，非方阵时取较短边
func (f *Field) Diagonal() []float64 {
	n := f.rows
	if f.cols < n {
		n = f.cols
	}
	res := make([]float64, n)
	for i := 0; i < n; i++ {
		res[i] = f.At(i, i)
	}
	return res
}

// Bounds returns the smallest and largest value in the field.
func (f *Field) Bounds() (min, max float64) {
	if len(f.data) == 0 {
		return 0, 0
	}
	return floats.Min(f.data), floats.Max(f.data)
}

func (f *Field) HasNonFinite() bool {
	for _, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// Map 逐元素变换，返回新的场
func (f *Field) Map(fn func(v float64) float64) *Field {
	res := NewField(f.rows, f.cols)
	for i, v := range f.data {
		res.data[i] = fn(v)
	}
	return res
}

// Evaluate samples fn at every point of mesh. Rows are handed out to the
// executor; every cell is written by exactly one task, so the result does
// not depend on the number of workers.
func Evaluate(mesh *Mesh, fn func(x, y float64) float64, workers int) *Field {
	field := NewField(mesh.Rows(), mesh.Cols())
	e := newExecutor(workers, func(t task) {
		for row := t.start; row < t.end; row++ {
			y := mesh.Y[row]
			values := field.Row(row)
			for col, x := range mesh.X {
				values[col] = fn(x, y)
			}
		}
	})
	e.dispatchTask(0, mesh.Rows())
	e.stop()
	return field
}
