package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)

	xs = Linspace(0, 1, 1000)
	require.Len(t, xs, 1000)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 1.0, xs[999])
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}
}

func TestMesh(t *testing.T) {
	m := NewMesh([]float64{0, 1, 2}, []float64{10, 20})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	x, y := m.Point(1, 2)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 20.0, y)
}

func TestFieldAccessors(t *testing.T) {
	f := NewField(2, 3)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			f.Set(row, col, float64(row*10+col))
		}
	}
	assert.Equal(t, []float64{10, 11, 12}, f.Row(1))
	assert.Equal(t, []float64{2, 12}, f.Column(2))
	assert.Equal(t, []float64{0, 11}, f.Diagonal())

	min, max := f.Bounds()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 12.0, max)

	sq := f.Map(func(v float64) float64 { return v * v })
	assert.Equal(t, 144.0, sq.At(1, 2))
	assert.Equal(t, 12.0, f.At(1, 2))
}

func TestEvaluateLargeGrid(t *testing.T) {
	w, err := NewWell(1, 1)
	require.NoError(t, err)
	mesh := NewUnitMesh(1000)

	psi := Evaluate(mesh, w.WavefunctionOf(8), 1)
	require.Equal(t, 1000, psi.Rows())
	require.Equal(t, 1000, psi.Cols())
	assert.False(t, psi.HasNonFinite())

	prob := Evaluate(mesh, w.ProbabilityDensityOf(8), 1)
	assert.False(t, prob.HasNonFinite())
	min, max := prob.Bounds()
	assert.GreaterOrEqual(t, min, 0.0)
	assert.LessOrEqual(t, max, 4+1e-9)

	x, y := mesh.Point(123, 456)
	assert.Equal(t, w.Wavefunction(x, y, 8), psi.At(123, 456))
}

// 计算结果与 worker 数量无关
func TestEvaluateWorkersAgree(t *testing.T) {
	w, err := NewWell(1, 1)
	require.NoError(t, err)
	mesh := NewUnitMesh(97)

	single := Evaluate(mesh, w.WavefunctionOf(3), 1)
	for _, workers := range []int{2, 4, 7, 200} {
		multi := Evaluate(mesh, w.WavefunctionOf(3), workers)
		assert.Equal(t, single.data, multi.data, "workers %d", workers)
	}
}

func TestHasNonFinite(t *testing.T) {
	mesh := NewUnitMesh(3)
	f := Evaluate(mesh, func(x, y float64) float64 { return 1 / x }, 1)
	assert.True(t, f.HasNonFinite())
}
