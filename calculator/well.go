package calculator

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidWidth         = errors.New("well width must be positive")
	ErrInvalidQuantumNumber = errors.New("quantum number must be at least 1")
	ErrInvalidSamples       = errors.New("grid needs at least 2 samples per axis")
	ErrInvalidLevels        = errors.New("contour levels must be between 1 and 128")
)

// Well is a two-dimensional rectangular infinite potential well with
// precomputed normalization constants.
type Well struct {
	WidthX float64
	WidthY float64

	ax float64 // x 方向归一化常数
	ay float64 // y 方向归一化常数
}

// Normalization returns sqrt(2/width), the constant that normalizes one
// component of the separable solution over [0, width].
func Normalization(width float64) float64 {
	return math.Sqrt(2 / width)
}

func NewWell(widthX, widthY float64) (*Well, error) {
	if !(widthX > 0) || !(widthY > 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidWidth, widthX, widthY)
	}
	return &Well{
		WidthX: widthX,
		WidthY: widthY,
		ax:     Normalization(widthX),
		ay:     Normalization(widthY),
	}, nil
}

func (w *Well) NormalizationX() float64 { return w.ax }

func (w *Well) NormalizationY() float64 { return w.ay }

// Wavefunction evaluates the analytic solution at (x, y) for state n.
// The point is not range-checked.
func (w *Well) Wavefunction(x, y float64, n int) float64 {
	fn := float64(n)
	return (w.ax * w.ay) * math.Sin(x*fn*math.Pi/w.WidthX) * math.Sin(y*fn*math.Pi/w.WidthY)
}

// ProbabilityDensity returns the squared wavefunction at (x, y).
func (w *Well) ProbabilityDensity(x, y float64, n int) float64 {
	psi := w.Wavefunction(x, y, n)
	return psi * psi
}

// 固定量子数的场函数，供网格计算使用
func (w *Well) WavefunctionOf(n int) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		return w.Wavefunction(x, y, n)
	}
}

func (w *Well) ProbabilityDensityOf(n int) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		return w.ProbabilityDensity(x, y, n)
	}
}
