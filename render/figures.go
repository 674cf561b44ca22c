package render

import (
	"fmt"
	"image"

	"wellplot/calculator"
	"wellplot/model"
)

const (
	FigureWavefunction = "wavefunction"
	FigureProbability  = "probability"
)

// FigureNames 输出顺序固定：先波函数，后概率密度
var FigureNames = []string{FigureWavefunction, FigureProbability}

// Figures traces both plots of a calculation result.
func Figures(res *calculator.Result) map[string]*Figure {
	levels := res.Params.Levels
	return map[string]*Figure{
		FigureWavefunction: Contour3D(
			fmt.Sprintf("Wavefunction, n = %d", res.Params.N), "psi", res.Mesh, res.Psi, levels),
		FigureProbability: Contour3D(
			fmt.Sprintf("Probability density, n = %d", res.Params.N), "|psi|^2", res.Mesh, res.Prob, levels),
	}
}

// RenderAll 以同一视角渲染所有图
func RenderAll(figures map[string]*Figure, width, height int, view model.View) (map[string]*image.RGBA, error) {
	res := make(map[string]*image.RGBA, len(figures))
	for name, f := range figures {
		img, err := f.Render(width, height, view)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		res[name] = img
	}
	return res, nil
}
