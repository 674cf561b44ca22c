package calculator

import (
	"time"

	log "github.com/sirupsen/logrus"

	"wellplot/model"
)

// Result 一次计算的全部结果
type Result struct {
	Params model.Params
	Mesh   *Mesh
	Psi    *Field // 波函数
	Prob   *Field // 概率密度
}

type Calculator struct {
	params  model.Params
	workers int
	well    *Well
}

func NewCalculator(params model.Params, workers int) (*Calculator, error) {
	if err := ValidateParams(params); err != nil {
		return nil, err
	}
	well, err := NewWell(params.WidthX, params.WidthY)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	log.WithFields(log.Fields{
		"WidthX": params.WidthX,
		"WidthY": params.WidthY,
		"N":      params.N,
		"Ax":     well.NormalizationX(),
		"Ay":     well.NormalizationY(),
	}).Info("设置势阱参数")
	return &Calculator{
		params:  params,
		workers: workers,
		well:    well,
	}, nil
}

func (c *Calculator) Well() *Well { return c.well }

func (c *Calculator) Params() model.Params { return c.params }

// Run 在均匀网格上计算波函数和概率密度
func (c *Calculator) Run() *Result {
	start := time.Now()
	mesh := NewUnitMesh(c.params.Samples)
	psi := Evaluate(mesh, c.well.WavefunctionOf(c.params.N), c.workers)
	prob := psi.Map(func(v float64) float64 { return v * v })

	min, max := psi.Bounds()
	log.WithFields(log.Fields{
		"rows":    psi.Rows(),
		"cols":    psi.Cols(),
		"psi_min": min,
		"psi_max": max,
		"cost":    time.Since(start),
	}).Info("场计算完成")

	return &Result{
		Params: c.params,
		Mesh:   mesh,
		Psi:    psi,
		Prob:   prob,
	}
}
