package calculator

import (
	"time"

	log "github.com/sirupsen/logrus"

	"wellplot/model"
)

// BuildData 按步长对场降采样，用于推送给前端
func BuildData(field *Field, step int) model.FieldData {
	if step < 1 {
		step = 1
	}
	startTime := time.Now()
	rows := (field.Rows() + step - 1) / step
	cols := (field.Cols() + step - 1) / step

	data := make([][]float64, rows)
	for y := 0; y < field.Rows(); y += step {
		line := make([]float64, cols)
		for x := 0; x < field.Cols(); x += step {
			line[x/step] = field.At(y, x)
		}
		data[y/step] = line
	}

	min, max := field.Bounds()
	log.WithFields(log.Fields{
		"rows": rows,
		"cols": cols,
		"cost": time.Since(startTime),
	}).Debug("build data")
	return model.FieldData{
		Rows: rows,
		Cols: cols,
		Min:  min,
		Max:  max,
		Data: data,
	}
}

// BuildPushData 组装一次完整推送
func BuildPushData(res *Result, view model.View, step int, figures []string) model.PushData {
	psiLevels := Quantize(res.Psi, res.Params.Levels)
	probLevels := Quantize(res.Prob, res.Params.Levels)
	return model.PushData{
		Params:     res.Params,
		View:       view,
		Step:       step,
		Psi:        BuildData(res.Psi, step),
		Prob:       BuildData(res.Prob, step),
		PsiLevels:  Encode(Downsample(psiLevels, res.Psi.Cols(), step)),
		ProbLevels: Encode(Downsample(probLevels, res.Prob.Cols(), step)),
		Figures:    figures,
	}
}
