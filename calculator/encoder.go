package calculator

import (
	"math"

	"wellplot/model"
)

// 编码要求相邻层级差值可用 int8 表示
const MaxLevels = 128

// Quantize maps every value of field to the index of its contour band,
// 0..levels-1, with levels bands spread evenly between the field's bounds.
// A constant field maps to band 0.
func Quantize(field *Field, levels int) []int {
	if levels < 1 {
		levels = 1
	}
	res := make([]int, len(field.data))
	min, max := field.Bounds()
	span := max - min
	if span == 0 {
		return res
	}
	for i, v := range field.data {
		level := int(math.Floor((v - min) / span * float64(levels)))
		if level >= levels {
			level = levels - 1
		}
		if level < 0 {
			level = 0
		}
		res[i] = level
	}
	return res
}

// Downsample 对行主序数据按步长取样
func Downsample(data []int, cols, step int) []int {
	if step <= 1 {
		return data
	}
	rows := len(data) / cols
	res := make([]int, 0, ((rows+step-1)/step)*((cols+step-1)/step))
	for y := 0; y < rows; y += step {
		for x := 0; x < cols; x += step {
			res = append(res, data[y*cols+x])
		}
	}
	return res
}

// Encode 差分编码，层级数不超过 MaxLevels 时相邻差值在 int8 范围内
func Encode(data []int) model.EncodedField {
	if len(data) == 0 {
		return model.EncodedField{}
	}
	res := make([]int8, 0, len(data)-1)
	pre := data[0]
	for _, v := range data[1:] {
		res = append(res, int8(v-pre))
		pre = v
	}
	return model.EncodedField{Start: data[0], Count: len(data), Data: res}
}

func Decode(src model.EncodedField) []int {
	if src.Count == 0 {
		return nil
	}
	res := make([]int, 0, src.Count)
	start := src.Start
	res = append(res, start)
	for i := 0; i < len(src.Data); i++ {
		start = start + int(src.Data[i])
		res = append(res, start)
	}
	return res
}
