package calculator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellplot/model"
)

func TestBuildData(t *testing.T) {
	f := NewField(5, 7)
	for row := 0; row < 5; row++ {
		for col := 0; col < 7; col++ {
			f.Set(row, col, float64(row*100+col))
		}
	}
	data := BuildData(f, 3)
	assert.Equal(t, 2, data.Rows)
	assert.Equal(t, 3, data.Cols)
	assert.Equal(t, [][]float64{{0, 3, 6}, {300, 303, 306}}, data.Data)
	assert.Equal(t, 0.0, data.Min)
	assert.Equal(t, 406.0, data.Max)
}

func TestBuildPushData(t *testing.T) {
	params := model.Params{WidthX: 1, WidthY: 1, N: 8, Samples: 100, Levels: 50}
	c, err := NewCalculator(params, 2)
	require.NoError(t, err)
	res := c.Run()

	push := BuildPushData(res, model.View{Azimuth: -60, Elevation: 30}, 10, []string{"wavefunction"})
	assert.Equal(t, params, push.Params)
	assert.Equal(t, 10, push.Psi.Rows)
	assert.Equal(t, 10, push.Prob.Cols)
	assert.Equal(t, 100, push.PsiLevels.Count)
	assert.Len(t, Decode(push.ProbLevels), 100)

	_, err = json.Marshal(push)
	assert.NoError(t, err)
}
