package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nbametrics/internal/model"
)

func TestPercentiles_LinearInterpolation(t *testing.T) {
	sum, err := Percentiles(pointsLog(10, 20, 30, 40), []model.StatField{model.FieldPoints})
	require.NoError(t, err)

	p := sum.PerField[model.FieldPoints]
	assert.InDelta(t, 17.5, p.P25, tolerance)
	assert.InDelta(t, 25.0, p.P50, tolerance)
	assert.InDelta(t, 32.5, p.P75, tolerance)
	assert.InDelta(t, 40.0, p.P100, tolerance)
}

func TestPercentiles_UnsortedInput(t *testing.T) {
	sum, err := Percentiles(pointsLog(40, 10, 30, 20), []model.StatField{model.FieldPoints})
	require.NoError(t, err)

	p := sum.PerField[model.FieldPoints]
	assert.InDelta(t, 25.0, p.P50, tolerance)
	assert.InDelta(t, 40.0, p.P100, tolerance)

	// Raw values stay in original game order for presentation layers.
	assert.Equal(t, []float64{40, 10, 30, 20}, sum.Raw[model.FieldPoints])
}

func TestPercentiles_SingleGame(t *testing.T) {
	sum, err := Percentiles(pointsLog(31), []model.StatField{model.FieldPoints})
	require.NoError(t, err)

	p := sum.PerField[model.FieldPoints]
	assert.Equal(t, model.FieldPercentiles{P25: 31, P50: 31, P75: 31, P100: 31}, p)
}

func TestPercentiles_Empty(t *testing.T) {
	_, err := Percentiles(model.SeasonLog{}, nil)
	assert.ErrorIs(t, err, model.ErrNoGames)
}

func TestPercentiles_DoesNotMutateInput(t *testing.T) {
	games := pointsLog(40, 10, 30, 20)
	_, err := Percentiles(games, []model.StatField{model.FieldPoints})
	require.NoError(t, err)
	assert.Equal(t, pointsLog(40, 10, 30, 20), games)
}
