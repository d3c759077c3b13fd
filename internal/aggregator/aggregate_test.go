package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nbametrics/internal/model"
)

const tolerance = 1e-9

func pointsLog(points ...float64) model.SeasonLog {
	log := make(model.SeasonLog, len(points))
	for i, p := range points {
		log[i] = model.GameRecord{Points: p}
	}
	return log
}

func TestSummarize_HandComputed(t *testing.T) {
	// Five games: 10, 20, 30, 40, 50 points.
	// mean = 30; sample variance = (400+100+0+100+400)/4 = 250; stddev = sqrt(250).
	sum, err := Summarize(pointsLog(10, 20, 30, 40, 50), []model.StatField{model.FieldPoints})
	require.NoError(t, err)

	fs := sum.PerField[model.FieldPoints]
	assert.InDelta(t, 30.0, fs.Mean, tolerance)
	assert.InDelta(t, 15.811388300841896, fs.StdDev, tolerance) // sqrt(250)
	assert.InDelta(t, 100*15.811388300841896/30.0, fs.CV, tolerance)
	assert.Equal(t, 5, sum.Games)
}

func TestSummarize_SingleGameStdDevIsZero(t *testing.T) {
	sum, err := Summarize(pointsLog(23), []model.StatField{model.FieldPoints})
	require.NoError(t, err)

	fs := sum.PerField[model.FieldPoints]
	assert.InDelta(t, 23.0, fs.Mean, tolerance)
	assert.Zero(t, fs.StdDev)
	assert.Zero(t, fs.CV)
}

func TestSummarize_ZeroMeanCV(t *testing.T) {
	// A field whose every value is 0 reports CV 0 instead of dividing by zero.
	sum, err := Summarize(pointsLog(0, 0, 0, 0), []model.StatField{model.FieldPoints})
	require.NoError(t, err)

	fs := sum.PerField[model.FieldPoints]
	assert.Zero(t, fs.Mean)
	assert.Zero(t, fs.StdDev)
	assert.Zero(t, fs.CV)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil, nil)
	assert.ErrorIs(t, err, model.ErrNoGames)
}

func TestSummarize_DefaultFields(t *testing.T) {
	games := model.SeasonLog{
		{Points: 20, Rebounds: 10, Assists: 5, Blocks: 1, Steals: 2, ThreesMade: 3},
		{Points: 30, Rebounds: 8, Assists: 7, Blocks: 0, Steals: 1, ThreesMade: 5},
	}
	sum, err := Summarize(games, nil)
	require.NoError(t, err)

	require.Equal(t, model.DefaultFields(), sum.Fields)
	assert.InDelta(t, 25.0, sum.PerField[model.FieldPoints].Mean, tolerance)
	assert.InDelta(t, 9.0, sum.PerField[model.FieldRebounds].Mean, tolerance)
	assert.InDelta(t, 6.0, sum.PerField[model.FieldAssists].Mean, tolerance)
	assert.InDelta(t, 4.0, sum.PerField[model.FieldThreesMade].Mean, tolerance)
}
