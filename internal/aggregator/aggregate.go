package aggregator

import (
	"math"

	"github.com/courtside/nbametrics/internal/model"
)

// Summarize computes mean, standard deviation, and coefficient of variation
// for each field across all games. Standard deviation uses the sample (n-1)
// convention and is defined as 0 for a single game. CV is 100 * stddev/mean,
// with an explicit 0 when the mean is 0 so an all-zero field reads as
// non-variable instead of erroring.
func Summarize(games model.SeasonLog, fields []model.StatField) (*model.StatSummary, error) {
	if len(games) == 0 {
		return nil, model.ErrNoGames
	}
	if len(fields) == 0 {
		fields = model.DefaultFields()
	}

	sum := &model.StatSummary{
		Games:    len(games),
		Fields:   fields,
		PerField: make(map[model.StatField]model.FieldSummary, len(fields)),
	}
	for _, f := range fields {
		mean := fieldMean(games, f)
		std := fieldStdDev(games, f, mean)
		cv := 0.0
		if mean != 0 {
			cv = 100 * std / mean
		}
		sum.PerField[f] = model.FieldSummary{Mean: mean, StdDev: std, CV: cv}
	}
	return sum, nil
}

func fieldMean(games model.SeasonLog, f model.StatField) float64 {
	total := 0.0
	for i := range games {
		total += games[i].Value(f)
	}
	return total / float64(len(games))
}

func fieldStdDev(games model.SeasonLog, f model.StatField, mean float64) float64 {
	n := len(games)
	if n < 2 {
		return 0
	}
	ss := 0.0
	for i := range games {
		d := games[i].Value(f) - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}
