package aggregator

import (
	"math"
	"sort"

	"github.com/courtside/nbametrics/internal/model"
)

// Percentiles computes the 25th/50th/75th/100th percentile for each field
// across all games, using linear interpolation between adjacent ranks. The
// raw per-game values are retained in original game order for presentation
// layers (e.g. scatter overlays on a box plot).
func Percentiles(games model.SeasonLog, fields []model.StatField) (*model.PercentileSummary, error) {
	if len(games) == 0 {
		return nil, model.ErrNoGames
	}
	if len(fields) == 0 {
		fields = model.DefaultFields()
	}

	sum := &model.PercentileSummary{
		Games:    len(games),
		Fields:   fields,
		PerField: make(map[model.StatField]model.FieldPercentiles, len(fields)),
		Raw:      make(map[model.StatField][]float64, len(fields)),
	}
	for _, f := range fields {
		raw := make([]float64, len(games))
		for i := range games {
			raw[i] = games[i].Value(f)
		}
		sorted := make([]float64, len(raw))
		copy(sorted, raw)
		sort.Float64s(sorted)

		sum.Raw[f] = raw
		sum.PerField[f] = model.FieldPercentiles{
			P25:  interpolate(sorted, 25),
			P50:  interpolate(sorted, 50),
			P75:  interpolate(sorted, 75),
			P100: interpolate(sorted, 100),
		}
	}
	return sum, nil
}

// interpolate returns the q-th percentile of sorted (ascending) values with
// linear interpolation: the value at rank q/100*(n-1), blended between the
// two nearest samples.
func interpolate(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := q / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
