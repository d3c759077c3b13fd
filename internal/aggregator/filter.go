// Package aggregator computes descriptive statistics and quartile breakdowns
// over a player's game log. All functions are pure: they never mutate their
// input and hold no state between calls.
package aggregator

import (
	"strings"

	"github.com/courtside/nbametrics/internal/model"
)

// FilterByOpponent returns the games played against the team with the given
// abbreviation, in original order. The matchup string encodes both teams
// ("LAL vs. GSW", "LAL @ GSW"), so case-insensitive substring containment is
// the entire matching rule.
//
// Returns model.ErrNoGames when no game matches; callers wrap it with the
// season context so the empty filter can be diagnosed.
func FilterByOpponent(games model.SeasonLog, opponentAbbr string) (model.SeasonLog, error) {
	needle := strings.ToLower(opponentAbbr)
	var out model.SeasonLog
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Matchup), needle) {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return nil, model.ErrNoGames
	}
	return out, nil
}
