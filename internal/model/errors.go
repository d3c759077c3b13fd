package model

import (
	"errors"
	"fmt"
)

// ErrNoGames marks an empty game set handed to a component that must
// summarize it. Callers with more context wrap it in a NoDataError.
var ErrNoGames = errors.New("no games to summarize")

// NoDataError reports that a (player, season) query — optionally narrowed to
// one opponent — produced zero games.
type NoDataError struct {
	Player   string
	Season   string
	Opponent string // empty when the whole season was empty
	// Played is the number of games the player actually played that season.
	// Only meaningful when Opponent is set; it lets the caller see why the
	// opponent filter came up empty.
	Played int
}

func (e *NoDataError) Error() string {
	if e.Opponent != "" {
		return fmt.Sprintf("no games found for %s vs %s in %s season (%d games played)",
			e.Player, e.Opponent, e.Season, e.Played)
	}
	return fmt.Sprintf("no games found for %s in %s season", e.Player, e.Season)
}

func (e *NoDataError) Unwrap() error { return ErrNoGames }
