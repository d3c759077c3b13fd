package model

import "strings"

// StatField identifies one numeric per-game statistic tracked by the
// aggregation pipeline.
type StatField string

const (
	FieldPoints     StatField = "points"
	FieldRebounds   StatField = "rebounds"
	FieldAssists    StatField = "assists"
	FieldBlocks     StatField = "blocks"
	FieldSteals     StatField = "steals"
	FieldThreesMade StatField = "3pt"
)

// DefaultFields returns the stat fields summarized by default, in display order.
func DefaultFields() []StatField {
	return []StatField{
		FieldPoints, FieldRebounds, FieldAssists,
		FieldBlocks, FieldSteals, FieldThreesMade,
	}
}

// Label returns a human-readable column label for the field.
func (f StatField) Label() string {
	switch f {
	case FieldPoints:
		return "Points"
	case FieldRebounds:
		return "Rebounds"
	case FieldAssists:
		return "Assists"
	case FieldBlocks:
		return "Blocks"
	case FieldSteals:
		return "Steals"
	case FieldThreesMade:
		return "3PT Made"
	default:
		return string(f)
	}
}

// PlayerIdentity is one canonical player from the roster source.
type PlayerIdentity struct {
	ID       string // stats.nba.com person ID
	FullName string
	Team     string // current team abbreviation, may be empty for inactive players
}

// TeamIdentity is one canonical NBA franchise.
type TeamIdentity struct {
	Abbreviation string // 3 letters, unique
	FullName     string
	Nickname     string
}

// GameRecord is a single box-score row from a player's game log.
// Produced by the provider; read-only to the aggregation pipeline.
type GameRecord struct {
	GameID  string
	Date    string // as delivered, e.g. "APR 09, 2024"
	Matchup string // "LAL vs. GSW" (home) or "LAL @ GSW" (away)
	WinLoss string // "W" or "L"
	Minutes float64

	Points    float64
	Rebounds  float64
	Assists   float64
	Steals    float64
	Blocks    float64
	Turnovers float64

	FGMade          float64
	FGAttempted     float64
	FGPct           float64
	ThreesMade      float64
	ThreesAttempted float64
	ThreesPct       float64
	FTMade          float64
	FTAttempted     float64
	FTPct           float64

	PlusMinus float64
}

// Value returns the game's value for the given stat field.
func (g *GameRecord) Value(f StatField) float64 {
	switch f {
	case FieldPoints:
		return g.Points
	case FieldRebounds:
		return g.Rebounds
	case FieldAssists:
		return g.Assists
	case FieldBlocks:
		return g.Blocks
	case FieldSteals:
		return g.Steals
	case FieldThreesMade:
		return g.ThreesMade
	default:
		return 0
	}
}

// Home reports whether the game was played at home ("vs." in the matchup).
func (g *GameRecord) Home() bool {
	return strings.Contains(g.Matchup, "vs.")
}

// SeasonLog is a player's chronologically ordered game log for one season.
// Order is insertion order as delivered by the provider.
type SeasonLog []GameRecord

// Wins counts games with a "W" result.
func (l SeasonLog) Wins() int {
	n := 0
	for i := range l {
		if l[i].WinLoss == "W" {
			n++
		}
	}
	return n
}

// Losses counts games with an "L" result.
func (l SeasonLog) Losses() int {
	n := 0
	for i := range l {
		if l[i].WinLoss == "L" {
			n++
		}
	}
	return n
}

// HomeGames counts games played at home.
func (l SeasonLog) HomeGames() int {
	n := 0
	for i := range l {
		if l[i].Home() {
			n++
		}
	}
	return n
}

// AwayGames counts games played on the road.
func (l SeasonLog) AwayGames() int {
	return len(l) - l.HomeGames()
}

// FieldSummary holds the descriptive statistics for one stat field.
// CV is the coefficient of variation: 100 * (stddev / mean), defined as 0
// when the mean is 0.
type FieldSummary struct {
	Mean   float64
	StdDev float64
	CV     float64
}

// StatSummary holds per-field descriptive statistics over a set of games.
type StatSummary struct {
	Games    int
	Fields   []StatField // display order
	PerField map[StatField]FieldSummary
}

// FieldPercentiles holds the quartile breakdown for one stat field.
// P100 is equivalent to the maximum.
type FieldPercentiles struct {
	P25, P50, P75, P100 float64
}

// PercentileSummary holds per-field quartiles over a set of games, plus the
// raw per-game values (in original game order) for downstream presentation.
type PercentileSummary struct {
	Games    int
	Fields   []StatField
	PerField map[StatField]FieldPercentiles
	Raw      map[StatField][]float64
}
