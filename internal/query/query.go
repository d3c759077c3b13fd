// Package query wires resolution, fetching, filtering, and aggregation into
// the caller-facing pipeline: (player text, season, optional opponent text)
// in, typed summaries out. It fails fast on the first unmet precondition and
// performs no retries; responsiveness concerns belong to the caller.
package query

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/courtside/nbametrics/internal/aggregator"
	"github.com/courtside/nbametrics/internal/model"
	"github.com/courtside/nbametrics/internal/roster"
)

// GameLogProvider is the external collaborator that serves per-game records.
// The production implementation is the stats.nba.com client.
type GameLogProvider interface {
	// PlayerGameLog returns the player's regular-season games for the season,
	// in the provider's chronological order. An empty log is a valid response.
	PlayerGameLog(ctx context.Context, playerID, season string) (model.SeasonLog, error)
	// AllPlayers returns the roster source used for name resolution.
	AllPlayers(ctx context.Context, season string) ([]model.PlayerIdentity, error)
}

var seasonPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Service runs stat queries against a game-log provider. It holds no
// cross-call state; independent queries may run concurrently.
type Service struct {
	provider GameLogProvider
	teams    *roster.TeamResolver
	fields   []model.StatField
}

// NewService builds a query service over the given provider, using the
// canonical NBA team table and the default stat fields.
func NewService(provider GameLogProvider) *Service {
	return &Service{
		provider: provider,
		teams:    roster.DefaultTeamResolver(),
		fields:   model.DefaultFields(),
	}
}

// SeasonStats is a player's descriptive statistics for one season, optionally
// restricted to games against one opponent.
type SeasonStats struct {
	Player   model.PlayerIdentity
	Season   string
	Opponent *model.TeamIdentity // nil for the full season
	Summary  *model.StatSummary
}

// SeasonPercentiles is the quartile counterpart of SeasonStats.
type SeasonPercentiles struct {
	Player      model.PlayerIdentity
	Season      string
	Opponent    *model.TeamIdentity
	Percentiles *model.PercentileSummary
}

// GameLogResult is a player's full game log for one season.
type GameLogResult struct {
	Player model.PlayerIdentity
	Season string
	Log    model.SeasonLog
}

// SeasonSummary computes mean/stddev/CV over every game of the season.
func (s *Service) SeasonSummary(ctx context.Context, playerName, season string) (*SeasonStats, error) {
	player, games, err := s.seasonGames(ctx, playerName, season)
	if err != nil {
		return nil, err
	}
	summary, err := aggregator.Summarize(games, s.fields)
	if err != nil {
		return nil, err
	}
	return &SeasonStats{Player: player, Season: season, Summary: summary}, nil
}

// VsTeamSummary computes mean/stddev/CV over the season's games against one
// opponent, resolved from a free-text team identifier.
func (s *Service) VsTeamSummary(ctx context.Context, playerName, season, opponent string) (*SeasonStats, error) {
	player, team, games, err := s.opponentGames(ctx, playerName, season, opponent)
	if err != nil {
		return nil, err
	}
	summary, err := aggregator.Summarize(games, s.fields)
	if err != nil {
		return nil, err
	}
	return &SeasonStats{Player: player, Season: season, Opponent: &team, Summary: summary}, nil
}

// SeasonPercentiles computes quartiles over every game of the season.
func (s *Service) SeasonPercentiles(ctx context.Context, playerName, season string) (*SeasonPercentiles, error) {
	player, games, err := s.seasonGames(ctx, playerName, season)
	if err != nil {
		return nil, err
	}
	pct, err := aggregator.Percentiles(games, s.fields)
	if err != nil {
		return nil, err
	}
	return &SeasonPercentiles{Player: player, Season: season, Percentiles: pct}, nil
}

// VsTeamPercentiles computes quartiles over the season's games against one opponent.
func (s *Service) VsTeamPercentiles(ctx context.Context, playerName, season, opponent string) (*SeasonPercentiles, error) {
	player, team, games, err := s.opponentGames(ctx, playerName, season, opponent)
	if err != nil {
		return nil, err
	}
	pct, err := aggregator.Percentiles(games, s.fields)
	if err != nil {
		return nil, err
	}
	return &SeasonPercentiles{Player: player, Season: season, Opponent: &team, Percentiles: pct}, nil
}

// GameLog fetches the season's full game log.
func (s *Service) GameLog(ctx context.Context, playerName, season string) (*GameLogResult, error) {
	player, games, err := s.seasonGames(ctx, playerName, season)
	if err != nil {
		return nil, err
	}
	return &GameLogResult{Player: player, Season: season, Log: games}, nil
}

// seasonGames resolves the player and fetches the season's games, converting
// an empty log into NoDataError.
func (s *Service) seasonGames(ctx context.Context, playerName, season string) (model.PlayerIdentity, model.SeasonLog, error) {
	if !seasonPattern.MatchString(season) {
		return model.PlayerIdentity{}, nil, fmt.Errorf("invalid season %q: want YYYY-YY, e.g. 2023-24", season)
	}

	directory, err := s.provider.AllPlayers(ctx, season)
	if err != nil {
		return model.PlayerIdentity{}, nil, fmt.Errorf("load player directory: %w", err)
	}
	player, err := roster.NewNameResolver(directory).Resolve(playerName)
	if err != nil {
		return model.PlayerIdentity{}, nil, err
	}

	games, err := s.provider.PlayerGameLog(ctx, player.ID, season)
	if err != nil {
		return model.PlayerIdentity{}, nil, fmt.Errorf("fetch game log: %w", err)
	}
	if len(games) == 0 {
		return model.PlayerIdentity{}, nil, &model.NoDataError{Player: player.FullName, Season: season}
	}
	return player, games, nil
}

// opponentGames is seasonGames narrowed to one opponent.
func (s *Service) opponentGames(ctx context.Context, playerName, season, opponent string) (model.PlayerIdentity, model.TeamIdentity, model.SeasonLog, error) {
	team, err := s.teams.Resolve(opponent)
	if err != nil {
		return model.PlayerIdentity{}, model.TeamIdentity{}, nil, err
	}
	player, games, err := s.seasonGames(ctx, playerName, season)
	if err != nil {
		return model.PlayerIdentity{}, model.TeamIdentity{}, nil, err
	}
	filtered, err := aggregator.FilterByOpponent(games, team.Abbreviation)
	if err != nil {
		if errors.Is(err, model.ErrNoGames) {
			err = &model.NoDataError{
				Player:   player.FullName,
				Season:   season,
				Opponent: team.FullName,
				Played:   len(games),
			}
		}
		return model.PlayerIdentity{}, model.TeamIdentity{}, nil, err
	}
	return player, team, filtered, nil
}
