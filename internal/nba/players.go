package nba

import (
	"context"
	"fmt"
	"net/url"

	"github.com/courtside/nbametrics/internal/model"
)

// AllPlayers fetches the league player directory, including historical
// players, which serves as the roster source for name resolution. Season
// only anchors the directory snapshot; the directory itself spans all years.
func (c *Client) AllPlayers(ctx context.Context, season string) ([]model.PlayerIdentity, error) {
	params := url.Values{
		"LeagueID":            {"00"},
		"Season":              {season},
		"IsOnlyCurrentSeason": {"0"},
	}
	resp, err := c.get(ctx, "commonallplayers", params)
	if err != nil {
		return nil, err
	}
	if len(resp.ResultSets) == 0 {
		return nil, fmt.Errorf("commonallplayers: no result sets in response")
	}

	rs := resp.ResultSets[0]
	cols := rs.columns()
	players := make([]model.PlayerIdentity, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		players = append(players, model.PlayerIdentity{
			ID:       cellString(row, cols, "PERSON_ID"),
			FullName: cellString(row, cols, "DISPLAY_FIRST_LAST"),
			Team:     cellString(row, cols, "TEAM_ABBREVIATION"),
		})
	}
	return players, nil
}
