package nba

import (
	"context"
	"fmt"
	"net/url"

	"github.com/courtside/nbametrics/internal/model"
)

// PlayerGameLog fetches a player's regular-season game log for the given
// season (format "YYYY-YY", e.g. "2023-24"). Games come back in the order the
// API delivers them, most recent first. An empty log is a valid response
// (zero games played) and is returned as an empty slice, not an error.
func (c *Client) PlayerGameLog(ctx context.Context, playerID, season string) (model.SeasonLog, error) {
	params := url.Values{
		"PlayerID":   {playerID},
		"Season":     {season},
		"SeasonType": {seasonTypeRegular},
	}
	resp, err := c.get(ctx, "playergamelog", params)
	if err != nil {
		return nil, err
	}
	if len(resp.ResultSets) == 0 {
		return nil, fmt.Errorf("playergamelog: no result sets in response")
	}

	rs := resp.ResultSets[0]
	cols := rs.columns()
	log := make(model.SeasonLog, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		log = append(log, model.GameRecord{
			GameID:  cellString(row, cols, "Game_ID"),
			Date:    cellString(row, cols, "GAME_DATE"),
			Matchup: cellString(row, cols, "MATCHUP"),
			WinLoss: cellString(row, cols, "WL"),
			Minutes: cellFloat(row, cols, "MIN"),

			Points:    cellFloat(row, cols, "PTS"),
			Rebounds:  cellFloat(row, cols, "REB"),
			Assists:   cellFloat(row, cols, "AST"),
			Steals:    cellFloat(row, cols, "STL"),
			Blocks:    cellFloat(row, cols, "BLK"),
			Turnovers: cellFloat(row, cols, "TOV"),

			FGMade:          cellFloat(row, cols, "FGM"),
			FGAttempted:     cellFloat(row, cols, "FGA"),
			FGPct:           cellFloat(row, cols, "FG_PCT"),
			ThreesMade:      cellFloat(row, cols, "FG3M"),
			ThreesAttempted: cellFloat(row, cols, "FG3A"),
			ThreesPct:       cellFloat(row, cols, "FG3_PCT"),
			FTMade:          cellFloat(row, cols, "FTM"),
			FTAttempted:     cellFloat(row, cols, "FTA"),
			FTPct:           cellFloat(row, cols, "FT_PCT"),

			PlusMinus: cellFloat(row, cols, "PLUS_MINUS"),
		})
	}
	return log, nil
}
