// Package report renders query results as terminal tables.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/courtside/nbametrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintQueryHeader prints the one-line context header above a stats table.
func PrintQueryHeader(w io.Writer, player model.PlayerIdentity, season string, opponent *model.TeamIdentity, games int) {
	if opponent != nil {
		fmt.Fprintf(w, "\n%s vs %s  |  Season: %s  |  Games: %d\n\n",
			player.FullName, opponent.FullName, season, games)
		return
	}
	fmt.Fprintf(w, "\n%s  |  Season: %s  |  Games: %d\n\n", player.FullName, season, games)
}

// PrintStatSummary prints the per-field mean/stddev/CV table.
func PrintStatSummary(w io.Writer, sum *model.StatSummary) {
	table := newTable(w)
	table.Header("STAT", "MEAN", "STD DEV", "CV%")
	for _, f := range sum.Fields {
		fs := sum.PerField[f]
		table.Append(
			f.Label(),
			fmt.Sprintf("%.1f", fs.Mean),
			fmt.Sprintf("%.1f", fs.StdDev),
			fmt.Sprintf("%.2f", fs.CV),
		)
	}
	table.Render()
}

// PrintPercentileSummary prints the per-field quartile table. When showRaw is
// set, each row is followed by the raw per-game values in game order.
func PrintPercentileSummary(w io.Writer, sum *model.PercentileSummary, showRaw bool) {
	table := newTable(w)
	table.Header("STAT", "P25", "P50", "P75", "MAX")
	for _, f := range sum.Fields {
		p := sum.PerField[f]
		table.Append(
			f.Label(),
			fmt.Sprintf("%.1f", p.P25),
			fmt.Sprintf("%.1f", p.P50),
			fmt.Sprintf("%.1f", p.P75),
			fmt.Sprintf("%.1f", p.P100),
		)
	}
	table.Render()

	if !showRaw {
		return
	}
	fmt.Fprintln(w)
	for _, f := range sum.Fields {
		fmt.Fprintf(w, "%-10s", f.Label())
		for _, v := range sum.Raw[f] {
			fmt.Fprintf(w, " %g", v)
		}
		fmt.Fprintln(w)
	}
}

// PrintGameLog prints the game log table, most recent game first as
// delivered. lastN > 0 limits output to the first lastN rows.
func PrintGameLog(w io.Writer, log model.SeasonLog, lastN int) {
	rows := log
	if lastN > 0 && lastN < len(rows) {
		rows = rows[:lastN]
	}
	table := newTable(w)
	table.Header("DATE", "MATCHUP", "W/L", "MIN", "PTS", "REB", "AST", "STL", "BLK", "3PM", "+/-")
	for i := range rows {
		g := &rows[i]
		table.Append(
			g.Date,
			g.Matchup,
			g.WinLoss,
			fmt.Sprintf("%.0f", g.Minutes),
			fmt.Sprintf("%.0f", g.Points),
			fmt.Sprintf("%.0f", g.Rebounds),
			fmt.Sprintf("%.0f", g.Assists),
			fmt.Sprintf("%.0f", g.Steals),
			fmt.Sprintf("%.0f", g.Blocks),
			fmt.Sprintf("%.0f", g.ThreesMade),
			fmt.Sprintf("%+.0f", g.PlusMinus),
		)
	}
	table.Render()
}

// PrintGameLogTotals prints the season record breakdown below the game log.
func PrintGameLogTotals(w io.Writer, log model.SeasonLog) {
	fmt.Fprintf(w, "\n  Games played : %d\n", len(log))
	fmt.Fprintf(w, "  Record       : %d-%d\n", log.Wins(), log.Losses())
	fmt.Fprintf(w, "  Home / Away  : %d / %d\n", log.HomeGames(), log.AwayGames())
}

// PrintTeams prints the franchise table.
func PrintTeams(w io.Writer, teams []model.TeamIdentity) {
	table := newTable(w)
	table.Header("ABBR", "FULL NAME", "NICKNAME")
	for _, t := range teams {
		table.Append(t.Abbreviation, t.FullName, t.Nickname)
	}
	table.Render()
}

// PrintPlayerCandidates prints an ambiguous-name candidate list so the user
// can retry with a more specific input.
func PrintPlayerCandidates(w io.Writer, candidates []model.PlayerIdentity) {
	table := newTable(w)
	table.Header("ID", "NAME", "TEAM")
	for _, p := range candidates {
		team := p.Team
		if team == "" {
			team = "—"
		}
		table.Append(p.ID, p.FullName, team)
	}
	table.Render()
}
