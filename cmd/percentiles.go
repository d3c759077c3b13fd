package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/courtside/nbametrics/internal/query"
	"github.com/courtside/nbametrics/internal/report"
)

var (
	percentilesVs  string
	percentilesRaw bool
)

var percentilesCmd = &cobra.Command{
	Use:   "percentiles <player>",
	Short: "Quartile breakdown (p25/p50/p75/max) per stat",
	Long: `Compute the 25th, 50th, 75th, and 100th percentile of each stat over a
player's season, optionally restricted to games against one opponent.
Percentiles are linearly interpolated between adjacent game values.

Examples:
  nbametrics percentiles "Nikola Jokic" --season 2023-24
  nbametrics percentiles "Kevin Durant" --season 2023-24 --vs Celtics --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runPercentiles,
}

func init() {
	percentilesCmd.Flags().StringVar(&percentilesVs, "vs", "", "opponent team name, nickname, or abbreviation")
	percentilesCmd.Flags().BoolVar(&percentilesRaw, "raw", false, "also print the raw per-game values")
}

func runPercentiles(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var res *query.SeasonPercentiles
	if percentilesVs != "" {
		res, err = svc.VsTeamPercentiles(ctx, args[0], season, percentilesVs)
	} else {
		res, err = svc.SeasonPercentiles(ctx, args[0], season)
	}
	if err != nil {
		return describeResolution(err)
	}

	report.PrintQueryHeader(os.Stdout, res.Player, res.Season, res.Opponent, res.Percentiles.Games)
	report.PrintPercentileSummary(os.Stdout, res.Percentiles, percentilesRaw)
	return nil
}
