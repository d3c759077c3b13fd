package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/courtside/nbametrics/internal/report"
)

// gamelogLast limits output to the most recent N games; 0 prints everything.
var gamelogLast int

var gamelogCmd = &cobra.Command{
	Use:   "gamelog <player>",
	Short: "Game-by-game log with season record totals",
	Long: `Print a player's regular-season game log, most recent game first,
followed by the season record breakdown (wins, losses, home/away split).

Examples:
  nbametrics gamelog "James Harden" --season 2024-25
  nbametrics gamelog "James Harden" --season 2024-25 --last 10`,
	Args: cobra.ExactArgs(1),
	RunE: runGamelog,
}

func init() {
	gamelogCmd.Flags().IntVar(&gamelogLast, "last", 0, "only show the last N games")
}

func runGamelog(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	res, err := svc.GameLog(cmd.Context(), args[0], season)
	if err != nil {
		return describeResolution(err)
	}

	report.PrintQueryHeader(os.Stdout, res.Player, res.Season, nil, len(res.Log))
	report.PrintGameLog(os.Stdout, res.Log, gamelogLast)
	report.PrintGameLogTotals(os.Stdout, res.Log)
	return nil
}
