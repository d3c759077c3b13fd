package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtside/nbametrics/internal/report"
	"github.com/courtside/nbametrics/internal/roster"
)

var teamsCmd = &cobra.Command{
	Use:   "teams [<query>]",
	Short: "List NBA teams or check how a team identifier resolves",
	Long: `Without arguments, print the full franchise table. With a query,
run it through the resolution cascade (abbreviation, full name, nickname)
and show which team it maps to.

Examples:
  nbametrics teams
  nbametrics teams Lakers
  nbametrics teams GSW`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTeams,
}

func runTeams(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		report.PrintTeams(os.Stdout, roster.Teams())
		return nil
	}

	team, err := roster.DefaultTeamResolver().Resolve(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%q resolves to %s (%s)\n", args[0], team.FullName, team.Abbreviation)
	return nil
}
