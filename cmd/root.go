package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/courtside/nbametrics/internal/nba"
	"github.com/courtside/nbametrics/internal/query"
)

var (
	season  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "nbametrics",
	Short: "NBA player stats tool",
	Long:  "Fetch NBA player game logs and compute per-season and per-opponent averages, consistency, and percentile breakdowns.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; settings also come straight from the environment.
		_ = godotenv.Load()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&season, "season", "2025-26", `NBA season in "YYYY-YY" format`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log API requests to stderr")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(percentilesCmd)
	rootCmd.AddCommand(gamelogCmd)
	rootCmd.AddCommand(teamsCmd)
}

// newService builds the query service over a stats.nba.com client configured
// from the environment.
func newService() (*query.Service, error) {
	cfg, err := nba.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return query.NewService(nba.NewClient(cfg, log)), nil
}
