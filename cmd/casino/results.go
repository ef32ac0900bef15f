package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/storage"
)

var (
	flagLimit  int
	flagGameID string
	flagStats  bool
	flagClear  bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show stored games",
	Long: `Display recently recorded games, the score breakdown of one game, or
win statistics per strategy.

Examples:
  casino results
  casino results --limit 50
  casino results --id 0b3a7c55-...
  casino results --stats`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of games to show")
	resultsCmd.Flags().StringVar(&flagGameID, "id", "", "Show the score breakdown of one game")
	resultsCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-strategy statistics")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored game")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	r := stdoutRenderer()

	switch {
	case flagClear:
		if err := store.ClearGames(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All stored games deleted.")

	case flagGameID != "":
		game, err := store.GameByID(flagGameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving game: %v\n", err)
			os.Exit(1)
		}
		if game == nil {
			fmt.Fprintf(os.Stderr, "Error: no game with ID %q\n", flagGameID)
			os.Exit(1)
		}
		bd, err := store.GameBreakdown(game.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving breakdown: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(r.Games([]storage.GameRecord{*game}))
		fmt.Println(r.Breakdown(game.Names, bd, casino.PlayerID(game.Winner)))

	case flagStats:
		stats, err := store.StrategyStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(r.Stats(stats))

	default:
		games, err := store.RecentGames(flagLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(r.Games(games))
		if len(games) == 0 {
			fmt.Println()
			fmt.Println("Run 'casino sim' to record the first game!")
		}
	}
}
