package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/gamelog"
	"github.com/vovakirdan/casino/internal/match"
	"github.com/vovakirdan/casino/internal/registry"
	"github.com/vovakirdan/casino/internal/storage"
)

var (
	flagGames    int
	flagWorkers  int
	flagP1       string
	flagP2       string
	flagVariant  string
	flagNoSave   bool
	flagHands    bool
	flagMaxTurns int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play AI-vs-AI games",
	Long: `Play one or more games between two AI strategies and report the outcome.

Strategies can be given by ID (random, greedy, strategic) or by difficulty
preset (easy, medium, hard). Game i is played with seed --seed + i, so a
run is reproducible when --seed is set.

Examples:
  casino sim
  casino sim --p1 hard --p2 easy --hands
  casino sim --games 200 --workers 4 --variant standard
  casino sim --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVarP(&flagGames, "games", "n", 1, "Number of games to play")
	simCmd.Flags().IntVar(&flagWorkers, "workers", 1, "Games played concurrently")
	simCmd.Flags().StringVar(&flagP1, "p1", config.StrategyStrategic, "Strategy or difficulty for seat 1 (leads first)")
	simCmd.Flags().StringVar(&flagP2, "p2", config.StrategyGreedy, "Strategy or difficulty for seat 2 (deals first)")
	simCmd.Flags().StringVar(&flagVariant, "variant", "", "Scoring variant (default: catalog default)")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results in the database")
	simCmd.Flags().BoolVar(&flagHands, "hands", false, "Show the hand-by-hand score table (single game)")
	simCmd.Flags().IntVar(&flagMaxTurns, "max-turns", match.DefaultMaxTurns, "Abort a game after this many turns")
}

func runSim(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := cat.Get(flagVariant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'casino variants' to see available variants.")
		os.Exit(1)
	}

	ids := [2]string{config.ResolveStrategy(flagP1), config.ResolveStrategy(flagP2)}
	for _, id := range ids {
		if !registry.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", id)
			fmt.Fprintln(os.Stderr, "Run 'casino strategies' to see available strategies.")
			os.Exit(1)
		}
	}

	if flagGames < 1 {
		fmt.Fprintln(os.Stderr, "Error: --games must be at least 1")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("starting simulation", "games", flagGames, "variant", cfg.Variant,
		"p1", ids[0], "p2", ids[1], "seed", seed)

	newRunner := func(i int) *match.Runner {
		gameSeed := seed + int64(i)
		r := &match.Runner{
			Config:   cfg,
			Seed:     gameSeed,
			MaxTurns: flagMaxTurns,
			Observer: gamelog.New(logger.With("game", i+1)),
			Logger:   logger,
		}
		for seat, id := range ids {
			// registry.Exists was checked above
			s, _ := registry.Create(id, gameSeed*2+int64(seat))
			r.Strategies[seat] = s
		}
		return r
	}

	results, runErr := match.RunBatch(cmd.Context(), flagGames, flagWorkers, newRunner)
	if runErr != nil && !errors.Is(runErr, match.ErrTurnLimit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	if runErr != nil {
		logger.Warn("some games hit the turn limit", "error", runErr)
	}

	if !flagNoSave {
		saveResults(results, logger)
	}

	r := stdoutRenderer()
	if len(results) == 1 {
		fmt.Println(r.Game(results[0]))
		if flagHands {
			fmt.Println(r.Hands(results[0]))
		}
		return
	}
	fmt.Println(r.Summary(results))
}

// saveResults records finished games. Storage problems are logged but do
// not fail the run.
func saveResults(results []match.Result, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return
	}
	defer store.Close()

	for _, res := range results {
		if err := store.SaveGame(res); err != nil {
			logger.Warn("could not save game", "id", res.ID, "error", err)
			continue
		}
		logger.Debug("game saved", "id", res.ID)
	}
}
