// casino plays and records games of Casino between AI strategies.
//
// Usage:
//
//	casino sim                - Play AI-vs-AI games and report the results
//	casino variants           - List the scoring variants
//	casino strategies         - List the AI strategies
//	casino results            - Show stored games and strategy statistics
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.casino/results.db)
//	--config <path>     - Load scoring variants from a custom YAML file
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/gamelog"
	"github.com/vovakirdan/casino/internal/report"

	// Import strategies to register them
	_ "github.com/vovakirdan/casino/internal/strategy"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "casino",
	Short: "Casino - simulate and score the Casino card game",
	Long: `Casino runs games of the Casino fishing card game between AI strategies,
scores them under a configurable variant and keeps the results.

Available commands:
  sim        - Play AI-vs-AI games
  variants   - Show the scoring variants
  strategies - Show the AI strategies
  results    - View stored games and per-strategy statistics

Examples:
  casino sim --p1 hard --p2 easy
  casino sim --games 100 --variant standard --seed 7
  casino variants --yaml > ~/.casino/configs/variants.yaml
  casino results --stats`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.casino/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom variants YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(resultsCmd)
}

// newLogger builds the stderr logger from --log-level.
func newLogger() *log.Logger {
	level, err := gamelog.ParseLevel(flagLogLevel)
	logger := gamelog.NewLogger(os.Stderr, level, "casino")
	if err != nil {
		logger.Warn("falling back to info logging", "error", err)
	}
	return logger
}

// loadCatalog loads the variant catalog honoring --config.
func loadCatalog() (config.Catalog, error) {
	cat, err := config.LoadCatalog(flagConfig)
	if err != nil {
		return config.Catalog{}, fmt.Errorf("loading variants: %w", err)
	}
	return cat, nil
}

func stdoutRenderer() *report.Renderer {
	return report.ForTerminal(os.Stdout)
}
