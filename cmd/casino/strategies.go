package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casino/internal/registry"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the AI strategies",
	Long: `Shows every registered AI strategy.

Difficulty presets map onto strategies: easy = random, medium = greedy,
hard = strategic.`,
	Args: cobra.NoArgs,
	Run:  runStrategies,
}

func runStrategies(cmd *cobra.Command, args []string) {
	infos := registry.List()
	if len(infos) == 0 {
		fmt.Println("No strategies available.")
		return
	}

	fmt.Println(stdoutRenderer().Strategies(infos))
	fmt.Println()
	fmt.Println("Run 'casino sim --p1 <id> --p2 <id>' to pit two strategies against each other.")
}
