package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named AI difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Strategy IDs registered by the strategy package.
const (
	StrategyRandom    = "random"
	StrategyGreedy    = "greedy"
	StrategyStrategic = "strategic"
)

// StrategyForPreset returns the strategy ID backing a difficulty preset.
func StrategyForPreset(preset DifficultyPreset) (string, error) {
	switch DifficultyPreset(strings.ToLower(string(preset))) {
	case DifficultyEasy:
		return StrategyRandom, nil
	case DifficultyMedium, "normal", "":
		return StrategyGreedy, nil
	case DifficultyHard:
		return StrategyStrategic, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", preset)
	}
}

// ResolveStrategy accepts either a difficulty preset or a strategy ID and
// returns the strategy ID.
func ResolveStrategy(name string) string {
	if id, err := StrategyForPreset(DifficultyPreset(name)); err == nil {
		return id
	}
	return strings.ToLower(name)
}
