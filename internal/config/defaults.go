package config

import (
	_ "embed"

	"github.com/vovakirdan/casino/internal/core"
)

//go:embed defaults/variants.yaml
var defaultVariantsYAML []byte

// Variant names shipped in the default catalog.
const (
	VariantStandard    = "Standard"
	VariantConnecticut = "Connecticut"
)

// DefaultStandard returns the Standard scoring variant.
func DefaultStandard() ScoringConfig {
	return ScoringConfig{
		Variant:    VariantStandard,
		MostCards:  3,
		MostSpades: 1,
		BigCasino: SpecialCard{
			Card:   core.NewCard(core.Ten, core.Diamonds),
			Points: 2,
		},
		LittleCasino: SpecialCard{
			Card:   core.NewCard(core.Two, core.Spades),
			Points: 1,
		},
		RankPoints:      map[string]int{"ace": 1},
		PointsPerSweep:  1,
		WinScore:        21,
		TableCardTiming: AwardAfterEachHand,
	}
}

// DefaultConnecticut returns the Connecticut scoring variant.
func DefaultConnecticut() ScoringConfig {
	return ScoringConfig{
		Variant:    VariantConnecticut,
		MostCards:  1,
		MostSpades: 0, // category disabled
		BigCasino: SpecialCard{
			Card:   core.NewCard(core.Ten, core.Diamonds),
			Points: 3,
		},
		LittleCasino: SpecialCard{
			Card:   core.NewCard(core.Two, core.Spades),
			Points: 2,
		},
		RankPoints:      map[string]int{},
		PointsPerSweep:  1,
		WinScore:        21,
		TableCardTiming: AwardAfterEachHand,
	}
}

// DefaultCatalog returns the hardcoded catalog used when no YAML is readable.
func DefaultCatalog() Catalog {
	return Catalog{
		Default:  VariantConnecticut,
		Variants: []ScoringConfig{DefaultStandard(), DefaultConnecticut()},
	}
}

// GetDefaultYAML returns the embedded default variants YAML.
func GetDefaultYAML() []byte {
	return defaultVariantsYAML
}
