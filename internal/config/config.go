// Package config provides YAML-based scoring variant configuration and the
// variant catalog used to pick the rules a game is scored under.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/casino/internal/core"
)

// TableCardTiming controls when loose table cards and unclaimed builds are
// handed out at the end of a round.
type TableCardTiming string

const (
	// AwardAfterEachHand awards leftovers at the end of every 4-card round.
	AwardAfterEachHand TableCardTiming = "after_each_hand"
	// AwardOnlyAtGameEnd awards leftovers only once the deck is exhausted.
	AwardOnlyAtGameEnd TableCardTiming = "only_at_game_end"
)

// Valid reports whether t is a known timing.
func (t TableCardTiming) Valid() bool {
	return t == AwardAfterEachHand || t == AwardOnlyAtGameEnd
}

// SpecialCard names a single card worth bonus points (Big/Little Casino).
type SpecialCard struct {
	Card   core.Card `yaml:"card"`
	Points int       `yaml:"points"`
}

// ScoringConfig is one scoring variant. Values are fixed once a game starts.
type ScoringConfig struct {
	Variant         string          `yaml:"variant"`
	MostCards       int             `yaml:"most_cards"`
	MostSpades      int             `yaml:"most_spades"` // 0 disables the category
	BigCasino       SpecialCard     `yaml:"big_casino"`
	LittleCasino    SpecialCard     `yaml:"little_casino"`
	RankPoints      map[string]int  `yaml:"rank_points"` // keyed by rank name: ace, two, ... king
	PointsPerSweep  int             `yaml:"points_per_sweep"`
	WinScore        int             `yaml:"win_score"`
	TableCardTiming TableCardTiming `yaml:"table_card_timing"`
}

// PointsPerRank returns the configured points for each captured card of rank r.
func (c ScoringConfig) PointsPerRank(r core.Rank) int {
	if c.RankPoints == nil {
		return 0
	}
	return c.RankPoints[strings.ToLower(r.String())]
}

// Validate checks the config for values the engine cannot score with.
func (c ScoringConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Variant) == "" {
		errs = append(errs, errors.New("variant name is empty"))
	}
	points := []struct {
		name  string
		value int
	}{
		{"most_cards", c.MostCards},
		{"most_spades", c.MostSpades},
		{"big_casino.points", c.BigCasino.Points},
		{"little_casino.points", c.LittleCasino.Points},
		{"points_per_sweep", c.PointsPerSweep},
	}
	for _, p := range points {
		if p.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative (got %d)", p.name, p.value))
		}
	}
	for key, v := range c.RankPoints {
		if !isRankName(key) {
			errs = append(errs, fmt.Errorf("rank_points: unknown rank %q", key))
			continue
		}
		if v < 0 {
			errs = append(errs, fmt.Errorf("rank_points.%s must not be negative (got %d)", key, v))
		}
	}
	if c.WinScore < 1 {
		errs = append(errs, fmt.Errorf("win_score must be at least 1 (got %d)", c.WinScore))
	}
	if !c.BigCasino.Card.Rank.Valid() {
		errs = append(errs, errors.New("big_casino.card is not set"))
	}
	if !c.LittleCasino.Card.Rank.Valid() {
		errs = append(errs, errors.New("little_casino.card is not set"))
	}
	if c.BigCasino.Card == c.LittleCasino.Card {
		errs = append(errs, fmt.Errorf("big and little casino are the same card (%s)", c.BigCasino.Card))
	}
	if !c.TableCardTiming.Valid() {
		errs = append(errs, fmt.Errorf("unknown table_card_timing %q", c.TableCardTiming))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid variant %q: %w", c.Variant, errors.Join(errs...))
	}
	return nil
}

// isRankName reports whether key is a full rank name ("ace", "Ten").
func isRankName(key string) bool {
	for _, r := range core.Ranks {
		if strings.EqualFold(key, r.String()) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate a config in use.
func (c ScoringConfig) Clone() ScoringConfig {
	out := c
	if c.RankPoints != nil {
		out.RankPoints = make(map[string]int, len(c.RankPoints))
		for k, v := range c.RankPoints {
			out.RankPoints[strings.ToLower(k)] = v
		}
	}
	return out
}

// IsHighValue reports whether a card is a high-value capture: any Ace, any
// Ten, or one of the configured casino cards.
func (c ScoringConfig) IsHighValue(card core.Card) bool {
	return card.Rank == core.Ace ||
		card.Rank == core.Ten ||
		card == c.BigCasino.Card ||
		card == c.LittleCasino.Card
}

// Catalog is the set of selectable variants.
type Catalog struct {
	Default  string          `yaml:"default"`
	Variants []ScoringConfig `yaml:"variants"`
}

// Get returns a copy of the variant with the given name (case-insensitive).
// An empty name selects the catalog default.
func (c Catalog) Get(name string) (ScoringConfig, error) {
	if strings.TrimSpace(name) == "" {
		name = c.Default
	}
	for _, v := range c.Variants {
		if strings.EqualFold(v.Variant, name) {
			return v.Clone(), nil
		}
	}
	return ScoringConfig{}, fmt.Errorf("config: unknown variant %q", name)
}

// Names returns the variant names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Variants))
	for i, v := range c.Variants {
		names[i] = v.Variant
	}
	return names
}

// Validate checks every variant and that the default exists.
func (c Catalog) Validate() error {
	if len(c.Variants) == 0 {
		return errors.New("config: catalog has no variants")
	}
	seen := make(map[string]bool)
	for _, v := range c.Variants {
		if err := v.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(v.Variant)
		if seen[key] {
			return fmt.Errorf("config: duplicate variant %q", v.Variant)
		}
		seen[key] = true
	}
	if c.Default != "" && !seen[strings.ToLower(c.Default)] {
		return fmt.Errorf("config: default variant %q not in catalog", c.Default)
	}
	return nil
}
