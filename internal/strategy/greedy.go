package strategy

import (
	"math/rand"

	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/registry"
)

func init() {
	registry.Register(config.StrategyGreedy, func(seed int64) registry.Strategy {
		return NewGreedy(seed)
	})
}

// Greedy takes the best immediate capture in tiers:
//  1. a play that captures a build
//  2. a capture including a high-value card
//  3. any capture
//  4. otherwise a random trail
//
// Ties within a tier are broken at random. Greedy never builds.
type Greedy struct {
	rng *rand.Rand
}

// NewGreedy creates a Greedy strategy.
func NewGreedy(seed int64) *Greedy {
	return &Greedy{rng: rand.New(rand.NewSource(seed))}
}

func (*Greedy) ID() string    { return config.StrategyGreedy }
func (*Greedy) Title() string { return "Greedy (Medium)" }

func (g *Greedy) Choose(v casino.View) casino.Action {
	outcomes := analyzePlays(v)
	if len(outcomes) == 0 {
		return v.Legal[g.rng.Intn(len(v.Legal))]
	}

	var buildCaptures, highValue, captures []playOutcome
	for _, o := range outcomes {
		if !o.captures() {
			continue
		}
		captures = append(captures, o)
		if len(o.builds) > 0 {
			buildCaptures = append(buildCaptures, o)
		}
		if countWhere(o.loose, v.Config.IsHighValue) > 0 {
			highValue = append(highValue, o)
		}
	}

	for _, tier := range [][]playOutcome{buildCaptures, highValue, captures, outcomes} {
		if len(tier) > 0 {
			return tier[g.rng.Intn(len(tier))].action
		}
	}
	return v.Legal[0]
}
