package strategy

import (
	"math/rand"

	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/registry"
)

func init() {
	registry.Register(config.StrategyRandom, func(seed int64) registry.Strategy {
		return NewRandom(seed)
	})
}

// Random plays a random legal card. It only builds when a build is the sole
// legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random strategy.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (*Random) ID() string    { return config.StrategyRandom }
func (*Random) Title() string { return "Random (Easy)" }

func (r *Random) Choose(v casino.View) casino.Action {
	var plays []casino.Action
	for _, a := range v.Legal {
		if _, ok := a.(casino.PlayAction); ok {
			plays = append(plays, a)
		}
	}
	if len(plays) == 0 {
		plays = v.Legal
	}
	return plays[r.rng.Intn(len(plays))]
}
