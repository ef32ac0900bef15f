package strategy

import (
	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/core"
	"github.com/vovakirdan/casino/internal/registry"
)

func init() {
	registry.Register(config.StrategyStrategic, func(int64) registry.Strategy {
		return NewStrategic(DefaultWeights)
	})
}

// Weights tunes the Strategic evaluation.
type Weights struct {
	BuildCapture     int // per build taken
	UnguardedBuild   int // playing without taking an owned build
	PerCard          int // per captured card
	Sweep            int
	BigCasino        int
	LittleCasino     int
	Ace              int
	Spade            int
	StealCapture     int // taking a build owned by the opponent
	TrailLow         int
	TrailHighValue   int
	BuildSetup       int // creating a build
	BuildTableCard   int // per table card locked into a new build
	StealBuild       int // extending the opponent's build
	ExtendOwnedBuild int
}

// DefaultWeights are the stock tuning.
var DefaultWeights = Weights{
	BuildCapture:     100,
	UnguardedBuild:   -80,
	PerCard:          10,
	Sweep:            50,
	BigCasino:        30,
	LittleCasino:     20,
	Ace:              15,
	Spade:            5,
	StealCapture:     40,
	TrailLow:         1,
	TrailHighValue:   -5,
	BuildSetup:       12,
	BuildTableCard:   6,
	StealBuild:       35,
	ExtendOwnedBuild: 4,
}

// Strategic scores every legal action, builds included, and plays the best
// one. Equal scores keep the earlier action, so it is deterministic.
type Strategic struct {
	w Weights
}

// NewStrategic creates a Strategic strategy with the given weights.
func NewStrategic(w Weights) *Strategic {
	return &Strategic{w: w}
}

func (*Strategic) ID() string    { return config.StrategyStrategic }
func (*Strategic) Title() string { return "Strategic (Hard)" }

func (s *Strategic) Choose(v casino.View) casino.Action {
	plays := make(map[casino.PlayAction]playOutcome)
	for _, o := range analyzePlays(v) {
		plays[o.action] = o
	}

	var best casino.Action
	bestScore := 0
	for _, a := range v.Legal {
		var score int
		switch a := a.(type) {
		case casino.PlayAction:
			score = s.scorePlay(v, plays[a])
		case casino.BuildAction:
			score = s.scoreBuild(v, a)
		case casino.ModifyAction:
			score = s.scoreModify(v, a)
		}
		if best == nil || score > bestScore {
			best, bestScore = a, score
		}
	}
	return best
}

// Score returns the evaluation of a, exported for tuning tools and tests.
func (s *Strategic) Score(v casino.View, a casino.Action) int {
	switch a := a.(type) {
	case casino.PlayAction:
		for _, o := range analyzePlays(v) {
			if o.action == a {
				return s.scorePlay(v, o)
			}
		}
	case casino.BuildAction:
		return s.scoreBuild(v, a)
	case casino.ModifyAction:
		return s.scoreModify(v, a)
	}
	return 0
}

func (s *Strategic) scorePlay(v casino.View, o playOutcome) int {
	w := s.w
	score := 0

	ownBuilds := len(v.OwnBuilds())
	score += len(o.builds) * w.BuildCapture
	if ownBuilds > 0 && len(o.builds) == 0 {
		score += w.UnguardedBuild
	}
	for _, b := range o.builds {
		if b.Owner != v.Self {
			score += w.StealCapture
			break
		}
	}

	taken := o.capturedCards()
	score += len(o.loose) * w.PerCard
	if len(o.loose) > 0 && len(o.loose) == len(v.Table) && len(v.Builds) == len(o.builds) {
		score += w.Sweep
	}
	score += s.cardBonus(v.Config, taken)

	if !o.captures() {
		if v.Config.IsHighValue(o.card) || isSpade(o.card) {
			score += w.TrailHighValue
		} else {
			score += w.TrailLow
		}
	}
	return score
}

func (s *Strategic) cardBonus(cfg config.ScoringConfig, cards []core.Card) int {
	w := s.w
	score := countWhere(cards, isAce)*w.Ace + countWhere(cards, isSpade)*w.Spade
	for _, c := range cards {
		switch c {
		case cfg.BigCasino.Card:
			score += w.BigCasino
		case cfg.LittleCasino.Card:
			score += w.LittleCasino
		}
	}
	return score
}

// scoreBuild values a new build at half the cards it should later capture.
func (s *Strategic) scoreBuild(v casino.View, a casino.BuildAction) int {
	w := s.w
	cards := []core.Card{v.Hand[a.HandIndex]}
	for _, i := range a.TableIndices {
		cards = append(cards, v.Table[i])
	}
	return w.BuildSetup + len(a.TableIndices)*w.BuildTableCard + s.cardBonus(v.Config, cards)/2
}

func (s *Strategic) scoreModify(v casino.View, a casino.ModifyAction) int {
	w := s.w
	for _, b := range v.Builds {
		if b.ID != a.BuildID {
			continue
		}
		cards := append([]core.Card{v.Hand[a.HandIndex]}, b.Cards...)
		score := len(b.Cards)*w.BuildTableCard + s.cardBonus(v.Config, cards)/2
		if b.Owner != v.Self {
			score += w.StealBuild
		} else {
			score += w.ExtendOwnedBuild
		}
		return score
	}
	return 0
}
