// Package strategy provides the AI players. Each strategy registers itself
// with the registry in init() and decides purely from a casino.View.
package strategy

import (
	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/core"
	"github.com/vovakirdan/casino/internal/rules"
)

// playOutcome is the predicted effect of one legal PlayAction.
type playOutcome struct {
	action casino.PlayAction
	card   core.Card
	loose  []core.Card
	builds []casino.BuildView
}

func (o playOutcome) captures() bool {
	return len(o.loose) > 0 || len(o.builds) > 0
}

// capturedCards lists every card the play would take, the played card
// excluded.
func (o playOutcome) capturedCards() []core.Card {
	out := append([]core.Card(nil), o.loose...)
	for _, b := range o.builds {
		out = append(out, b.Cards...)
	}
	return out
}

// analyzePlays predicts the outcome of each legal PlayAction in v.
func analyzePlays(v casino.View) []playOutcome {
	resolver := rules.NewResolver(v.Config)
	var out []playOutcome
	for _, a := range v.Legal {
		play, ok := a.(casino.PlayAction)
		if !ok {
			continue
		}
		card := v.Hand[play.HandIndex]
		o := playOutcome{
			action: play,
			card:   card,
			loose:  resolver.Resolve(card, v.Table),
		}
		if !card.IsFace() {
			for _, b := range v.Builds {
				if b.Value == card.Value() {
					o.builds = append(o.builds, b)
				}
			}
		}
		out = append(out, o)
	}
	return out
}

func countWhere(cards []core.Card, match func(core.Card) bool) int {
	n := 0
	for _, c := range cards {
		if match(c) {
			n++
		}
	}
	return n
}

func isSpade(c core.Card) bool { return c.Suit == core.Spades }

func isAce(c core.Card) bool { return c.Rank == core.Ace }
