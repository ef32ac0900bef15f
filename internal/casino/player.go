package casino

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/casino/internal/core"
	"github.com/vovakirdan/casino/internal/rules"
)

// PlayerID identifies one of the two seats at the table.
type PlayerID int

// Other returns the opposing seat.
func (id PlayerID) Other() PlayerID {
	return 1 - id
}

// Valid reports whether id is seat 0 or 1.
func (id PlayerID) Valid() bool {
	return id == 0 || id == 1
}

// Kind tells whether a player's moves come from outside (a person) or are
// resolved automatically by a strategy.
type Kind int

const (
	Human Kind = iota
	AI
)

func (k Kind) String() string {
	if k == Human {
		return "human"
	}
	return "ai"
}

// PlayerSpec describes a seat when creating a game.
type PlayerSpec struct {
	Name string
	Kind Kind
}

// Player holds one seat's cards and scores. Exported accessors return copies.
type Player struct {
	id       PlayerID
	name     string
	kind     Kind
	hand     []core.Card
	captured []core.Card
	score    int
	sweeps   int
	totals   rules.Breakdown
}

func newPlayer(id PlayerID, spec PlayerSpec) *Player {
	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("Player %d", id+1)
	}
	return &Player{id: id, name: name, kind: spec.Kind, totals: rules.Breakdown{}}
}

func (p *Player) ID() PlayerID { return p.id }
func (p *Player) Name() string { return p.name }
func (p *Player) Kind() Kind   { return p.kind }
func (p *Player) IsAI() bool   { return p.kind == AI }
func (p *Player) Score() int   { return p.score }
func (p *Player) Sweeps() int  { return p.sweeps }

// HandSize returns the number of cards in hand.
func (p *Player) HandSize() int { return len(p.hand) }

// Hand returns the hand in deal order.
func (p *Player) Hand() []core.Card { return slices.Clone(p.hand) }

// Captured returns the captured pile for the current hand.
func (p *Player) Captured() []core.Card { return slices.Clone(p.captured) }

// Breakdown returns the points earned per category over the whole game.
func (p *Player) Breakdown() rules.Breakdown {
	out := make(rules.Breakdown, len(p.totals))
	out.Add(p.totals)
	return out
}

// holdsValue reports whether the hand, ignoring the card at skip, holds a
// card of the given capture value. Pass skip < 0 to consider every card.
func (p *Player) holdsValue(value, skip int) bool {
	for i, c := range p.hand {
		if i != skip && !c.IsFace() && c.Value() == value {
			return true
		}
	}
	return false
}

func (p *Player) removeAt(i int) core.Card {
	c := p.hand[i]
	p.hand = slices.Delete(p.hand, i, i+1)
	return c
}

func (p *Player) addScore(award rules.Award) {
	p.score += award.Points
	p.totals.Add(award.Breakdown)
}

func (p *Player) resetForNewGame() {
	p.hand = nil
	p.captured = nil
	p.score = 0
	p.sweeps = 0
	p.totals = rules.Breakdown{}
}
