package casino

import (
	"slices"

	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/core"
	"github.com/vovakirdan/casino/internal/rules"
)

// Current returns the player whose turn it is.
func (g *Game) Current() PlayerID { return g.current }

// Dealer returns the dealer of the current hand.
func (g *Game) Dealer() PlayerID { return g.dealer }

// NonDealer returns the player who leads each round.
func (g *Game) NonDealer() PlayerID { return g.dealer.Other() }

// Player returns the seat's player, or nil for an invalid id.
func (g *Game) Player(id PlayerID) *Player {
	if !id.Valid() {
		return nil
	}
	return g.players[id]
}

func (g *Game) Phase() Phase        { return g.phase }
func (g *Game) HandNumber() int     { return g.hand }
func (g *Game) RoundNumber() int    { return g.round }
func (g *Game) CardsPlayed() int    { return g.played }
func (g *Game) DeckRemaining() int  { return g.deck.Remaining() }
func (g *Game) Table() []core.Card  { return slices.Clone(g.table) }
func (g *Game) Builds() []BuildView { return buildViews(g.builds) }

// Config returns a copy of the scoring rules in force.
func (g *Game) Config() config.ScoringConfig { return g.cfg.Clone() }

// Scores returns both cumulative scores, indexed by PlayerID.
func (g *Game) Scores() [2]int {
	return [2]int{g.players[0].score, g.players[1].score}
}

// Winner returns the winner once the game is over.
func (g *Game) Winner() (PlayerID, bool) {
	return g.winner, g.phase == PhaseGameOver
}

// LastCapturer returns the last player to capture in the current hand.
func (g *Game) LastCapturer() (PlayerID, bool) {
	return g.lastCapturer, g.hasCapturer
}

// Breakdown returns the per-category points a player has earned this game.
func (g *Game) Breakdown(id PlayerID) rules.Breakdown {
	if !id.Valid() {
		return nil
	}
	return g.players[id].Breakdown()
}

// HandResults returns the scoring of every completed hand.
func (g *Game) HandResults() []HandResult {
	return slices.Clone(g.results)
}

// AwaitingInput reports whether the game is waiting on a human player.
func (g *Game) AwaitingInput() bool {
	return g.phase == PhasePlaying && g.players[g.current].kind == Human
}

// Locate returns where a card currently is.
func (g *Game) Locate(c core.Card) (Location, bool) {
	loc, ok := g.cards[c]
	return loc, ok
}

// View is a read-only snapshot for one player. The opponent's hand is only
// visible as a count.
type View struct {
	Self             PlayerID
	Dealer           PlayerID
	Phase            Phase
	Hand             []core.Card
	OpponentHandSize int
	Table            []core.Card
	Builds           []BuildView
	DeckRemaining    int
	Scores           [2]int
	Sweeps           [2]int
	CapturedCounts   [2]int
	Config           config.ScoringConfig
	Legal            []Action
}

// View builds a snapshot for id. Legal is empty unless it is id's turn.
func (g *Game) View(id PlayerID) View {
	if !id.Valid() {
		return View{Self: id, Phase: g.phase}
	}
	v := View{
		Self:             id,
		Dealer:           g.dealer,
		Phase:            g.phase,
		Hand:             g.players[id].Hand(),
		OpponentHandSize: len(g.players[id.Other()].hand),
		Table:            g.Table(),
		Builds:           g.Builds(),
		DeckRemaining:    g.deck.Remaining(),
		Scores:           g.Scores(),
		Config:           g.Config(),
		Legal:            g.LegalActions(id),
	}
	for _, p := range g.players {
		v.Sweeps[p.id] = p.sweeps
		v.CapturedCounts[p.id] = len(p.captured)
	}
	return v
}

// OwnBuilds returns the builds owned by the viewing player.
func (v View) OwnBuilds() []BuildView {
	var out []BuildView
	for _, b := range v.Builds {
		if b.Owner == v.Self {
			out = append(out, b)
		}
	}
	return out
}

// LegalActions lists every action id could submit right now. It is empty
// when it is not id's turn or the game is over.
func (g *Game) LegalActions(id PlayerID) []Action {
	p, err := g.actor(id)
	if err != nil {
		return nil
	}

	var out []Action
	for i := range p.hand {
		if _, err := g.planPlay(id, i); err == nil {
			out = append(out, PlayAction{HandIndex: i})
		}
	}

	var loose []int
	for i, c := range g.table {
		if !c.IsFace() {
			loose = append(loose, i)
		}
	}
	for i, c := range p.hand {
		if c.IsFace() {
			continue
		}
		g.tableSubsets(loose, 10-c.Value(), func(indices []int, sum int) {
			a := BuildAction{HandIndex: i, TableIndices: slices.Clone(indices), Value: sum + c.Value()}
			if g.checkBuild(id, i, a.TableIndices, a.Value) == nil {
				out = append(out, a)
			}
		})
	}

	for _, b := range g.builds {
		for i, c := range p.hand {
			a := ModifyAction{BuildID: b.id, HandIndex: i, Value: b.value + c.Value()}
			if _, err := g.checkModify(id, a.BuildID, i, a.Value); err == nil {
				out = append(out, a)
			}
		}
	}
	return out
}

// tableSubsets calls fn for every non-empty subset of the given table
// indices whose values sum to at most limit.
func (g *Game) tableSubsets(indices []int, limit int, fn func([]int, int)) {
	var current []int
	var walk func(start, sum int)
	walk = func(start, sum int) {
		for k := start; k < len(indices); k++ {
			v := g.table[indices[k]].Value()
			if sum+v > limit {
				continue
			}
			current = append(current, indices[k])
			fn(current, sum+v)
			walk(k+1, sum+v)
			current = current[:len(current)-1]
		}
	}
	walk(0, 0)
}
