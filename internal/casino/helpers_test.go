package casino

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/core"
)

// recorder collects every event.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func (r *recorder) count(match func(Event) bool) int {
	n := 0
	for _, e := range r.events {
		if match(e) {
			n++
		}
	}
	return n
}

// stackedGame deals seat 0 (the first non-dealer) nonDealer, seat 1 dealer,
// then the table, and leaves rest in the deck in draw order.
func stackedGame(t *testing.T, cfg config.ScoringConfig, nonDealer, dealer, table []string, rest ...string) (*Game, *recorder) {
	t.Helper()

	var order []string
	order = append(order, nonDealer...)
	order = append(order, dealer...)
	order = append(order, table...)
	order = append(order, rest...)

	deck, err := core.NewStackedDeck(core.MustParseCards(order...), nil)
	require.NoError(t, err)

	rec := &recorder{}
	g, err := New(cfg, WithDeck(deck), WithObserver(rec), WithPlayers(
		PlayerSpec{Name: "North", Kind: AI},
		PlayerSpec{Name: "South", Kind: AI},
	))
	require.NoError(t, err)
	return g, rec
}

func mustCards(specs ...string) []core.Card {
	return core.MustParseCards(specs...)
}

// snapshot captures everything an action could touch.
type snapshot struct {
	Table    []core.Card
	Builds   []BuildView
	Hands    [2][]core.Card
	Captured [2][]core.Card
	Sweeps   [2]int
	Current  PlayerID
	Played   int
	Phase    Phase
	Deck     int
	Ledger   map[core.Card]Location
}

func snap(g *Game) snapshot {
	s := snapshot{
		Table:   g.Table(),
		Builds:  g.Builds(),
		Current: g.current,
		Played:  g.played,
		Phase:   g.phase,
		Deck:    g.deck.Remaining(),
		Ledger:  make(map[core.Card]Location, len(g.cards)),
	}
	for _, p := range g.players {
		s.Hands[p.id] = p.Hand()
		s.Captured[p.id] = p.Captured()
		s.Sweeps[p.id] = p.sweeps
	}
	for c, loc := range g.cards {
		s.Ledger[c] = loc
	}
	return s
}

// checkInvariants verifies that the ledger agrees with every container, that
// no card is in two places and that every build sums to its value.
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()

	seen := make(map[core.Card]Location)
	add := func(c core.Card, loc Location) {
		prev, dup := seen[c]
		require.Falsef(t, dup, "%s is in both %s and %s", c, prev, loc)
		seen[c] = loc
	}

	for _, c := range g.deck.Cards() {
		add(c, inDeck)
	}
	for _, c := range g.table {
		add(c, onTable)
	}
	for _, p := range g.players {
		for _, c := range p.hand {
			add(c, inHand(p.id))
		}
		for _, c := range p.captured {
			add(c, capturedBy(p.id))
		}
	}
	for _, b := range g.builds {
		require.Equalf(t, b.value, core.SumValues(b.cards), "build #%d", b.id)
		for _, c := range b.cards {
			add(c, inBuild(b.id))
		}
	}

	require.Len(t, g.cards, core.DeckSize)
	for c, loc := range seen {
		require.Equalf(t, loc, g.cards[c], "ledger location of %s", c)
	}
	require.Equal(t, core.DeckSize, len(seen)+g.cards.count(discarded))
}

func indexOf(hand []core.Card, spec string) int {
	return slices.Index(hand, core.MustParseCards(spec)[0])
}
