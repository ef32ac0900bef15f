package rules

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/core"
)

func TestScoreCategories(t *testing.T) {
	std := config.DefaultStandard()

	tests := []struct {
		name          string
		cfg           config.ScoringConfig
		dealer        Tally
		nonDealer     Tally
		wantDealer    Breakdown
		wantNonDealer Breakdown
	}{
		{
			name:          "most cards to dealer",
			cfg:           std,
			dealer:        Tally{Captured: cards("3H", "4H", "5H")},
			nonDealer:     Tally{Captured: cards("6H")},
			wantDealer:    Breakdown{CatMostCards: 3},
			wantNonDealer: Breakdown{},
		},
		{
			name:          "tied cards award nobody",
			cfg:           std,
			dealer:        Tally{Captured: cards("3H", "4H")},
			nonDealer:     Tally{Captured: cards("5H", "6H")},
			wantDealer:    Breakdown{},
			wantNonDealer: Breakdown{},
		},
		{
			name:          "most spades",
			cfg:           std,
			dealer:        Tally{Captured: cards("3H", "4H")},
			nonDealer:     Tally{Captured: cards("5S", "6H")},
			wantDealer:    Breakdown{},
			wantNonDealer: Breakdown{CatMostSpades: 1},
		},
		{
			name:          "casino cards go to holder",
			cfg:           std,
			dealer:        Tally{Captured: cards("2S", "4H")},
			nonDealer:     Tally{Captured: cards("10D", "6H")},
			wantDealer:    Breakdown{CatLittleCasino: 1, CatMostSpades: 1},
			wantNonDealer: Breakdown{CatBigCasino: 2},
		},
		{
			name:          "aces scored for both players",
			cfg:           std,
			dealer:        Tally{Captured: cards("AH", "AD")},
			nonDealer:     Tally{Captured: cards("AC", "7H")},
			wantDealer:    Breakdown{RankCategory(core.Ace): 2},
			wantNonDealer: Breakdown{RankCategory(core.Ace): 1},
		},
		{
			name:          "sweeps for both players",
			cfg:           std,
			dealer:        Tally{Captured: cards("3H"), Sweeps: 2},
			nonDealer:     Tally{Captured: cards("4H"), Sweeps: 1},
			wantDealer:    Breakdown{CatSweeps: 2},
			wantNonDealer: Breakdown{CatSweeps: 1},
		},
		{
			name:          "connecticut ignores spades and aces",
			cfg:           config.DefaultConnecticut(),
			dealer:        Tally{Captured: cards("AS", "3S", "4S", "10D")},
			nonDealer:     Tally{Captured: cards("AH")},
			wantDealer:    Breakdown{CatMostCards: 1, CatBigCasino: 3},
			wantNonDealer: Breakdown{},
		},
		{
			name:          "empty piles",
			cfg:           std,
			wantDealer:    Breakdown{},
			wantNonDealer: Breakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(tt.dealer, tt.nonDealer, tt.cfg)
			checkAward(t, "dealer", res.Dealer, tt.wantDealer)
			checkAward(t, "non-dealer", res.NonDealer, tt.wantNonDealer)
		})
	}
}

func checkAward(t *testing.T, who string, got Award, want Breakdown) {
	t.Helper()
	if len(got.Breakdown) != len(want) {
		t.Errorf("%s breakdown = %v, want %v", who, got.Breakdown, want)
	}
	for cat, pts := range want {
		if got.Breakdown[cat] != pts {
			t.Errorf("%s %s = %d, want %d", who, cat, got.Breakdown[cat], pts)
		}
	}
	if got.Points != want.Total() {
		t.Errorf("%s points = %d, want %d", who, got.Points, want.Total())
	}
}

func TestScoreSpadesDisabled(t *testing.T) {
	cfg := config.DefaultStandard()
	cfg.MostSpades = 0

	dealer := Tally{Captured: cards("AS", "2S", "3S", "4S", "5S")}
	nonDealer := Tally{Captured: cards("6H", "7H", "8H", "9H", "JH")}

	res := Score(dealer, nonDealer, cfg)
	if _, ok := res.Dealer.Breakdown[CatMostSpades]; ok {
		t.Errorf("dealer scored spades with category disabled: %v", res.Dealer.Breakdown)
	}
	if _, ok := res.NonDealer.Breakdown[CatMostSpades]; ok {
		t.Errorf("non-dealer scored spades with category disabled: %v", res.NonDealer.Breakdown)
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	cfg := config.DefaultStandard()
	deck := core.FullDeck()
	dealer := Tally{Captured: deck[:30], Sweeps: 1}
	nonDealer := Tally{Captured: deck[30:], Sweeps: 3}
	want := Score(dealer, nonDealer, cfg)

	rng := rand.New(rand.NewSource(7))
	for i := range 20 {
		d := append([]core.Card(nil), dealer.Captured...)
		n := append([]core.Card(nil), nonDealer.Captured...)
		rng.Shuffle(len(d), func(a, b int) { d[a], d[b] = d[b], d[a] })
		rng.Shuffle(len(n), func(a, b int) { n[a], n[b] = n[b], n[a] })

		got := Score(Tally{Captured: d, Sweeps: 1}, Tally{Captured: n, Sweeps: 3}, cfg)
		if got.Dealer.Points != want.Dealer.Points || got.NonDealer.Points != want.NonDealer.Points {
			t.Fatalf("permutation %d scored %d/%d, want %d/%d", i,
				got.Dealer.Points, got.NonDealer.Points, want.Dealer.Points, want.NonDealer.Points)
		}
	}
}

func TestCategoryOrder(t *testing.T) {
	order := CategoryOrder()
	if len(order) != 4+len(core.Ranks)+1 {
		t.Fatalf("CategoryOrder() has %d entries", len(order))
	}
	if order[0] != CatMostCards || order[len(order)-1] != CatSweeps {
		t.Errorf("unexpected order ends: %v ... %v", order[0], order[len(order)-1])
	}
	if order[4] != "Aces" {
		t.Errorf("first rank category = %q, want Aces", order[4])
	}
}
