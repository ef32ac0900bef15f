package rules

import (
	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/core"
)

// Category names a scoring category in a breakdown.
type Category string

const (
	CatMostCards    Category = "Most Cards"
	CatMostSpades   Category = "Most Spades"
	CatBigCasino    Category = "Big Casino"
	CatLittleCasino Category = "Little Casino"
	CatSweeps       Category = "Sweeps"
)

// RankCategory returns the per-rank category for r, e.g. "Aces".
func RankCategory(r core.Rank) Category {
	return Category(r.Plural())
}

// CategoryOrder lists every category in presentation order.
func CategoryOrder() []Category {
	order := []Category{CatMostCards, CatMostSpades, CatBigCasino, CatLittleCasino}
	for _, r := range core.Ranks {
		order = append(order, RankCategory(r))
	}
	return append(order, CatSweeps)
}

// Breakdown maps categories to the points earned in them.
type Breakdown map[Category]int

// Add merges other into b.
func (b Breakdown) Add(other Breakdown) {
	for cat, pts := range other {
		b[cat] += pts
	}
}

// Total sums every category.
func (b Breakdown) Total() int {
	total := 0
	for _, pts := range b {
		total += pts
	}
	return total
}

// Tally is what one player brings to scoring.
type Tally struct {
	Captured []core.Card
	Sweeps   int
}

// Award is one player's share of a hand's points.
type Award struct {
	Points    int
	Breakdown Breakdown
}

func (a *Award) add(cat Category, pts int) {
	if pts <= 0 {
		return
	}
	a.Points += pts
	a.Breakdown[cat] += pts
}

// Result is the outcome of scoring one hand.
type Result struct {
	Dealer    Award
	NonDealer Award
}

// Score applies the variant's rules to both captured piles. The result does
// not depend on the order of cards within a pile.
func Score(dealer, nonDealer Tally, cfg config.ScoringConfig) Result {
	res := Result{
		Dealer:    Award{Breakdown: Breakdown{}},
		NonDealer: Award{Breakdown: Breakdown{}},
	}

	// Most cards, ties award nobody
	switch dc, nc := len(dealer.Captured), len(nonDealer.Captured); {
	case dc > nc:
		res.Dealer.add(CatMostCards, cfg.MostCards)
	case nc > dc:
		res.NonDealer.add(CatMostCards, cfg.MostCards)
	}

	// Most spades, zero disables the category
	if cfg.MostSpades > 0 {
		ds, ns := countSuit(dealer.Captured, core.Spades), countSuit(nonDealer.Captured, core.Spades)
		switch {
		case ds > ns:
			res.Dealer.add(CatMostSpades, cfg.MostSpades)
		case ns > ds:
			res.NonDealer.add(CatMostSpades, cfg.MostSpades)
		}
	}

	// Casino cards, dealer checked first
	for _, special := range []struct {
		cat  Category
		card config.SpecialCard
	}{
		{CatBigCasino, cfg.BigCasino},
		{CatLittleCasino, cfg.LittleCasino},
	} {
		switch {
		case containsCard(dealer.Captured, special.card.Card):
			res.Dealer.add(special.cat, special.card.Points)
		case containsCard(nonDealer.Captured, special.card.Card):
			res.NonDealer.add(special.cat, special.card.Points)
		}
	}

	for _, r := range core.Ranks {
		per := cfg.PointsPerRank(r)
		if per <= 0 {
			continue
		}
		res.Dealer.add(RankCategory(r), countRank(dealer.Captured, r)*per)
		res.NonDealer.add(RankCategory(r), countRank(nonDealer.Captured, r)*per)
	}

	if cfg.PointsPerSweep > 0 {
		res.Dealer.add(CatSweeps, dealer.Sweeps*cfg.PointsPerSweep)
		res.NonDealer.add(CatSweeps, nonDealer.Sweeps*cfg.PointsPerSweep)
	}

	return res
}

func countSuit(cards []core.Card, s core.Suit) int {
	n := 0
	for _, c := range cards {
		if c.Suit == s {
			n++
		}
	}
	return n
}

func countRank(cards []core.Card, r core.Rank) int {
	n := 0
	for _, c := range cards {
		if c.Rank == r {
			n++
		}
	}
	return n
}

func containsCard(cards []core.Card, card core.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
