// Package rules holds the pure Casino rule functions: capture resolution and
// end-of-hand scoring. Nothing here mutates its inputs.
package rules

import (
	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/core"
)

// Resolver picks the loose table cards a played card captures.
type Resolver struct {
	cfg config.ScoringConfig
}

// NewResolver creates a resolver. The config supplies the Big/Little Casino
// cards used when ranking equally sized captures.
func NewResolver(cfg config.ScoringConfig) Resolver {
	return Resolver{cfg: cfg}
}

// Resolve returns the cards captured by played from table, or nil for a trail.
//
// Face cards only pair with table face cards of the same rank, and take all of
// them. Numbered cards take one subset of the table whose values sum to the
// played value, chosen by:
//  1. subsets holding a card of the played rank (direct pair) win outright
//  2. then the subset with the most cards
//  3. then the subset with the most high-value cards
//
// Remaining ties go to the subset found first when enumerating in table order.
func (r Resolver) Resolve(played core.Card, table []core.Card) []core.Card {
	if played.IsFace() {
		var out []core.Card
		for _, c := range table {
			if c.Rank == played.Rank {
				out = append(out, c)
			}
		}
		return out
	}

	combos := Combinations(played.Value(), table)
	if len(combos) == 0 {
		return nil
	}

	var direct [][]core.Card
	for _, combo := range combos {
		if containsRank(combo, played.Rank) {
			direct = append(direct, combo)
		}
	}
	if len(direct) > 0 {
		combos = direct
	}

	best := combos[0]
	for _, combo := range combos[1:] {
		if r.better(combo, best) {
			best = combo
		}
	}
	return best
}

// better reports whether a strictly outranks b. Equal subsets keep the
// earlier one.
func (r Resolver) better(a, b []core.Card) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return r.highValueCount(a) > r.highValueCount(b)
}

func (r Resolver) highValueCount(cards []core.Card) int {
	n := 0
	for _, c := range cards {
		if r.cfg.IsHighValue(c) {
			n++
		}
	}
	return n
}

// Combinations enumerates every subset of the non-face table cards whose
// values sum to target, in table order. Targets below 1 yield nothing.
func Combinations(target int, table []core.Card) [][]core.Card {
	if target < 1 {
		return nil
	}
	eligible := make([]core.Card, 0, len(table))
	for _, c := range table {
		if !c.IsFace() {
			eligible = append(eligible, c)
		}
	}

	var out [][]core.Card
	var current []core.Card
	var walk func(start, sum int)
	walk = func(start, sum int) {
		if sum == target && len(current) > 0 {
			out = append(out, append([]core.Card(nil), current...))
			return
		}
		for i := start; i < len(eligible); i++ {
			v := eligible[i].Value()
			if sum+v > target {
				continue
			}
			current = append(current, eligible[i])
			walk(i+1, sum+v)
			current = current[:len(current)-1]
		}
	}
	walk(0, 0)
	return out
}

func containsRank(cards []core.Card, rank core.Rank) bool {
	for _, c := range cards {
		if c.Rank == rank {
			return true
		}
	}
	return false
}
