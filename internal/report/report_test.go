package report

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/match"
	"github.com/vovakirdan/casino/internal/registry"
	"github.com/vovakirdan/casino/internal/rules"
	"github.com/vovakirdan/casino/internal/storage"
)

func sampleResult() match.Result {
	return match.Result{
		ID:         uuid.MustParse("0b3a7c55-1111-4222-8333-944445555666"),
		Seed:       3,
		Variant:    "Standard",
		Names:      [2]string{"Ada", "Bo"},
		Strategies: [2]string{"greedy", "random"},
		Scores:     [2]int{22, 9},
		Winner:     0,
		Reason:     match.EndCompleted,
		Hands:      2,
		Turns:      96,
		Duration:   12 * time.Millisecond,
		Breakdowns: [2]rules.Breakdown{
			{rules.CatMostCards: 6, rules.CatBigCasino: 2, rules.CatSweeps: 14},
			{rules.CatMostSpades: 2, rules.CatSweeps: 7},
		},
		HandResults: []casino.HandResult{
			{Hand: 1, Dealer: 1, Scores: [2]int{11, 4}},
			{Hand: 2, Dealer: 0, Scores: [2]int{22, 9}},
		},
	}
}

func plain() *Renderer { return New(DefaultWidth, PlainTheme()) }

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, s := range want {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestGame(t *testing.T) {
	out := plain().Game(sampleResult())
	assertContains(t, out,
		"Standard game 0b3a7c55",
		"Ada 22 - 9 Bo, Ada wins",
		"seed 3, 2 hands, 96 turns",
		"Most Cards", "Big Casino", "Most Spades", "Sweeps", "Total",
	)
	if strings.Contains(out, "Little Casino") {
		t.Error("categories nobody scored should be omitted")
	}
}

func TestGameWithoutWinner(t *testing.T) {
	res := sampleResult()
	res.Winner = -1
	res.Reason = match.EndTurnLimit
	assertContains(t, plain().Game(res), "Ada 22 - 9 Bo, turn limit")
}

func TestHands(t *testing.T) {
	out := plain().Hands(sampleResult())
	assertContains(t, out, "Hand", "Dealer", "11 - 4", "22 - 9")
}

func TestSummary(t *testing.T) {
	a, b := sampleResult(), sampleResult()
	b.Winner = 1
	c := sampleResult()
	c.Winner = -1

	out := plain().Summary([]match.Result{a, b, c})
	assertContains(t, out, "3 games", "(1 unfinished)", "greedy", "random", "33%")
}

func TestGamesAndStats(t *testing.T) {
	r := plain()
	assertContains(t, r.Games(nil), "No games recorded yet.")
	assertContains(t, r.Stats(nil), "No strategy statistics yet.")

	games := []storage.GameRecord{{
		ID:        "1234567890abcdef",
		Variant:   "Connecticut",
		Names:     [2]string{"Ada", "Bo"},
		Scores:    [2]int{21, 18},
		Winner:    0,
		EndReason: "completed",
		CreatedAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
	}}
	assertContains(t, r.Games(games), "12345678", "2026-03-01 12:30", "Ada vs Bo", "21 - 18", "Connecticut")

	stats := []storage.StrategyStats{
		{Strategy: "greedy", Games: 4, Wins: 3, AvgScore: 19.5},
		{Strategy: "random", Games: 4, Wins: 1, AvgScore: 10},
	}
	assertContains(t, r.Stats(stats), "greedy", "75%", "19.5", "25%")
}

func TestVariantsAndStrategies(t *testing.T) {
	r := New(160, PlainTheme())
	out := r.Variants(config.DefaultCatalog())
	assertContains(t, out, "Standard", "Connecticut *", "after_each_hand", "A=1")

	out = r.Strategies([]registry.StrategyInfo{{ID: "greedy", Title: "Greedy (Medium)"}})
	assertContains(t, out, "greedy", "Greedy (Medium)")
}

func TestRenderFitsWidth(t *testing.T) {
	r := New(40, PlainTheme())
	infos := []registry.StrategyInfo{{ID: "strategic", Title: strings.Repeat("very long title ", 6)}}
	for _, line := range strings.Split(r.Strategies(infos), "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line width %d exceeds 40: %q", w, line)
		}
	}
}

func TestNewWidthFallback(t *testing.T) {
	if got := New(0, PlainTheme()).Width(); got != DefaultWidth {
		t.Errorf("Width() = %d, want %d", got, DefaultWidth)
	}
	if got := New(120, PlainTheme()).Width(); got != 120 {
		t.Errorf("Width() = %d, want 120", got)
	}
}
