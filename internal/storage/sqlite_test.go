package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/match"
	"github.com/vovakirdan/casino/internal/registry"
	"github.com/vovakirdan/casino/internal/rules"
	"github.com/vovakirdan/casino/internal/strategy"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// fakeResult builds a two-hand result without playing.
func fakeResult(strategies [2]string, scores [2]int, winner casino.PlayerID) match.Result {
	hand := func(n int, a, b rules.Breakdown) casino.HandResult {
		hr := casino.HandResult{Hand: n}
		hr.Awards[0] = rules.Award{Points: a.Total(), Breakdown: a}
		hr.Awards[1] = rules.Award{Points: b.Total(), Breakdown: b}
		return hr
	}
	return match.Result{
		ID:         uuid.New(),
		Seed:       9,
		Variant:    config.VariantStandard,
		Names:      [2]string{strategies[0] + " #1", strategies[1] + " #2"},
		Strategies: strategies,
		Scores:     scores,
		Winner:     winner,
		Reason:     match.EndCompleted,
		Hands:      2,
		Turns:      96,
		Duration:   1500 * time.Millisecond,
		HandResults: []casino.HandResult{
			hand(1,
				rules.Breakdown{rules.CatMostCards: 3, rules.CatBigCasino: 2},
				rules.Breakdown{rules.CatMostSpades: 1, rules.CatSweeps: 1}),
			hand(2,
				rules.Breakdown{rules.CatMostCards: 3, rules.CatSweeps: 2},
				rules.Breakdown{rules.CatLittleCasino: 1}),
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsGames(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveGame(fakeResult([2]string{"greedy", "random"}, [2]int{21, 4}, 0)); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Errorf("Expected 1 game after reopen, got %d", len(games))
	}
}

func TestSaveAndLoadGame(t *testing.T) {
	store := openTemp(t)
	res := fakeResult([2]string{"strategic", "greedy"}, [2]int{10, 3}, 0)

	if err := store.SaveGame(res); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	got, err := store.GameByID(res.ID.String())
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("GameByID() returned nil")
	}

	if got.Variant != res.Variant || got.Seed != res.Seed {
		t.Errorf("variant/seed = %s/%d, want %s/%d", got.Variant, got.Seed, res.Variant, res.Seed)
	}
	if got.Names != res.Names || got.Strategies != res.Strategies || got.Scores != res.Scores {
		t.Errorf("got %+v, want names %v strategies %v scores %v", got, res.Names, res.Strategies, res.Scores)
	}
	if got.Winner != 0 || got.WinnerName() != "strategic #1" {
		t.Errorf("winner = %d (%q)", got.Winner, got.WinnerName())
	}
	if got.EndReason != "completed" || got.Hands != 2 || got.Turns != 96 {
		t.Errorf("reason/hands/turns = %s/%d/%d", got.EndReason, got.Hands, got.Turns)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	missing, err := store.GameByID("no-such-game")
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown game")
	}
}

func TestSaveGameRejectsDuplicateID(t *testing.T) {
	store := openTemp(t)
	res := fakeResult([2]string{"greedy", "greedy"}, [2]int{21, 20}, 0)

	if err := store.SaveGame(res); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if err := store.SaveGame(res); err == nil {
		t.Fatal("expected error for duplicate game ID")
	}

	bd, err := store.GameBreakdown(res.ID.String())
	if err != nil {
		t.Fatalf("GameBreakdown() failed: %v", err)
	}
	if bd[0].Total() != 10 {
		t.Errorf("failed save left hand scores behind: total %d", bd[0].Total())
	}
}

func TestGameBreakdown(t *testing.T) {
	store := openTemp(t)
	res := fakeResult([2]string{"greedy", "random"}, [2]int{10, 3}, 0)
	if err := store.SaveGame(res); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	bd, err := store.GameBreakdown(res.ID.String())
	if err != nil {
		t.Fatalf("GameBreakdown() failed: %v", err)
	}

	tests := []struct {
		seat int
		cat  rules.Category
		want int
	}{
		{0, rules.CatMostCards, 6},
		{0, rules.CatBigCasino, 2},
		{0, rules.CatSweeps, 2},
		{1, rules.CatMostSpades, 1},
		{1, rules.CatSweeps, 1},
		{1, rules.CatLittleCasino, 1},
		{1, rules.CatMostCards, 0},
	}
	for _, tt := range tests {
		if got := bd[tt.seat][tt.cat]; got != tt.want {
			t.Errorf("seat %d %s = %d, want %d", tt.seat, tt.cat, got, tt.want)
		}
	}
	if bd[0].Total() != res.Scores[0] || bd[1].Total() != res.Scores[1] {
		t.Errorf("totals = %d/%d, want %v", bd[0].Total(), bd[1].Total(), res.Scores)
	}
}

func TestRecentGamesOrderAndLimit(t *testing.T) {
	store := openTemp(t)

	var ids []string
	for i := range 5 {
		res := fakeResult([2]string{"greedy", "random"}, [2]int{21, i}, 0)
		ids = append(ids, res.ID.String())
		if err := store.SaveGame(res); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := store.RecentGames(3)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(games))
	}
	for i, g := range games {
		if want := ids[len(ids)-1-i]; g.ID != want {
			t.Errorf("games[%d] = %s, want %s", i, g.ID, want)
		}
	}
}

func TestStrategyStats(t *testing.T) {
	store := openTemp(t)

	saves := []match.Result{
		fakeResult([2]string{"greedy", "random"}, [2]int{21, 5}, 0),
		fakeResult([2]string{"random", "greedy"}, [2]int{8, 22}, 1),
		fakeResult([2]string{"random", "greedy"}, [2]int{21, 10}, 0),
	}
	for _, res := range saves {
		if err := store.SaveGame(res); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	stats, err := store.StrategyStats()
	if err != nil {
		t.Fatalf("StrategyStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 strategies, got %d", len(stats))
	}

	greedy, random := stats[0], stats[1]
	if greedy.Strategy != "greedy" || random.Strategy != "random" {
		t.Fatalf("unexpected order: %s, %s", greedy.Strategy, random.Strategy)
	}
	if greedy.Games != 3 || greedy.Wins != 2 {
		t.Errorf("greedy = %d/%d, want 2/3", greedy.Wins, greedy.Games)
	}
	if random.Games != 3 || random.Wins != 1 {
		t.Errorf("random = %d/%d, want 1/3", random.Wins, random.Games)
	}
	if greedy.AvgScore != 53.0/3 {
		t.Errorf("greedy AvgScore = %v", greedy.AvgScore)
	}
	if got := greedy.WinRate(); got < 0.66 || got > 0.67 {
		t.Errorf("WinRate() = %v", got)
	}
	if (StrategyStats{}).WinRate() != 0 {
		t.Error("WinRate() of empty stats should be 0")
	}
}

func TestClearGames(t *testing.T) {
	store := openTemp(t)
	res := fakeResult([2]string{"greedy", "random"}, [2]int{21, 5}, 0)
	if err := store.SaveGame(res); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	if err := store.ClearGames(); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("Expected no games, got %d", len(games))
	}
	bd, err := store.GameBreakdown(res.ID.String())
	if err != nil {
		t.Fatalf("GameBreakdown() failed: %v", err)
	}
	if len(bd[0])+len(bd[1]) != 0 {
		t.Error("hand scores survived ClearGames()")
	}
}

func TestSavePlayedGame(t *testing.T) {
	store := openTemp(t)

	r := &match.Runner{
		Strategies: [2]registry.Strategy{strategy.NewGreedy(1), strategy.NewRandom(2)},
		Config:     config.DefaultConnecticut(),
		Seed:       5,
	}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if err := store.SaveGame(res); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	bd, err := store.GameBreakdown(res.ID.String())
	if err != nil {
		t.Fatalf("GameBreakdown() failed: %v", err)
	}
	for seat := range 2 {
		if bd[seat].Total() != res.Scores[seat] {
			t.Errorf("seat %d stored total %d, want %d", seat, bd[seat].Total(), res.Scores[seat])
		}
	}
}
