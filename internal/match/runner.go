// Package match drives a single casino game between two strategies until it
// ends, and reports the outcome.
package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/registry"
	"github.com/vovakirdan/casino/internal/rules"
)

// DefaultMaxTurns bounds a game when Runner.MaxTurns is zero. A real game
// needs a few hundred turns at most.
const DefaultMaxTurns = 10000

// ErrTurnLimit is returned when a game has not ended within MaxTurns.
var ErrTurnLimit = errors.New("match: turn limit reached")

// EndReason describes why a match stopped.
type EndReason int

const (
	EndCompleted EndReason = iota
	EndTurnLimit
	EndCanceled
)

func (r EndReason) String() string {
	switch r {
	case EndCompleted:
		return "completed"
	case EndTurnLimit:
		return "turn limit"
	case EndCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result is the outcome of one match. Arrays are indexed by seat.
type Result struct {
	ID          uuid.UUID
	Seed        int64
	Variant     string
	Names       [2]string
	Strategies  [2]string
	Scores      [2]int
	Winner      casino.PlayerID
	Reason      EndReason
	Hands       int
	Turns       int
	Fallbacks   int
	Breakdowns  [2]rules.Breakdown
	HandResults []casino.HandResult
	Duration    time.Duration
}

// WinnerName returns the winning seat's name.
func (r Result) WinnerName() string {
	if !r.Winner.Valid() {
		return ""
	}
	return r.Names[r.Winner]
}

// Runner plays one game. Seat 0 leads; seat 1 deals first.
type Runner struct {
	Strategies [2]registry.Strategy
	// Names default to "<strategy> #<seat+1>".
	Names    [2]string
	Config   config.ScoringConfig
	Seed     int64
	Observer casino.Observer
	MaxTurns int
	// Logger receives fallback warnings. Nil discards them.
	Logger *log.Logger
}

// Run plays the game to completion. On cancellation or when the turn limit
// is hit it returns the partial result together with the error.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	for i, s := range r.Strategies {
		if s == nil {
			return Result{}, fmt.Errorf("match: seat %d has no strategy", i)
		}
	}

	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	maxTurns := r.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	res := Result{
		ID:      uuid.New(),
		Seed:    r.Seed,
		Variant: r.Config.Variant,
	}
	for i, s := range r.Strategies {
		res.Strategies[i] = s.ID()
		res.Names[i] = r.Names[i]
		if res.Names[i] == "" {
			res.Names[i] = fmt.Sprintf("%s #%d", s.ID(), i+1)
		}
	}

	opts := []casino.Option{
		casino.WithSeed(r.Seed),
		casino.WithPlayers(
			casino.PlayerSpec{Name: res.Names[0], Kind: casino.AI},
			casino.PlayerSpec{Name: res.Names[1], Kind: casino.AI},
		),
	}
	if r.Observer != nil {
		opts = append(opts, casino.WithObserver(r.Observer))
	}

	start := time.Now()
	g, err := casino.New(r.Config, opts...)
	if err != nil {
		return res, fmt.Errorf("match: %w", err)
	}

	finish := func(reason EndReason) {
		res.Reason = reason
		res.Scores = g.Scores()
		res.HandResults = g.HandResults()
		res.Hands = len(res.HandResults)
		res.Breakdowns = [2]rules.Breakdown{g.Breakdown(0), g.Breakdown(1)}
		res.Duration = time.Since(start)
		if w, ok := g.Winner(); ok {
			res.Winner = w
		} else {
			res.Winner = -1
		}
	}

	for g.Phase() != casino.PhaseGameOver {
		if err := ctx.Err(); err != nil {
			finish(EndCanceled)
			return res, fmt.Errorf("match: %w", err)
		}
		if res.Turns >= maxTurns {
			finish(EndTurnLimit)
			return res, ErrTurnLimit
		}

		seat := g.Current()
		fellBack, err := r.turn(g, seat, logger)
		if err != nil {
			finish(EndCanceled)
			return res, err
		}
		if fellBack {
			res.Fallbacks++
		}
		res.Turns++
	}

	finish(EndCompleted)
	return res, nil
}

// turn asks the seat's strategy for an action and applies it. A rejected or
// missing choice is replaced by the first legal action.
func (r *Runner) turn(g *casino.Game, seat casino.PlayerID, logger *log.Logger) (bool, error) {
	v := g.View(seat)
	if len(v.Legal) == 0 {
		return false, fmt.Errorf("match: seat %d has no legal action", seat)
	}

	strat := r.Strategies[seat]
	a := strat.Choose(v)
	if a != nil {
		err := g.Apply(seat, a)
		if err == nil {
			return false, nil
		}
		logger.Warn("strategy action rejected", "strategy", strat.ID(), "seat", seat, "action", a, "err", err)
	} else {
		logger.Warn("strategy returned no action", "strategy", strat.ID(), "seat", seat)
	}

	if err := g.Apply(seat, v.Legal[0]); err != nil {
		return true, fmt.Errorf("match: fallback %s: %w", v.Legal[0], err)
	}
	return true, nil
}
