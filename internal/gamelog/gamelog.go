// Package gamelog writes casino engine events to a structured logger.
// Individual plays are logged at debug level; deals, hand scoring and the
// end of the game at info.
package gamelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/casino/internal/casino"
	"github.com/vovakirdan/casino/internal/core"
	"github.com/vovakirdan/casino/internal/rules"
)

// Observer logs every event it receives. It learns player names from
// GameStartedEvent. Use one Observer per game.
type Observer struct {
	logger *log.Logger
	names  [2]string
}

// New returns an Observer that logs to logger.
func New(logger *log.Logger) *Observer {
	return &Observer{logger: logger, names: [2]string{"p0", "p1"}}
}

// NewLogger creates a logger in the CLI's format.
func NewLogger(w io.Writer, level log.Level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// ParseLevel accepts debug, info, warn, error and fatal, case-insensitively.
func ParseLevel(s string) (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("gamelog: %w", err)
	}
	return lvl, nil
}

func (o *Observer) name(id casino.PlayerID) string {
	if !id.Valid() {
		return "none"
	}
	return o.names[id]
}

// OnEvent implements casino.Observer.
func (o *Observer) OnEvent(e casino.Event) {
	switch e := e.(type) {
	case casino.GameStartedEvent:
		o.names = e.Players
		o.logger.Info("game started", "variant", e.Variant, "players", strings.Join(e.Players[:], " vs "), "dealer", o.name(e.Dealer))
	case casino.DealtEvent:
		if len(e.Table) > 0 {
			o.logger.Info("hand dealt", "hand", e.Hand, "table", core.ShortList(e.Table), "deck", e.Remaining)
		} else {
			o.logger.Debug("round dealt", "hand", e.Hand, "round", e.Round, "deck", e.Remaining)
		}
	case casino.CapturedEvent:
		o.logger.Debug("card captured", "player", o.name(e.Player), "played", e.Played, "cards", core.ShortList(e.Cards), "builds", len(e.Builds))
	case casino.SweptEvent:
		o.logger.Debug("sweep", "player", o.name(e.Player), "sweeps", e.Sweeps)
	case casino.TrailedEvent:
		o.logger.Debug("card trailed", "player", o.name(e.Player), "card", e.Card)
	case casino.BuildCreatedEvent:
		o.logger.Debug("build created", "player", o.name(e.Player), "played", e.Played, "value", e.Build.Value, "cards", core.ShortList(e.Build.Cards))
	case casino.BuildModifiedEvent:
		o.logger.Debug("build modified", "player", o.name(e.Player), "played", e.Played,
			"from", e.PreviousValue, "to", e.Build.Value, "previous_owner", o.name(e.PreviousOwner))
	case casino.RoundEndedEvent:
		o.logger.Debug("round ended", "hand", e.Hand, "round", e.Round, "deck", e.DeckRemaining)
	case casino.TableAwardedEvent:
		o.logger.Debug("table awarded", "player", o.name(e.Player), "cards", core.ShortList(e.Cards))
	case casino.BuildAwardedEvent:
		o.logger.Debug("build awarded", "player", o.name(e.Player), "value", e.Build.Value, "cards", core.ShortList(e.Build.Cards))
	case casino.CardsDiscardedEvent:
		o.logger.Debug("cards discarded", "reason", e.Reason, "cards", core.ShortList(e.Cards))
	case casino.HandScoredEvent:
		r := e.Result
		o.logger.Info("hand scored", "hand", r.Hand,
			o.names[0], fmt.Sprintf("+%d=%d", r.Awards[0].Points, r.Scores[0]),
			o.names[1], fmt.Sprintf("+%d=%d", r.Awards[1].Points, r.Scores[1]))
	case casino.DealerSwappedEvent:
		o.logger.Debug("dealer swapped", "dealer", o.name(e.Dealer))
	case casino.GameEndedEvent:
		o.logger.Info("game over", "winner", o.name(e.Winner), "score", fmt.Sprintf("%d-%d", e.Scores[0], e.Scores[1]),
			"breakdown", formatBreakdown(e.Breakdowns[e.Winner]))
	default:
		o.logger.Warn("unknown event", "type", fmt.Sprintf("%T", e))
	}
}

// formatBreakdown renders non-zero categories in scoring order.
func formatBreakdown(b rules.Breakdown) string {
	var parts []string
	for _, cat := range rules.CategoryOrder() {
		if pts := b[cat]; pts != 0 {
			parts = append(parts, fmt.Sprintf("%s %d", cat, pts))
		}
	}
	return strings.Join(parts, ", ")
}
