package casino

import (
	"github.com/vovakirdan/casino/internal/core"
	"github.com/vovakirdan/casino/internal/rules"
)

// Observer receives every state change the game makes, in order. Calls are
// synchronous; an observer must not call back into the game.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }

type nopObserver struct{}

func (nopObserver) OnEvent(Event) {}

// Event is one of the event types below.
type Event interface {
	gameEvent()
}

// GameStartedEvent is emitted when a game is created or reset.
type GameStartedEvent struct {
	Variant string
	Players [2]string
	Dealer  PlayerID
}

func (GameStartedEvent) gameEvent() {}

// DealtEvent is emitted after cards are dealt. Table is only set when the
// deal also laid out table cards (the start of a hand).
type DealtEvent struct {
	Hand      int
	Round     int
	Table     []core.Card
	Remaining int
}

func (DealtEvent) gameEvent() {}

// CapturedEvent is emitted when a played card takes loose cards or builds.
type CapturedEvent struct {
	Player PlayerID
	Played core.Card
	Cards  []core.Card
	Builds []BuildView
}

func (CapturedEvent) gameEvent() {}

// SweptEvent is emitted when a capture leaves no table cards and no builds.
type SweptEvent struct {
	Player PlayerID
	Sweeps int
}

func (SweptEvent) gameEvent() {}

// TrailedEvent is emitted when a card is laid on the table.
type TrailedEvent struct {
	Player PlayerID
	Card   core.Card
}

func (TrailedEvent) gameEvent() {}

// BuildCreatedEvent is emitted when a player starts a build.
type BuildCreatedEvent struct {
	Player PlayerID
	Played core.Card
	Build  BuildView
}

func (BuildCreatedEvent) gameEvent() {}

// BuildModifiedEvent is emitted when a build is extended.
type BuildModifiedEvent struct {
	Player        PlayerID
	Played        core.Card
	PreviousOwner PlayerID
	PreviousValue int
	Build         BuildView
}

func (BuildModifiedEvent) gameEvent() {}

// RoundEndedEvent is emitted after both players have played their 4 cards.
type RoundEndedEvent struct {
	Hand          int
	Round         int
	DeckRemaining int
}

func (RoundEndedEvent) gameEvent() {}

// TableAwardedEvent is emitted when leftover loose cards go to the last
// player to capture.
type TableAwardedEvent struct {
	Player PlayerID
	Cards  []core.Card
}

func (TableAwardedEvent) gameEvent() {}

// BuildAwardedEvent is emitted when a leftover build goes to its owner.
type BuildAwardedEvent struct {
	Player PlayerID
	Build  BuildView
}

func (BuildAwardedEvent) gameEvent() {}

// CardsDiscardedEvent is emitted when cards leave play unscored.
type CardsDiscardedEvent struct {
	Cards  []core.Card
	Reason string
}

func (CardsDiscardedEvent) gameEvent() {}

// HandScoredEvent is emitted once per hand, after the deck runs out.
type HandScoredEvent struct {
	Result HandResult
}

func (HandScoredEvent) gameEvent() {}

// DealerSwappedEvent is emitted after scoring.
type DealerSwappedEvent struct {
	Dealer PlayerID
}

func (DealerSwappedEvent) gameEvent() {}

// GameEndedEvent is emitted when a player reaches the win score.
type GameEndedEvent struct {
	Winner     PlayerID
	Scores     [2]int
	Breakdowns [2]rules.Breakdown
}

func (GameEndedEvent) gameEvent() {}
