package casino

import (
	"fmt"

	"github.com/vovakirdan/casino/internal/core"
)

// Zone is where a card currently lives.
type Zone int

const (
	ZoneDeck Zone = iota
	ZoneHand
	ZoneTable
	ZoneBuild
	ZoneCaptured
	ZoneDiscard
)

func (z Zone) String() string {
	switch z {
	case ZoneDeck:
		return "deck"
	case ZoneHand:
		return "hand"
	case ZoneTable:
		return "table"
	case ZoneBuild:
		return "build"
	case ZoneCaptured:
		return "captured"
	case ZoneDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// Location tags a card with its zone. Owner is set for hand and captured
// zones, BuildID for the build zone.
type Location struct {
	Zone    Zone
	Owner   PlayerID
	BuildID int
}

func (l Location) String() string {
	switch l.Zone {
	case ZoneHand, ZoneCaptured:
		return fmt.Sprintf("%s(p%d)", l.Zone, l.Owner)
	case ZoneBuild:
		return fmt.Sprintf("build(#%d)", l.BuildID)
	default:
		return l.Zone.String()
	}
}

var (
	inDeck    = Location{Zone: ZoneDeck}
	onTable   = Location{Zone: ZoneTable}
	discarded = Location{Zone: ZoneDiscard}
)

func inHand(p PlayerID) Location     { return Location{Zone: ZoneHand, Owner: p} }
func capturedBy(p PlayerID) Location { return Location{Zone: ZoneCaptured, Owner: p} }
func inBuild(id int) Location        { return Location{Zone: ZoneBuild, BuildID: id} }

// ledger is the single record of where every card of the deck is.
type ledger map[core.Card]Location

func newLedger() ledger {
	return make(ledger, core.DeckSize)
}

// resetTo places the given cards in the deck and every other card of a full
// deck in the discard.
func (l ledger) resetTo(deck []core.Card) {
	for _, c := range core.FullDeck() {
		l[c] = discarded
	}
	for _, c := range deck {
		l[c] = inDeck
	}
}

// move relocates c. A card found anywhere other than from means the game
// state is corrupt, which is a programming error.
func (l ledger) move(c core.Card, from, to Location) {
	cur, ok := l[c]
	if !ok || cur != from {
		panic(fmt.Sprintf("casino: ledger: %s is in %s, expected %s", c, cur, from))
	}
	l[c] = to
}

// count returns how many cards sit in zones matching loc.
func (l ledger) count(loc Location) int {
	n := 0
	for _, at := range l {
		if at == loc {
			n++
		}
	}
	return n
}
