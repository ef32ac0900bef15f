package core

import (
	"fmt"
	"math/rand"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// FullDeck returns the 52 unique cards ordered by suit, then rank.
func FullDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// Deck is an ordered pile of unique cards. The top of the deck is the end of
// the slice; draws remove from there.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full, unshuffled 52-card deck. rng drives Shuffle; a nil
// rng gets a fixed seed so behavior stays reproducible.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return &Deck{cards: FullDeck(), rng: rng}
}

// NewStackedDeck creates a deck that deals cards in exactly the given order
// (cards[0] is drawn first). Duplicates are rejected.
func NewStackedDeck(cards []Card, rng *rand.Rand) (*Deck, error) {
	seen := make(map[Card]bool, len(cards))
	stack := make([]Card, len(cards))
	for i, c := range cards {
		if !c.Rank.Valid() || c.Suit < Hearts || c.Suit > Spades {
			return nil, fmt.Errorf("core: invalid card at position %d", i)
		}
		if seen[c] {
			return nil, fmt.Errorf("core: duplicate card %s in stacked deck", c)
		}
		seen[c] = true
		stack[len(cards)-1-i] = c
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return &Deck{cards: stack, rng: rng}, nil
}

// Shuffle permutes the remaining cards uniformly at random.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	last := len(d.cards) - 1
	card = d.cards[last]
	d.cards = d.cards[:last]
	return card, true
}

// DrawN draws up to n cards. Fewer are returned when the deck runs out.
func (d *Deck) DrawN(n int) []Card {
	if n <= 0 {
		return nil
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}
	drawn := make([]Card, 0, n)
	for range n {
		c, _ := d.Draw()
		drawn = append(drawn, c)
	}
	return drawn
}

// Remaining returns the number of cards left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns the remaining cards in draw order (next draw first).
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	for i, c := range d.cards {
		out[len(d.cards)-1-i] = c
	}
	return out
}

// Reset restores the full unshuffled 52-card deck.
func (d *Deck) Reset() {
	d.cards = FullDeck()
}
