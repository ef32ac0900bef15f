// Package core provides the fundamental card types shared by every layer of
// the casino engine. It has no external dependencies so that the rules code
// stays pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Suit is one of the four French suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-character suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank is a card rank from Ace to King.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank from Ace to King.
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankPlurals = [...]string{"", "Aces", "Twos", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights", "Nines", "Tens", "Jacks", "Queens", "Kings"}

var rankShort = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Valid reports whether r is between Ace and King.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the rank name ("Ace", "Ten", "King").
func (r Rank) String() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r]
}

// Plural returns the plural rank name used for scoring categories ("Aces").
func (r Rank) Plural() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankPlurals[r]
}

// Short returns the one or two character rank notation ("A", "10", "K").
func (r Rank) Short() string {
	if !r.Valid() {
		return "?"
	}
	return rankShort[r]
}

// ParseRank accepts a rank name ("ace", "Ten") or short notation ("A", "10").
func ParseRank(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	for _, r := range Ranks {
		if strings.EqualFold(s, rankNames[r]) || strings.EqualFold(s, rankShort[r]) {
			return r, nil
		}
	}
	if strings.EqualFold(s, "T") {
		return Ten, nil
	}
	return 0, fmt.Errorf("core: unknown rank %q", s)
}

// Card is an immutable playing card. Two cards are the same card when suit and
// rank are equal; a standard deck holds exactly one of each.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card.
func NewCard(r Rank, s Suit) Card {
	return Card{Suit: s, Rank: r}
}

// Value returns the capture value: Ace=1, Two..Ten face value, courts 0.
func (c Card) Value() int {
	if c.Rank >= Ace && c.Rank <= Ten {
		return int(c.Rank)
	}
	return 0
}

// IsFace reports whether the card is a Jack, Queen or King.
func (c Card) IsFace() bool {
	return c.Rank == Jack || c.Rank == Queen || c.Rank == King
}

// String returns the long form, e.g. "Ten of Diamonds".
func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Short returns the compact form with a suit symbol, e.g. "10♦".
func (c Card) Short() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// MarshalText encodes the card in letter notation ("10D", "2S").
func (c Card) MarshalText() ([]byte, error) {
	if !c.Rank.Valid() {
		return nil, fmt.Errorf("core: cannot encode card with rank %d", int(c.Rank))
	}
	letters := [...]string{"H", "D", "C", "S"}
	if c.Suit < Hearts || c.Suit > Spades {
		return nil, fmt.Errorf("core: cannot encode card with suit %d", int(c.Suit))
	}
	return []byte(c.Rank.Short() + letters[c.Suit]), nil
}

// UnmarshalText decodes letter notation, see ParseCard.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses "10D", "2S", "AH", "KC" (suit letter last, case-insensitive)
// and also accepts suit symbols ("10♦").
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("core: empty card")
	}

	var suit Suit
	var rankPart string
	switch {
	case strings.HasSuffix(s, "♥"):
		suit, rankPart = Hearts, strings.TrimSuffix(s, "♥")
	case strings.HasSuffix(s, "♦"):
		suit, rankPart = Diamonds, strings.TrimSuffix(s, "♦")
	case strings.HasSuffix(s, "♣"):
		suit, rankPart = Clubs, strings.TrimSuffix(s, "♣")
	case strings.HasSuffix(s, "♠"):
		suit, rankPart = Spades, strings.TrimSuffix(s, "♠")
	default:
		rankPart = s[:len(s)-1]
		switch strings.ToUpper(s[len(s)-1:]) {
		case "H":
			suit = Hearts
		case "D":
			suit = Diamonds
		case "C":
			suit = Clubs
		case "S":
			suit = Spades
		default:
			return Card{}, fmt.Errorf("core: unknown suit in card %q", s)
		}
	}

	rank, err := ParseRank(rankPart)
	if err != nil {
		return Card{}, fmt.Errorf("core: bad card %q: %w", s, err)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustParseCards parses a list of cards and panics on the first bad one.
// Intended for tests and static tables.
func MustParseCards(specs ...string) []Card {
	cards := make([]Card, len(specs))
	for i, s := range specs {
		c, err := ParseCard(s)
		if err != nil {
			panic(err)
		}
		cards[i] = c
	}
	return cards
}

// SumValues adds up the capture values of cards.
func SumValues(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}

// ShortList renders cards in compact form separated by spaces.
func ShortList(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}
