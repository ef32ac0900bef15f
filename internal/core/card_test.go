package core

import "testing"

func TestCardValue(t *testing.T) {
	tests := []struct {
		card  Card
		value int
		face  bool
	}{
		{NewCard(Ace, Spades), 1, false},
		{NewCard(Two, Hearts), 2, false},
		{NewCard(Nine, Clubs), 9, false},
		{NewCard(Ten, Diamonds), 10, false},
		{NewCard(Jack, Hearts), 0, true},
		{NewCard(Queen, Clubs), 0, true},
		{NewCard(King, Spades), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.card.String(), func(t *testing.T) {
			if got := tt.card.Value(); got != tt.value {
				t.Errorf("Value() = %d, want %d", got, tt.value)
			}
			if got := tt.card.IsFace(); got != tt.face {
				t.Errorf("IsFace() = %v, want %v", got, tt.face)
			}
		})
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in      string
		want    Card
		wantErr bool
	}{
		{in: "10D", want: NewCard(Ten, Diamonds)},
		{in: "2s", want: NewCard(Two, Spades)},
		{in: "AH", want: NewCard(Ace, Hearts)},
		{in: "KC", want: NewCard(King, Clubs)},
		{in: "TD", want: NewCard(Ten, Diamonds)},
		{in: "Q♠", want: NewCard(Queen, Spades)},
		{in: " 7♥ ", want: NewCard(Seven, Hearts)},
		{in: "", wantErr: true},
		{in: "H", wantErr: true},
		{in: "11H", wantErr: true},
		{in: "5X", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCard(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCardTextRoundTrip(t *testing.T) {
	for _, c := range FullDeck() {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", c, err)
		}
		var back Card
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != c {
			t.Errorf("round trip of %v gave %v", c, back)
		}
	}
}

func TestRankPlural(t *testing.T) {
	if Six.Plural() != "Sixes" {
		t.Errorf("Six.Plural() = %q, want Sixes", Six.Plural())
	}
	if Rank(0).Plural() != "Unknown" {
		t.Errorf("invalid rank should be Unknown, got %q", Rank(0).Plural())
	}
}

func TestSumValues(t *testing.T) {
	cards := MustParseCards("AS", "4C", "KD", "10H")
	if got := SumValues(cards); got != 15 {
		t.Errorf("SumValues = %d, want 15", got)
	}
}
