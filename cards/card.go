package cards

import (
	"fmt"
	"strings"
)

// Card is a card id in [0,51]. The rank is id mod 13 (0=2 … 12=Ace) and the
// suit is id div 13 (0=clubs, 1=diamonds, 2=hearts, 3=spades).
type Card uint8

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// NumRanks is the number of ranks per suit.
const NumRanks = 13

// Rank constants (0-12 for 2-A)
const (
	Two uint8 = iota
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
	Ace
)

// Suit constants
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

var (
	rankLabels = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	suitLabels = [4]string{"C", "D", "H", "S"}
)

// New creates a card from rank and suit.
func New(rank, suit uint8) Card {
	return Card(suit*NumRanks + rank)
}

// Valid reports whether c is a real card id.
func (c Card) Valid() bool {
	return c < DeckSize
}

// Rank returns the rank of the card (0-12).
func (c Card) Rank() uint8 {
	return uint8(c) % NumRanks
}

// Suit returns the suit of the card (0-3).
func (c Card) Suit() uint8 {
	return uint8(c) / NumRanks
}

// IsTen reports whether the card is a ten.
func (c Card) IsTen() bool {
	return c.Valid() && c.Rank() == Ten
}

// String returns the display form, e.g. "10H" or "AS".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	rank, suit := Decode(c)
	return rank + suit
}

// Decode maps a card id to its rank and suit labels. It is meant for display
// only; invalid ids decode to "?".
func Decode(c Card) (rank, suit string) {
	if !c.Valid() {
		return "?", "?"
	}
	return rankLabels[c.Rank()], suitLabels[c.Suit()]
}

// Parse reads a card in display form. Ranks accept "10" or "T", and both parts
// are case-insensitive, so "10h", "Th" and "TH" are the same card.
func Parse(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	rankPart, suitPart := s[:len(s)-1], s[len(s)-1:]
	if rankPart == "T" {
		rankPart = "10"
	}

	rank := -1
	for i, label := range rankLabels {
		if label == rankPart {
			rank = i
			break
		}
	}
	if rank < 0 {
		return 0, fmt.Errorf("invalid rank: %q", rankPart)
	}

	suit := -1
	for i, label := range suitLabels {
		if label == suitPart {
			suit = i
			break
		}
	}
	if suit < 0 {
		return 0, fmt.Errorf("invalid suit: %q", suitPart)
	}

	return New(uint8(rank), uint8(suit)), nil
}

// MustParse is like Parse but panics on error. Intended for tests.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
