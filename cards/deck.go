package cards

import rand "math/rand/v2"

// FullSet holds all 52 cards.
const FullSet Set = 1<<DeckSize - 1

// NewDeck returns the 52 card ids in ascending order.
func NewDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i)
	}
	return deck
}

// Shuffle shuffles deck in place using Fisher-Yates driven by rng.
func Shuffle(deck []Card, rng *rand.Rand) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Deal splits deck into players hands of equal size. Hand i receives the
// contiguous block deck[i*size:(i+1)*size]; leftover cards are not dealt.
func Deal(deck []Card, players int) []Set {
	hands := make([]Set, players)
	if players <= 0 {
		return hands
	}
	size := len(deck) / players
	for i := range hands {
		hands[i] = NewSet(deck[i*size : (i+1)*size]...)
	}
	return hands
}
