// Package cards encodes the 52-card deck used by the trick-taking
// environment.
//
// A Card is an integer id in [0,51]. The rank is id mod 13 and the suit is
// id div 13, so
//
//	cards.New(cards.Ace, cards.Spades) == cards.Card(51)
//
// Suits only matter for display; tricks are decided on rank alone.
//
// Hands are kept as a Set, a 64-bit bitset with one bit per card id, which
// makes membership tests and removal constant time and keeps iteration in
// ascending id order.
package cards
