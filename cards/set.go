package cards

import (
	"math/bits"
	"strings"
)

// Set is a collection of cards stored as a bitset: card id i occupies bit i.
// Iteration is always in ascending id order.
type Set uint64

// NewSet builds a set from the given cards. Invalid ids are ignored.
func NewSet(cs ...Card) Set {
	var s Set
	for _, c := range cs {
		s = s.Add(c)
	}
	return s
}

// Add returns s with c included.
func (s Set) Add(c Card) Set {
	if !c.Valid() {
		return s
	}
	return s | Set(1)<<c
}

// Remove returns s with c excluded.
func (s Set) Remove(c Card) Set {
	if !c.Valid() {
		return s
	}
	return s &^ (Set(1) << c)
}

// Contains reports whether c is in s.
func (s Set) Contains(c Card) bool {
	return c.Valid() && s&(Set(1)<<c) != 0
}

// Len returns the number of cards in s.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether s holds no cards.
func (s Set) Empty() bool {
	return s == 0
}

// Nth returns the i-th card of s in ascending order. It panics if i is out of
// range.
func (s Set) Nth(i int) Card {
	if i < 0 || i >= s.Len() {
		panic("cards: Set.Nth index out of range")
	}
	v := uint64(s)
	for range i {
		v &= v - 1
	}
	return Card(bits.TrailingZeros64(v))
}

// Cards returns the cards of s in ascending id order.
func (s Set) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, Card(bits.TrailingZeros64(v)))
	}
	return out
}

func (s Set) String() string {
	parts := make([]string, 0, s.Len())
	for _, c := range s.Cards() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
