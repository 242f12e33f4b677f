package cards

import (
	"testing"

	"github.com/lox/cardrl/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleIsDeterministic(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	Shuffle(a, randutil.New(42))
	Shuffle(b, randutil.New(42))
	assert.Equal(t, a, b)

	c := NewDeck()
	Shuffle(c, randutil.New(43))
	assert.NotEqual(t, a, c)
}

func TestShuffleKeepsEveryCard(t *testing.T) {
	deck := NewDeck()
	Shuffle(deck, randutil.New(7))
	assert.Equal(t, FullSet, NewSet(deck...))
}

func TestDeal(t *testing.T) {
	deck := NewDeck()
	Shuffle(deck, randutil.New(1))

	hands := Deal(deck, 4)
	require.Len(t, hands, 4)

	var union Set
	for i, h := range hands {
		assert.Equal(t, 13, h.Len(), "hand %d", i)
		assert.Zero(t, union&h, "hand %d overlaps an earlier hand", i)
		union |= h
	}
	assert.Equal(t, FullSet, union)
	assert.Equal(t, NewSet(deck[:13]...), hands[0])
}
