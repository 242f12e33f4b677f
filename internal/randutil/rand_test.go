package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 100 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewDiffersBySeed(t *testing.T) {
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestDerive(t *testing.T) {
	assert.Equal(t, Derive(7, 1), Derive(7, 1))
	assert.NotEqual(t, Derive(7, 1), Derive(7, 2))
	assert.NotEqual(t, Derive(7, 1), Derive(8, 1))
}
