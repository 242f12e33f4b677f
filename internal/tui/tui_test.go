package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/cardrl/env"
	"github.com/lox/cardrl/internal/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return NewModel(env.New(env.WithSeed(1)), display.NewStyles(io.Discard, false), logger)
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelDealsOnCreate(t *testing.T) {
	m := newTestModel(t)
	assert.Len(t, m.Observation().Hand, 13)
	assert.False(t, m.Finished())
	assert.Contains(t, m.View(), "Agent hand:")
	assert.Contains(t, m.View(), "hand 1")
}

func TestModelCursorStaysInHand(t *testing.T) {
	m := newTestModel(t)

	press(m, keyLeft)
	assert.Equal(t, 0, m.cursor)

	for range 20 {
		press(m, keyRight)
	}
	assert.Equal(t, 12, m.cursor)

	press(m, runeKey('h'))
	assert.Equal(t, 11, m.cursor)
}

func TestModelPlaysSelectedCard(t *testing.T) {
	m := newTestModel(t)
	press(m, keyRight)
	chosen := m.Observation().Hand[1]

	press(m, keyEnter)

	require.NotNil(t, m.last)
	assert.NotContains(t, m.Observation().Hand, chosen)
	assert.Len(t, m.Observation().Hand, 12)
	assert.Equal(t, m.last.Reward, m.TotalReward())
	assert.Contains(t, m.View(), "Last trick:")
}

func TestModelPlaysFullHand(t *testing.T) {
	m := newTestModel(t)

	for range 12 {
		press(m, keyRight)
		press(m, keyEnter)
	}
	require.False(t, m.Finished())
	press(m, keyEnter)

	assert.True(t, m.Finished())
	assert.Empty(t, m.Observation().Hand)
	obs := m.Observation()
	assert.Equal(t, float64(obs.TricksWon[env.TeamA]-obs.TricksWon[env.TeamB]), m.TotalReward())
	assert.Contains(t, m.View(), "Hand over")

	// Playing after the hand is over is ignored.
	press(m, keyEnter)
	assert.NoError(t, m.err)

	press(m, runeKey('n'))
	assert.False(t, m.Finished())
	assert.Len(t, m.Observation().Hand, 13)
	assert.Zero(t, m.TotalReward())
	assert.Contains(t, m.View(), "hand 2")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelIgnoresOtherMessages(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Len(t, m.Observation().Hand, 13)
}
