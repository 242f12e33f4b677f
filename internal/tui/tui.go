// Package tui lets a person sit in the agent's seat and play a hand in the
// terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/cardrl/env"
	"github.com/lox/cardrl/internal/display"
)

// Model is the Bubble Tea model for interactive play.
type Model struct {
	env    *env.Env
	logger *log.Logger
	styles display.Styles
	keys   keyMap
	help   help.Model

	obs         env.Observation
	cursor      int
	last        *env.StepResult
	totalReward float64
	hands       int
	err         error
	quitting    bool
}

// NewModel deals a hand on e and returns a model ready to run. Styles should
// be built for the writer the program renders to.
func NewModel(e *env.Env, styles display.Styles, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Model{
		env:    e,
		logger: logger,
		styles: styles,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.deal()
	return m
}

func (m *Model) deal() {
	m.obs = m.env.Reset()
	m.cursor = 0
	m.last = nil
	m.totalReward = 0
	m.err = nil
	m.hands++
	m.logger.Debug("New hand", "hand", m.hands)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Deal):
		m.deal()

	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor < len(m.obs.Hand)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Play):
		m.play()
	}

	return m, nil
}

func (m *Model) play() {
	if m.Finished() {
		return
	}

	card := m.obs.Hand[m.cursor]
	res, err := m.env.Step(card)
	if err != nil {
		m.err = err
		m.logger.Warn("Step rejected", "card", card, "error", err)
		return
	}

	m.err = nil
	m.last = &res
	m.obs = res.Observation
	m.totalReward += res.Reward
	m.cursor = min(m.cursor, max(len(m.obs.Hand)-1, 0))
	m.logger.Debug("Trick played", "card", card, "winner", res.Info.Winner, "reward", res.Reward)
}

// Finished reports whether the current hand is over.
func (m *Model) Finished() bool {
	return m.env.Phase() == env.PhaseHandComplete
}

// Observation returns the latest observation.
func (m *Model) Observation() env.Observation {
	return m.obs
}

// TotalReward returns the summed reward of the current hand.
func (m *Model) TotalReward() float64 {
	return m.totalReward
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(fmt.Sprintf(" cardrl • hand %d ", m.hands)))
	b.WriteString("\n\n")

	snap := display.Snapshot{
		Observation: m.obs,
		HandSizes:   m.env.HandSizes(),
		LastWinner:  -1,
	}
	if m.last != nil {
		snap.LastTrick = m.last.Info.Trick
		snap.LastWinner = m.last.Info.Winner
	}
	if err := display.Render(&b, m.styles, snap); err != nil {
		m.logger.Error("Render failed", "error", err)
	}
	b.WriteString("\n")

	if m.Finished() {
		fmt.Fprintf(&b, "Hand over. Total reward %+.0f. Press n for a new hand.\n", m.totalReward)
	} else {
		b.WriteString(m.renderSelector())
		b.WriteString("\n")
	}
	if m.last != nil {
		fmt.Fprintf(&b, "Last reward %+.0f\n", m.last.Reward)
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderSelector() string {
	parts := make([]string, len(m.obs.Hand))
	for i, c := range m.obs.Hand {
		if i == m.cursor {
			parts[i] = m.styles.Selected.Render("[" + c.String() + "]")
			continue
		}
		parts[i] = " " + m.styles.Card(c) + " "
	}
	return "Play: " + strings.Join(parts, "")
}

// Run starts an interactive session on the terminal.
func Run(e *env.Env, styles display.Styles, logger *log.Logger) error {
	if _, err := tea.NewProgram(NewModel(e, styles, logger), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
