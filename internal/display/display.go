// Package display renders the table as text. Rendering only reads the
// snapshot it is given.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/cardrl/cards"
	"github.com/lox/cardrl/env"
	"github.com/muesli/termenv"
)

// Snapshot is everything the renderer shows.
type Snapshot struct {
	Observation env.Observation
	HandSizes   [env.NumPlayers]int
	LastTrick   []env.Play
	LastWinner  int
}

// SnapshotOf captures the current state of e.
func SnapshotOf(e *env.Env) Snapshot {
	return Snapshot{
		Observation: e.Observation(),
		HandSizes:   e.HandSizes(),
		LastWinner:  -1,
	}
}

// Styles holds the lipgloss styles bound to one renderer.
type Styles struct {
	Header    lipgloss.Style
	Label     lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Winner    lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles builds styles for output written to w. With color disabled every
// style renders plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Header:    r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true),
		Label:     r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		RedCard:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		BlackCard: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		Winner:    r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Muted:     r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Selected:  r.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFD700")).Bold(true),
		Error:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
}

// Card renders one card in its suit colour.
func (s Styles) Card(c cards.Card) string {
	if c.Suit() == cards.Diamonds || c.Suit() == cards.Hearts {
		return s.RedCard.Render(c.String())
	}
	return s.BlackCard.Render(c.String())
}

// Trick renders plays as "P0:10H P1:2C …", highlighting the winner.
func (s Styles) Trick(plays []env.Play, winner int) string {
	if len(plays) == 0 {
		return s.Muted.Render("-")
	}
	parts := make([]string, len(plays))
	for i, p := range plays {
		seat := fmt.Sprintf("P%d:", p.Seat)
		if p.Seat == winner {
			seat = s.Winner.Render(seat)
		}
		parts[i] = seat + s.Card(p.Card)
	}
	return strings.Join(parts, " ")
}

// Hand renders cards separated by spaces.
func (s Styles) Hand(cs []cards.Card) string {
	if len(cs) == 0 {
		return s.Muted.Render("(empty)")
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = s.Card(c)
	}
	return strings.Join(parts, " ")
}

// Render writes a multi-line summary of snap.
func Render(w io.Writer, styles Styles, snap Snapshot) error {
	obs := snap.Observation
	var b strings.Builder

	fmt.Fprintf(&b, "%s %v\n", styles.Label.Render("Hand sizes:"), snap.HandSizes)
	fmt.Fprintf(&b, "%s Team A (P0,P2)=%d  Team B (P1,P3)=%d\n",
		styles.Label.Render("Tricks won:"), obs.TricksWon[env.TeamA], obs.TricksWon[env.TeamB])
	fmt.Fprintf(&b, "%s Team A (P0,P2)=%d  Team B (P1,P3)=%d\n",
		styles.Label.Render("Tens won:  "), obs.TensWon[env.TeamA], obs.TensWon[env.TeamB])
	fmt.Fprintf(&b, "%s %d\n", styles.Label.Render("Remaining: "), obs.RemainingTricks)
	if len(snap.LastTrick) > 0 {
		fmt.Fprintf(&b, "%s %s\n", styles.Label.Render("Last trick:"), styles.Trick(snap.LastTrick, snap.LastWinner))
	}
	fmt.Fprintf(&b, "%s %s\n",
		styles.Label.Render(fmt.Sprintf("Current trick (leader P%d):", obs.TrickLeader)),
		styles.Trick(obs.CurrentTrick, -1))
	fmt.Fprintf(&b, "%s %s\n", styles.Label.Render("Agent hand:"), styles.Hand(obs.Hand))

	_, err := io.WriteString(w, b.String())
	return err
}
