package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/cardrl/cards"
	"github.com/lox/cardrl/env"
)

// HighBot plays its highest-ranked card, ignoring suit. Ties go to the lowest
// card id.
type HighBot struct {
	logger *log.Logger
}

// NewHighBot creates a new HighBot instance
func NewHighBot(logger *log.Logger) *HighBot {
	return &HighBot{logger: logger}
}

func (b *HighBot) ChooseCard(obs env.Observation) cards.Card {
	best := obs.Hand[0]
	for _, c := range obs.Hand[1:] {
		if c.Rank() > best.Rank() {
			best = c
		}
	}
	b.logger.Debug("high-bot highest rank", "card", best)
	return best
}
