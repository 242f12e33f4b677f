package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/cardrl/cards"
	"github.com/lox/cardrl/env"
)

// LowBot always plays the lowest card id it holds.
type LowBot struct {
	logger *log.Logger
}

// NewLowBot creates a new LowBot instance
func NewLowBot(logger *log.Logger) *LowBot {
	return &LowBot{logger: logger}
}

func (b *LowBot) ChooseCard(obs env.Observation) cards.Card {
	card := obs.Hand[0]
	b.logger.Debug("low-bot lowest id", "card", card)
	return card
}
