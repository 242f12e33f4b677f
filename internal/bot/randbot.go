package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/cardrl/cards"
	"github.com/lox/cardrl/env"
)

// RandBot plays a uniformly random card from its hand
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) ChooseCard(obs env.Observation) cards.Card {
	card := obs.Hand[r.rng.IntN(len(obs.Hand))]
	r.logger.Debug("rand-bot random card", "card", card)
	return card
}
