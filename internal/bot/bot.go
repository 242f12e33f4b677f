// Package bot provides agent policies for driving seat 0 of the environment
// from the CLI and rollouts.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/lox/cardrl/cards"
	"github.com/lox/cardrl/env"
)

// Agent chooses the card seat 0 plays. Implementations must return a card
// from obs.Hand; obs.Hand is never empty when ChooseCard is called.
type Agent interface {
	ChooseCard(obs env.Observation) cards.Card
}

// Bot names accepted by New.
const (
	Low  = "low"
	High = "high"
	Rand = "rand"
)

var constructors = map[string]func(rng *rand.Rand, logger *log.Logger) Agent{
	Low:  func(_ *rand.Rand, logger *log.Logger) Agent { return NewLowBot(logger) },
	High: func(_ *rand.Rand, logger *log.Logger) Agent { return NewHighBot(logger) },
	Rand: func(rng *rand.Rand, logger *log.Logger) Agent { return NewRandBot(rng, logger) },
}

// Names returns the registered bot names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the named bot. rng is only used by bots that randomise.
func New(name string, rng *rand.Rand, logger *log.Logger) (Agent, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q (want one of %v)", name, Names())
	}
	return ctor(rng, logger), nil
}
