package env

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/cardrl/cards"
	"github.com/lox/cardrl/internal/randutil"
)

// Env is a single hand of the trick-taking game. It is not safe for
// concurrent use; parallel rollouts should give each worker its own Env.
type Env struct {
	rng    *rand.Rand
	reward RewardFunc
	logger *log.Logger

	phase    Phase
	hands    [NumPlayers]cards.Set
	trick    []Play
	leader   int
	tricks   [2]int
	tens     [2]int
	resolved int
}

// Option configures an Env.
type Option func(*Env)

// WithSeed seeds the environment's random source. The seed is used by Reset;
// ResetSeed replaces it.
func WithSeed(seed int64) Option {
	return func(e *Env) {
		e.rng = randutil.New(seed)
	}
}

// WithReward replaces the default per-trick reward.
func WithReward(fn RewardFunc) Option {
	return func(e *Env) {
		if fn != nil {
			e.reward = fn
		}
	}
}

// WithLogger sets the logger used for trick-level debug output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Env) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an environment awaiting its first deal.
func New(opts ...Option) *Env {
	e := &Env{
		reward: TrickReward,
		logger: log.New(io.Discard),
		phase:  PhaseAwaitingDeal,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = randutil.NewEntropy()
	}
	return e
}

// Reset deals a new hand using the environment's current random stream.
func (e *Env) Reset() Observation {
	deck := cards.NewDeck()
	cards.Shuffle(deck, e.rng)
	copy(e.hands[:], cards.Deal(deck, NumPlayers))

	e.trick = e.trick[:0]
	e.leader = AgentSeat
	e.tricks = [2]int{}
	e.tens = [2]int{}
	e.resolved = 0
	e.phase = PhaseAwaitingAction

	e.logger.Debug("Dealt hand", "agent", e.hands[AgentSeat])
	return e.Observation()
}

// ResetSeed reseeds the random source and deals a new hand. Equal seeds
// followed by equal actions yield equal episodes.
func (e *Env) ResetSeed(seed int64) Observation {
	e.rng = randutil.New(seed)
	return e.Reset()
}

// Step plays action from the agent's hand, lets the scripted seats play, and
// resolves the trick. Every seat plays once in table order starting with the
// trick leader; the agent's card is committed up front.
//
// If the call fails nothing has changed: the hand stays in play and the agent
// may retry with a card it holds.
func (e *Env) Step(action cards.Card) (StepResult, error) {
	switch e.phase {
	case PhaseAwaitingDeal:
		return StepResult{}, ErrNotDealt
	case PhaseHandComplete:
		return StepResult{}, ErrHandComplete
	}
	if !e.hands[AgentSeat].Contains(action) {
		return StepResult{}, fmt.Errorf("%w: card %s (%d) not in hand %s",
			ErrInvalidAction, action, uint8(action), e.hands[AgentSeat])
	}

	leader := e.leader
	for i := range NumPlayers {
		seat := (leader + i) % NumPlayers
		card := action
		if seat != AgentSeat {
			card = e.scriptedPlay(seat)
		}
		e.hands[seat] = e.hands[seat].Remove(card)
		e.trick = append(e.trick, Play{Seat: seat, Card: card})
	}

	outcome := e.resolveTrick()
	reward := e.reward(outcome)

	return StepResult{
		Observation: e.Observation(),
		Reward:      reward,
		Terminated:  outcome.Final,
		Info: Info{
			Trick:       outcome.Trick,
			Leader:      leader,
			Winner:      outcome.Winner,
			WinningCard: outcome.WinningCard,
			WinningTeam: outcome.WinningTeam,
		},
	}, nil
}

// scriptedPlay picks a card uniformly at random from seat's hand.
func (e *Env) scriptedPlay(seat int) cards.Card {
	hand := e.hands[seat]
	return hand.Nth(e.rng.IntN(hand.Len()))
}

// resolveTrick scores the complete trick and clears it. The highest rank wins;
// among equal ranks the earliest play wins.
func (e *Env) resolveTrick() Outcome {
	best := e.trick[0]
	tens := 0
	for _, p := range e.trick {
		if p.Card.Rank() > best.Card.Rank() {
			best = p
		}
		if p.Card.IsTen() {
			tens++
		}
	}

	team := TeamOf(best.Seat)
	e.tricks[team]++
	e.tens[team] += tens
	e.resolved++
	e.leader = best.Seat

	played := make([]Play, len(e.trick))
	copy(played, e.trick)
	e.trick = e.trick[:0]

	final := e.resolved == TricksPerHand
	if final {
		e.phase = PhaseHandComplete
	}

	e.logger.Debug("Trick resolved",
		"trick", e.resolved,
		"winner", best.Seat,
		"card", best.Card,
		"team", team,
		"tricks_a", e.tricks[TeamA],
		"tricks_b", e.tricks[TeamB])

	return Outcome{
		Trick:       played,
		Winner:      best.Seat,
		WinningCard: best.Card,
		WinningTeam: team,
		Tens:        tens,
		TrickNumber: e.resolved,
		Final:       final,
	}
}

// Observation returns a copy of the agent's current view.
func (e *Env) Observation() Observation {
	trick := make([]Play, len(e.trick))
	copy(trick, e.trick)
	return Observation{
		Hand:            e.hands[AgentSeat].Cards(),
		CurrentTrick:    trick,
		TrickLeader:     e.leader,
		TricksWon:       e.tricks,
		TensWon:         e.tens,
		RemainingTricks: TricksPerHand - e.resolved,
	}
}

// Phase returns the current state of the hand.
func (e *Env) Phase() Phase {
	return e.phase
}

// HandSizes returns how many cards each seat holds.
func (e *Env) HandSizes() [NumPlayers]int {
	var sizes [NumPlayers]int
	for i, h := range e.hands {
		sizes[i] = h.Len()
	}
	return sizes
}

// LegalActions returns the cards the agent may play, ascending. It is empty
// when no hand is in play.
func (e *Env) LegalActions() []cards.Card {
	if e.phase != PhaseAwaitingAction {
		return []cards.Card{}
	}
	return e.hands[AgentSeat].Cards()
}

// ActionMask marks the legal actions by card id.
func (e *Env) ActionMask() [cards.DeckSize]bool {
	var mask [cards.DeckSize]bool
	for _, c := range e.LegalActions() {
		mask[c] = true
	}
	return mask
}
