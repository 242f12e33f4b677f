package env

import "github.com/lox/cardrl/cards"

// Table constants.
const (
	NumPlayers    = 4
	TricksPerHand = cards.DeckSize / NumPlayers

	// AgentSeat is the seat controlled by the caller of Step.
	AgentSeat = 0
)

// Phase is the state of the hand state machine.
type Phase int

const (
	PhaseAwaitingDeal Phase = iota
	PhaseAwaitingAction
	PhaseHandComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingDeal:
		return "awaiting-deal"
	case PhaseAwaitingAction:
		return "awaiting-action"
	case PhaseHandComplete:
		return "hand-complete"
	default:
		return "unknown"
	}
}

// Team identifies a partnership. Seats 0 and 2 are TeamA, seats 1 and 3 are
// TeamB.
type Team int

const (
	TeamA Team = 0
	TeamB Team = 1
)

// TeamOf returns the team a seat plays for.
func TeamOf(seat int) Team {
	return Team(seat % 2)
}

func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	default:
		return "?"
	}
}

// Play is one card laid in a trick.
type Play struct {
	Seat int        `json:"seat"`
	Card cards.Card `json:"card"`
}

// Observation is the agent's view of the table. It is a copy; mutating it has
// no effect on the environment.
type Observation struct {
	Hand            []cards.Card `json:"hand"`
	CurrentTrick    []Play       `json:"current_trick"`
	TrickLeader     int          `json:"trick_leader"`
	TricksWon       [2]int       `json:"tricks_won"`
	TensWon         [2]int       `json:"tens_won"`
	RemainingTricks int          `json:"remaining_tricks"`
}

// Outcome describes a resolved trick. It is what reward functions see.
type Outcome struct {
	Trick       []Play
	Winner      int
	WinningCard cards.Card
	WinningTeam Team
	Tens        int
	TrickNumber int // 1-based
	Final       bool
}

// RewardFunc maps a resolved trick to the reward reported by Step.
type RewardFunc func(Outcome) float64

// TrickReward is the default reward: +1 when the agent's team takes the trick,
// -1 otherwise.
func TrickReward(o Outcome) float64 {
	if o.WinningTeam == TeamOf(AgentSeat) {
		return 1
	}
	return -1
}

// Info carries debugging data about the trick resolved by a step.
type Info struct {
	Trick       []Play     `json:"trick"`
	Leader      int        `json:"leader"`
	Winner      int        `json:"winner"`
	WinningCard cards.Card `json:"winning_card"`
	WinningTeam Team       `json:"winning_team"`
}

// StepResult is everything returned by a successful Step.
type StepResult struct {
	Observation Observation
	Reward      float64
	Terminated  bool
	Truncated   bool
	Info        Info
}

// Environment is the step contract shared by Env and its wrappers.
type Environment interface {
	Reset() Observation
	ResetSeed(seed int64) Observation
	Step(action cards.Card) (StepResult, error)
}
