package env

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction is returned when the agent plays a card it does not
	// hold. The environment is left untouched.
	ErrInvalidAction = errors.New("invalid action")

	// ErrOutOfPhase is returned when Step is called while no hand is in play.
	ErrOutOfPhase = errors.New("step called outside of play")

	ErrNotDealt     = fmt.Errorf("%w: hand not dealt, call Reset", ErrOutOfPhase)
	ErrHandComplete = fmt.Errorf("%w: hand complete, call Reset", ErrOutOfPhase)
	ErrTruncated    = fmt.Errorf("%w: step budget exhausted, call Reset", ErrOutOfPhase)
)
