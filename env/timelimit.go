package env

import "github.com/lox/cardrl/cards"

// TimeLimit wraps an Environment with an external step budget. When the
// budget runs out before the hand terminates, the step is reported as
// truncated and further steps fail until the next reset.
type TimeLimit struct {
	inner     Environment
	maxSteps  int
	steps     int
	truncated bool
}

var _ Environment = (*TimeLimit)(nil)

// NewTimeLimit limits inner to maxSteps successful steps per episode. A
// non-positive maxSteps disables the limit.
func NewTimeLimit(inner Environment, maxSteps int) *TimeLimit {
	return &TimeLimit{inner: inner, maxSteps: maxSteps}
}

func (t *TimeLimit) Reset() Observation {
	t.steps, t.truncated = 0, false
	return t.inner.Reset()
}

func (t *TimeLimit) ResetSeed(seed int64) Observation {
	t.steps, t.truncated = 0, false
	return t.inner.ResetSeed(seed)
}

func (t *TimeLimit) Step(action cards.Card) (StepResult, error) {
	if t.truncated {
		return StepResult{}, ErrTruncated
	}

	res, err := t.inner.Step(action)
	if err != nil {
		return res, err
	}

	t.steps++
	if t.maxSteps > 0 && t.steps >= t.maxSteps && !res.Terminated {
		res.Truncated = true
		t.truncated = true
	}
	return res, nil
}

// Steps returns the number of successful steps since the last reset.
func (t *TimeLimit) Steps() int {
	return t.steps
}
