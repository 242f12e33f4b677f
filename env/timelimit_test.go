package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLimitTruncates(t *testing.T) {
	tl := NewTimeLimit(newTestEnv(1), 5)
	obs := tl.Reset()

	for step := 1; step <= 5; step++ {
		res, err := tl.Step(obs.Hand[0])
		require.NoError(t, err)
		assert.Equal(t, step == 5, res.Truncated, "step %d", step)
		assert.False(t, res.Terminated)
		obs = res.Observation
	}
	assert.Equal(t, 5, tl.Steps())

	_, err := tl.Step(obs.Hand[0])
	assert.ErrorIs(t, err, ErrTruncated)
	assert.ErrorIs(t, err, ErrOutOfPhase)

	obs = tl.ResetSeed(2)
	assert.Equal(t, 0, tl.Steps())
	_, err = tl.Step(obs.Hand[0])
	assert.NoError(t, err)
}

func TestTimeLimitDoesNotTruncateTerminalStep(t *testing.T) {
	tl := NewTimeLimit(newTestEnv(1), TricksPerHand)
	obs := tl.Reset()

	var res StepResult
	var err error
	for range TricksPerHand {
		res, err = tl.Step(obs.Hand[0])
		require.NoError(t, err)
		obs = res.Observation
	}
	assert.True(t, res.Terminated)
	assert.False(t, res.Truncated)
}

func TestTimeLimitIgnoresFailedSteps(t *testing.T) {
	tl := NewTimeLimit(newTestEnv(1), 2)
	obs := tl.Reset()

	_, err := tl.Step(missingCard(t, obs))
	require.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, 0, tl.Steps())

	res, err := tl.Step(obs.Hand[0])
	require.NoError(t, err)
	assert.False(t, res.Truncated)
}

func TestTimeLimitDisabled(t *testing.T) {
	tl := NewTimeLimit(newTestEnv(1), 0)
	obs := tl.Reset()
	for range TricksPerHand {
		res, err := tl.Step(obs.Hand[0])
		require.NoError(t, err)
		assert.False(t, res.Truncated)
		obs = res.Observation
	}
}
