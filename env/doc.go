// Package env implements a four-seat, two-team trick-taking hand as a
// step-based reinforcement-learning environment.
//
// Seat 0 is the agent. Seats 1-3 are scripted and play a uniformly random
// card from their hand. Every call to Step plays one complete trick: each seat
// lays one card, starting with the trick leader, and the highest rank takes
// the trick. Suits are ignored and there is no obligation to follow suit.
// When two cards share the highest rank the one played first wins. The winner
// leads the next trick. A hand lasts 13 tricks.
//
// # Basic Usage
//
//	e := env.New(env.WithSeed(42))
//	obs := e.Reset()
//	for {
//	    res, err := e.Step(obs.Hand[0])
//	    if err != nil {
//	        return err
//	    }
//	    obs = res.Observation
//	    if res.Terminated || res.Truncated {
//	        break
//	    }
//	}
//
// # Determinism
//
// All randomness (the shuffle and every scripted card) comes from one
// generator owned by the Env. ResetSeed with the same seed followed by the
// same agent actions reproduces an episode exactly.
//
// # Errors
//
// Step validates before it mutates anything. Playing a card the agent does
// not hold returns an error wrapping ErrInvalidAction and leaves the hand as
// it was. Stepping before the first Reset or after the hand is over returns
// an error wrapping ErrOutOfPhase.
//
// # Rewards
//
// Each step reports the reward for the trick it resolved. TrickReward gives
// +1 to the agent's team and -1 otherwise; WithReward installs another
// RewardFunc.
package env
