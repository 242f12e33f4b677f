package main

import (
	"fmt"
	"os"

	"github.com/lox/cardrl/env"
	"github.com/lox/cardrl/internal/bot"
	"github.com/lox/cardrl/internal/display"
	"github.com/lox/cardrl/internal/randutil"
)

type DemoCmd struct {
	Seed     int64  `default:"123" help:"Environment seed"`
	Bot      string `default:"low" enum:"low,high,rand" help:"Agent policy (low, high, rand)"`
	NoColor  bool   `help:"Disable coloured output"`
	LogLevel string `default:"warn" help:"Log level (debug|info|warn|error)"`
}

func (c *DemoCmd) Run() error {
	logger, err := setupLogger(c.LogLevel)
	if err != nil {
		return err
	}

	agent, err := bot.New(c.Bot, randutil.New(randutil.Derive(c.Seed, 1)), logger)
	if err != nil {
		return err
	}

	e := env.New(env.WithSeed(c.Seed), env.WithLogger(logger))
	obs := e.Reset()
	styles := display.NewStyles(os.Stdout, !c.NoColor)

	total := 0.0
	var snap display.Snapshot
	for {
		res, err := e.Step(agent.ChooseCard(obs))
		if err != nil {
			return err
		}
		total += res.Reward
		obs = res.Observation
		snap = display.SnapshotOf(e)
		snap.LastTrick, snap.LastWinner = res.Info.Trick, res.Info.Winner

		if res.Terminated || res.Truncated {
			break
		}
	}

	if err := display.Render(os.Stdout, styles, snap); err != nil {
		return err
	}
	fmt.Printf("Game finished. Total reward: %.1f\n", total)
	fmt.Printf("Final tricks: A=%d B=%d\n", obs.TricksWon[env.TeamA], obs.TricksWon[env.TeamB])
	fmt.Printf("10s won:      A=%d B=%d\n", obs.TensWon[env.TeamA], obs.TensWon[env.TeamB])
	return nil
}
