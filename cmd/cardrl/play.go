package main

import (
	"os"

	"github.com/lox/cardrl/env"
	"github.com/lox/cardrl/internal/display"
	"github.com/lox/cardrl/internal/randutil"
	"github.com/lox/cardrl/internal/tui"
)

type PlayCmd struct {
	Seed    *int64 `help:"Environment seed (random if unset)"`
	NoColor bool   `help:"Disable coloured output"`
	LogFile string `default:"cardrl-play.log" help:"Where to write logs while the TUI owns the terminal"`
}

func (c *PlayCmd) Run() error {
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	logger, err := setupLogger("debug")
	if err != nil {
		return err
	}
	logger.SetOutput(f)

	opts := []env.Option{env.WithLogger(logger)}
	if c.Seed != nil {
		opts = append(opts, env.WithSeed(*c.Seed))
	} else {
		opts = append(opts, env.WithSeed(randutil.NewEntropy().Int64()))
	}

	return tui.Run(env.New(opts...), display.NewStyles(os.Stdout, !c.NoColor), logger)
}
