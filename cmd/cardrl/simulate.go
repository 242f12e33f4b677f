package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/cardrl/internal/config"
	"github.com/lox/cardrl/internal/fileutil"
	"github.com/lox/cardrl/internal/rollout"
)

type SimulateCmd struct {
	Config   string  `short:"c" default:"cardrl.hcl" help:"HCL config file (defaults apply if missing)"`
	Episodes *int    `short:"n" help:"Number of episodes (overrides config)"`
	Workers  *int    `short:"w" help:"Parallel workers (overrides config)"`
	Seed     *int64  `help:"Base seed; episode i uses seed+i (overrides config)"`
	Bot      *string `help:"Agent policy: low, high, rand (overrides config)"`
	MaxSteps *int    `help:"Truncate episodes after this many steps, 0 for none (overrides config)"`
	Output   *string `short:"o" help:"Write a JSON report to this path (overrides config)"`
	LogLevel *string `help:"Log level (overrides config)"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := setupLogger(cfg.Logging.Level)
	if err != nil {
		return err
	}

	sim := cfg.Simulation
	if sim.Seed == 0 {
		sim.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting simulation",
		"episodes", sim.Episodes,
		"bot", sim.Bot,
		"workers", sim.Workers,
		"seed", sim.Seed,
		"max_steps", sim.MaxSteps)

	report, err := rollout.New(rollout.Config{
		Episodes: sim.Episodes,
		Workers:  sim.Workers,
		Seed:     sim.Seed,
		Bot:      sim.Bot,
		MaxSteps: sim.MaxSteps,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	printReport(report)

	if sim.Output != "" {
		if err := fileutil.WriteJSON(sim.Output, report); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", sim.Output)
	}
	return nil
}

func (c *SimulateCmd) applyOverrides(cfg *config.Config) {
	if c.Episodes != nil {
		cfg.Simulation.Episodes = *c.Episodes
	}
	if c.Workers != nil {
		cfg.Simulation.Workers = *c.Workers
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.Bot != nil {
		cfg.Simulation.Bot = *c.Bot
	}
	if c.MaxSteps != nil {
		cfg.Simulation.MaxSteps = *c.MaxSteps
	}
	if c.Output != nil {
		cfg.Simulation.Output = *c.Output
	}
	if c.LogLevel != nil {
		cfg.Logging.Level = *c.LogLevel
	}
}

func printReport(r *rollout.Report) {
	s := r.Summary
	episodesPerSec := 0.0
	if r.Duration > 0 {
		episodesPerSec = float64(s.Episodes) / r.Duration.Seconds()
	}

	fmt.Printf("\nResults: %d episodes, bot %s (seed %d)\n", s.Episodes, r.Bot, r.Seed)
	fmt.Printf("  Mean reward:   %+.3f ± %.3f (95%% CI [%+.3f, %+.3f])\n",
		s.MeanReward, s.StdDev, s.CI95Low, s.CI95High)
	fmt.Printf("  Median reward: %+.1f\n", s.MedianReward)
	fmt.Printf("  Win rate:      %.1f%%\n", s.WinRate*100)
	fmt.Printf("  Mean tricks:   %.2f of 13\n", s.MeanTricks)
	fmt.Printf("  Tens won:      A=%d B=%d\n", s.TensA, s.TensB)
	if s.Truncated > 0 {
		fmt.Printf("  Truncated:     %d\n", s.Truncated)
	}
	fmt.Printf("  Tricks taken by team A:\n")
	for n, count := range s.TrickHistogram {
		if count > 0 {
			fmt.Printf("    %2d: %d\n", n, count)
		}
	}
	fmt.Printf("  Duration:      %v (%.0f episodes/s)\n", r.Duration.Round(time.Millisecond), episodesPerSec)
}
