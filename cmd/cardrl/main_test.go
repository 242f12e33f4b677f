package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/lox/cardrl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("cardrl"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseDemoDefaults(t *testing.T) {
	cli, ctx := parse(t, "demo")
	assert.Equal(t, "demo", ctx.Command())
	assert.Equal(t, int64(123), cli.Demo.Seed)
	assert.Equal(t, "low", cli.Demo.Bot)
}

func TestSimulateOverrides(t *testing.T) {
	cli, _ := parse(t, "simulate", "-n", "20", "--bot", "rand", "--seed", "9", "--max-steps", "5")

	cfg := config.Default()
	cli.Simulate.applyOverrides(cfg)

	assert.Equal(t, 20, cfg.Simulation.Episodes)
	assert.Equal(t, "rand", cfg.Simulation.Bot)
	assert.Equal(t, int64(9), cfg.Simulation.Seed)
	assert.Equal(t, 5, cfg.Simulation.MaxSteps)
	assert.Equal(t, config.DefaultWorkers(), cfg.Simulation.Workers, "unset flags keep config values")
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestDemoRuns(t *testing.T) {
	cmd := DemoCmd{Seed: 1, Bot: "high", NoColor: true, LogLevel: "error"}
	assert.NoError(t, cmd.Run())
}

func TestDemoRejectsBadLogLevel(t *testing.T) {
	cmd := DemoCmd{Seed: 1, Bot: "low", LogLevel: "shouty"}
	assert.Error(t, cmd.Run())
}
