// Package config loads rollout settings from HCL files.
package config

import (
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/cardrl/internal/bot"
)

// Config is the complete rollout configuration.
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Logging    *LoggingSettings    `hcl:"logging,block"`
}

// SimulationSettings controls a batch of episodes.
type SimulationSettings struct {
	Episodes int    `hcl:"episodes,optional"`
	Workers  int    `hcl:"workers,optional"`
	Seed     int64  `hcl:"seed,optional"`
	Bot      string `hcl:"bot,optional"`
	MaxSteps int    `hcl:"max_steps,optional"`
	Output   string `hcl:"output,optional"`
}

// LoggingSettings controls the log level.
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
}

const (
	defaultEpisodes = 1000
	defaultBot      = bot.Low
	defaultLevel    = "info"
	maxWorkers      = 8
)

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int {
	return min(runtime.NumCPU(), maxWorkers)
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Logging == nil {
		c.Logging = &LoggingSettings{}
	}

	if c.Simulation.Episodes == 0 {
		c.Simulation.Episodes = defaultEpisodes
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = DefaultWorkers()
	}
	if c.Simulation.Bot == "" {
		c.Simulation.Bot = defaultBot
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLevel
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Simulation.Episodes < 1 {
		return fmt.Errorf("episodes must be positive, got %d", c.Simulation.Episodes)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Simulation.Workers)
	}
	if c.Simulation.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.Simulation.MaxSteps)
	}
	if !slices.Contains(bot.Names(), c.Simulation.Bot) {
		return fmt.Errorf("invalid bot %q (want one of %v)", c.Simulation.Bot, bot.Names())
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	return level, nil
}
