// Package rollout plays batches of episodes in parallel and aggregates the
// results.
package rollout

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/cardrl/env"
	"github.com/lox/cardrl/internal/bot"
	"github.com/lox/cardrl/internal/randutil"
	"github.com/lox/cardrl/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// agentStream labels the random stream handed to the agent so it never
// shares draws with the environment.
const agentStream = 1

// Config holds configuration for a rollout
type Config struct {
	Episodes int
	Workers  int
	Seed     int64 // episode i uses Seed+i
	Bot      string
	MaxSteps int // 0 means no step budget
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Report is the outcome of a rollout.
type Report struct {
	Bot      string                     `json:"bot"`
	Seed     int64                      `json:"seed"`
	Workers  int                        `json:"workers"`
	MaxSteps int                        `json:"max_steps,omitempty"`
	Duration time.Duration              `json:"duration_ns"`
	Summary  Summary                    `json:"summary"`
	Results  []statistics.EpisodeResult `json:"results"`

	Stats *statistics.Statistics `json:"-"`
}

// Summary is the serialisable view of the aggregate statistics.
type Summary struct {
	Episodes       int     `json:"episodes"`
	MeanReward     float64 `json:"mean_reward"`
	StdDev         float64 `json:"std_dev"`
	CI95Low        float64 `json:"ci95_low"`
	CI95High       float64 `json:"ci95_high"`
	MedianReward   float64 `json:"median_reward"`
	WinRate        float64 `json:"win_rate"`
	MeanTricks     float64 `json:"mean_tricks"`
	TensA          int     `json:"tens_a"`
	TensB          int     `json:"tens_b"`
	Truncated      int     `json:"truncated"`
	TrickHistogram [14]int `json:"trick_histogram"`
}

// Runner plays rollouts
type Runner struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a runner with the given configuration
func New(config Config) *Runner {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &Runner{config: config, logger: logger.WithPrefix("rollout"), clock: clock}
}

// Run plays every episode and returns the aggregated report. Results are in
// episode order and do not depend on the worker count.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.config.Episodes < 1 {
		return nil, fmt.Errorf("episodes must be positive, got %d", r.config.Episodes)
	}
	if _, err := bot.New(r.config.Bot, nil, r.logger); err != nil {
		return nil, err
	}

	start := r.clock.Now()
	results := make([]statistics.EpisodeResult, r.config.Episodes)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	var done atomic.Int64
	progressEvery := max(int64(r.config.Episodes/10), 1)

	for i := range r.config.Episodes {
		g.Go(func() error {
			result, err := r.playEpisode(gctx, i)
			if err != nil {
				return err
			}
			results[i] = result

			if n := done.Add(1); n%progressEvery == 0 {
				r.logger.Info("Rollout progress", "done", n, "episodes", r.config.Episodes)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	return &Report{
		Bot:      r.config.Bot,
		Seed:     r.config.Seed,
		Workers:  r.config.Workers,
		MaxSteps: r.config.MaxSteps,
		Duration: r.clock.Since(start),
		Summary:  summarize(stats),
		Results:  results,
		Stats:    stats,
	}, nil
}

// playEpisode runs one hand with its own environment and agent.
func (r *Runner) playEpisode(ctx context.Context, episode int) (statistics.EpisodeResult, error) {
	seed := r.config.Seed + int64(episode)
	result := statistics.EpisodeResult{
		ID:   uuid.Must(uuid.NewV7()).String(),
		Seed: seed,
	}

	agent, err := bot.New(r.config.Bot, randutil.New(randutil.Derive(seed, agentStream)), r.logger)
	if err != nil {
		return result, err
	}

	e := env.NewTimeLimit(env.New(env.WithSeed(seed), env.WithLogger(r.logger)), r.config.MaxSteps)
	obs := e.Reset()

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		res, err := e.Step(agent.ChooseCard(obs))
		if err != nil {
			return result, fmt.Errorf("episode %d (seed %d) step %d: %w", episode, seed, result.Steps+1, err)
		}
		result.Steps++
		result.Reward += res.Reward
		obs = res.Observation

		if res.Terminated || res.Truncated {
			result.Truncated = res.Truncated
			break
		}
	}

	result.TricksA = obs.TricksWon[env.TeamA]
	result.TricksB = obs.TricksWon[env.TeamB]
	result.TensA = obs.TensWon[env.TeamA]
	result.TensB = obs.TensWon[env.TeamB]

	r.logger.Debug("Episode complete",
		"episode", episode,
		"seed", seed,
		"reward", result.Reward,
		"tricks_a", result.TricksA,
		"tricks_b", result.TricksB)

	return result, nil
}

func summarize(s *statistics.Statistics) Summary {
	low, high := s.ConfidenceInterval95()
	return Summary{
		Episodes:       s.Episodes,
		MeanReward:     s.Mean(),
		StdDev:         s.StdDev(),
		CI95Low:        low,
		CI95High:       high,
		MedianReward:   s.Median(),
		WinRate:        s.WinRate(),
		MeanTricks:     s.MeanTricks(),
		TensA:          s.TensA,
		TensB:          s.TensB,
		Truncated:      s.Truncated,
		TrickHistogram: s.TrickHistogram,
	}
}
