package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.WinRate() != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate())
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for empty stats")
	}
}

func TestStatistics_Add(t *testing.T) {
	stats := &Statistics{}
	stats.Add(EpisodeResult{Reward: 3, TricksA: 8, TricksB: 5, TensA: 3, TensB: 1, Steps: 13})
	stats.Add(EpisodeResult{Reward: -5, TricksA: 4, TricksB: 9, TensA: 0, TensB: 4, Steps: 13})
	stats.Add(EpisodeResult{Reward: 1, TricksA: 7, TricksB: 6, TensA: 2, TensB: 2, Steps: 13})

	if stats.Episodes != 3 {
		t.Fatalf("Expected 3 episodes, got %d", stats.Episodes)
	}
	if math.Abs(stats.Mean()-(-1.0/3.0)) > 1e-9 {
		t.Errorf("Expected mean of -1/3, got %f", stats.Mean())
	}
	if stats.Median() != 1 {
		t.Errorf("Expected median of 1, got %f", stats.Median())
	}
	if stats.Wins != 2 || stats.Losses != 1 {
		t.Errorf("Expected 2 wins and 1 loss, got %d/%d", stats.Wins, stats.Losses)
	}
	if math.Abs(stats.WinRate()-2.0/3.0) > 1e-9 {
		t.Errorf("Expected win rate of 2/3, got %f", stats.WinRate())
	}
	if stats.TrickHistogram[8] != 1 || stats.TrickHistogram[4] != 1 || stats.TrickHistogram[7] != 1 {
		t.Errorf("Unexpected trick histogram %v", stats.TrickHistogram)
	}
	if stats.TensA+stats.TensB != 12 {
		t.Errorf("Expected 12 tens in total, got %d", stats.TensA+stats.TensB)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_Variance(t *testing.T) {
	stats := &Statistics{}
	for _, r := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		stats.Add(EpisodeResult{Reward: r, TricksA: 7, TricksB: 6})
	}

	// Sample variance of the classic example set is 32/7.
	if math.Abs(stats.Variance()-32.0/7.0) > 1e-9 {
		t.Errorf("Expected variance of 32/7, got %f", stats.Variance())
	}

	low, high := stats.ConfidenceInterval95()
	if low >= stats.Mean() || high <= stats.Mean() {
		t.Errorf("Confidence interval [%f, %f] does not contain mean %f", low, high, stats.Mean())
	}
}

func TestStatistics_Truncated(t *testing.T) {
	stats := &Statistics{}
	stats.Add(EpisodeResult{Reward: 1, TricksA: 3, TricksB: 2, Steps: 5, Truncated: true})
	stats.Add(EpisodeResult{Reward: 1, TricksA: 7, TricksB: 6, Steps: 13})

	if stats.Truncated != 1 {
		t.Errorf("Expected 1 truncated episode, got %d", stats.Truncated)
	}
	if stats.WinRate() != 1 {
		t.Errorf("Expected win rate of 1 over completed episodes, got %f", stats.WinRate())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_Percentile(t *testing.T) {
	stats := &Statistics{}
	for _, r := range []float64{-13, -1, 1, 13} {
		stats.Add(EpisodeResult{Reward: r, TricksA: 7, TricksB: 6})
	}

	if got := stats.Percentile(0); got != -13 {
		t.Errorf("Expected p0 of -13, got %f", got)
	}
	if got := stats.Percentile(1); got != 13 {
		t.Errorf("Expected p100 of 13, got %f", got)
	}
	if got := stats.Median(); got != 0 {
		t.Errorf("Expected median of 0, got %f", got)
	}
}
