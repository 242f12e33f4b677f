package statistics

import (
	"fmt"
	"math"
	"sort"
)

// EpisodeResult is the outcome of one full hand played by the agent.
type EpisodeResult struct {
	ID        string  `json:"id"`
	Seed      int64   `json:"seed"`      // env seed for this episode (for replay)
	Reward    float64 `json:"reward"`    // sum of per-trick rewards
	TricksA   int     `json:"tricks_a"`  // tricks taken by the agent's team
	TricksB   int     `json:"tricks_b"`  // tricks taken by the opponents
	TensA     int     `json:"tens_a"`
	TensB     int     `json:"tens_b"`
	Steps     int     `json:"steps"`
	Truncated bool    `json:"truncated"` // stopped by the step budget
}

// Statistics aggregates episode results
type Statistics struct {
	Episodes int
	Sum      float64
	Sum2     float64   // Sum of squares for variance calculation
	Values   []float64 // Store all rewards for median/percentile calculation

	Wins      int // agent's team took 7 or more tricks
	Losses    int
	Truncated int

	TricksA int
	TricksB int
	TensA   int
	TensB   int

	// TrickHistogram[n] counts episodes where the agent's team took n tricks.
	TrickHistogram [14]int
}

// Mean returns the mean episode reward
func (s *Statistics) Mean() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return s.Sum / float64(s.Episodes)
}

// Variance returns the sample variance of episode rewards
func (s *Statistics) Variance() float64 {
	if s.Episodes < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Episodes)*mean*mean) / float64(s.Episodes-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Episodes))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates an episode result.
func (s *Statistics) Add(result EpisodeResult) {
	s.Episodes++
	s.Sum += result.Reward
	s.Sum2 += result.Reward * result.Reward
	s.Values = append(s.Values, result.Reward)

	s.TricksA += result.TricksA
	s.TricksB += result.TricksB
	s.TensA += result.TensA
	s.TensB += result.TensB

	if result.Truncated {
		s.Truncated++
		return
	}

	if result.TricksA >= 0 && result.TricksA < len(s.TrickHistogram) {
		s.TrickHistogram[result.TricksA]++
	}
	if result.TricksA > result.TricksB {
		s.Wins++
	} else {
		s.Losses++
	}
}

// WinRate returns the share of completed episodes the agent's team won.
func (s *Statistics) WinRate() float64 {
	completed := s.Wins + s.Losses
	if completed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(completed)
}

// MeanTricks returns the agent team's average tricks per episode.
func (s *Statistics) MeanTricks() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.TricksA) / float64(s.Episodes)
}

// Median returns the median episode reward
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the aggregate is internally consistent
func (s *Statistics) Validate() error {
	if s.Episodes <= 0 {
		return fmt.Errorf("invalid episode count: %d", s.Episodes)
	}

	if len(s.Values) != s.Episodes {
		return fmt.Errorf("values array length (%d) does not match episode count (%d)",
			len(s.Values), s.Episodes)
	}

	if s.Wins+s.Losses+s.Truncated != s.Episodes {
		return fmt.Errorf("wins (%d) + losses (%d) + truncated (%d) != episodes (%d)",
			s.Wins, s.Losses, s.Truncated, s.Episodes)
	}

	histogram := 0
	for _, n := range s.TrickHistogram {
		histogram += n
	}
	if histogram != s.Wins+s.Losses {
		return fmt.Errorf("trick histogram total (%d) does not match completed episodes (%d)",
			histogram, s.Wins+s.Losses)
	}

	if s.Truncated == 0 && s.TricksA+s.TricksB != 13*s.Episodes {
		return fmt.Errorf("trick total (%d) is not 13 per episode (%d episodes)",
			s.TricksA+s.TricksB, s.Episodes)
	}

	return nil
}
