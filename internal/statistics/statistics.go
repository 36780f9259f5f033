// Package statistics aggregates per-run simulation results into summary
// statistics for a strategy.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RunResult is the outcome of a single simulated session.
type RunResult struct {
	Seed          int64   // RNG seed for this run (for replay)
	Net           float64 // Final bankroll minus starting bankroll
	FinalBankroll float64
	Rolls         int  // Dice rolls played
	Shooters      int  // Shooter hands seen
	Busted        bool // Bankroll fell to the betting unit or below
}

// Statistics tracks aggregate results across simulation runs.
type Statistics struct {
	Runs    int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // All net results, kept for median/percentile

	Busts         int
	TotalRolls    int
	TotalShooters int
	BestNet       float64
	WorstNet      float64
}

// Add incorporates a run result into the statistics.
func (s *Statistics) Add(result RunResult) {
	net := result.Net
	s.Runs++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	s.TotalRolls += result.Rolls
	s.TotalShooters += result.Shooters
	if result.Busted {
		s.Busts++
	}
	if s.Runs == 1 || net > s.BestNet {
		s.BestNet = net
	}
	if s.Runs == 1 || net < s.WorstNet {
		s.WorstNet = net
	}
}

// Mean returns the arithmetic mean net result per run.
func (s *Statistics) Mean() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.SumNet / float64(s.Runs)
}

// Variance returns the sample variance of the net results.
func (s *Statistics) Variance() float64 {
	if s.Runs < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Runs)*mean*mean) / float64(s.Runs-1)
}

// StdDev returns the sample standard deviation of the net results.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Runs))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net result.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0), linearly
// interpolated between adjacent results.
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

// BustRate returns the fraction of runs that went bust.
func (s *Statistics) BustRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Busts) / float64(s.Runs)
}

// MeanRolls returns the average number of rolls per run.
func (s *Statistics) MeanRolls() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalRolls) / float64(s.Runs)
}

// MeanPerRoll returns the mean net result per dice roll.
func (s *Statistics) MeanPerRoll() float64 {
	if s.TotalRolls == 0 {
		return 0
	}
	return s.SumNet / float64(s.TotalRolls)
}

// Validate checks the internal consistency of the aggregated data.
func (s *Statistics) Validate() error {
	if s.Runs <= 0 {
		return fmt.Errorf("invalid run count: %d", s.Runs)
	}
	if len(s.Values) != s.Runs {
		return fmt.Errorf("values length (%d) does not match run count (%d)",
			len(s.Values), s.Runs)
	}
	if s.Busts > s.Runs {
		return fmt.Errorf("busts (%d) exceed run count (%d)", s.Busts, s.Runs)
	}
	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	if math.Abs(sum-s.SumNet) > 1e-6 {
		return fmt.Errorf("ledger mismatch: sum of values %.6f, SumNet %.6f", sum, s.SumNet)
	}
	return nil
}
