package statistics

import (
	"math"
	"strings"
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
	if stats.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 for empty stats, got %f", stats.StdDev())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty stats, got %f", stats.Percentile(0.5))
	}
	if stats.BustRate() != 0 {
		t.Errorf("Expected bust rate of 0 for empty stats, got %f", stats.BustRate())
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RunResult{
		Seed:          12345,
		Net:           25,
		FinalBankroll: 525,
		Rolls:         144,
		Shooters:      3,
	})

	if stats.Runs != 1 {
		t.Errorf("Expected 1 run, got %d", stats.Runs)
	}
	if stats.Mean() != 25 {
		t.Errorf("Expected mean of 25, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Median() != 25 {
		t.Errorf("Expected median of 25, got %f", stats.Median())
	}
	if stats.BestNet != 25 || stats.WorstNet != 25 {
		t.Errorf("Expected best and worst of 25, got %f and %f", stats.BestNet, stats.WorstNet)
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}

	results := []RunResult{
		{Net: 10, Rolls: 100, Shooters: 2},
		{Net: -20, Rolls: 80, Shooters: 1, Busted: true},
		{Net: 30, Rolls: 120, Shooters: 3},
		{Net: 0, Rolls: 90, Shooters: 2},
		{Net: -10, Rolls: 110, Shooters: 2},
	}
	for _, r := range results {
		stats.Add(r)
	}

	expectedMean := (10.0 - 20.0 + 30.0 + 0.0 - 10.0) / 5.0
	if math.Abs(stats.Mean()-expectedMean) > 1e-9 {
		t.Errorf("Expected mean of %f, got %f", expectedMean, stats.Mean())
	}
	if stats.Runs != 5 {
		t.Errorf("Expected 5 runs, got %d", stats.Runs)
	}
	// Sorted nets: -20, -10, 0, 10, 30
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0, got %f", stats.Median())
	}
	if stats.Busts != 1 {
		t.Errorf("Expected 1 bust, got %d", stats.Busts)
	}
	if math.Abs(stats.BustRate()-0.2) > 1e-9 {
		t.Errorf("Expected bust rate of 0.2, got %f", stats.BustRate())
	}
	if stats.TotalRolls != 500 {
		t.Errorf("Expected 500 total rolls, got %d", stats.TotalRolls)
	}
	if math.Abs(stats.MeanRolls()-100) > 1e-9 {
		t.Errorf("Expected mean rolls of 100, got %f", stats.MeanRolls())
	}
	if math.Abs(stats.MeanPerRoll()-expectedMean/100) > 1e-9 {
		t.Errorf("Expected mean per roll of %f, got %f", expectedMean/100, stats.MeanPerRoll())
	}
	if stats.BestNet != 30 || stats.WorstNet != -20 {
		t.Errorf("Expected best 30 and worst -20, got %f and %f", stats.BestNet, stats.WorstNet)
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	stats := &Statistics{}
	for i := 1; i <= 5; i++ {
		stats.Add(RunResult{Net: float64(i)})
	}

	tests := []struct {
		percentile float64
		expected   float64
	}{
		{0.0, 1.0},
		{0.25, 2.0},
		{0.5, 3.0},
		{0.75, 4.0},
		{1.0, 5.0},
	}

	for _, test := range tests {
		result := stats.Percentile(test.percentile)
		if math.Abs(result-test.expected) > 1e-9 {
			t.Errorf("Percentile %.2f: expected %f, got %f", test.percentile, test.expected, result)
		}
	}
}

func TestStatistics_ConfidenceInterval(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		stats.Add(RunResult{Net: v})
	}

	low, high := stats.ConfidenceInterval95()
	mean := stats.Mean()

	if math.Abs((low+high)/2-mean) > 1e-9 {
		t.Errorf("Confidence interval not symmetric around mean. Low: %f, High: %f, Mean: %f", low, high, mean)
	}
	if high-low <= 0 {
		t.Errorf("Confidence interval should be positive width, got %f", high-low)
	}
}

func TestStatistics_Variance(t *testing.T) {
	stats := &Statistics{}
	// Sample variance of [1, 3, 5] is 4.
	for _, v := range []float64{1, 3, 5} {
		stats.Add(RunResult{Net: v})
	}

	if math.Abs(stats.Variance()-4.0) > 1e-9 {
		t.Errorf("Expected variance of 4, got %f", stats.Variance())
	}
	if math.Abs(stats.StdDev()-2.0) > 1e-9 {
		t.Errorf("Expected stddev of 2, got %f", stats.StdDev())
	}
}

func TestStatistics_Validate_Valid(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RunResult{Net: 10})
	stats.Add(RunResult{Net: -10})
	stats.Add(RunResult{Net: 5})

	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats to pass validation, got error: %v", err)
	}
}

func TestStatistics_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		stats   *Statistics
		wantErr string
	}{
		{
			name:    "no runs",
			stats:   &Statistics{},
			wantErr: "invalid run count",
		},
		{
			name: "values length mismatch",
			stats: &Statistics{
				Runs:   2,
				Values: []float64{1},
				SumNet: 1,
			},
			wantErr: "values length",
		},
		{
			name: "busts exceed runs",
			stats: &Statistics{
				Runs:   1,
				Values: []float64{1},
				SumNet: 1,
				Busts:  2,
			},
			wantErr: "busts",
		},
		{
			name: "ledger mismatch",
			stats: &Statistics{
				Runs:   1,
				Values: []float64{1},
				SumNet: 2,
			},
			wantErr: "ledger mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stats.Validate()
			if err == nil {
				t.Fatal("Expected validation to fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected %q error, got: %v", tt.wantErr, err)
			}
		})
	}
}
