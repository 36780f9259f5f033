// Package simulator runs batches of independent craps sessions and
// aggregates their results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/crapsforbots/internal/craps"
	"github.com/lox/crapsforbots/internal/randutil"
	"github.com/lox/crapsforbots/internal/statistics"
	"github.com/lox/crapsforbots/internal/strategy"
)

// Config holds configuration for running simulations.
type Config struct {
	Runs        int
	MaxRolls    int
	MaxShooters int
	Runout      bool
	Bankroll    float64
	Unit        float64
	Strategy    string
	Seed        int64

	FieldDouble []int
	FieldTriple []int

	Parallelism int           // concurrent sessions; <= 0 means GOMAXPROCS
	Timeout     time.Duration // per-session watchdog; <= 0 means 30s
	Logger      *log.Logger
	Clock       quartz.Clock // injectable for watchdog testing
}

// Simulator plays many sessions of the same strategy, each with an
// independently derived seed.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration, filling in defaults.
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Parallelism <= 0 {
		config.Parallelism = runtime.GOMAXPROCS(0)
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Simulator{config: config}
}

// Run executes all configured sessions, bounded-parallel, and aggregates
// their results. Results are deterministic for a given seed regardless of
// parallelism.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	// Fail fast on a bad strategy name before spawning anything.
	if _, err := strategy.New(s.config.Strategy, s.config.Unit); err != nil {
		return nil, err
	}

	s.config.Logger.Info("starting simulation",
		"strategy", s.config.Strategy,
		"runs", s.config.Runs,
		"seed", s.config.Seed,
		"parallelism", s.config.Parallelism)

	results := make([]statistics.RunResult, s.config.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallelism)
	for i := range results {
		g.Go(func() error {
			result, err := s.playSessionWithTimeout(ctx, i)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Aggregate in run order so the summary is stable across schedules.
	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playSessionWithTimeout runs a single session with watchdog protection. A
// miswritten strategy that never lets the table stop is reported as an error
// rather than hanging the whole batch.
func (s *Simulator) playSessionWithTimeout(ctx context.Context, n int) (statistics.RunResult, error) {
	seed := randutil.Derive(s.config.Seed, n)

	resultCh := make(chan statistics.RunResult, 1)
	errCh := make(chan error, 1)
	go func() {
		result, err := s.playSession(seed)
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- result
	}()

	timer := s.config.Clock.NewTimer(s.config.Timeout)
	defer timer.Stop()

	select {
	case result := <-resultCh:
		return result, nil
	case err := <-errCh:
		return statistics.RunResult{}, fmt.Errorf("run %d failed: %w", n, err)
	case <-ctx.Done():
		return statistics.RunResult{}, ctx.Err()
	case <-timer.C:
		return statistics.RunResult{}, fmt.Errorf("run %d timed out after %v (seed: %d)", n, s.config.Timeout, seed)
	}
}

// playSession plays one full session on a fresh table and reports the
// player's result.
func (s *Simulator) playSession(seed int64) (statistics.RunResult, error) {
	strat, err := strategy.New(s.config.Strategy, s.config.Unit)
	if err != nil {
		return statistics.RunResult{}, err
	}

	table := craps.NewTable(randutil.New(seed), craps.TableConfig{
		FieldDouble: s.config.FieldDouble,
		FieldTriple: s.config.FieldTriple,
		Logger:      s.config.Logger,
	})
	player := craps.NewPlayer("Player", s.config.Bankroll, strat)
	player.Unit = s.config.Unit
	table.AddPlayer(player)

	table.Run(s.config.MaxRolls, s.config.MaxShooters, s.config.Runout)

	return statistics.RunResult{
		Seed:          seed,
		Net:           player.Bankroll - s.config.Bankroll,
		FinalBankroll: player.Bankroll,
		Rolls:         table.Dice.Rolls(),
		Shooters:      table.Shooters(),
		Busted:        player.Bankroll <= player.Unit,
	}, nil
}
