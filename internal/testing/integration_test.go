package testing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lox/crapsforbots/internal/craps"
	"github.com/lox/crapsforbots/internal/randutil"
	"github.com/lox/crapsforbots/internal/simulator"
	"github.com/lox/crapsforbots/internal/strategy"
)

func simConfig(name string) simulator.Config {
	return simulator.Config{
		Runs:        4,
		MaxRolls:    72,
		MaxShooters: 1 << 30,
		Bankroll:    1000,
		Unit:        5,
		Strategy:    name,
		Seed:        777,
		Timeout:     30 * time.Second,
	}
}

// Every registered strategy must survive full sessions without panicking and
// produce internally consistent statistics.
func TestEveryRegisteredStrategy(t *testing.T) {
	for _, name := range strategy.Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stats, err := simulator.New(simConfig(name)).Run(context.Background())
			require.NoError(t, err)
			require.Equal(t, 4, stats.Runs)
			require.NoError(t, stats.Validate())
			for _, net := range stats.Values {
				require.GreaterOrEqual(t, net, -1000.0,
					"a player cannot lose more than their bankroll")
			}
		})
	}
}

// The simulator derives per-run seeds from the batch seed. A single-run batch
// must match a session played by hand with the same derived seed.
func TestSimulatorMatchesDirectPlay(t *testing.T) {
	t.Parallel()

	cfg := simConfig("passline-place68")
	cfg.Runs = 1

	stats, err := simulator.New(cfg).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.Values, 1)

	strat, err := strategy.New(cfg.Strategy, cfg.Unit)
	require.NoError(t, err)

	table := craps.NewTable(randutil.New(randutil.Derive(cfg.Seed, 0)), craps.TableConfig{})
	player := craps.NewPlayer("Player", cfg.Bankroll, strat)
	table.AddPlayer(player)
	table.Run(cfg.MaxRolls, cfg.MaxShooters, cfg.Runout)

	require.Equal(t, player.Bankroll-cfg.Bankroll, stats.Values[0])
	require.Equal(t, table.Dice.Rolls(), stats.TotalRolls)
}

// Multiple players with different strategies share one set of dice. After a
// runout finish no bets may remain on the table and no bankroll can have gone
// negative.
func TestMultiPlayerTable(t *testing.T) {
	t.Parallel()

	table := craps.NewTable(randutil.New(31337), craps.TableConfig{})
	names := []string{"passline", "dontpass", "ironcross"}
	players := make([]*craps.Player, 0, len(names))
	for _, name := range names {
		strat, err := strategy.New(name, 5)
		require.NoError(t, err)
		p := craps.NewPlayer(name, 300, strat)
		table.AddPlayer(p)
		players = append(players, p)
	}

	table.Run(144, 1<<30, true)

	require.False(t, table.PlayerHasBets(), "runout must clear all bets")
	for _, p := range players {
		require.GreaterOrEqual(t, p.Bankroll, 0.0, "player %s", p.Name)
		require.Zero(t, p.CountBets(craps.PassLine, craps.Come, craps.DontPass,
			craps.DontCome, craps.Odds, craps.LayOdds, craps.Place, craps.Field,
			craps.Hardway, craps.Fire))
	}
}

// Two tables seeded identically and running the same strategies must agree
// roll for roll.
func TestTableDeterminism(t *testing.T) {
	t.Parallel()

	play := func() float64 {
		strat, err := strategy.New("hammerlock", 5)
		require.NoError(t, err)
		table := craps.NewTable(randutil.New(99), craps.TableConfig{})
		p := craps.NewPlayer("Player", 500, strat)
		table.AddPlayer(p)
		table.Run(200, 1<<30, false)
		return p.Bankroll
	}

	require.Equal(t, play(), play())
}
