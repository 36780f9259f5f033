// Package craps implements the core craps table logic: bets, the point,
// players and the per-roll resolution loop.
//
// The main type is Table, which owns the dice, the point and the players.
// Each turn the players' strategies adjust their bets, the dice are rolled,
// every active bet is resolved against the roll, and finally the point
// advances.
//
// # Basic Usage
//
// Build a table, seat a player, and run it:
//
//	rng := randutil.New(42)
//	t := craps.NewTable(rng, craps.TableConfig{})
//	t.AddPlayer(craps.NewPlayer("Player1", 500, strat))
//	t.Run(144, 2, false)
//
// # Deterministic Testing
//
// For scripted scenarios, drive individual turns with exact dice faces:
//
//	t.FixedTurn(3, 3) // establishes or hits the six
//
// # Architecture
//
// Table delegates responsibilities to specialized components:
//   - Bet: a single wager with its win/lose/push partition and payout rule
//   - Point: the Off/On(n) table state machine
//   - Player: bankroll and active-bet bookkeeping
//   - dice.Dice: the RNG-injected roll source
//
// Bets are a closed set of tagged variants dispatched through Resolve rather
// than a type hierarchy; bet identity is the (kind, number) value key.
package craps
