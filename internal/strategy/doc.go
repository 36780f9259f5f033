// Package strategy implements betting strategies for the craps table.
//
// A strategy is anything satisfying craps.Strategy: UpdateBets runs before
// every roll and places or removes bets, AfterRoll observes the landed dice
// before resolution. Strategies compose: Aggregate runs several in order, and
// the combinators (BetPointOff, IfBetNotExist, TakeOdds, ...) cover the
// common placement patterns, so most named strategies here are one-liners
// over the combinators.
//
// Stateful strategies such as HammerLock or DiceDoctor keep their progression
// counters as struct fields. State is per strategy instance; build a fresh
// instance per player and per simulation run.
//
// The Registry maps CLI-friendly names to constructors taking the betting
// unit.
package strategy
