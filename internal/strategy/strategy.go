package strategy

import "github.com/lox/crapsforbots/internal/craps"

// Func adapts a bare bet-placement function to a craps.Strategy with a no-op
// AfterRoll.
type Func func(p *craps.Player, t *craps.Table)

func (f Func) UpdateBets(p *craps.Player, t *craps.Table) { f(p, t) }

func (f Func) AfterRoll(*craps.Player, *craps.Table) {}

// Aggregate runs several strategies as one, forwarding both hooks in order.
type Aggregate []craps.Strategy

func (a Aggregate) UpdateBets(p *craps.Player, t *craps.Table) {
	for _, s := range a {
		s.UpdateBets(p, t)
	}
}

func (a Aggregate) AfterRoll(p *craps.Player, t *craps.Table) {
	for _, s := range a {
		s.AfterRoll(p, t)
	}
}

// BetIfTrue places a clone of the template bet whenever the condition holds.
// The template is never placed directly, so repeated placements stay
// independent.
func BetIfTrue(bet *craps.Bet, cond func(p *craps.Player, t *craps.Table) bool) craps.Strategy {
	return Func(func(p *craps.Player, t *craps.Table) {
		if cond(p, t) {
			p.Place(bet.Clone(), t)
		}
	})
}

// RemoveIfTrue takes down every removable bet the predicate selects.
func RemoveIfTrue(pred func(b *craps.Bet, p *craps.Player, t *craps.Table) bool) craps.Strategy {
	return Func(func(p *craps.Player, t *craps.Table) {
		var keys []craps.BetKey
		for _, b := range p.Bets() {
			if pred(b, p, t) {
				keys = append(keys, b.Key())
			}
		}
		for _, k := range keys {
			p.Remove(k)
		}
	})
}

// IfBetNotExist places a clone of the bet when no bet with its key is active.
func IfBetNotExist(bet *craps.Bet) craps.Strategy {
	return BetIfTrue(bet, func(p *craps.Player, t *craps.Table) bool {
		return !p.HasBet(bet.Key())
	})
}

// BetPointOff places the bet while the point is off, at most once at a time.
func BetPointOff(bet *craps.Bet) craps.Strategy {
	return BetIfTrue(bet, func(p *craps.Player, t *craps.Table) bool {
		return !t.Point.On() && !p.HasBet(bet.Key())
	})
}

// BetPointOn places the bet while the point is on, at most once at a time.
func BetPointOn(bet *craps.Bet) craps.Strategy {
	return BetIfTrue(bet, func(p *craps.Player, t *craps.Table) bool {
		return t.Point.On() && !p.HasBet(bet.Key())
	})
}
