package strategy

import "github.com/lox/crapsforbots/internal/craps"

// OddsMultipliers maps each point number to the odds multiplier taken on top
// of the flat bet. A missing number takes no odds.
type OddsMultipliers map[int]int

// Standard345 is the common 3x-4x-5x odds schedule: 3x on the 4 and 10, 4x on
// the 5 and 9, 5x on the 6 and 8. It pays six times the flat bet on every
// point.
func Standard345() OddsMultipliers {
	return OddsMultipliers{4: 3, 5: 4, 6: 5, 8: 5, 9: 4, 10: 3}
}

// FlatOdds takes the same multiplier on every point number.
func FlatOdds(mult int) OddsMultipliers {
	return OddsMultipliers{4: mult, 5: mult, 6: mult, 8: mult, 9: mult, 10: mult}
}

// TakeOdds backs every locked pass line and come bet with odds at the
// schedule's multiplier, once per number.
func TakeOdds(mult OddsMultipliers) craps.Strategy {
	return Func(func(p *craps.Player, t *craps.Table) {
		for _, b := range p.BetsOfKind(craps.PassLine, craps.Come) {
			if b.Number == 0 {
				continue
			}
			m := mult[b.Number]
			if m == 0 || p.HasBet(craps.BetKey{Kind: craps.Odds, Number: b.Number}) {
				continue
			}
			p.Place(craps.NewOdds(b, float64(m)*b.Amount), t)
		}
	})
}

// LayAllOdds lays odds behind every locked don't pass and don't come bet at
// the schedule's multiplier, once per number.
func LayAllOdds(mult OddsMultipliers) craps.Strategy {
	return Func(func(p *craps.Player, t *craps.Table) {
		for _, b := range p.BetsOfKind(craps.DontPass, craps.DontCome) {
			if b.Number == 0 {
				continue
			}
			m := mult[b.Number]
			if m == 0 || p.HasBet(craps.BetKey{Kind: craps.LayOdds, Number: b.Number}) {
				continue
			}
			p.Place(craps.NewLayOdds(b, float64(m)*b.Amount), t)
		}
	})
}
