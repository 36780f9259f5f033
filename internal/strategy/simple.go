package strategy

import (
	"sort"

	"github.com/lox/crapsforbots/internal/craps"
)

// BetPassLine keeps a pass line bet working on every comeout roll.
func BetPassLine(amount float64) craps.Strategy {
	return BetPointOff(craps.NewPassLine(amount))
}

// BetDontPass keeps a don't pass bet working on every comeout roll.
func BetDontPass(amount float64) craps.Strategy {
	return BetPointOff(craps.NewDontPass(amount))
}

// PassLineOdds plays the pass line and takes odds on the schedule once the
// point is established.
func PassLineOdds(amount float64, mult OddsMultipliers) craps.Strategy {
	return Aggregate{BetPassLine(amount), TakeOdds(mult)}
}

// DontPassLayOdds plays the don't pass and lays odds once the point is
// established.
func DontPassLayOdds(amount float64, mult OddsMultipliers) craps.Strategy {
	return Aggregate{BetDontPass(amount), LayAllOdds(mult)}
}

// TwoCome keeps up to two come bets working while the point is on.
func TwoCome(amount float64) craps.Strategy {
	return Func(func(p *craps.Player, t *craps.Table) {
		if t.Point.On() && p.CountBets(craps.Come) < 2 {
			p.Place(craps.NewCome(amount), t)
		}
	})
}

// Pass2Come plays the pass line plus up to two come bets.
func Pass2Come(amount float64) craps.Strategy {
	return Aggregate{BetPassLine(amount), TwoCome(amount)}
}

// BetPlace keeps place bets working at the given amounts per number while
// the point is on. With skipPoint the current point number is not placed, and
// with removePointBet an existing place bet on the point is taken down first.
func BetPlace(amounts map[int]float64, skipPoint, removePointBet bool) craps.Strategy {
	numbers := make([]int, 0, len(amounts))
	for n := range amounts {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	return Func(func(p *craps.Player, t *craps.Table) {
		if !t.Point.On() {
			return
		}
		if removePointBet {
			p.Remove(craps.BetKey{Kind: craps.Place, Number: t.Point.Number})
		}
		for _, n := range numbers {
			if skipPoint && n == t.Point.Number {
				continue
			}
			if !p.HasBet(craps.BetKey{Kind: craps.Place, Number: n}) {
				p.Place(craps.NewPlace(n, amounts[n]), t)
			}
		}
	})
}

// PassLinePlace68 plays the pass line and places the six and eight, skipping
// whichever is the point.
func PassLinePlace68(passAmount, sixAmount, eightAmount float64) craps.Strategy {
	return Aggregate{
		BetPassLine(passAmount),
		BetPlace(map[int]float64{6: sixAmount, 8: eightAmount}, true, true),
	}
}

// Knockout plays pass and don't pass together with 3x-4x-5x odds on the pass
// side, so only the comeout twelve and the odds carry variance.
func Knockout(amount float64) craps.Strategy {
	return Aggregate{
		BetPassLine(amount),
		BetDontPass(amount),
		TakeOdds(Standard345()),
	}
}

// Place68DontCome2Odds places the six and eight and plays one don't come
// with double lay odds.
func Place68DontCome2Odds(sixAmount, eightAmount, dontComeAmount float64) craps.Strategy {
	oneDontCome := Func(func(p *craps.Player, t *craps.Table) {
		if t.Point.On() && p.CountBets(craps.DontCome) == 0 {
			p.Place(craps.NewDontCome(dontComeAmount), t)
		}
	})
	return Aggregate{
		BetPlace(map[int]float64{6: sixAmount, 8: eightAmount}, true, true),
		oneDontCome,
		LayAllOdds(FlatOdds(2)),
	}
}
