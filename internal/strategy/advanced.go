package strategy

import "github.com/lox/crapsforbots/internal/craps"

// IronCross covers every number but the seven once the point is on: pass
// line with double odds, place bets on the five, six and eight, and a field
// bet picking up the rest.
func IronCross(unit float64) craps.Strategy {
	return Aggregate{
		BetPassLine(unit),
		TakeOdds(FlatOdds(2)),
		BetPlace(map[int]float64{
			5: 2 * unit,
			6: 2 * unit * 6 / 5,
			8: 2 * unit * 6 / 5,
		}, true, false),
		BetPointOn(craps.NewField(unit)),
	}
}

// HammerLock plays pass and don't pass together, lays 6x odds against the
// point, and walks its place bets through three phases: six and eight
// doubled, then spread across five through nine after the first place win,
// then everything off after the second. The seven-out restarts the cycle.
type HammerLock struct {
	Unit float64

	placeWins int
}

func (s *HammerLock) UpdateBets(p *craps.Player, t *craps.Table) {
	if !t.Point.On() {
		if !p.HasBet(craps.BetKey{Kind: craps.PassLine}) {
			p.Place(craps.NewPassLine(s.Unit), t)
		}
		if !p.HasBet(craps.BetKey{Kind: craps.DontPass}) {
			p.Place(craps.NewDontPass(s.Unit), t)
		}
		return
	}

	LayAllOdds(FlatOdds(6)).UpdateBets(p, t)

	switch s.placeWins {
	case 0:
		s.ensurePlaces(p, t, map[int]float64{
			6: 2 * s.Unit * 6 / 5,
			8: 2 * s.Unit * 6 / 5,
		})
	case 1:
		s.ensurePlaces(p, t, map[int]float64{
			5: s.Unit,
			6: s.Unit * 6 / 5,
			8: s.Unit * 6 / 5,
			9: s.Unit,
		})
	default:
		for _, b := range p.BetsOfKind(craps.Place) {
			p.Remove(b.Key())
		}
	}
}

// ensurePlaces reshapes the place layout to exactly the given numbers and
// amounts.
func (s *HammerLock) ensurePlaces(p *craps.Player, t *craps.Table, want map[int]float64) {
	for _, b := range p.BetsOfKind(craps.Place) {
		if amount, ok := want[b.Number]; !ok || amount != b.Amount {
			p.Remove(b.Key())
		}
	}
	for _, n := range []int{5, 6, 8, 9} {
		amount, ok := want[n]
		if !ok {
			continue
		}
		if !p.HasBet(craps.BetKey{Kind: craps.Place, Number: n}) {
			p.Place(craps.NewPlace(n, amount), t)
		}
	}
}

func (s *HammerLock) AfterRoll(p *craps.Player, t *craps.Table) {
	if t.Point.On() && t.Dice.Total() == 7 {
		s.placeWins = 0
		return
	}
	for _, b := range p.BetsOfKind(craps.Place) {
		if outcome, _ := b.Peek(t); outcome == craps.Win {
			s.placeWins++
		}
	}
}

// Risk12 bets the pass line and field on the comeout and banks those
// winnings; once the point is on it risks only the banked amount on place
// six and eight, so a whole hand never costs more than the comeout stakes.
type Risk12 struct {
	Unit float64

	banked float64
}

func (s *Risk12) UpdateBets(p *craps.Player, t *craps.Table) {
	if !t.Point.On() {
		if !p.HasBet(craps.BetKey{Kind: craps.PassLine}) {
			p.Place(craps.NewPassLine(s.Unit), t)
		}
		if !p.HasBet(craps.BetKey{Kind: craps.Field}) {
			p.Place(craps.NewField(s.Unit), t)
		}
		return
	}

	placeAmount := s.Unit * 6 / 5
	for _, n := range []int{6, 8} {
		if s.banked < placeAmount {
			return
		}
		if p.HasBet(craps.BetKey{Kind: craps.Place, Number: n}) {
			continue
		}
		if p.Place(craps.NewPlace(n, placeAmount), t) == craps.Accepted {
			s.banked -= placeAmount
		}
	}
}

func (s *Risk12) AfterRoll(p *craps.Player, t *craps.Table) {
	if t.Point.On() {
		if t.Dice.Total() == 7 {
			s.banked = 0
		}
		return
	}
	// Bank comeout winnings, stake included, to spend on place bets later.
	for _, b := range p.Bets() {
		if b.Kind != craps.PassLine && b.Kind != craps.Field {
			continue
		}
		if outcome, winnings := b.Peek(t); outcome == craps.Win {
			s.banked += b.Amount + winnings
		}
	}
}
