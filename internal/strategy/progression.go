package strategy

import "github.com/lox/crapsforbots/internal/craps"

// FieldWinProgression bets the field at amounts from a progression, stepping
// forward on every win and restarting on a loss.
type FieldWinProgression struct {
	Progression []float64

	step int
}

func (s *FieldWinProgression) UpdateBets(p *craps.Player, t *craps.Table) {
	if p.HasBet(craps.BetKey{Kind: craps.Field}) {
		return
	}
	step := s.step
	if step >= len(s.Progression) {
		step = len(s.Progression) - 1
	}
	p.Place(craps.NewField(s.Progression[step]), t)
}

func (s *FieldWinProgression) AfterRoll(p *craps.Player, t *craps.Table) {
	b := p.GetBet(craps.BetKey{Kind: craps.Field})
	if b == nil {
		return
	}
	switch outcome, _ := b.Peek(t); outcome {
	case craps.Win:
		s.step++
	case craps.Lose:
		s.step = 0
	}
}

// DiceDoctor is the field progression 10-20-15-30-25-50-35-70-50-100-75-150.
func DiceDoctor() craps.Strategy {
	return &FieldWinProgression{
		Progression: []float64{10, 20, 15, 30, 25, 50, 35, 70, 50, 100, 75, 150},
	}
}

// Place68CPR runs collect-press-regress on the six and eight: the first win
// on a number presses it to double, the next win regresses it back, and the
// seven-out resets both.
type Place68CPR struct {
	Amount float64

	pressed map[int]bool
}

func (s *Place68CPR) UpdateBets(p *craps.Player, t *craps.Table) {
	if !t.Point.On() {
		return
	}
	if s.pressed == nil {
		s.pressed = make(map[int]bool)
	}
	for _, n := range []int{6, 8} {
		if p.HasBet(craps.BetKey{Kind: craps.Place, Number: n}) {
			continue
		}
		amount := s.Amount
		if s.pressed[n] {
			amount *= 2
		}
		p.Place(craps.NewPlace(n, amount), t)
	}
}

func (s *Place68CPR) AfterRoll(p *craps.Player, t *craps.Table) {
	if t.Dice.Total() == 7 {
		s.pressed = nil
		return
	}
	for _, n := range []int{6, 8} {
		b := p.GetBet(craps.BetKey{Kind: craps.Place, Number: n})
		if b == nil {
			continue
		}
		if outcome, _ := b.Peek(t); outcome == craps.Win {
			if s.pressed == nil {
				s.pressed = make(map[int]bool)
			}
			s.pressed[n] = !s.pressed[n]
		}
	}
}
