package strategy

import "github.com/lox/crapsforbots/internal/craps"

// PlaceBetAndMove keeps a set of place bets working and moves any of them
// aside when a line bet lands on the same number. Movements maps a displaced
// place bet's key to its destination; a nil destination takes the bet down
// without a replacement. When a destination is itself occupied the movement
// chain is followed until a free number is found.
type PlaceBetAndMove struct {
	StartingBets []*craps.Bet
	CheckKinds   []craps.BetKind
	Movements    map[craps.BetKey]*craps.Bet

	displaced map[craps.BetKey]bool
}

func (s *PlaceBetAndMove) UpdateBets(p *craps.Player, t *craps.Table) {
	if !t.Point.On() {
		// Place bets all resolve on the seven-out, so a fresh comeout
		// starts the layout over.
		s.displaced = nil
		return
	}
	if s.displaced == nil {
		s.displaced = make(map[craps.BetKey]bool)
	}
	for _, b := range s.StartingBets {
		if !p.HasBet(b.Key()) && !s.displaced[b.Key()] {
			p.Place(b.Clone(), t)
		}
	}
	for _, n := range s.occupiedNumbers(p, t) {
		s.move(p, t, craps.BetKey{Kind: craps.Place, Number: n})
	}
}

func (s *PlaceBetAndMove) AfterRoll(*craps.Player, *craps.Table) {}

// occupiedNumbers are the numbers the checked line bets currently sit on.
func (s *PlaceBetAndMove) occupiedNumbers(p *craps.Player, t *craps.Table) []int {
	var numbers []int
	for _, kind := range s.CheckKinds {
		if kind == craps.PassLine || kind == craps.DontPass {
			numbers = append(numbers, t.Point.Number)
			continue
		}
		for _, b := range p.BetsOfKind(kind) {
			if b.Number != 0 {
				numbers = append(numbers, b.Number)
			}
		}
	}
	return numbers
}

func (s *PlaceBetAndMove) move(p *craps.Player, t *craps.Table, key craps.BetKey) {
	if !p.HasBet(key) {
		return
	}
	target, ok := s.Movements[key]
	if !ok {
		return
	}
	// Follow the chain until a free destination; the depth bound guards
	// against cyclic movement tables.
	for hops := 0; target != nil && p.HasBet(target.Key()); hops++ {
		next, ok := s.Movements[target.Key()]
		if !ok || hops >= len(s.Movements) {
			return
		}
		target = next
	}
	if !p.Remove(key) {
		return
	}
	s.displaced[key] = true
	if target != nil {
		p.Place(target.Clone(), t)
	}
}

// Place68Move59 places the six and eight and moves either to the five or
// nine when the pass line point or a come bet lands on it.
func Place68Move59(sixEightAmount, fiveNineAmount float64) craps.Strategy {
	return &PlaceBetAndMove{
		StartingBets: []*craps.Bet{
			craps.NewPlace(6, sixEightAmount),
			craps.NewPlace(8, sixEightAmount),
		},
		CheckKinds: []craps.BetKind{craps.PassLine, craps.Come},
		Movements: map[craps.BetKey]*craps.Bet{
			{Kind: craps.Place, Number: 6}: craps.NewPlace(5, fiveNineAmount),
			{Kind: craps.Place, Number: 8}: craps.NewPlace(9, fiveNineAmount),
		},
	}
}

// PassLinePlace68Move59 adds a pass line bet to Place68Move59.
func PassLinePlace68Move59(passAmount, sixEightAmount, fiveNineAmount float64) craps.Strategy {
	return Aggregate{
		BetPassLine(passAmount),
		Place68Move59(sixEightAmount, fiveNineAmount),
	}
}

// Place682Come places the six and eight and keeps up to two come bets
// working, moving a place bet aside when a come bet lands on its number. The
// combined count of place and come bets is capped at four.
func Place682Come(sixEightAmount, fiveNineAmount, comeAmount float64) craps.Strategy {
	comeBets := Func(func(p *craps.Player, t *craps.Table) {
		if t.Point.On() &&
			p.CountBets(craps.Come) < 2 &&
			p.CountBets(craps.Come)+p.CountBets(craps.Place) < 4 {
			p.Place(craps.NewCome(comeAmount), t)
		}
	})
	return Aggregate{
		&PlaceBetAndMove{
			StartingBets: []*craps.Bet{
				craps.NewPlace(6, sixEightAmount),
				craps.NewPlace(8, sixEightAmount),
			},
			CheckKinds: []craps.BetKind{craps.Come},
			Movements: map[craps.BetKey]*craps.Bet{
				{Kind: craps.Place, Number: 6}: craps.NewPlace(5, fiveNineAmount),
				{Kind: craps.Place, Number: 8}: craps.NewPlace(9, fiveNineAmount),
			},
		},
		comeBets,
	}
}
