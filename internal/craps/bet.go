package craps

import "fmt"

// Outcome is the resolution status of a bet for one completed roll.
type Outcome int

const (
	None Outcome = iota // bet stays on the table
	Win
	Lose
	Push
)

func (o Outcome) String() string {
	return [...]string{"none", "win", "lose", "push"}[o]
}

// BetKind identifies a bet family. The set is closed: every kind resolves
// through Bet.Resolve rather than a type hierarchy.
type BetKind int

const (
	PassLine BetKind = iota
	Come
	DontPass
	DontCome
	Odds
	LayOdds
	Place
	Field
	Any7
	Two
	Three
	Yo
	Boxcars
	AnyCraps
	CAndE
	Hardway
	Fire
	AllSmall
	AllTall
	AllOrNothing
)

func (k BetKind) String() string {
	return [...]string{
		"PassLine", "Come", "DontPass", "DontCome", "Odds", "LayOdds",
		"Place", "Field", "Any7", "Two", "Three", "Yo", "Boxcars",
		"AnyCraps", "CAndE", "Hardway", "Fire", "AllSmall", "AllTall",
		"AllOrNothingAtAll",
	}[k]
}

// BetKey is the value identity of a bet: family plus locked number. Two bets
// with the same key are the same wager for merge and membership purposes.
type BetKey struct {
	Kind   BetKind
	Number int
}

func (k BetKey) String() string {
	if k.Number != 0 {
		return fmt.Sprintf("%s%d", k.Kind, k.Number)
	}
	return k.Kind.String()
}

// Bet is a single wager on the table. Win, Lose and Push partition the roll
// totals a bet resolves on; any total outside the partition leaves the bet
// active. Line bets rewrite their partition in place when the point locks.
type Bet struct {
	Kind   BetKind
	Amount float64

	Win  Totals
	Lose Totals
	Push Totals

	// Ratio is the flat payout ratio on a win. Field, CAndE and the bonus
	// bets compute their payout per roll instead.
	Ratio float64

	Removable       bool
	AllowedPointOff bool
	AllowedPointOn  bool

	// Number is the locked number for numbered bets: the come/don't-come
	// point, the place or hardway number, or the line number once the point
	// is established. Zero while a line bet is still travelling.
	Number int

	faces    [2]int // winning pair for hardways
	prePoint bool   // line bet has not locked onto a number yet
	target   Totals // numbers the bonus family must complete
	made     Totals // progress of the bonus family
}

// Key returns the bet's value identity.
func (b *Bet) Key() BetKey {
	return BetKey{Kind: b.Kind, Number: b.Number}
}

func (b *Bet) String() string {
	return b.Key().String()
}

// Clone returns an independent copy of the bet. Strategies clone template
// bets before placing them so a placed bet never aliases strategy state.
func (b *Bet) Clone() *Bet {
	c := *b
	return &c
}

// NewPassLine is the pass line bet, placed before the point is established.
func NewPassLine(amount float64) *Bet {
	return &Bet{
		Kind:            PassLine,
		Amount:          amount,
		Win:             NewTotals(7, 11),
		Lose:            NewTotals(2, 3, 12),
		Ratio:           1,
		Removable:       true,
		AllowedPointOff: true,
		prePoint:        true,
	}
}

// NewCome is the come bet, placed after the point is established.
func NewCome(amount float64) *Bet {
	b := NewPassLine(amount)
	b.Kind = Come
	b.AllowedPointOff = false
	b.AllowedPointOn = true
	return b
}

// NewDontPass is the don't pass bet: 2 and 3 win, 7 and 11 lose, 12 pushes.
func NewDontPass(amount float64) *Bet {
	return &Bet{
		Kind:            DontPass,
		Amount:          amount,
		Win:             NewTotals(2, 3),
		Lose:            NewTotals(7, 11),
		Push:            NewTotals(12),
		Ratio:           1,
		Removable:       true,
		AllowedPointOff: true,
		prePoint:        true,
	}
}

// NewDontCome is the don't come bet, placed after the point is established.
func NewDontCome(amount float64) *Bet {
	b := NewDontPass(amount)
	b.Kind = DontCome
	b.AllowedPointOff = false
	b.AllowedPointOn = true
	return b
}

// oddsRatios are the true-odds payout ratios per point number.
var oddsRatios = map[int]float64{
	4: 2, 10: 2,
	5: 3.0 / 2, 9: 3.0 / 2,
	6: 6.0 / 5, 8: 6.0 / 5,
}

// layOddsRatios are the inverse true-odds ratios for don't bets.
var layOddsRatios = map[int]float64{
	4: 1.0 / 2, 10: 1.0 / 2,
	5: 2.0 / 3, 9: 2.0 / 3,
	6: 5.0 / 6, 8: 5.0 / 6,
}

// NewOdds attaches odds to a pass line or come bet that has locked onto a
// number. Attaching odds to any other kind is a strategy authoring bug and
// panics.
func NewOdds(base *Bet, amount float64) *Bet {
	if base.Kind != PassLine && base.Kind != Come {
		panic(fmt.Sprintf("odds must attach to a PassLine or Come bet, not %s", base.Kind))
	}
	if base.prePoint {
		panic("odds require the base bet to have an established point")
	}
	return &Bet{
		Kind:            Odds,
		Amount:          amount,
		Win:             base.Win,
		Lose:            base.Lose,
		Ratio:           oddsRatios[base.Number],
		Removable:       true,
		AllowedPointOff: base.Kind == Come,
		AllowedPointOn:  true,
		Number:          base.Number,
	}
}

// NewLayOdds attaches lay odds to a don't pass or don't come bet that has
// locked onto a number.
func NewLayOdds(base *Bet, amount float64) *Bet {
	if base.Kind != DontPass && base.Kind != DontCome {
		panic(fmt.Sprintf("lay odds must attach to a DontPass or DontCome bet, not %s", base.Kind))
	}
	if base.prePoint {
		panic("lay odds require the base bet to have an established point")
	}
	return &Bet{
		Kind:            LayOdds,
		Amount:          amount,
		Win:             base.Win,
		Lose:            base.Lose,
		Ratio:           layOddsRatios[base.Number],
		Removable:       true,
		AllowedPointOff: true,
		AllowedPointOn:  true,
		Number:          base.Number,
	}
}

// placeRatios are the house payout ratios for place bets per number.
var placeRatios = map[int]float64{
	4: 9.0 / 5, 10: 9.0 / 5,
	5: 7.0 / 5, 9: 7.0 / 5,
	6: 7.0 / 6, 8: 7.0 / 6,
}

// NewPlace is a place bet on one of 4, 5, 6, 8, 9 or 10. It is inert while
// the point is off.
func NewPlace(number int, amount float64) *Bet {
	ratio, ok := placeRatios[number]
	if !ok {
		panic(fmt.Sprintf("cannot place the %d", number))
	}
	return &Bet{
		Kind:            Place,
		Amount:          amount,
		Win:             NewTotals(number),
		Lose:            NewTotals(7),
		Ratio:           ratio,
		Removable:       true,
		AllowedPointOff: true,
		AllowedPointOn:  true,
		Number:          number,
	}
}

// NewField is the single-roll field bet. The double and triple paying
// subsets come from the table's payout configuration at resolution time.
func NewField(amount float64) *Bet {
	return &Bet{
		Kind:            Field,
		Amount:          amount,
		Win:             NewTotals(2, 3, 4, 9, 10, 11, 12),
		Lose:            NewTotals(5, 6, 7, 8),
		Ratio:           1,
		Removable:       true,
		AllowedPointOff: true,
		AllowedPointOn:  true,
	}
}

func newCenterBet(kind BetKind, amount float64, ratio float64, winning ...int) *Bet {
	win := NewTotals(winning...)
	lose := Totals(0)
	for n := 2; n <= 12; n++ {
		if !win.Contains(n) {
			lose = lose.With(n)
		}
	}
	return &Bet{
		Kind:            kind,
		Amount:          amount,
		Win:             win,
		Lose:            lose,
		Ratio:           ratio,
		Removable:       true,
		AllowedPointOff: true,
		AllowedPointOn:  true,
	}
}

// NewAny7 wins on any 7, paying 4:1.
func NewAny7(amount float64) *Bet { return newCenterBet(Any7, amount, 4, 7) }

// NewTwo wins on a 2, paying 30:1.
func NewTwo(amount float64) *Bet { return newCenterBet(Two, amount, 30, 2) }

// NewThree wins on a 3, paying 15:1.
func NewThree(amount float64) *Bet { return newCenterBet(Three, amount, 15, 3) }

// NewYo wins on an 11, paying 15:1.
func NewYo(amount float64) *Bet { return newCenterBet(Yo, amount, 15, 11) }

// NewBoxcars wins on a 12, paying 30:1.
func NewBoxcars(amount float64) *Bet { return newCenterBet(Boxcars, amount, 30, 12) }

// NewAnyCraps wins on 2, 3 or 12, paying 7:1.
func NewAnyCraps(amount float64) *Bet { return newCenterBet(AnyCraps, amount, 7, 2, 3, 12) }

// NewCAndE is craps-and-eleven: wins on 2, 3 or 12 at 3:1 and on 11 at 7:1.
func NewCAndE(amount float64) *Bet { return newCenterBet(CAndE, amount, 0, 2, 3, 11, 12) }

// hardwayRatios pay 7:1 on the 4 and 10, 9:1 on the 6 and 8.
var hardwayRatios = map[int]float64{4: 7, 10: 7, 6: 9, 8: 9}

// NewHardway bets that number rolls as a matched pair before a 7 or the
// easy way. Resolution inspects the individual die faces.
func NewHardway(number int, amount float64) *Bet {
	ratio, ok := hardwayRatios[number]
	if !ok {
		panic(fmt.Sprintf("no hardway on the %d", number))
	}
	return &Bet{
		Kind:            Hardway,
		Amount:          amount,
		Ratio:           ratio,
		Removable:       true,
		AllowedPointOff: true,
		AllowedPointOn:  true,
		Number:          number,
		faces:           [2]int{number / 2, number / 2},
	}
}

// NewFire bets the shooter makes four or more distinct points before the
// seven-out: 24:1 at four points, 249:1 at five, 999:1 at all six. Only
// placeable while the point is off.
func NewFire(amount float64) *Bet {
	return &Bet{
		Kind:            Fire,
		Amount:          amount,
		Removable:       false,
		AllowedPointOff: true,
	}
}

func newBonusBet(kind BetKind, amount float64, ratio float64, target Totals) *Bet {
	return &Bet{
		Kind:            kind,
		Amount:          amount,
		Ratio:           ratio,
		Removable:       false,
		AllowedPointOff: true,
		target:          target,
	}
}

// NewAllSmall wins 34:1 once every total 2 through 6 rolls before a 7.
func NewAllSmall(amount float64) *Bet {
	return newBonusBet(AllSmall, amount, 34, NewTotals(2, 3, 4, 5, 6))
}

// NewAllTall wins 34:1 once every total 8 through 12 rolls before a 7.
func NewAllTall(amount float64) *Bet {
	return newBonusBet(AllTall, amount, 34, NewTotals(8, 9, 10, 11, 12))
}

// NewAllOrNothing wins 175:1 once all ten non-7 totals roll before a 7.
func NewAllOrNothing(amount float64) *Bet {
	return newBonusBet(AllOrNothing, amount, 175, NewTotals(2, 3, 4, 5, 6, 8, 9, 10, 11, 12))
}

// Resolve applies the completed roll on t to the bet, returning its status
// and the winnings (excluding the returned stake). Line bets lock onto the
// rolled number as a side effect, and the bonus family records progress.
// The table's point is the pre-update state for this roll.
func (b *Bet) Resolve(t *Table) (Outcome, float64) {
	return b.resolve(t, true)
}

// Peek computes the bet's status for the roll without committing phase
// transitions or progress. Strategy AfterRoll hooks use it to snapshot
// would-be outcomes before resolution destroys them.
func (b *Bet) Peek(t *Table) (Outcome, float64) {
	return b.resolve(t, false)
}

func (b *Bet) resolve(t *Table, commit bool) (Outcome, float64) {
	total := t.Dice.Total()

	switch b.Kind {
	case PassLine, Come:
		switch {
		case b.Win.Contains(total):
			return Win, b.Ratio * b.Amount
		case b.Lose.Contains(total):
			return Lose, 0
		case b.prePoint && commit:
			// The point locks: the bet now rides on this number against
			// the 7 and can no longer be taken down.
			b.Win = NewTotals(total)
			b.Lose = NewTotals(7)
			b.Number = total
			b.prePoint = false
			b.Removable = false
		}
		return None, 0

	case DontPass, DontCome:
		switch {
		case b.Win.Contains(total):
			return Win, b.Ratio * b.Amount
		case b.Lose.Contains(total):
			return Lose, 0
		case b.Push.Contains(total):
			return Push, 0
		case b.prePoint && commit:
			b.Win = NewTotals(7)
			b.Lose = NewTotals(total)
			b.Push = 0
			b.Number = total
			b.prePoint = false
		}
		return None, 0

	case Place:
		// Place bets are inert while the point is off.
		if !t.Point.On() {
			return None, 0
		}
		return b.flatResolve(total)

	case Field:
		switch {
		case t.fieldTriple.Contains(total):
			return Win, 3 * b.Amount
		case t.fieldDouble.Contains(total):
			return Win, 2 * b.Amount
		case b.Win.Contains(total):
			return Win, b.Amount
		case b.Lose.Contains(total):
			return Lose, 0
		}
		return None, 0

	case CAndE:
		if b.Win.Contains(total) {
			switch total {
			case 2, 3, 12:
				return Win, 3 * b.Amount
			case 11:
				return Win, 7 * b.Amount
			default:
				panic(fmt.Sprintf("CAndE payout undefined for winning total %d", total))
			}
		}
		if b.Lose.Contains(total) {
			return Lose, 0
		}
		panic(fmt.Sprintf("CAndE resolution undefined for total %d", total))

	case Hardway:
		f1, f2 := t.Dice.Faces()
		if f1 == b.faces[0] && f2 == b.faces[1] {
			return Win, b.Ratio * b.Amount
		}
		if total == 7 || total == b.Number {
			return Lose, 0
		}
		return None, 0

	case Fire:
		if t.Point.On() && total == t.Point.Number {
			made := b.made.With(total)
			if commit {
				b.made = made
			}
			if made.Len() == 6 {
				return Win, 999 * b.Amount
			}
			return None, 0
		}
		if t.Point.On() && total == 7 {
			switch b.made.Len() {
			case 4:
				return Win, 24 * b.Amount
			case 5:
				return Win, 249 * b.Amount
			}
			return Lose, 0
		}
		return None, 0

	case AllSmall, AllTall, AllOrNothing:
		if total == 7 {
			return Lose, 0
		}
		if b.target.Contains(total) {
			made := b.made.With(total)
			if commit {
				b.made = made
			}
			if made == b.target {
				return Win, b.Ratio * b.Amount
			}
		}
		return None, 0

	default: // Odds, LayOdds and the fixed-ratio center bets
		return b.flatResolve(total)
	}
}

func (b *Bet) flatResolve(total int) (Outcome, float64) {
	switch {
	case b.Win.Contains(total):
		return Win, b.Ratio * b.Amount
	case b.Lose.Contains(total):
		return Lose, 0
	case b.Push.Contains(total):
		return Push, 0
	}
	return None, 0
}
