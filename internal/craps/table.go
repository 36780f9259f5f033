package craps

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/crapsforbots/internal/dice"
)

// Strategy decides a player's bets. UpdateBets runs before every roll and is
// the only place bets may be placed or removed. AfterRoll runs after the dice
// land but before any bet resolves or the point advances, so implementations
// can Peek at would-be outcomes while the bets are still on the table.
type Strategy interface {
	UpdateBets(p *Player, t *Table)
	AfterRoll(p *Player, t *Table)
}

// TableConfig carries the table's payout configuration. Zero values give the
// common casino layout: field pays double on 2 and 12, triple on nothing.
type TableConfig struct {
	FieldDouble []int
	FieldTriple []int
	Logger      *log.Logger
}

// Table owns the dice, the point and the seated players, and drives the
// per-roll turn loop.
type Table struct {
	Dice  *dice.Dice
	Point Point

	players     []*Player
	fieldDouble Totals
	fieldTriple Totals
	passRolls   int
	lastRoll    int
	shooters    int
	logger      *log.Logger
}

// NewTable creates a table with its own dice. Pass a nil rng for a
// time-seeded table or an explicit *rand.Rand for reproducible runs.
func NewTable(rng *rand.Rand, cfg TableConfig) *Table {
	double := cfg.FieldDouble
	if double == nil {
		double = []int{2, 12}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Table{
		Dice:        dice.New(rng),
		fieldDouble: NewTotals(double...),
		fieldTriple: NewTotals(cfg.FieldTriple...),
		shooters:    1,
		logger:      logger,
	}
}

// AddPlayer seats a player at the table.
func (t *Table) AddPlayer(p *Player) {
	t.players = append(t.players, p)
}

// Players returns the seated players.
func (t *Table) Players() []*Player {
	return t.players
}

// LastRoll is the most recent resolved roll total, zero before any roll.
func (t *Table) LastRoll() int {
	return t.lastRoll
}

// Shooters counts shooter hands, starting at 1 and incrementing on each
// seven-out.
func (t *Table) Shooters() int {
	return t.shooters
}

// PassRolls counts rolls since the current pass line sequence began.
func (t *Table) PassRolls() int {
	return t.passRolls
}

// TotalPlayerCash sums every player's bankroll plus staked bets.
func (t *Table) TotalPlayerCash() float64 {
	var total float64
	for _, p := range t.players {
		total += p.Bankroll + p.TotalBetAmount()
	}
	return total
}

// PlayerHasBets reports whether any player still has an active bet.
func (t *Table) PlayerHasBets() bool {
	for _, p := range t.players {
		if len(p.Bets()) > 0 {
			return true
		}
	}
	return false
}

// Turn plays one full turn with random dice: strategies update their bets,
// the dice roll, AfterRoll hooks fire, bets resolve against the pre-roll
// point, and finally the table state advances.
func (t *Table) Turn() {
	t.playTurn(func() error {
		t.Dice.Roll()
		return nil
	})
}

// FixedTurn plays one full turn with the given dice faces. It errors without
// touching any state when a face is outside [1,6].
func (t *Table) FixedTurn(f1, f2 int) error {
	return t.playTurn(func() error {
		return t.Dice.FixedRoll(f1, f2)
	})
}

func (t *Table) playTurn(roll func() error) error {
	// Every strategy acts before the dice leave the hand.
	for _, p := range t.players {
		p.Strategy.UpdateBets(p, t)
	}
	if err := roll(); err != nil {
		return err
	}
	f1, f2 := t.Dice.Faces()
	t.logger.Debug("dice rolled", "total", t.Dice.Total(), "faces", []int{f1, f2}, "point", t.Point.Status)
	// AfterRoll sees the landed dice with every bet still live and the
	// point not yet advanced.
	for _, p := range t.players {
		p.Strategy.AfterRoll(p, t)
	}
	for _, p := range t.players {
		p.resolveBets(t)
	}
	t.updateTable()
	return nil
}

// Run plays turns until the roll cap or shooter cap is hit or a player's
// bankroll drops to their betting unit. With runout set, play continues past
// the caps until every bet has resolved.
func (t *Table) Run(maxRolls, maxShooters int, runout bool) {
	if len(t.players) == 0 {
		t.logger.Warn("run with no players seated")
		return
	}
	for {
		t.Turn()
		if !t.continueRolling(maxRolls, maxShooters, runout) {
			return
		}
	}
}

func (t *Table) continueRolling(maxRolls, maxShooters int, runout bool) bool {
	base := t.Dice.Rolls() < maxRolls &&
		t.shooters <= maxShooters &&
		t.allPlayersFunded()
	if runout {
		return base || t.PlayerHasBets()
	}
	return base
}

func (t *Table) allPlayersFunded() bool {
	for _, p := range t.players {
		if p.Bankroll <= p.Unit {
			return false
		}
	}
	return true
}

// updateTable advances table state after all bets have resolved: the roll
// counter, the shooter count on a seven-out, and the point.
func (t *Table) updateTable() {
	total := t.Dice.Total()
	t.passRolls++
	if t.Point.On() && total == 7 {
		t.shooters++
		t.logger.Debug("seven out", "shooters", t.shooters)
	}
	if t.Point.On() && (total == 7 || total == t.Point.Number) {
		t.passRolls = 0
	}
	t.Point.Update(total)
	t.lastRoll = total
}
