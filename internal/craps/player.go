package craps

// PlaceResult reports whether a bet placement was accepted, and if not, why.
type PlaceResult int

const (
	Accepted PlaceResult = iota
	RejectedIneligible        // bet not allowed in the current point phase
	RejectedInsufficientFunds // bankroll cannot cover the amount
)

func (r PlaceResult) String() string {
	return [...]string{"accepted", "rejected: ineligible", "rejected: insufficient funds"}[r]
}

// Player holds a bankroll, a strategy and the set of active bets. Stakes move
// out of the bankroll when a bet is placed and back (plus winnings) when it
// resolves, so Bankroll+TotalBetAmount is conserved across placement.
type Player struct {
	Name     string
	Bankroll float64
	Unit     float64
	Strategy Strategy

	bets []*Bet
}

// NewPlayer seats a player with a starting bankroll and a strategy. Unit
// defaults to 5 and is only advisory: strategies and the table's stop
// condition read it, the engine never bets on its own.
func NewPlayer(name string, bankroll float64, strategy Strategy) *Player {
	return &Player{
		Name:     name,
		Bankroll: bankroll,
		Unit:     5,
		Strategy: strategy,
	}
}

// Place puts a bet on the table. Eligibility is checked before funds, so a
// phase-ineligible bet reports RejectedIneligible even when the player could
// not afford it either. Placing a bet with the same key as an active bet
// merges the amounts into the existing bet.
func (p *Player) Place(b *Bet, t *Table) PlaceResult {
	allowed := b.AllowedPointOff
	if t.Point.On() {
		allowed = b.AllowedPointOn
	}
	if !allowed {
		return RejectedIneligible
	}
	if p.Bankroll < b.Amount {
		return RejectedInsufficientFunds
	}
	p.Bankroll -= b.Amount
	if existing := p.GetBet(b.Key()); existing != nil {
		existing.Amount += b.Amount
	} else {
		p.bets = append(p.bets, b)
	}
	t.logger.Debug("bet placed", "player", p.Name, "bet", b, "amount", b.Amount)
	return Accepted
}

// Remove takes down the active bet with the given key and refunds its full
// amount. It reports false, changing nothing, when no such bet is active or
// the bet is not removable.
func (p *Player) Remove(key BetKey) bool {
	for i, b := range p.bets {
		if b.Key() != key {
			continue
		}
		if !b.Removable {
			return false
		}
		p.Bankroll += b.Amount
		p.bets = append(p.bets[:i], p.bets[i+1:]...)
		return true
	}
	return false
}

// Bets returns the player's active bets. Callers must not add or remove
// entries directly; use Place and Remove.
func (p *Player) Bets() []*Bet {
	return p.bets
}

// GetBet returns the active bet with the given key, or nil.
func (p *Player) GetBet(key BetKey) *Bet {
	for _, b := range p.bets {
		if b.Key() == key {
			return b
		}
	}
	return nil
}

// HasBet reports whether a bet with the given key is active.
func (p *Player) HasBet(key BetKey) bool {
	return p.GetBet(key) != nil
}

// BetsOfKind returns the active bets belonging to any of the given families.
func (p *Player) BetsOfKind(kinds ...BetKind) []*Bet {
	var out []*Bet
	for _, b := range p.bets {
		for _, k := range kinds {
			if b.Kind == k {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// CountBets returns how many active bets belong to the given families.
func (p *Player) CountBets(kinds ...BetKind) int {
	return len(p.BetsOfKind(kinds...))
}

// TotalBetAmount is the sum staked across all active bets.
func (p *Player) TotalBetAmount() float64 {
	var total float64
	for _, b := range p.bets {
		total += b.Amount
	}
	return total
}

// resolveBets settles every active bet against the completed roll. Winning
// bets return stake plus winnings, pushes return the stake, losses forfeit
// it, and unresolved bets stay on the table.
func (p *Player) resolveBets(t *Table) {
	kept := make([]*Bet, 0, len(p.bets))
	for _, b := range p.bets {
		outcome, winnings := b.Resolve(t)
		switch outcome {
		case Win:
			p.Bankroll += b.Amount + winnings
			t.logger.Debug("bet won", "player", p.Name, "bet", b, "winnings", winnings)
		case Lose:
			t.logger.Debug("bet lost", "player", p.Name, "bet", b, "amount", b.Amount)
		case Push:
			p.Bankroll += b.Amount
			t.logger.Debug("bet pushed", "player", p.Name, "bet", b)
		case None:
			kept = append(kept, b)
		}
	}
	p.bets = kept
}
