package strategy

import (
	"fmt"
	"sort"

	"github.com/lox/crapsforbots/internal/craps"
)

// Registry maps strategy names to constructors taking the betting unit.
// Amounts scale off the unit the way each strategy is conventionally played:
// six and eight place bets take six fifths of the unit so they pay whole
// units at 7:6.
var Registry = map[string]func(unit float64) craps.Strategy{
	"passline": func(unit float64) craps.Strategy {
		return BetPassLine(unit)
	},
	"passline-odds": func(unit float64) craps.Strategy {
		return PassLineOdds(unit, Standard345())
	},
	"passline-odds2": func(unit float64) craps.Strategy {
		return PassLineOdds(unit, FlatOdds(2))
	},
	"dontpass": func(unit float64) craps.Strategy {
		return BetDontPass(unit)
	},
	"dontpass-odds6": func(unit float64) craps.Strategy {
		return DontPassLayOdds(unit, FlatOdds(6))
	},
	"pass2come": func(unit float64) craps.Strategy {
		return Pass2Come(unit)
	},
	"passline-place68": func(unit float64) craps.Strategy {
		return PassLinePlace68(unit, unit*6/5, unit*6/5)
	},
	"place68-move59": func(unit float64) craps.Strategy {
		return Place68Move59(unit*6/5, unit)
	},
	"passline-place68-move59": func(unit float64) craps.Strategy {
		return PassLinePlace68Move59(unit, unit*6/5, unit)
	},
	"place68-2come": func(unit float64) craps.Strategy {
		return Place682Come(unit*6/5, unit, unit)
	},
	"ironcross": func(unit float64) craps.Strategy {
		return IronCross(unit)
	},
	"hammerlock": func(unit float64) craps.Strategy {
		return &HammerLock{Unit: unit}
	},
	"risk12": func(unit float64) craps.Strategy {
		return &Risk12{Unit: unit}
	},
	"knockout": func(unit float64) craps.Strategy {
		return Knockout(unit)
	},
	"dicedoctor": func(unit float64) craps.Strategy {
		return DiceDoctor()
	},
	"place68-cpr": func(unit float64) craps.Strategy {
		return &Place68CPR{Amount: unit * 6 / 5}
	},
	"place68-dontcome2odds": func(unit float64) craps.Strategy {
		return Place68DontCome2Odds(unit*6/5, unit*6/5, unit)
	},
}

// New builds a fresh strategy instance by registry name.
func New(name string, unit float64) (craps.Strategy, error) {
	ctor, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (known: %v)", name, Names())
	}
	return ctor(unit), nil
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
