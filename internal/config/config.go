// Package config loads simulation configuration from HCL files.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/crapsforbots/internal/strategy"
)

// SimConfig represents the complete simulation configuration.
type SimConfig struct {
	Table      TableSettings      `hcl:"table,block"`
	Simulation SimulationSettings `hcl:"simulation,block"`
	Players    []PlayerConfig     `hcl:"player,block"`
	Odds       []OddsTable        `hcl:"odds,block"`
}

// OddsTable is a named odds multiplier table, keyed by point number.
type OddsTable struct {
	Name        string         `hcl:"name,label"`
	Multipliers map[string]int `hcl:"multipliers"`
}

// TableSettings contains table payout configuration.
type TableSettings struct {
	FieldDouble []int `hcl:"field_double,optional"`
	FieldTriple []int `hcl:"field_triple,optional"`
}

// SimulationSettings contains batch-level configuration.
type SimulationSettings struct {
	Runs        int     `hcl:"runs,optional"`
	MaxRolls    int     `hcl:"rolls,optional"`
	MaxShooters int     `hcl:"shooters,optional"`
	Runout      bool    `hcl:"runout,optional"`
	Bankroll    float64 `hcl:"bankroll,optional"`
	Unit        float64 `hcl:"unit,optional"`
	Seed        int64   `hcl:"seed,optional"`
	Parallelism int     `hcl:"parallelism,optional"`
	LogLevel    string  `hcl:"log_level,optional"`
}

// PlayerConfig defines a simulated player.
type PlayerConfig struct {
	Name     string  `hcl:"name,label"`
	Strategy string  `hcl:"strategy"`
	Bankroll float64 `hcl:"bankroll,optional"`
	Unit     float64 `hcl:"unit,optional"`
}

// Default returns the default simulation configuration.
func Default() *SimConfig {
	return &SimConfig{
		Table: TableSettings{
			FieldDouble: []int{2, 12},
		},
		Simulation: SimulationSettings{
			Runs:        1000,
			MaxRolls:    144,
			MaxShooters: 10,
			Bankroll:    500,
			Unit:        5,
			LogLevel:    "info",
		},
		Players: []PlayerConfig{
			{
				Name:     "Player1",
				Strategy: "passline",
				Bankroll: 500,
				Unit:     5,
			},
		},
	}
}

// Load loads simulation configuration from an HCL file, falling back to the
// defaults when the file does not exist.
func Load(filename string) (*SimConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config SimConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Table.FieldDouble == nil {
		config.Table.FieldDouble = []int{2, 12}
	}
	if config.Simulation.Runs == 0 {
		config.Simulation.Runs = 1000
	}
	if config.Simulation.MaxRolls == 0 {
		config.Simulation.MaxRolls = 144
	}
	if config.Simulation.MaxShooters == 0 {
		config.Simulation.MaxShooters = 10
	}
	if config.Simulation.Bankroll == 0 {
		config.Simulation.Bankroll = 500
	}
	if config.Simulation.Unit == 0 {
		config.Simulation.Unit = 5
	}
	if config.Simulation.LogLevel == "" {
		config.Simulation.LogLevel = "info"
	}

	for i := range config.Players {
		if config.Players[i].Bankroll == 0 {
			config.Players[i].Bankroll = config.Simulation.Bankroll
		}
		if config.Players[i].Unit == 0 {
			config.Players[i].Unit = config.Simulation.Unit
		}
	}

	return &config, nil
}

// Validate validates the simulation configuration.
func (c *SimConfig) Validate() error {
	if c.Simulation.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", c.Simulation.Runs)
	}
	if c.Simulation.MaxRolls <= 0 {
		return fmt.Errorf("rolls must be positive, got %d", c.Simulation.MaxRolls)
	}
	if c.Simulation.MaxShooters <= 0 {
		return fmt.Errorf("shooters must be positive, got %d", c.Simulation.MaxShooters)
	}
	if c.Simulation.Unit <= 0 {
		return fmt.Errorf("unit must be positive, got %f", c.Simulation.Unit)
	}
	if c.Simulation.Bankroll < c.Simulation.Unit {
		return fmt.Errorf("bankroll %f cannot cover a single unit of %f",
			c.Simulation.Bankroll, c.Simulation.Unit)
	}

	for _, n := range c.Table.FieldDouble {
		if n < 2 || n > 12 {
			return fmt.Errorf("field_double total %d out of range [2,12]", n)
		}
	}
	for _, n := range c.Table.FieldTriple {
		if n < 2 || n > 12 {
			return fmt.Errorf("field_triple total %d out of range [2,12]", n)
		}
	}

	for _, p := range c.Players {
		if _, ok := strategy.Registry[p.Strategy]; !ok {
			return fmt.Errorf("player %s: unknown strategy %q", p.Name, p.Strategy)
		}
		if p.Bankroll <= 0 {
			return fmt.Errorf("player %s: bankroll must be positive", p.Name)
		}
	}

	for _, o := range c.Odds {
		if _, err := o.ToMultipliers(); err != nil {
			return fmt.Errorf("odds table %s: %w", o.Name, err)
		}
	}

	return nil
}

// ToMultipliers converts the string-keyed HCL map into an odds multiplier
// table, rejecting keys that are not point numbers.
func (o *OddsTable) ToMultipliers() (strategy.OddsMultipliers, error) {
	m := make(strategy.OddsMultipliers, len(o.Multipliers))
	for k, mult := range o.Multipliers {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("invalid point number %q", k)
		}
		switch n {
		case 4, 5, 6, 8, 9, 10:
		default:
			return nil, fmt.Errorf("point number %d is not a valid point", n)
		}
		if mult <= 0 {
			return nil, fmt.Errorf("multiplier for %d must be positive, got %d", n, mult)
		}
		m[n] = mult
	}
	return m, nil
}

// GetOddsTable returns a named odds multiplier table, or nil if undefined.
func (c *SimConfig) GetOddsTable(name string) strategy.OddsMultipliers {
	for _, o := range c.Odds {
		if o.Name == name {
			m, err := o.ToMultipliers()
			if err != nil {
				return nil
			}
			return m
		}
	}
	return nil
}

// GetPlayerByName returns a player configuration by name.
func (c *SimConfig) GetPlayerByName(name string) *PlayerConfig {
	for _, p := range c.Players {
		if p.Name == name {
			return &p
		}
	}
	return nil
}
