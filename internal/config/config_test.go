package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "craps.hcl")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.Runs != 1000 {
		t.Errorf("Expected default runs of 1000, got %d", cfg.Simulation.Runs)
	}
	if cfg.Simulation.Unit != 5 {
		t.Errorf("Expected default unit of 5, got %f", cfg.Simulation.Unit)
	}
	if len(cfg.Players) != 1 || cfg.Players[0].Strategy != "passline" {
		t.Errorf("Expected default passline player, got %+v", cfg.Players)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
table {
  field_double = [2]
  field_triple = [12]
}

simulation {
  runs     = 250
  rolls    = 100
  shooters = 5
  bankroll = 1000
  unit     = 10
  seed     = 42
  runout   = true
}

player "iron" {
  strategy = "ironcross"
}

player "conservative" {
  strategy = "passline-odds"
  bankroll = 200
  unit     = 5
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.Runs != 250 {
		t.Errorf("Expected 250 runs, got %d", cfg.Simulation.Runs)
	}
	if !cfg.Simulation.Runout {
		t.Error("Expected runout to be set")
	}
	if len(cfg.Table.FieldTriple) != 1 || cfg.Table.FieldTriple[0] != 12 {
		t.Errorf("Expected field_triple [12], got %v", cfg.Table.FieldTriple)
	}
	if len(cfg.Players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(cfg.Players))
	}
	// Player defaults inherit from the simulation block.
	if cfg.Players[0].Bankroll != 1000 || cfg.Players[0].Unit != 10 {
		t.Errorf("Expected inherited bankroll/unit, got %+v", cfg.Players[0])
	}
	if cfg.Players[1].Bankroll != 200 {
		t.Errorf("Expected explicit bankroll of 200, got %f", cfg.Players[1].Bankroll)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Config failed validation: %v", err)
	}

	if p := cfg.GetPlayerByName("iron"); p == nil || p.Strategy != "ironcross" {
		t.Errorf("GetPlayerByName(iron) = %+v", p)
	}
	if p := cfg.GetPlayerByName("nobody"); p != nil {
		t.Errorf("Expected nil for unknown player, got %+v", p)
	}
}

func TestLoad_OddsTables(t *testing.T) {
	path := writeConfig(t, `
odds "345" {
  multipliers = { "4" = 3, "5" = 4, "6" = 5, "8" = 5, "9" = 4, "10" = 3 }
}

odds "flat10" {
  multipliers = { "4" = 10, "10" = 10 }
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	m := cfg.GetOddsTable("345")
	if m == nil {
		t.Fatal("Expected odds table 345")
	}
	if m[6] != 5 || m[10] != 3 {
		t.Errorf("Unexpected multipliers: %v", m)
	}
	if cfg.GetOddsTable("nonexistent") != nil {
		t.Error("Expected nil for unknown odds table")
	}
}

func TestOddsTable_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		table OddsTable
	}{
		{"non-numeric key", OddsTable{Name: "bad", Multipliers: map[string]int{"four": 3}}},
		{"non-point number", OddsTable{Name: "bad", Multipliers: map[string]int{"7": 3}}},
		{"zero multiplier", OddsTable{Name: "bad", Multipliers: map[string]int{"6": 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.table.ToMultipliers(); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoad_InvalidHCL(t *testing.T) {
	path := writeConfig(t, `simulation { runs = `)
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error for invalid HCL")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimConfig)
	}{
		{"zero runs", func(c *SimConfig) { c.Simulation.Runs = -1 }},
		{"zero rolls", func(c *SimConfig) { c.Simulation.MaxRolls = -1 }},
		{"zero unit", func(c *SimConfig) { c.Simulation.Unit = 0; c.Simulation.Bankroll = 0 }},
		{"bankroll below unit", func(c *SimConfig) { c.Simulation.Bankroll = 1 }},
		{"bad field total", func(c *SimConfig) { c.Table.FieldDouble = []int{13} }},
		{"unknown strategy", func(c *SimConfig) { c.Players[0].Strategy = "martingale" }},
		{"negative player bankroll", func(c *SimConfig) { c.Players[0].Bankroll = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
