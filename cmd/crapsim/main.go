package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/crapsforbots/internal/config"
	"github.com/lox/crapsforbots/internal/export"
	"github.com/lox/crapsforbots/internal/simulator"
	"github.com/lox/crapsforbots/internal/statistics"
	"github.com/lox/crapsforbots/internal/strategy"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Simulate   SimulateCmd      `cmd:"" default:"withargs" help:"Simulate a betting strategy over many sessions"`
	Strategies StrategiesCmd    `cmd:"" help:"List the available betting strategies"`
}

type SimulateCmd struct {
	Strategy string        `short:"s" default:"passline" help:"Betting strategy to simulate"`
	Runs     int           `default:"1000" help:"Number of independent sessions"`
	Rolls    int           `default:"144" help:"Maximum dice rolls per session"`
	Shooters int           `default:"10" help:"Maximum shooter hands per session"`
	Bankroll float64       `default:"500" help:"Starting bankroll per session"`
	Unit     float64       `default:"5" help:"Betting unit"`
	Runout   bool          `help:"Keep rolling past the caps until every bet resolves"`
	Seed     int64         `default:"0" help:"RNG seed (0 for time-based)"`
	Parallel int           `default:"0" help:"Concurrent sessions (0 for GOMAXPROCS)"`
	Timeout  time.Duration `default:"30s" help:"Per-session watchdog timeout"`
	Config   string        `short:"c" default:"craps.hcl" help:"HCL config file for table payouts"`
	Output   string        `short:"o" help:"Write per-session results to a CSV file"`
	Debug    bool          `short:"d" help:"Debug logging"`
}

type StrategiesCmd struct{}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("crapsim"),
		kong.Description("Craps betting strategy simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func (c *SimulateCmd) Run() error {
	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	sim := simulator.New(simulator.Config{
		Runs:        c.Runs,
		MaxRolls:    c.Rolls,
		MaxShooters: c.Shooters,
		Runout:      c.Runout,
		Bankroll:    c.Bankroll,
		Unit:        c.Unit,
		Strategy:    c.Strategy,
		Seed:        c.Seed,
		FieldDouble: cfg.Table.FieldDouble,
		FieldTriple: cfg.Table.FieldTriple,
		Parallelism: c.Parallel,
		Timeout:     c.Timeout,
		Logger:      logger,
	})

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}
	printSummary(c, stats, time.Since(start))

	if c.Output != "" {
		if err := export.WriteCSV(c.Output, stats); err != nil {
			return err
		}
		logger.Info("wrote results", "path", c.Output, "runs", stats.Runs)
	}
	return nil
}

func printSummary(c *SimulateCmd, stats *statistics.Statistics, duration time.Duration) {
	mean := stats.Mean()
	low, high := stats.ConfidenceInterval95()

	fmt.Println(headerStyle.Render(fmt.Sprintf("=== %s: %d sessions of %.0f bankroll at %.0f units (seed %d) ===",
		c.Strategy, stats.Runs, c.Bankroll, c.Unit, c.Seed)))

	meanStyle := winStyle
	if mean < 0 {
		meanStyle = loseStyle
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	row := func(label, value string) {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render(label), value)
	}
	row("Mean net", meanStyle.Render(fmt.Sprintf("%+.2f", mean)))
	row("Median net", fmt.Sprintf("%+.2f", stats.Median()))
	row("Std dev", fmt.Sprintf("%.2f", stats.StdDev()))
	row("95% CI", fmt.Sprintf("[%+.2f, %+.2f]", low, high))
	row("Percentiles", fmt.Sprintf("P5=%+.1f P25=%+.1f P75=%+.1f P95=%+.1f",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95)))
	row("Best / worst", fmt.Sprintf("%+.2f / %+.2f", stats.BestNet, stats.WorstNet))
	row("Bust rate", fmt.Sprintf("%.1f%%", stats.BustRate()*100))
	row("Mean rolls/session", fmt.Sprintf("%.1f", stats.MeanRolls()))
	row("Net per roll", fmt.Sprintf("%+.4f", stats.MeanPerRoll()))
	row("Elapsed", duration.Round(time.Millisecond).String())
	w.Flush()
}

func (c *StrategiesCmd) Run() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range strategy.Names() {
		fmt.Fprintf(w, "%s\n", name)
	}
	return w.Flush()
}
