package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/rmendoza/greedy-solvers/internal/config"
	"github.com/rmendoza/greedy-solvers/internal/demo"
	"github.com/rmendoza/greedy-solvers/internal/logging"
)

func main() {
	app := kingpin.New("greedy", "Greedy algorithm demos: change-making, fractional knapsack, activity selection")
	debug := app.Flag("debug", "Enable debug logging").Bool()
	configFile := app.Flag("config", "Path to YAML configuration file").String()
	seedFlag := app.Flag("seed", "Random seed for generated demo data").Default("-1").Int64()
	noVerify := app.Flag("no-verify", "Skip post-hoc result verification").Bool()

	changeCmd := app.Command("change", "Make change for an amount with the fewest coins")
	changeAmount := changeCmd.Arg("amount", "Amount to change").Required().Int()
	changeCoins := changeCmd.Flag("coins", "Comma-separated denominations, e.g. 25,10,5,1").String()
	changeSystem := changeCmd.Flag("system", "Named coin system (usd, eur)").String()

	knapsackCmd := app.Command("knapsack", "Maximize value in a fractional knapsack")
	knapsackCapacity := knapsackCmd.Flag("capacity", "Knapsack capacity").Required().Float64()
	knapsackItems := knapsackCmd.Flag("items", "Comma-separated weight:value pairs, e.g. 10:60,20:100").Required().String()

	activitiesCmd := app.Command("activities", "Select the most non-overlapping activities")
	activityIntervals := activitiesCmd.Flag("intervals", "Comma-separated start:end pairs, e.g. 1:4,3:5").Required().String()

	demoCmd := app.Command("demo", "Run the full demonstration").Default()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}
	if *changeSystem != "" {
		overrides.CoinSystem = changeSystem
	}
	if *changeCoins != "" {
		overrides.DenominationsStr = changeCoins
	}
	if *seedFlag >= 0 {
		overrides.Seed = seedFlag
	}
	if *noVerify {
		verify := false
		overrides.Verify = &verify
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	runner := demo.NewRunner(cfg, logger, os.Stdout)

	if err := run(runner, command, commandArgs{
		changeCommand:     changeCmd.FullCommand(),
		knapsackCommand:   knapsackCmd.FullCommand(),
		activitiesCommand: activitiesCmd.FullCommand(),
		demoCommand:       demoCmd.FullCommand(),
		amount:            *changeAmount,
		capacity:          *knapsackCapacity,
		items:             *knapsackItems,
		intervals:         *activityIntervals,
	}); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// commandArgs carries the parsed per-command inputs so run stays testable
// without kingpin.
type commandArgs struct {
	changeCommand     string
	knapsackCommand   string
	activitiesCommand string
	demoCommand       string
	amount            int
	capacity          float64
	items             string
	intervals         string
}

func run(runner *demo.Runner, command string, args commandArgs) error {
	switch command {
	case args.changeCommand:
		denominations, err := runner.Denominations()
		if err != nil {
			return err
		}
		return runner.ReportChange(args.amount, denominations)

	case args.knapsackCommand:
		items, err := config.ParseItems(args.items)
		if err != nil {
			return fmt.Errorf("parse items: %w", err)
		}
		return runner.ReportKnapsack(items, args.capacity)

	case args.activitiesCommand:
		activities, err := config.ParseActivities(args.intervals)
		if err != nil {
			return fmt.Errorf("parse intervals: %w", err)
		}
		return runner.ReportActivities(activities)

	case args.demoCommand:
		return runner.RunAll()

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
