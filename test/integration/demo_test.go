package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/rmendoza/greedy-solvers/internal/change"
	"github.com/rmendoza/greedy-solvers/internal/config"
	"github.com/rmendoza/greedy-solvers/internal/demo"
)

func loadConfig(t *testing.T, yaml string) config.Config {
	t.Helper()

	t.Setenv("COIN_SYSTEM", "")
	t.Setenv("DENOMINATIONS", "")
	t.Setenv("DEMO_SEED", "")

	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(&config.CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func TestDemoFlow(t *testing.T) {
	cfg := loadConfig(t, `
coin_system: usd
change_amounts: [1, 4, 67, 99, 250]
knapsack:
  runs: [10]
  base_capacity: 500
activities:
  runs: [20]
  time_horizon: 50
seed: 42
verify: true
`)

	var out bytes.Buffer
	runner := demo.NewRunner(cfg, zaptest.NewLogger(t), &out)
	if err := runner.RunAll(); err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}

	report := out.String()
	if strings.Contains(report, "✗") {
		t.Fatalf("verification failed in report:\n%s", report)
	}
	for _, want := range []string{
		"Denominations: [1 5 10 25]",
		"Change for 67:",
		"Knapsack: 10 items, capacity 500.00",
		"Classic example:",
		"Available: 11, selected: 4",
		"20 random activities:",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

// The demo's minimality markers rely on the DP oracle agreeing with greedy on
// canonical systems; pin that agreement across the configured amounts.
func TestDemoChangeAmountsAreOptimal(t *testing.T) {
	cfg := loadConfig(t, "coin_system: usd\n")

	for _, amount := range cfg.ChangeAmounts {
		coins, err := change.Make(amount, []int{25, 10, 5, 1})
		if err != nil {
			t.Fatalf("Make(%d): %v", amount, err)
		}
		optimum, err := change.MinCoins(amount, []int{25, 10, 5, 1})
		if err != nil {
			t.Fatalf("MinCoins(%d): %v", amount, err)
		}
		if got := change.Coins(coins); got != optimum {
			t.Fatalf("amount %d: greedy used %d coins, optimum %d", amount, got, optimum)
		}
	}
}

func TestDemoRespectsCustomDenominations(t *testing.T) {
	cfg := loadConfig(t, `
denominations: [1, 2, 5]
change_amounts: [9]
verify: true
`)

	var out bytes.Buffer
	runner := demo.NewRunner(cfg, zaptest.NewLogger(t), &out)
	if err := runner.RunChange(); err != nil {
		t.Fatalf("RunChange returned error: %v", err)
	}

	report := out.String()
	if !strings.Contains(report, "Denominations: [1 2 5]") {
		t.Fatalf("expected custom denominations in report:\n%s", report)
	}
	if !strings.Contains(report, "Total coins: 3") {
		t.Fatalf("expected 5+2+2 for 9, got:\n%s", report)
	}
}
