package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/rmendoza/greedy-solvers/internal/config"
	"github.com/rmendoza/greedy-solvers/internal/demo"
)

func newTestRunner(t *testing.T, out *bytes.Buffer) *demo.Runner {
	t.Helper()

	cfg := config.Config{
		CoinSystem:    "usd",
		ChangeAmounts: []int{67},
		KnapsackRuns:  []int{3},
		BaseCapacity:  50,
		MaxWeight:     30,
		MaxValue:      100,
		ActivityRuns:  []int{5},
		TimeHorizon:   20,
		Seed:          42,
		Verify:        true,
	}
	return demo.NewRunner(cfg, zaptest.NewLogger(t), out)
}

func baseArgs() commandArgs {
	return commandArgs{
		changeCommand:     "change",
		knapsackCommand:   "knapsack",
		activitiesCommand: "activities",
		demoCommand:       "demo",
	}
}

func TestRunChangeCommand(t *testing.T) {
	var out bytes.Buffer
	args := baseArgs()
	args.amount = 67

	if err := run(newTestRunner(t, &out), "change", args); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Total coins: 6") {
		t.Fatalf("unexpected change output:\n%s", out.String())
	}
}

func TestRunKnapsackCommand(t *testing.T) {
	var out bytes.Buffer
	args := baseArgs()
	args.capacity = 50
	args.items = "10:60,20:100,30:120"

	if err := run(newTestRunner(t, &out), "knapsack", args); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Total value: 240.00") {
		t.Fatalf("unexpected knapsack output:\n%s", out.String())
	}
}

func TestRunKnapsackCommandRejectsMalformedItems(t *testing.T) {
	var out bytes.Buffer
	args := baseArgs()
	args.capacity = 50
	args.items = "10:60,nope"

	if err := run(newTestRunner(t, &out), "knapsack", args); err == nil {
		t.Fatalf("expected error for malformed items")
	}
}

func TestRunActivitiesCommand(t *testing.T) {
	var out bytes.Buffer
	args := baseArgs()
	args.intervals = "1:4,3:5,0:6,5:7,3:8,5:9,6:10,8:11,8:12,2:13,12:14"

	if err := run(newTestRunner(t, &out), "activities", args); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "selected: 4") {
		t.Fatalf("unexpected activities output:\n%s", out.String())
	}
}

func TestRunActivitiesCommandRejectsInvalidInterval(t *testing.T) {
	var out bytes.Buffer
	args := baseArgs()
	args.intervals = "5:2"

	if err := run(newTestRunner(t, &out), "activities", args); err == nil {
		t.Fatalf("expected error for invalid interval")
	}
}

func TestRunDemoCommand(t *testing.T) {
	var out bytes.Buffer

	if err := run(newTestRunner(t, &out), "demo", baseArgs()); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	report := out.String()
	for _, want := range []string{"CHANGE-MAKING", "FRACTIONAL KNAPSACK", "ACTIVITY SELECTION"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer

	if err := run(newTestRunner(t, &out), "bogus", baseArgs()); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}
