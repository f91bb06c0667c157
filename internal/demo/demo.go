package demo

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/rmendoza/greedy-solvers/internal/activity"
	"github.com/rmendoza/greedy-solvers/internal/change"
	"github.com/rmendoza/greedy-solvers/internal/coinsets"
	"github.com/rmendoza/greedy-solvers/internal/config"
	"github.com/rmendoza/greedy-solvers/internal/knapsack"
)

// Runner executes demo scenarios and writes rendered reports to out.
type Runner struct {
	cfg      config.Config
	logger   *zap.Logger
	out      io.Writer
	registry *coinsets.Registry
	gen      *Generator
}

// NewRunner wires a runner from configuration. Reports go to out; lifecycle
// diagnostics go to the logger.
func NewRunner(cfg config.Config, logger *zap.Logger, out io.Writer) *Runner {
	return &Runner{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		registry: coinsets.NewRegistry(),
		gen:      NewGenerator(cfg.Seed),
	}
}

// Registry exposes the coin-set registry, primarily so callers can register
// additional systems before running.
func (r *Runner) Registry() *coinsets.Registry {
	return r.registry
}

// Denominations resolves the denomination set in effect: explicit
// denominations win over the named coin system.
func (r *Runner) Denominations() ([]int, error) {
	if len(r.cfg.Denominations) > 0 {
		return r.cfg.Denominations, nil
	}
	denominations, err := r.registry.Get(r.cfg.CoinSystem)
	if err != nil {
		return nil, fmt.Errorf("resolve coin system %q: %w", r.cfg.CoinSystem, err)
	}
	return denominations, nil
}

// RunAll runs the three demos in the original order.
func (r *Runner) RunAll() error {
	if err := r.RunChange(); err != nil {
		return err
	}
	if err := r.RunKnapsack(); err != nil {
		return err
	}
	return r.RunActivities()
}

// RunChange makes change for every configured amount.
func (r *Runner) RunChange() error {
	denominations, err := r.Denominations()
	if err != nil {
		return err
	}

	r.banner("CHANGE-MAKING")
	fmt.Fprintf(r.out, "Denominations: %v\n", denominations)

	for _, amount := range r.cfg.ChangeAmounts {
		if err := r.ReportChange(amount, denominations); err != nil {
			return err
		}
	}

	r.logger.Info("change demo complete",
		zap.Int("amounts", len(r.cfg.ChangeAmounts)),
		zap.Ints("denominations", denominations),
	)
	return nil
}

// ReportChange makes change for a single amount and renders the coin table.
func (r *Runner) ReportChange(amount int, denominations []int) error {
	coins, err := change.Make(amount, denominations)
	if err != nil {
		return fmt.Errorf("make change for %d: %w", amount, err)
	}

	fmt.Fprintf(r.out, "\nChange for %d:\n", amount)
	r.rule(40)

	ordered := make([]int, 0, len(coins))
	for denomination := range coins {
		ordered = append(ordered, denomination)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))
	for _, denomination := range ordered {
		fmt.Fprintf(r.out, "  %4d x %d\n", denomination, coins[denomination])
	}

	r.rule(40)
	fmt.Fprintf(r.out, "Total coins: %d\n", change.Coins(coins))

	if r.cfg.Verify {
		r.verifyChange(amount, coins, denominations)
	}
	return nil
}

func (r *Runner) verifyChange(amount int, coins map[int]int, denominations []int) {
	sum := change.Sum(coins)
	fmt.Fprintf(r.out, "%s sum %d (expected %d)\n", mark(sum == amount), sum, amount)

	optimum, err := change.MinCoins(amount, denominations)
	switch {
	case errors.Is(err, change.ErrCannotFulfill):
		fmt.Fprintf(r.out, "%s amount not reachable with this denomination set\n", mark(false))
	case err != nil:
		r.logger.Warn("minimality check failed", zap.Int("amount", amount), zap.Error(err))
	default:
		fmt.Fprintf(r.out, "%s coin count %d (optimum %d)\n",
			mark(change.Coins(coins) == optimum), change.Coins(coins), optimum)
	}
}

// RunKnapsack solves one knapsack per configured run size, scaling capacity
// with the item count as the original scenarios do.
func (r *Runner) RunKnapsack() error {
	r.banner("FRACTIONAL KNAPSACK")

	for _, n := range r.cfg.KnapsackRuns {
		items := r.gen.Items(n, r.cfg.MaxWeight, r.cfg.MaxValue)
		capacity := r.cfg.BaseCapacity * float64(n) / 10
		if err := r.ReportKnapsack(items, capacity); err != nil {
			return err
		}
	}

	r.logger.Info("knapsack demo complete", zap.Ints("runs", r.cfg.KnapsackRuns))
	return nil
}

// ReportKnapsack solves a single knapsack and renders the selection table.
func (r *Runner) ReportKnapsack(items []knapsack.Item, capacity float64) error {
	selection, total, err := knapsack.Solve(items, capacity)
	if err != nil {
		return fmt.Errorf("solve knapsack: %w", err)
	}

	fmt.Fprintf(r.out, "\nKnapsack: %d items, capacity %.2f\n", len(items), capacity)
	r.renderSelection(selection, total, capacity)

	if r.cfg.Verify {
		r.verifyKnapsack(selection, capacity)
	}
	return nil
}

func (r *Runner) verifyKnapsack(selection []knapsack.Pick, capacity float64) {
	weight := 0.0
	fractional := 0
	for _, pick := range selection {
		weight += pick.WeightTaken()
		if pick.Fraction < 1.0 {
			fractional++
		}
	}
	fmt.Fprintf(r.out, "%s weight %.2f within capacity %.2f\n",
		mark(weight <= capacity+1e-9), weight, capacity)
	fmt.Fprintf(r.out, "%s at most one fractional item (%d)\n", mark(fractional <= 1), fractional)
}

// RunActivities selects from the classic interval set first, then from the
// configured random runs.
func (r *Runner) RunActivities() error {
	r.banner("ACTIVITY SELECTION")

	fmt.Fprintf(r.out, "\nClassic example:\n")
	if err := r.ReportActivities(classicActivities()); err != nil {
		return err
	}

	for _, n := range r.cfg.ActivityRuns {
		fmt.Fprintf(r.out, "\n%d random activities:\n", n)
		if err := r.ReportActivities(r.gen.Activities(n, r.cfg.TimeHorizon)); err != nil {
			return err
		}
	}

	r.logger.Info("activity demo complete", zap.Ints("runs", r.cfg.ActivityRuns))
	return nil
}

// ReportActivities selects a maximum non-overlapping subset and renders the
// listing plus a timeline of the selected activities.
func (r *Runner) ReportActivities(activities []activity.Activity) error {
	selected := activity.Select(activities)

	fmt.Fprintf(r.out, "Available: %d, selected: %d\n", len(activities), len(selected))
	r.renderActivities(activities, selected)
	r.renderTimeline(activities, selected)

	if r.cfg.Verify {
		r.verifyActivities(selected)
	}
	return nil
}

func (r *Runner) verifyActivities(selected []activity.Activity) {
	ok := true
	for i := range selected {
		for j := i + 1; j < len(selected); j++ {
			if selected[i].Overlaps(selected[j]) {
				ok = false
			}
		}
	}
	fmt.Fprintf(r.out, "%s selected activities do not overlap\n", mark(ok))

	covered := 0
	for _, a := range selected {
		covered += a.Duration()
	}
	fmt.Fprintf(r.out, "Time covered: %d units\n", covered)
}

// classicActivities returns the textbook 11-activity instance; its known
// optimum selects A, D, H and K.
func classicActivities() []activity.Activity {
	return []activity.Activity{
		{Start: 1, End: 4, Name: "A"},
		{Start: 3, End: 5, Name: "B"},
		{Start: 0, End: 6, Name: "C"},
		{Start: 5, End: 7, Name: "D"},
		{Start: 3, End: 8, Name: "E"},
		{Start: 5, End: 9, Name: "F"},
		{Start: 6, End: 10, Name: "G"},
		{Start: 8, End: 11, Name: "H"},
		{Start: 8, End: 12, Name: "I"},
		{Start: 2, End: 13, Name: "J"},
		{Start: 12, End: 14, Name: "K"},
	}
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
