package demo

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/rmendoza/greedy-solvers/internal/activity"
	"github.com/rmendoza/greedy-solvers/internal/knapsack"
)

func (r *Runner) banner(title string) {
	fmt.Fprintf(r.out, "\n%s\n%s\n%s\n", strings.Repeat("=", 60), title, strings.Repeat("=", 60))
}

func (r *Runner) rule(width int) {
	fmt.Fprintln(r.out, strings.Repeat("-", width))
}

// renderSelection writes the knapsack selection as an aligned table with a
// totals row.
func (r *Runner) renderSelection(selection []knapsack.Pick, total, capacity float64) {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Name\tWeight\tValue\tRatio\tFraction\tTaken\t")

	weight := 0.0
	for _, pick := range selection {
		weight += pick.WeightTaken()
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f%%\t%.2f\t\n",
			pick.Item.Name,
			pick.Item.Weight,
			pick.Item.Value,
			pick.Item.Ratio,
			pick.Fraction*100,
			pick.ValueTaken(),
		)
	}
	w.Flush()

	fmt.Fprintf(r.out, "Weight used: %.2f / %.2f\n", weight, capacity)
	fmt.Fprintf(r.out, "Total value: %.2f\n", total)
}

// renderActivities lists every activity in start order, marking the selected
// ones.
func (r *Runner) renderActivities(activities, selected []activity.Activity) {
	chosen := make(map[activity.Activity]struct{}, len(selected))
	for _, a := range selected {
		chosen[a] = struct{}{}
	}

	byStart := make([]activity.Activity, len(activities))
	copy(byStart, activities)
	sort.SliceStable(byStart, func(i, j int) bool {
		return byStart[i].Start < byStart[j].Start
	})

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, " \tName\tStart\tEnd\tDuration\t")
	for _, a := range byStart {
		marker := " "
		if _, ok := chosen[a]; ok {
			marker = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t\n", marker, a.Name, a.Start, a.End, a.Duration())
	}
	w.Flush()
}

// renderTimeline draws the selected activities as a block-character strip over
// the full time range of the input.
func (r *Runner) renderTimeline(activities, selected []activity.Activity) {
	if len(selected) == 0 {
		return
	}

	minStart := activities[0].Start
	maxEnd := activities[0].End
	for _, a := range activities {
		if a.Start < minStart {
			minStart = a.Start
		}
		if a.End > maxEnd {
			maxEnd = a.End
		}
	}

	span := maxEnd - minStart
	line := make([]rune, span)
	for i := range line {
		line[i] = ' '
	}
	for _, a := range selected {
		for t := a.Start; t < a.End; t++ {
			line[t-minStart] = '█'
		}
	}

	fmt.Fprintf(r.out, "Timeline [%d, %d): %s\n", minStart, maxEnd, string(line))
}
