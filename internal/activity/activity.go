// Package activity selects the largest subset of pairwise non-overlapping
// time intervals. Committing the earliest-ending compatible activity at each
// step is optimal by the classical exchange argument.
package activity

import "sort"

// Select returns a maximum-cardinality subset of non-overlapping activities,
// in the order greedy commits them: sorted by increasing end time. Ties on end
// break on start, then input order. The input slice is not reordered; the
// result is a fresh slice holding the selected input values.
func Select(activities []Activity) []Activity {
	if len(activities) == 0 {
		return []Activity{}
	}

	byEnd := make([]Activity, len(activities))
	copy(byEnd, activities)
	sort.SliceStable(byEnd, func(i, j int) bool {
		if byEnd[i].End != byEnd[j].End {
			return byEnd[i].End < byEnd[j].End
		}
		return byEnd[i].Start < byEnd[j].Start
	})

	// The earliest-ending activity is always part of some optimum, so commit
	// it unconditionally rather than seeding lastEnd with a sentinel. This
	// keeps negative start times valid.
	selected := []Activity{byEnd[0]}
	lastEnd := byEnd[0].End

	for _, a := range byEnd[1:] {
		if a.Start >= lastEnd {
			selected = append(selected, a)
			lastEnd = a.End
		}
	}

	return selected
}
