// Package knapsack solves the fractional knapsack problem: pick items, split
// freely, to maximize total value inside a weight capacity. Sorting by value
// density and cutting the first item that does not fit is globally optimal for
// the divisible variant; the 0/1 variant is out of scope.
package knapsack

import "sort"

// Solve selects items greedily by descending value/weight ratio until capacity
// runs out. Whole items are taken while they fit; the first item that does not
// fit is cut to the remaining capacity and ends the selection. Ties on ratio
// keep input order. The input slice is never reordered or mutated.
//
// A zero capacity or an empty item list yields an empty selection and total 0.
func Solve(items []Item, capacity float64) ([]Pick, float64, error) {
	if capacity < 0 {
		return nil, 0, ErrNegativeCapacity
	}

	byRatio := make([]Item, len(items))
	copy(byRatio, items)
	sort.SliceStable(byRatio, func(i, j int) bool {
		return byRatio[i].Ratio > byRatio[j].Ratio
	})

	selection := make([]Pick, 0, len(byRatio))
	remaining := capacity
	total := 0.0

	for _, item := range byRatio {
		if remaining <= 0 {
			break
		}

		if item.Weight <= remaining {
			selection = append(selection, Pick{Item: item, Fraction: 1.0})
			total += item.Value
			remaining -= item.Weight
			continue
		}

		fraction := remaining / item.Weight
		selection = append(selection, Pick{Item: item, Fraction: fraction})
		total += item.Value * fraction
		break
	}

	return selection, total, nil
}
