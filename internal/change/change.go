package change

import (
	"sort"
)

// Make computes change for amount using the greedy strategy: always take as many
// coins of the largest remaining denomination as fit. The returned map holds only
// denominations with a positive count.
//
// The result is provably minimal for canonical coin systems such as {1, 5, 10, 25}.
// For non-canonical sets the greedy pass may use more coins than necessary or stop
// short of the amount; Make does not detect that, it simply returns what the pass
// reached. Use Sum to check coverage and MinCoins to check minimality.
func Make(amount int, denominations []int) (map[int]int, error) {
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	descending, err := normalizeDenominations(denominations)
	if err != nil {
		return nil, err
	}

	result := make(map[int]int, len(descending))
	remaining := amount
	for _, d := range descending {
		if remaining < d {
			continue
		}
		result[d] = remaining / d
		remaining %= d
	}

	return result, nil
}

// Sum returns the weighted sum of a coin-count result.
func Sum(coins map[int]int) int {
	total := 0
	for denomination, count := range coins {
		total += denomination * count
	}
	return total
}

// Coins returns the total number of coins in a result.
func Coins(coins map[int]int) int {
	total := 0
	for _, count := range coins {
		total += count
	}
	return total
}

// normalizeDenominations validates, deduplicates, and sorts denominations in
// descending order, the order the greedy pass consumes them in.
func normalizeDenominations(denominations []int) ([]int, error) {
	if len(denominations) == 0 {
		return nil, ErrInvalidDenominations
	}

	unique := make(map[int]struct{}, len(denominations))
	for _, d := range denominations {
		if d <= 0 {
			return nil, ErrInvalidDenominations
		}
		unique[d] = struct{}{}
	}

	descending := make([]int, 0, len(unique))
	for d := range unique {
		descending = append(descending, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(descending)))

	return descending, nil
}
