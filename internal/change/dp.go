package change

import "sort"

// MinCoins returns the minimum number of coins whose values sum to amount
// exactly, computed by dynamic programming. It is the verification oracle for
// Make: on canonical systems the two agree, on non-canonical systems MinCoins
// exposes where greedy falls short. Returns ErrCannotFulfill when no exact
// combination exists.
func MinCoins(amount int, denominations []int) (int, error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}
	descending, err := normalizeDenominations(denominations)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, nil
	}

	ascending := make([]int, len(descending))
	copy(ascending, descending)
	sort.Ints(ascending)

	if amount < ascending[0] {
		return 0, ErrCannotFulfill
	}

	inf := amount + 1
	dp := make([]int, amount+1)
	for i := 1; i <= amount; i++ {
		dp[i] = inf
	}

	for _, d := range ascending {
		for value := d; value <= amount; value++ {
			if dp[value-d]+1 < dp[value] {
				dp[value] = dp[value-d] + 1
			}
		}
	}

	if dp[amount] >= inf {
		return 0, ErrCannotFulfill
	}

	return dp[amount], nil
}
