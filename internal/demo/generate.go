package demo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rmendoza/greedy-solvers/internal/activity"
	"github.com/rmendoza/greedy-solvers/internal/knapsack"
)

// Generator produces reproducible demo data from a fixed seed. It lives in
// the demo layer only; the solvers themselves never see randomness.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded deterministically.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Items generates n items with weight in [1, maxWeight] and value in
// [10, maxValue], both rounded to two decimals.
func (g *Generator) Items(n int, maxWeight, maxValue float64) []knapsack.Item {
	items := make([]knapsack.Item, 0, n)
	for i := 0; i < n; i++ {
		weight := round2(1 + g.rng.Float64()*(maxWeight-1))
		value := round2(10 + g.rng.Float64()*(maxValue-10))
		items = append(items, knapsack.NewItem(fmt.Sprintf("item %d", i+1), weight, value))
	}
	return items
}

// Activities generates n activities with start in [0, horizon) and end in
// (start, horizon].
func (g *Generator) Activities(n, horizon int) []activity.Activity {
	activities := make([]activity.Activity, 0, n)
	for i := 0; i < n; i++ {
		start := g.rng.Intn(horizon)
		end := start + 1 + g.rng.Intn(horizon-start)
		// end > start always holds here, so the constructor cannot fail.
		activities = append(activities, activity.Activity{
			Name:  fmt.Sprintf("activity %d", i+1),
			Start: start,
			End:   end,
		})
	}
	return activities
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
