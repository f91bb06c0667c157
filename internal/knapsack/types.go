package knapsack

import "errors"

// ErrNegativeCapacity is returned when the knapsack capacity is negative.
var ErrNegativeCapacity = errors.New("capacity must be non-negative")

// Item is an immutable weighted good. Ratio is the value density the greedy
// pass sorts by; it is fixed to 0 when Weight is not positive so the comparator
// stays total. Zero-weight items are therefore deprioritized, possibly excluded.
type Item struct {
	Name   string
	Weight float64
	Value  float64
	Ratio  float64
}

// NewItem builds an Item and derives its value/weight ratio.
func NewItem(name string, weight, value float64) Item {
	ratio := 0.0
	if weight > 0 {
		ratio = value / weight
	}
	return Item{
		Name:   name,
		Weight: weight,
		Value:  value,
		Ratio:  ratio,
	}
}

// Pick is one selected item together with the fraction taken, in (0, 1].
// At most one Pick in a selection has Fraction < 1 and it is always the last.
type Pick struct {
	Item     Item
	Fraction float64
}

// WeightTaken returns the capacity this pick consumes.
func (p Pick) WeightTaken() float64 {
	return p.Item.Weight * p.Fraction
}

// ValueTaken returns the value this pick contributes.
func (p Pick) ValueTaken() float64 {
	return p.Item.Value * p.Fraction
}
