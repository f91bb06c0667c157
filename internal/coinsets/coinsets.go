// Package coinsets keeps named denomination sets for the change-maker demo.
// The built-in systems are canonical: greedy change-making is optimal on them.
package coinsets

import (
	"errors"
	"sort"
	"sync"
)

var (
	// ErrInvalidSet indicates the provided denominations violate validation rules.
	ErrInvalidSet = errors.New("denomination set must contain positive integers")
	// ErrUnknownSystem indicates the requested coin system is not registered.
	ErrUnknownSystem = errors.New("unknown coin system")
)

const defaultSystem = "usd"

var builtinSystems = map[string][]int{
	"usd": {1, 5, 10, 25},
	"eur": {1, 2, 5, 10, 20, 50, 100, 200},
}

// Registry maps coin-system names to denomination sets and guards access with
// a RWMutex. All reads return defensive copies.
type Registry struct {
	mu      sync.RWMutex
	systems map[string][]int
}

// NewRegistry initialises a registry with copies of the built-in coin systems.
func NewRegistry() *Registry {
	systems := make(map[string][]int, len(builtinSystems))
	for name, denominations := range builtinSystems {
		systems[name] = cloneAndSort(denominations)
	}
	return &Registry{systems: systems}
}

// DefaultDenominations returns a copy of the default (USD) denomination set.
func DefaultDenominations() []int {
	return cloneAndSort(builtinSystems[defaultSystem])
}

// Get returns a copy of the denominations registered under name.
func (r *Registry) Get(name string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	denominations, ok := r.systems[name]
	if !ok {
		return nil, ErrUnknownSystem
	}
	return cloneAndSort(denominations), nil
}

// Register validates, normalises, and stores a denomination set under name.
// Registering an existing name replaces the previous set.
func (r *Registry) Register(name string, denominations []int) error {
	normalized, err := normalizeSet(denominations)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.systems[name] = normalized
	r.mu.Unlock()

	return nil
}

// Names returns the registered system names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneAndSort(src []int) []int {
	if len(src) == 0 {
		return []int{}
	}

	out := make([]int, len(src))
	copy(out, src)
	sort.Ints(out)
	return out
}

func normalizeSet(denominations []int) ([]int, error) {
	if len(denominations) == 0 {
		return nil, ErrInvalidSet
	}

	unique := make(map[int]struct{}, len(denominations))
	for _, d := range denominations {
		if d <= 0 {
			return nil, ErrInvalidSet
		}
		unique[d] = struct{}{}
	}

	out := make([]int, 0, len(unique))
	for d := range unique {
		out = append(out, d)
	}
	sort.Ints(out)
	return out, nil
}
