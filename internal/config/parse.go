package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rmendoza/greedy-solvers/internal/activity"
	"github.com/rmendoza/greedy-solvers/internal/knapsack"
)

// ParseItems parses a comma-separated list of weight:value pairs, e.g.
// "10:60,20:100,30:120", into knapsack items named by position.
func ParseItems(raw string) ([]knapsack.Item, error) {
	pairs, err := splitPairs(raw)
	if err != nil {
		return nil, err
	}

	items := make([]knapsack.Item, 0, len(pairs))
	for i, pair := range pairs {
		weight, err := strconv.ParseFloat(pair[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q", pair[0])
		}
		value, err := strconv.ParseFloat(pair[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", pair[1])
		}
		if weight < 0 || value < 0 {
			return nil, fmt.Errorf("weight and value must be non-negative in %q", strings.Join(pair[:], ":"))
		}
		items = append(items, knapsack.NewItem(fmt.Sprintf("item %d", i+1), weight, value))
	}
	return items, nil
}

// ParseActivities parses a comma-separated list of start:end pairs, e.g.
// "1:4,3:5,0:6", into activities named by position. Times may be negative.
func ParseActivities(raw string) ([]activity.Activity, error) {
	pairs, err := splitPairs(raw)
	if err != nil {
		return nil, err
	}

	activities := make([]activity.Activity, 0, len(pairs))
	for i, pair := range pairs {
		start, err := strconv.Atoi(pair[0])
		if err != nil {
			return nil, fmt.Errorf("invalid start time %q", pair[0])
		}
		end, err := strconv.Atoi(pair[1])
		if err != nil {
			return nil, fmt.Errorf("invalid end time %q", pair[1])
		}
		a, err := activity.New(start, end, fmt.Sprintf("activity %d", i+1))
		if err != nil {
			return nil, fmt.Errorf("interval %s:%s: %w", pair[0], pair[1], err)
		}
		activities = append(activities, a)
	}
	return activities, nil
}

func splitPairs(raw string) ([][2]string, error) {
	parts := strings.Split(raw, ",")
	pairs := make([][2]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 2 {
			return nil, fmt.Errorf("expected two colon-separated values, got %q", part)
		}
		pairs = append(pairs, [2]string{strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no values provided")
	}
	return pairs, nil
}
