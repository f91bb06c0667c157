package activity

import "errors"

// ErrInvalidInterval is returned when an activity would start at or after its end.
var ErrInvalidInterval = errors.New("activity start must be strictly before its end")

// Activity is an immutable half-open time interval [Start, End) with a display
// name. Times may be negative.
type Activity struct {
	Name  string
	Start int
	End   int
}

// New builds an Activity, rejecting intervals where start >= end.
func New(start, end int, name string) (Activity, error) {
	if start >= end {
		return Activity{}, ErrInvalidInterval
	}
	return Activity{Name: name, Start: start, End: end}, nil
}

// Duration returns End - Start.
func (a Activity) Duration() int {
	return a.End - a.Start
}

// Overlaps reports whether two activities share interior points. Touching
// endpoints (a.End == b.Start) do not count as overlap.
func (a Activity) Overlaps(b Activity) bool {
	return !(a.End <= b.Start || b.End <= a.Start)
}
