package change

import "errors"

var (
	// ErrNegativeAmount is returned when the requested amount is negative.
	ErrNegativeAmount = errors.New("amount must be a non-negative integer")
	// ErrInvalidDenominations is returned when the denomination set is empty or contains non-positive values.
	ErrInvalidDenominations = errors.New("denominations must contain at least one positive integer")
	// ErrCannotFulfill is returned by the DP oracle when no exact combination reaches the amount.
	ErrCannotFulfill = errors.New("cannot reach amount exactly with the provided denominations")
)
