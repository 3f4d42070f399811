package walk

import "errors"

var (
	// ErrInvalidConfig reports a rejected option: unknown variant or seed,
	// non-positive steps or scale, fill fraction outside (0, 1).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrWalkerTrapped reports a grid walker that could not find a free cell
	// within its retry budget.
	ErrWalkerTrapped = errors.New("walker trapped")

	// ErrGeometry reports a malformed playground polygon.
	ErrGeometry = errors.New("invalid geometry")
)
