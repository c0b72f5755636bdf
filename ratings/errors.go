package ratings

import "errors"

var (
	// ErrNegativeEntityCount indicates a negative target-axis entity count.
	ErrNegativeEntityCount = errors.New("ratings: entity count must be non-negative")

	// ErrEntityOutOfRange indicates a target-axis id outside [0, nX).
	ErrEntityOutOfRange = errors.New("ratings: entity id out of range")
)
