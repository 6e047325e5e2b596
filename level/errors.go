package level

import "errors"

var (
	// ErrUnknownLevel is returned when a key is not in the progression
	ErrUnknownLevel = errors.New("unknown level")
	// ErrNoCompletionRule is returned for an enemy-only level without a completion rule
	ErrNoCompletionRule = errors.New("level has no correct words and no completion rule")
	// ErrInvalidLevel wraps field validation failures
	ErrInvalidLevel = errors.New("invalid level")
)
