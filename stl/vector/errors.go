package vector

import "errors"

var (
	// ErrOutOfRange is returned by At for an index outside [0, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNegativeCount is returned when a count or size argument is negative.
	ErrNegativeCount = errors.New("vector: negative count")

	// ErrTooLarge is returned when a requested size overflows int.
	ErrTooLarge = errors.New("vector: size overflows int")
)
