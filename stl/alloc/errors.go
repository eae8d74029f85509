package alloc

import "errors"

var (
	// ErrNoSpace indicates that the source refused the request because its limit is reached.
	ErrNoSpace = errors.New("alloc: no space left in source")

	// ErrOverflow indicates that count * element size does not fit in an int.
	ErrOverflow = errors.New("alloc: size overflow")

	// ErrNegative indicates a negative slot count.
	ErrNegative = errors.New("alloc: negative slot count")

	// ErrUnsupported indicates that the platform cannot provide the requested backing.
	ErrUnsupported = errors.New("alloc: unsupported on this platform")
)
