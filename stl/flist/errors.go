package flist

import "errors"

// ErrNegativeCount is returned when a count or size argument is negative.
var ErrNegativeCount = errors.New("flist: negative count")
