package iterator

// Reverse walks a bidirectional cursor backward. A Reverse built from base
// reads the element just before base, so wrapping a container's End gives a
// cursor on its last element and wrapping Begin gives the reverse end.
type Reverse[T any, I BidiCursor[T, I]] struct {
	base I
}

// NewReverse returns the reverse cursor for base.
func NewReverse[T any, I BidiCursor[T, I]](base I) Reverse[T, I] {
	return Reverse[T, I]{base: base}
}

// Base returns the underlying cursor, which is one position after the element
// r reads.
func (r Reverse[T, I]) Base() I {
	return r.base
}

// Category caps the underlying category at Bidirectional.
func (r Reverse[T, I]) Category() Category {
	return min(r.base.Category(), Bidirectional)
}

// Value returns the element before Base.
func (r Reverse[T, I]) Value() T {
	return r.base.Prev().Value()
}

// Next steps toward the front of the container.
func (r Reverse[T, I]) Next() Reverse[T, I] {
	return Reverse[T, I]{base: r.base.Prev()}
}

// Prev steps toward the back of the container.
func (r Reverse[T, I]) Prev() Reverse[T, I] {
	return Reverse[T, I]{base: r.base.Next()}
}

// Equal reports whether both reverse cursors wrap equal bases.
func (r Reverse[T, I]) Equal(other Reverse[T, I]) bool {
	return r.base.Equal(other.base)
}
