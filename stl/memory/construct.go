package memory

// Cloner is implemented by element types whose copies must be made
// explicitly. Clone returns an independent copy of the receiver.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented by element types that must release something when
// a live value is destroyed. Destroy may be called on a value that was
// produced by a failed Clone and must tolerate the zero value.
type Destroyer interface {
	Destroy()
}

// Construct copies v into the unconstructed slot p. When T implements
// Cloner[T] the copy is made by Clone; on error p is left unconstructed.
func Construct[T any](p *T, v T) error {
	if c, ok := any(v).(Cloner[T]); ok {
		cv, err := c.Clone()
		if err != nil {
			return err
		}
		*p = cv
		return nil
	}
	*p = v
	return nil
}

// ConstructWith builds a value in place. build receives the unconstructed slot
// and fills it; if build fails, whatever it left behind is zeroed.
func ConstructWith[T any](p *T, build func(*T) error) error {
	if err := build(p); err != nil {
		var zero T
		*p = zero
		return err
	}
	return nil
}

// Destroy ends the life of the value in slot p and zeroes the slot.
// Destroying a value without a Destroyer hook only zeroes it.
func Destroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	} else if d, ok := any(*p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

// DestroyRange destroys every value in s in forward order.
func DestroyRange[T any](s []T) {
	for i := range s {
		Destroy(&s[i])
	}
}
