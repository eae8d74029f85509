package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/stlkit/internal/buf"
)

// Allocator hands out blocks of slots for values of type T.
//
// Implementations:
//   - the value returned by For, bound to any Source
//
// A block returned by Allocate has len == cap == n and holds zero values.
// Deallocate must receive exactly a block returned by Allocate on the same
// allocator, after every live value in it has been destroyed.
type Allocator[T any] interface {
	// Allocate returns a block of n unconstructed slots.
	// Allocate(0) returns a nil block and no error.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block. Deallocating a nil block is a no-op.
	Deallocate(block []T)
}

// Mapper is implemented by sources that can back blocks with raw memory
// instead of the Go heap. For only uses it for pointer-free element types,
// since the garbage collector does not scan mapped memory.
type Mapper interface {
	Map(bytes int) ([]byte, error)
	Unmap(mem []byte) error
}

// typed binds a Source to T.
type typed[T any] struct {
	src    Source
	size   uintptr
	mapper Mapper
}

// For returns an Allocator for T drawing from src. A nil src means Heap.
//
// Calling For with the same src for different types is how node-based
// containers rebind one allocation policy to their node type.
func For[T any](src Source) Allocator[T] {
	if src == nil {
		src = Heap{}
	}
	var zero T
	a := &typed[T]{src: src, size: unsafe.Sizeof(zero)}
	if m, ok := src.(Mapper); ok && a.size > 0 && pointerFree(reflect.TypeFor[T]()) {
		a.mapper = m
	}
	return a
}

// Mapped reports whether a hands out blocks that live outside the Go heap.
// Such blocks are not reclaimed by the garbage collector and must reach
// Deallocate.
func Mapped[T any](a Allocator[T]) bool {
	t, ok := a.(*typed[T])
	return ok && t.mapper != nil
}

// Allocate implements Allocator.
func (a *typed[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n == 0 {
		return nil, nil
	}
	bytes, err := buf.SlotBytes(n, a.size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	if err := a.src.Acquire(n, a.size); err != nil {
		return nil, err
	}
	if a.mapper == nil {
		return make([]T, n), nil
	}
	mem, err := a.mapper.Map(bytes)
	if err != nil {
		a.src.Release(n, a.size)
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), n), nil
}

// Deallocate implements Allocator.
func (a *typed[T]) Deallocate(block []T) {
	block = block[:cap(block)]
	n := len(block)
	if n == 0 {
		return
	}
	if a.mapper != nil {
		mem := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(block))), n*int(a.size))
		// Unmapping can only fail for a block this allocator did not map.
		_ = a.mapper.Unmap(mem)
	} else {
		clear(block)
	}
	a.src.Release(n, a.size)
}

// pointerFree reports whether values of t contain no Go pointers.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
