package vector

import (
	"fmt"
	"iter"
	"reflect"
	"runtime"
	"slices"
	"unsafe"

	"github.com/joshuapare/stlkit/internal/buf"
	"github.com/joshuapare/stlkit/stl/alloc"
	"github.com/joshuapare/stlkit/stl/iterator"
	"github.com/joshuapare/stlkit/stl/memory"
	"github.com/joshuapare/stlkit/stl/verify"
)

// Options configures a new Vector.
//
// Use DefaultOptions() for production defaults.
type Options struct {
	// Source supplies the vector's storage.
	// Default: nil (alloc.Heap)
	Source alloc.Source

	// Capacity is reserved up front.
	// Default: 0
	Capacity int
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{}
}

// Vector is a growable sequence stored in one contiguous block.
// The zero value is an empty vector using the heap.
type Vector[T any] struct {
	alloc  alloc.Allocator[T]
	block  []T // allocated slots, len == cap
	finish int // live values are block[:finish]
	guard  *mapping[T]
}

// mapping holds the current block of a vector whose allocator maps memory,
// so a cleanup can release it if the vector is dropped without Destroy.
type mapping[T any] struct {
	alloc alloc.Allocator[T]
	block []T
}

func (m *mapping[T]) release() {
	if m.block != nil {
		m.alloc.Deallocate(m.block)
		m.block = nil
	}
}

// track records the current block in the guard, registering the cleanup the
// first time v holds a mapped block. Heap blocks are left to the collector.
func (v *Vector[T]) track() {
	mapped := v.block != nil && alloc.Mapped(v.alloc)
	if v.guard == nil {
		if !mapped {
			return
		}
		v.guard = &mapping[T]{}
		runtime.AddCleanup(v, (*mapping[T]).release, v.guard)
	}
	v.guard.alloc, v.guard.block = v.alloc, nil
	if mapped {
		v.guard.block = v.block
	}
}

// New returns an empty vector using the heap.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithOptions returns an empty vector configured by opts.
func NewWithOptions[T any](opts Options) (*Vector[T], error) {
	v := &Vector[T]{alloc: alloc.For[T](opts.Source)}
	if err := v.Reserve(opts.Capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// Of returns a vector holding copies of vals.
func Of[T any](vals ...T) (*Vector[T], error) {
	v := New[T]()
	if err := v.Assign(vals...); err != nil {
		return nil, err
	}
	return v, nil
}

// Filled returns a vector holding n copies of val.
func Filled[T any](n int, val T) (*Vector[T], error) {
	v := New[T]()
	if err := v.AssignN(n, val); err != nil {
		return nil, err
	}
	return v, nil
}

// FromRange returns a vector holding copies of the values in [first, last).
func FromRange[T any, I iterator.Cursor[T, I]](first, last I) (*Vector[T], error) {
	v := New[T]()
	if err := AssignRange(v, first, last); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector[T]) allocator() alloc.Allocator[T] {
	if v.alloc == nil {
		v.alloc = alloc.For[T](nil)
	}
	return v.alloc
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.finish }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.block) }

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool { return v.finish == 0 }

// At returns the element at i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.finish {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.finish)
	}
	return v.block[i], nil
}

// Index returns the element at i without checking it against Len.
func (v *Vector[T]) Index(i int) T { return v.block[i] }

// Ptr returns the address of the element at i without checking it against Len.
func (v *Vector[T]) Ptr(i int) *T { return &v.block[i] }

// Set replaces the element at i with a copy of val. If the copy fails the
// old element is kept.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= v.finish {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.finish)
	}
	var tmp T
	if err := memory.Construct(&tmp, val); err != nil {
		return err
	}
	memory.Destroy(&v.block[i])
	v.block[i] = tmp
	return nil
}

// Front returns the address of the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T { return &v.block[0] }

// Back returns the address of the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T { return &v.block[v.finish-1] }

// Data returns the live elements. The slice aliases the vector's storage
// until the next reallocation.
func (v *Vector[T]) Data() []T { return v.block[:v.finish:v.finish] }

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{v: v} }

// End returns the position after the last element.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{v: v, i: v.finish} }

// RBegin returns a reverse cursor on the last element.
func (v *Vector[T]) RBegin() iterator.Reverse[T, Iterator[T]] {
	return iterator.NewReverse[T](v.End())
}

// REnd returns the reverse cursor before the first element.
func (v *Vector[T]) REnd() iterator.Reverse[T, Iterator[T]] {
	return iterator.NewReverse[T](v.Begin())
}

// Reserve makes room for at least n elements. It never shrinks the block.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.block) {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reallocates so that Cap equals Len.
func (v *Vector[T]) ShrinkToFit() error {
	if v.finish == len(v.block) {
		return nil
	}
	if v.finish == 0 {
		v.allocator().Deallocate(v.block)
		v.block = nil
		v.track()
		return nil
	}
	return v.reallocate(v.finish)
}

// reallocate moves the live elements into a new block of exactly n slots.
func (v *Vector[T]) reallocate(n int) error {
	a := v.allocator()
	block, err := a.Allocate(n)
	if err != nil {
		return err
	}
	memory.UninitializedMove(v.block[:v.finish], block)
	if v.block != nil {
		a.Deallocate(v.block)
	}
	v.block = block
	v.track()
	return nil
}

// grow ensures room for extra more elements, doubling the capacity as needed.
func (v *Vector[T]) grow(extra int) error {
	need, ok := buf.AddOverflowSafe(v.finish, extra)
	if !ok {
		return fmt.Errorf("%w: %d + %d", ErrTooLarge, v.finish, extra)
	}
	if need <= len(v.block) {
		return nil
	}
	newCap, _ := buf.GrowCapacity(len(v.block), need)
	return v.reallocate(newCap)
}

// openGap makes the k slots at i unconstructed by shifting the tail back.
// Capacity must already allow it.
func (v *Vector[T]) openGap(i, k int) {
	memory.MoveBackward(v.block, i, i+k, v.finish-i)
	v.finish += k
}

// closeGap removes the k unconstructed slots at i by shifting the tail forward.
func (v *Vector[T]) closeGap(i, k int) {
	memory.Move(v.block, i+k, i, v.finish-i-k)
	v.finish -= k
}

// Insert inserts copies of vals before pos and returns the position of the
// first inserted element. vals may alias the vector's own elements.
func (v *Vector[T]) Insert(pos Iterator[T], vals ...T) (Iterator[T], error) {
	k := len(vals)
	if k == 0 {
		return pos, nil
	}
	if overlaps(vals, v.block) {
		vals = slices.Clone(vals)
	}
	if err := v.grow(k); err != nil {
		return pos, err
	}
	i := pos.i
	v.openGap(i, k)
	if _, err := memory.UninitializedCopy(vals, v.block[i:i+k]); err != nil {
		v.closeGap(i, k)
		return pos, err
	}
	return Iterator[T]{v: v, i: i}, nil
}

// InsertN inserts n copies of val before pos.
func (v *Vector[T]) InsertN(pos Iterator[T], n int, val T) (Iterator[T], error) {
	if n < 0 {
		return pos, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n == 0 {
		return pos, nil
	}
	if err := v.grow(n); err != nil {
		return pos, err
	}
	i := pos.i
	v.openGap(i, n)
	if _, err := memory.UninitializedFillN(v.block[i:i+n], n, val); err != nil {
		v.closeGap(i, n)
		return pos, err
	}
	return Iterator[T]{v: v, i: i}, nil
}

// InsertSeq inserts the values of seq before pos.
func (v *Vector[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	return v.Insert(pos, slices.Collect(seq)...)
}

// InsertRange inserts copies of the values in [first, last) before pos. The
// range may belong to v itself.
func InsertRange[T any, I iterator.Cursor[T, I]](v *Vector[T], pos Iterator[T], first, last I) (Iterator[T], error) {
	return v.Insert(pos, iterator.Collect[T](first, last)...)
}

// Emplace constructs an element in place before pos using build.
func (v *Vector[T]) Emplace(pos Iterator[T], build func(*T) error) (Iterator[T], error) {
	if err := v.grow(1); err != nil {
		return pos, err
	}
	i := pos.i
	v.openGap(i, 1)
	if err := memory.ConstructWith(&v.block[i], build); err != nil {
		v.closeGap(i, 1)
		return pos, err
	}
	return Iterator[T]{v: v, i: i}, nil
}

// Erase removes the element at pos and returns the position that follows it.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes the elements in [first, last) and returns the position
// that followed them.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	i, j := first.i, last.i
	if i == j {
		return first
	}
	memory.DestroyRange(v.block[i:j])
	v.closeGap(i, j-i)
	return Iterator[T]{v: v, i: i}
}

// PushBack appends a copy of val.
func (v *Vector[T]) PushBack(val T) error {
	if err := v.grow(1); err != nil {
		return err
	}
	if err := memory.Construct(&v.block[v.finish], val); err != nil {
		return err
	}
	v.finish++
	return nil
}

// EmplaceBack constructs a new last element with build and returns its address.
func (v *Vector[T]) EmplaceBack(build func(*T) error) (*T, error) {
	if err := v.grow(1); err != nil {
		return nil, err
	}
	p := &v.block[v.finish]
	if err := memory.ConstructWith(p, build); err != nil {
		return nil, err
	}
	v.finish++
	return p, nil
}

// PopBack destroys the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	v.finish--
	memory.Destroy(&v.block[v.finish])
}

// Resize sets the length to n, destroying surplus elements or appending
// copies of fill.
func (v *Vector[T]) Resize(n int, fill T) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	case n <= v.finish:
		memory.DestroyRange(v.block[n:v.finish])
		v.finish = n
		return nil
	}
	extra := n - v.finish
	if err := v.grow(extra); err != nil {
		return err
	}
	if _, err := memory.UninitializedFillN(v.block[v.finish:n], extra, fill); err != nil {
		return err
	}
	v.finish = n
	return nil
}

// Clear destroys every element. The capacity is kept.
func (v *Vector[T]) Clear() {
	memory.DestroyRange(v.block[:v.finish])
	v.finish = 0
}

// Destroy clears the vector and releases its block.
func (v *Vector[T]) Destroy() {
	v.Clear()
	if v.block != nil {
		v.allocator().Deallocate(v.block)
		v.block = nil
		v.track()
	}
}

// replace builds new contents in a fresh block with fill and swaps them in
// only if fill succeeds.
func (v *Vector[T]) replace(n int, fill func(dst []T) error) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	tmp := &Vector[T]{alloc: v.allocator()}
	if err := tmp.Reserve(n); err != nil {
		return err
	}
	if err := fill(tmp.block[:n]); err != nil {
		tmp.Destroy()
		return err
	}
	tmp.finish = n
	v.Swap(tmp)
	tmp.Destroy()
	return nil
}

// Assign replaces the contents with copies of vals. vals may alias the
// vector's own elements.
func (v *Vector[T]) Assign(vals ...T) error {
	return v.replace(len(vals), func(dst []T) error {
		_, err := memory.UninitializedCopy(vals, dst)
		return err
	})
}

// AssignN replaces the contents with n copies of val.
func (v *Vector[T]) AssignN(n int, val T) error {
	return v.replace(n, func(dst []T) error {
		_, err := memory.UninitializedFillN(dst, n, val)
		return err
	})
}

// AssignSeq replaces the contents with the values of seq.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	return v.Assign(slices.Collect(seq)...)
}

// AssignRange replaces the contents of v with copies of the values in
// [first, last).
func AssignRange[T any, I iterator.Cursor[T, I]](v *Vector[T], first, last I) error {
	return v.Assign(iterator.Collect[T](first, last)...)
}

// Swap exchanges the contents of v and other, allocators included.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.alloc, other.alloc = other.alloc, v.alloc
	v.block, other.block = other.block, v.block
	v.finish, other.finish = other.finish, v.finish
	v.track()
	other.track()
}

// Clone returns a copy of v sharing its allocator.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{alloc: v.allocator()}
	if err := c.Reserve(v.finish); err != nil {
		return nil, err
	}
	n, err := memory.UninitializedCopy(v.block[:v.finish], c.block)
	if err != nil {
		c.Destroy()
		return nil, err
	}
	c.finish = n
	return c, nil
}

// All yields the index and value of each element from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.finish {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

// Values yields each element from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.finish {
			if !yield(v.block[i]) {
				return
			}
		}
	}
}

// Backward yields the index and value of each element from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.finish - 1; i >= 0; i-- {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

// Verify checks the block bounds and that every slot past Len is
// unconstructed.
func (v *Vector[T]) Verify() error {
	if err := verify.Bounds(0, v.finish, len(v.block)); err != nil {
		return err
	}
	for i := v.finish; i < len(v.block); i++ {
		if !reflect.ValueOf(&v.block[i]).Elem().IsZero() {
			return &verify.ValidationError{
				Type:    "Bounds",
				Message: "constructed value past finish",
				Offset:  i,
				Details: map[string]any{"finish": v.finish, "cap": len(v.block)},
			}
		}
	}
	return nil
}

// overlaps reports whether a and b share any memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size
	return a0 < b1 && b0 < a1
}
