// Package vector implements a growable container of contiguous slots.
//
// # Overview
//
// A Vector owns one block obtained from an alloc.Allocator. The first Len
// slots hold live values; the remaining Cap-Len slots are allocated but
// unconstructed. Appending past capacity reallocates to double the capacity
// (starting from 1), moving the live values into the new block, so PushBack
// is amortized O(1).
//
// # Positions
//
// Iterator is a random-access cursor (see package iterator). It records the
// vector and an index, so it keeps pointing at the same index across a
// reallocation; whether that index still names the same element follows the
// usual rules: insertions and erasures shift everything at or after their
// position. Pointers returned by Ptr, Front or EmplaceBack are invalidated
// by any reallocation.
//
// # Failure Handling
//
// Element copies go through memory.Construct and may fail for element types
// implementing memory.Cloner. Insert, InsertN, Emplace, PushBack, Resize,
// Reserve and the Assign family leave the vector's contents unchanged when
// they return an error; only its capacity may have grown.
//
// At reports an index outside [0, Len) with ErrOutOfRange. Index and Ptr do
// not check beyond what Go's own slice bounds checking does.
//
// # Mapped Storage
//
// With an alloc.Mmap source, blocks of pointer-free elements live outside
// the Go heap. Destroy returns the block at once. A mapped vector that is
// dropped without Destroy has its block released by a runtime cleanup after
// it becomes unreachable, so slices from Data must not outlive the vector.
//
// # Thread Safety
//
// A Vector must not be used from more than one goroutine at a time.
package vector
