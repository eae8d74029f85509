// Package alloc provides typed slot allocation for the stl containers.
//
// # Overview
//
// Containers never call make or new for their element storage directly. They
// ask an Allocator[T] for a block of n slots and hand the block back when they
// are done with it. A freshly allocated block holds zero values, which the
// containers treat as unconstructed: a slot becomes live only after the memory
// package constructs a value into it.
//
// # Sources and Rebinding
//
// The untyped half of an allocator is a Source. A Source decides whether a
// request for n objects of a given size may proceed and accounts for it:
//
//   - Heap: unlimited, backed by the Go heap (the default)
//   - Budget: a byte limit that fails with ErrNoSpace once exhausted
//   - Mmap: anonymous memory mappings for pointer-free element types
//
// For binds a Source to a concrete slot type. Containers that store nodes
// rather than bare values bind the same Source once per node shape:
//
//	src := alloc.NewBudget(1 << 20)
//	values := alloc.For[int](src)           // vector storage
//	nodes := alloc.For[listNode[int]](src)  // list nodes, same budget
//
// # Slabs
//
// Slab[N] carves single nodes out of chunks obtained from an Allocator[N].
// Chunk sizes double from MinChunk up to MaxChunk, and released nodes are kept
// on a free list for reuse, so steady-state insert/erase cycles allocate
// nothing.
//
// Chunks are never handed back to the allocator while the slab is in use:
// linked containers move nodes between each other by relinking, so a node
// carved from one slab may be released into another.
//
// # Thread Safety
//
// Allocators, sources and slabs are not thread-safe. Callers must synchronize
// access externally.
package alloc
