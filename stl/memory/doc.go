// Package memory manages the lifetime of values stored in raw slots.
//
// # Overview
//
// Containers obtain blocks of unconstructed (zero) slots from an
// alloc.Allocator and use this package to bring values to life in them and
// to end that life again. A slot is either live, holding a constructed value,
// or unconstructed, holding the zero value of its type.
//
// # Element Hooks
//
// Two optional interfaces let an element type take part in its lifetime:
//
//   - Cloner[T]: copying a value goes through Clone, which may fail. Types
//     that own resources implement it to duplicate them.
//   - Destroyer: Destroy is called when a live value is destroyed, before its
//     slot is zeroed.
//
// Types implementing neither are copied by assignment and destroyed by
// zeroing, which never fails.
//
// # Bulk Operations
//
// UninitializedCopy, UninitializedFill, UninitializedFillN and
// UninitializedCopyN construct a run of values into unconstructed slots. If a
// construction fails part way, every value constructed by that call is
// destroyed before the error is returned, so the destination is left fully
// unconstructed. The destination block itself is never released here.
//
// Moves (UninitializedMove, Move, MoveBackward) transfer values without
// copying them and cannot fail; the slots moved from are left unconstructed.
package memory
