// Package flist implements a singly linked list.
//
// # Overview
//
// A List is a chain of nodes hanging off a before-begin sentinel embedded in
// the List itself. Because nodes have no back link, every structural change
// is expressed relative to the position before it: InsertAfter, EraseAfter,
// SpliceAfter. BeforeBegin names the sentinel and End is the nil position.
//
// Nodes come from an alloc.Slab drawing on the list's alloc.Source. Splicing
// moves nodes between lists without allocating or copying; a node that
// later gets erased is recycled by whichever list owns it at that time.
//
// # Ordering
//
// MergeFunc and SortFunc are stable and relink nodes only. Merge, Sort,
// Remove and Unique are the package-level shorthands for ordered or
// comparable element types.
//
// # Failure Handling
//
// The InsertAfter family, Resize and the Assign family undo everything they
// inserted when a node allocation or element copy fails, so the list is left
// as it was.
//
// A List must not be copied after first use and must not be used from more
// than one goroutine at a time.
package flist
