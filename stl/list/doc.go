// Package list implements a circular doubly linked list.
//
// A List embeds a sentinel node that closes the ring: End is the sentinel,
// Begin is the node after it. Insert, Erase and every form of Splice are
// constant time and leave positions of other elements valid. Splicing moves
// nodes between lists by relinking them, so the element values are never
// copied.
//
// Nodes are allocated from an alloc.Slab on the list's alloc.Source.
// Insert, InsertN, Resize and the Assign family undo their partial work when
// a node allocation or element copy fails.
//
// A List must not be copied after first use.
package list
