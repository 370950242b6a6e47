// Package plist implements a persistent singly-linked list: values never
// change on any operation, new lists are derived from old ones instead.
//
// Prepend is O(1) and shares the existing list as the tail of the new one,
// so two lists can branch from a common suffix without copying it. Lists
// are safe for concurrent readers because no node is ever mutated after
// construction, and no operation can make a tail refer back to its head.
//
// Iteration goes through a Cursor, or through List.All for range-over-func.
package plist
