package plist

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	value T
	rest  List[T]
	size  int
}

// List is an immutable singly-linked list. The zero value is the empty list.
//
// Prepend never touches the receiver: the new head points at the existing
// nodes, so every version of a list stays valid and lists built from a common
// tail share it.
type List[T any] struct {
	head *node[T]
}

func Empty[T any]() List[T] {
	return List[T]{}
}

// Of builds a list holding values in the given order; values[0] becomes the head.
func Of[T any](values ...T) List[T] {
	l := Empty[T]()
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Prepend(values[i])
	}
	return l
}

// Prepend returns a new list with v in front of l.
func (l List[T]) Prepend(v T) List[T] {
	return List[T]{head: &node[T]{value: v, rest: l, size: l.Len() + 1}}
}

func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.size
}

// Head returns the front value, or false for the empty list.
func (l List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Tail returns the list after the head, or false for the empty list. The
// returned list is the same one the head was prepended to.
func (l List[T]) Tail() (List[T], bool) {
	if l.head == nil {
		return List[T]{}, false
	}
	return l.head.rest, true
}

// Iter returns a fresh cursor positioned at the head of l.
func (l List[T]) Iter() *Cursor[T] {
	return &Cursor[T]{next: l}
}

// All returns the values of l front to back as an iter.Seq.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.Iter()
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

func (l List[T]) Values() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	sep := ""
	for v := range l.All() {
		b.WriteString(sep)
		fmt.Fprint(&b, v)
		sep = " "
	}
	b.WriteByte(']')
	return b.String()
}
