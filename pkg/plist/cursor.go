package plist

// Cursor walks a List front to back without consuming it. Once exhausted it
// stays exhausted; build a new one with List.Iter to walk again.
type Cursor[T any] struct {
	next List[T]
}

// Next returns the next value, or false when the cursor is exhausted.
func (c *Cursor[T]) Next() (T, bool) {
	n := c.next.head
	if n == nil {
		var zero T
		return zero, false
	}
	c.next = n.rest
	return n.value, true
}

// Done reports whether Next would return false.
func (c *Cursor[T]) Done() bool {
	return c.next.head == nil
}
