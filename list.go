// Package dlist provides a doubly-linked sequence container.
//
// Elements live in an arena of slots linked to each other by handles, so inserting or removing at
// either end is O(1) and reaching position k walks from whichever end is nearer, at a cost of
// O(min(k, n-k)). Removed slots are recycled by later inserts instead of being handed back to the
// allocator one at a time.
package dlist

import (
	"github.com/bradenaw/dlist/internal/arena"
)

type node[T any] struct {
	value T
	next  arena.Handle
	prev  arena.Handle
}

// List is a doubly-linked list. The zero value is an empty list ready to use.
//
// List is not safe for concurrent use. Callers that share a List between goroutines must provide
// their own mutual exclusion.
type List[T any] struct {
	nodes  arena.Arena[node[T]]
	head   arena.Handle
	tail   arena.Handle
	length int
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// WithValue returns a List holding only value.
func WithValue[T any](value T) *List[T] {
	l := New[T]()
	l.InsertAtEnd(value)
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.length }

// IsEmpty returns true if the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.length == 0 }

// InsertAtBeginning adds value to the front of the list.
func (l *List[T]) InsertAtBeginning(value T) {
	h, n := l.alloc(value)
	if l.head.IsZero() {
		l.head = h
		l.tail = h
	} else {
		n.next = l.head
		l.node(l.head).prev = h
		l.head = h
	}
	l.length++
}

// InsertAtEnd adds value to the back of the list.
func (l *List[T]) InsertAtEnd(value T) {
	h, n := l.alloc(value)
	if l.tail.IsZero() {
		l.head = h
		l.tail = h
	} else {
		n.prev = l.tail
		l.node(l.tail).next = h
		l.tail = h
	}
	l.length++
}

// InsertAtPosition adds value so that it ends up at position pos, shifting the element previously
// at pos and everything after it back by one. pos may equal Len(), which appends.
//
// If pos is negative or greater than Len(), returns an error matching ErrIndexOutOfBounds and
// leaves the list untouched.
func (l *List[T]) InsertAtPosition(value T, pos int) error {
	if pos < 0 || pos > l.length {
		return &IndexError{Op: "insert", Pos: pos, Len: l.length}
	}
	if pos == 0 {
		l.InsertAtBeginning(value)
		return nil
	}
	if pos == l.length {
		l.InsertAtEnd(value)
		return nil
	}

	mark := l.locate(pos)
	h, n := l.alloc(value)
	m := l.node(mark)
	// 0 < pos < length, so mark always has a predecessor.
	n.prev = m.prev
	n.next = mark
	l.node(m.prev).next = h
	m.prev = h
	l.length++
	return nil
}

// GetFirst returns the first element of the list, or false in the second return if the list is
// empty.
func (l *List[T]) GetFirst() (T, bool) {
	if l.head.IsZero() {
		var zero T
		return zero, false
	}
	return l.node(l.head).value, true
}

// GetLast returns the last element of the list, or false in the second return if the list is
// empty.
func (l *List[T]) GetLast() (T, bool) {
	if l.tail.IsZero() {
		var zero T
		return zero, false
	}
	return l.node(l.tail).value, true
}

// GetFirstMut returns a pointer to the first element of the list, or nil if the list is empty.
//
// The pointer is valid until the element is deleted or the list is cleared.
func (l *List[T]) GetFirstMut() *T {
	if l.head.IsZero() {
		return nil
	}
	return &l.node(l.head).value
}

// GetLastMut returns a pointer to the last element of the list, or nil if the list is empty.
//
// The pointer is valid until the element is deleted or the list is cleared.
func (l *List[T]) GetLastMut() *T {
	if l.tail.IsZero() {
		return nil
	}
	return &l.node(l.tail).value
}

// Get returns the element at position pos. It panics if pos is not in [0, Len()).
func (l *List[T]) Get(pos int) T {
	return *l.GetMut(pos)
}

// GetMut returns a pointer to the element at position pos. It panics if pos is not in [0, Len()).
//
// The pointer is valid until the element is deleted or the list is cleared.
func (l *List[T]) GetMut(pos int) *T {
	l.mustIndex("get", pos)
	if pos == 0 {
		return l.GetFirstMut()
	}
	if pos == l.length-1 {
		return l.GetLastMut()
	}
	return &l.node(l.locate(pos)).value
}

// DeleteFirst removes the first element of the list and returns it. If the list is empty, does
// nothing and returns false in the second return.
func (l *List[T]) DeleteFirst() (T, bool) {
	if l.head.IsZero() {
		var zero T
		return zero, false
	}
	h := l.head
	if l.length == 1 {
		l.head = arena.Handle{}
		l.tail = arena.Handle{}
	} else {
		next := l.node(h).next
		l.node(next).prev = arena.Handle{}
		l.head = next
	}
	l.length--
	return l.free(h), true
}

// DeleteLast removes the last element of the list and returns it. If the list is empty, does
// nothing and returns false in the second return.
func (l *List[T]) DeleteLast() (T, bool) {
	if l.tail.IsZero() {
		var zero T
		return zero, false
	}
	h := l.tail
	if l.length == 1 {
		l.head = arena.Handle{}
		l.tail = arena.Handle{}
	} else {
		prev := l.node(h).prev
		l.node(prev).next = arena.Handle{}
		l.tail = prev
	}
	l.length--
	return l.free(h), true
}

// Delete removes the element at position pos and returns it. It panics if pos is not in
// [0, Len()).
func (l *List[T]) Delete(pos int) T {
	l.mustIndex("delete", pos)
	if pos == 0 {
		v, _ := l.DeleteFirst()
		return v
	}
	if pos == l.length-1 {
		v, _ := l.DeleteLast()
		return v
	}

	h := l.locate(pos)
	n := l.node(h)
	l.node(n.prev).next = n.next
	l.node(n.next).prev = n.prev
	l.length--
	return l.free(h)
}

// Clear removes every element from the list, releasing each slot exactly once. The list is empty
// and ready to use afterwards.
func (l *List[T]) Clear() {
	curr := l.head
	for !curr.IsZero() {
		next := l.node(curr).next
		l.nodes.Free(curr)
		curr = next
	}
	l.head = arena.Handle{}
	l.tail = arena.Handle{}
	l.length = 0
}

// Values returns the elements of the list in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	l.walkForward(func(n *node[T]) bool {
		out = append(out, n.value)
		return true
	})
	return out
}

func (l *List[T]) alloc(value T) (arena.Handle, *node[T]) {
	h, n := l.nodes.Alloc()
	n.value = value
	return h, n
}

func (l *List[T]) free(h arena.Handle) T {
	return l.nodes.Free(h).value
}

func (l *List[T]) node(h arena.Handle) *node[T] {
	return l.nodes.Get(h)
}

func (l *List[T]) mustIndex(op string, pos int) {
	if pos < 0 || pos >= l.length {
		panic(&IndexError{Op: op, Pos: pos, Len: l.length})
	}
}
