package dlist

import (
	"github.com/bradenaw/dlist/internal/arena"
)

// locate returns the handle of the node at position pos, walking from the head if pos is in the
// front half of the list and from the tail otherwise. pos must be in [0, l.length).
func (l *List[T]) locate(pos int) arena.Handle {
	if pos < l.length/2 {
		curr := l.head
		for i := 0; i < pos; i++ {
			curr = l.node(curr).next
		}
		return curr
	}
	curr := l.tail
	for i := l.length - 1; i > pos; i-- {
		curr = l.node(curr).prev
	}
	return curr
}

// walkForward calls f on each node from head to tail, stopping early if f returns false. It only
// ever follows next links.
func (l *List[T]) walkForward(f func(n *node[T]) bool) {
	for curr := l.head; !curr.IsZero(); {
		n := l.node(curr)
		if !f(n) {
			return
		}
		curr = n.next
	}
}

// walkBackward calls f on each node from tail to head, stopping early if f returns false. It only
// ever follows prev links.
func (l *List[T]) walkBackward(f func(n *node[T]) bool) {
	for curr := l.tail; !curr.IsZero(); {
		n := l.node(curr)
		if !f(n) {
			return
		}
		curr = n.prev
	}
}
