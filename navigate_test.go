package dlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	for n := 1; n <= 9; n++ {
		l := New[int]()
		for i := 0; i < n; i++ {
			l.InsertAtEnd(i)
		}
		for pos := 0; pos < n; pos++ {
			assert.Equal(t, pos, l.node(l.locate(pos)).value, "len %d pos %d", n, pos)
		}
	}
}

func TestLocateNearerEnd(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.InsertAtEnd(i)
	}

	// Corrupt the back links: a walk from the head still finds positions in the front half.
	head := l.head
	for curr := l.node(head).next; !curr.IsZero(); curr = l.node(curr).next {
		l.node(curr).prev = head
	}
	for pos := 0; pos < 5; pos++ {
		assert.Equal(t, pos, l.node(l.locate(pos)).value)
	}

	// And the forward links: a walk from the tail still finds positions in the back half.
	l = New[int]()
	for i := 0; i < 10; i++ {
		l.InsertAtEnd(i)
	}
	tail := l.tail
	for curr := l.node(tail).prev; !curr.IsZero(); curr = l.node(curr).prev {
		l.node(curr).next = tail
	}
	for pos := 5; pos < 10; pos++ {
		assert.Equal(t, pos, l.node(l.locate(pos)).value)
	}
}

func TestWalks(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.InsertAtEnd(i)
	}

	var fwd, bwd []int
	l.walkForward(func(n *node[int]) bool {
		fwd = append(fwd, n.value)
		return true
	})
	l.walkBackward(func(n *node[int]) bool {
		bwd = append(bwd, n.value)
		return true
	})
	require.Equal(t, []int{0, 1, 2, 3, 4}, fwd)
	require.Equal(t, []int{4, 3, 2, 1, 0}, bwd)

	var stopped []int
	l.walkForward(func(n *node[int]) bool {
		stopped = append(stopped, n.value)
		return n.value < 2
	})
	assert.Equal(t, []int{0, 1, 2}, stopped)
}
