package dlist

import (
	"fmt"
	"strings"
)

var _ fmt.Stringer = &List[int]{}

// String renders the list as
//
//	START ->  [ 1 ]  <=> [ 2 ]  <=> [ 3 ] -> NULL
//
// or EMPTY if the list has no elements. Elements are formatted with %v.
func (l *List[T]) String() string {
	if l.IsEmpty() {
		return "EMPTY"
	}
	var sb strings.Builder
	sb.WriteString("START -> ")
	first := true
	l.walkForward(func(n *node[T]) bool {
		if !first {
			sb.WriteString(" <=>")
		}
		first = false
		fmt.Fprintf(&sb, " [ %v ] ", n.value)
		return true
	})
	sb.WriteString("-> NULL")
	return sb.String()
}
