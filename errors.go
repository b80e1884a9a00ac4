package dlist

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is matched by every *IndexError, both those returned from InsertAtPosition
// and those Get, GetMut, and Delete panic with.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// IndexError describes a position that is outside the range an operation accepts.
type IndexError struct {
	// Op is the operation that rejected the position: "insert", "get", or "delete".
	Op  string
	Pos int
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s: position %d, length %d", e.Op, ErrIndexOutOfBounds, e.Pos, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfBounds }
