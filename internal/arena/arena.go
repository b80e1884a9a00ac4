// Package arena provides slot storage addressed by generation-checked handles.
//
// Slots are carved out of fixed-size chunks that are never moved, so a pointer to a live slot's
// payload stays valid until that slot is freed. Freed slots are recycled through a free list
// before any new chunk is grown.
package arena

import "fmt"

const chunkSize = 64

// Handle names a slot in an Arena. The zero Handle names nothing.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero returns true if h does not name any slot.
func (h Handle) IsZero() bool { return h.gen == 0 }

func (h Handle) String() string {
	if h.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%d@%d", h.index, h.gen)
}

type slot[E any] struct {
	value E
	// Even while free, odd while live. Starts at zero so the zero Handle never resolves.
	gen      uint32
	nextFree uint32
}

// Arena stores values of type E. The zero value is an empty arena ready to use.
//
// Arena is not safe for concurrent use.
type Arena[E any] struct {
	chunks   [][]slot[E]
	used     uint32
	freeHead uint32 // index+1 of the first free slot, 0 if none
	live     int
}

// Alloc reserves a slot and returns its handle and a pointer to its zeroed payload.
func (a *Arena[E]) Alloc() (Handle, *E) {
	var idx uint32
	if a.freeHead != 0 {
		idx = a.freeHead - 1
		s := a.slot(idx)
		a.freeHead = s.nextFree
		s.nextFree = 0
	} else {
		idx = a.used
		if int(idx)%chunkSize == 0 {
			a.chunks = append(a.chunks, make([]slot[E], chunkSize))
		}
		a.used++
	}
	s := a.slot(idx)
	s.gen++
	a.live++
	return Handle{index: idx, gen: s.gen}, &s.value
}

// Get returns a pointer to the payload named by h. It panics if h is zero or does not name a live
// slot.
func (a *Arena[E]) Get(h Handle) *E {
	return &a.resolve(h).value
}

// Free releases the slot named by h and returns the payload it held. The handle, and any other
// copy of it, stops resolving. It panics if h is zero or does not name a live slot.
func (a *Arena[E]) Free(h Handle) E {
	s := a.resolve(h)
	v := s.value
	var zero E
	s.value = zero
	s.gen++
	s.nextFree = a.freeHead
	a.freeHead = h.index + 1
	a.live--
	return v
}

// Live returns true if h names a live slot of a.
func (a *Arena[E]) Live(h Handle) bool {
	if h.IsZero() || h.index >= a.used {
		return false
	}
	return a.slot(h.index).gen == h.gen
}

// Len returns the number of live slots.
func (a *Arena[E]) Len() int { return a.live }

// Cap returns the number of slots the arena can hold without growing.
func (a *Arena[E]) Cap() int { return len(a.chunks) * chunkSize }

func (a *Arena[E]) slot(idx uint32) *slot[E] {
	return &a.chunks[idx/chunkSize][idx%chunkSize]
}

func (a *Arena[E]) resolve(h Handle) *slot[E] {
	if !a.Live(h) {
		panic(fmt.Sprintf("arena: stale or foreign handle %v", h))
	}
	return a.slot(h.index)
}
