package shape

import (
	"fmt"
	"slices"
)

// Handle is a stable vertex identity. Unlike a dense vertex index, a handle
// keeps naming the same vertex across every structural edit until that
// vertex is deleted; afterwards it never resolves again, even if its slot is
// reused. The zero Handle is never issued.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

// String returns "v<slot>.<generation>".
func (h Handle) String() string { return fmt.Sprintf("v%d.%d", h.index, h.gen) }

// Edge is an unordered pair of vertex handles, stored in canonical order.
type Edge [2]Handle

// NewEdge returns the canonical edge between a and b.
func NewEdge(a, b Handle) Edge {
	if less(b, a) {
		a, b = b, a
	}
	return Edge{a, b}
}

func less(a, b Handle) bool {
	if a.index != b.index {
		return a.index < b.index
	}
	return a.gen < b.gen
}

type slot struct {
	gen   uint32
	dense int
	live  bool
}

// registry maps handles to dense indices. Slots of deleted vertices go on a
// free list and are reissued with a bumped generation.
type registry struct {
	slots []slot
	free  []uint32
	dense []Handle
}

// issue appends a new handle at the next dense index.
func (r *registry) issue() Handle {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{})
	}
	s := &r.slots[idx]
	s.gen++
	s.live = true
	s.dense = len(r.dense)
	h := Handle{index: idx, gen: s.gen}
	r.dense = append(r.dense, h)
	return h
}

// resolve returns the dense index of h.
func (r *registry) resolve(h Handle) (int, bool) {
	if h.IsZero() || int(h.index) >= len(r.slots) {
		return 0, false
	}
	s := r.slots[h.index]
	if !s.live || s.gen != h.gen {
		return 0, false
	}
	return s.dense, true
}

// handle returns the handle at dense index v.
func (r *registry) handle(v int) (Handle, bool) {
	if v < 0 || v >= len(r.dense) {
		return Handle{}, false
	}
	return r.dense[v], true
}

// release frees the slot of h without touching the dense order.
func (r *registry) release(h Handle) {
	s := &r.slots[h.index]
	s.live = false
	r.free = append(r.free, h.index)
}

// reorder replaces the dense order with keep; handles not in keep die.
func (r *registry) reorder(keep []Handle) {
	alive := make(map[Handle]bool, len(keep))
	for _, h := range keep {
		alive[h] = true
	}
	for _, h := range r.dense {
		if !alive[h] {
			r.release(h)
		}
	}
	r.dense = slices.Clone(keep)
	r.reindex(0)
}

// reset kills every handle.
func (r *registry) reset() {
	for _, h := range r.dense {
		r.release(h)
	}
	r.dense = r.dense[:0]
}

func (r *registry) reindex(from int) {
	for i := from; i < len(r.dense); i++ {
		r.slots[r.dense[i].index].dense = i
	}
}

func (r *registry) clone() registry {
	return registry{
		slots: slices.Clone(r.slots),
		free:  slices.Clone(r.free),
		dense: slices.Clone(r.dense),
	}
}
