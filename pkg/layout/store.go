package layout

import (
	"maps"
	"math"
	"slices"
	"time"

	"github.com/matzehuels/polyblade/pkg/shape"
)

// Spread is how far a spawned vertex sits from the centroid of its origins.
const Spread = 0.05

// Store holds one position per vertex handle. It is a deliberately thin
// stand-in for a renderer: vertices stay where they are placed except for
// contracting pairs, which are pulled together by Advance.
type Store struct {
	// Rate is the fraction of a contracting pair's separation closed per
	// second.
	Rate float64

	pos   map[shape.Handle]Vec
	spawn int
}

// New returns an empty store.
func New(rate float64) *Store {
	return &Store{Rate: rate, pos: make(map[shape.Handle]Vec)}
}

// Len returns the number of handles with a position.
func (s *Store) Len() int { return len(s.pos) }

// Has reports whether h has a position.
func (s *Store) Has(h shape.Handle) bool {
	_, ok := s.pos[h]
	return ok
}

// Handles returns every handle with a position, in no particular order.
func (s *Store) Handles() []shape.Handle { return slices.Collect(maps.Keys(s.pos)) }

// Position returns the position of h.
func (s *Store) Position(h shape.Handle) (Vec, bool) {
	p, ok := s.pos[h]
	return p, ok
}

// Place sets the position of h directly.
func (s *Store) Place(h shape.Handle, p Vec) { s.pos[h] = p }

// Spawn gives h a position near the centroid of its origins. Origins
// without a position are ignored; with none left, h lands on the unit
// sphere.
func (s *Store) Spawn(h shape.Handle, origins []shape.Handle) {
	s.spawn++
	jitter := sphere(s.spawn)
	var sum Vec
	n := 0
	for _, o := range origins {
		if p, ok := s.pos[o]; ok {
			sum = sum.Add(p)
			n++
		}
	}
	if n == 0 {
		s.pos[h] = jitter
		return
	}
	s.pos[h] = sum.Scale(1 / float64(n)).Add(jitter.Scale(Spread))
}

// Forget drops the position of h.
func (s *Store) Forget(h shape.Handle) { delete(s.pos, h) }

// Separation returns the distance between a and b, or +Inf when either has
// no position.
func (s *Store) Separation(a, b shape.Handle) float64 {
	p, ok := s.pos[a]
	q, ok2 := s.pos[b]
	if !ok || !ok2 {
		return math.Inf(1)
	}
	return p.Sub(q).Len()
}

// Advance pulls the endpoints of every contracting edge toward their
// midpoint.
func (s *Store) Advance(dt time.Duration, contracting []shape.Edge) {
	f := min(1, s.Rate*dt.Seconds())
	if f <= 0 {
		return
	}
	for _, e := range contracting {
		p, ok := s.pos[e[0]]
		q, ok2 := s.pos[e[1]]
		if !ok || !ok2 {
			continue
		}
		mid := p.Lerp(q, 0.5)
		s.pos[e[0]] = p.Lerp(mid, f)
		s.pos[e[1]] = q.Lerp(mid, f)
	}
}
