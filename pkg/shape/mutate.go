package shape

import (
	"slices"

	"github.com/matzehuels/polyblade/pkg/distance"
	"github.com/matzehuels/polyblade/pkg/errors"
)

// Insert appends an isolated vertex and returns its dense index. origins
// records the vertices it derives from.
func (s *Shape) Insert(origins ...Handle) int {
	v := s.dist.Insert()
	h := s.reg.issue()
	if len(origins) > 0 {
		s.origins[h] = slices.Clone(origins)
	}
	s.invalidate()
	return v
}

// Connect adds the edge between dense vertices v and u.
func (s *Shape) Connect(v, u int) error {
	if err := s.dist.Connect(v, u); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Disconnect removes the edge between dense vertices v and u.
func (s *Shape) Disconnect(v, u int) error {
	if err := s.dist.Disconnect(v, u); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// SplitVertex replaces v with a ring of new vertices, one per incident edge,
// ordered as the faces around v dictate. v keeps its handle for the first
// ring slot. The ring's edges are returned.
func (s *Shape) SplitVertex(v int) ([]Edge, error) {
	h, ok := s.reg.handle(v)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownVertex, "vertex %d out of range [0, %d)", v, s.Len())
	}
	c, err := s.Cycles()
	if err != nil {
		return nil, err
	}
	order := c.SortedConnections(v)
	if len(order) != s.Degree(v) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"faces around vertex %d give %d of its %d neighbors", v, len(order), s.Degree(v))
	}

	before := s.dist.Len()
	ring, err := s.dist.SplitVertex(v, order)
	if err != nil {
		return nil, err
	}
	for range s.dist.Len() - before {
		s.origins[s.reg.issue()] = []Handle{h}
	}
	s.invalidate()

	out := make([]Edge, len(ring))
	for i, e := range ring {
		out[i] = s.edge(e)
	}
	return out, nil
}

// Contract merges the endpoints of each edge. Of two merged vertices the one
// with the lower dense index survives and keeps its handle; the other handle
// dies. Edges may name handles merged away by an earlier edge in the batch.
func (s *Shape) Contract(edges []Edge) error {
	dense := make([]distance.Edge, 0, len(edges))
	for _, e := range edges {
		v, err := s.Index(e[0])
		if err != nil {
			return err
		}
		u, err := s.Index(e[1])
		if err != nil {
			return err
		}
		dense = append(dense, distance.NewEdge(v, u))
	}

	remap, err := s.dist.ContractEdges(dense)
	if err != nil {
		s.invalidate()
		return errors.Wrap(errors.ErrCodeInvariantViolation, err, "contraction left the skeleton inconsistent")
	}

	keep := make([]Handle, s.dist.Len())
	for i := len(remap) - 1; i >= 0; i-- {
		keep[remap[i]] = s.reg.dense[i]
	}
	s.reg.reorder(keep)
	s.prune()
	s.invalidate()
	return nil
}

// Release removes each edge. Every handle is resolved before anything is
// removed, so a stale handle leaves the shape untouched.
func (s *Shape) Release(edges []Edge) error {
	dense := make([]distance.Edge, 0, len(edges))
	for _, e := range edges {
		v, err := s.Index(e[0])
		if err != nil {
			return err
		}
		u, err := s.Index(e[1])
		if err != nil {
			return err
		}
		dense = append(dense, distance.NewEdge(v, u))
	}
	for _, e := range dense {
		if err := s.dist.Disconnect(e[0], e[1]); err != nil {
			s.invalidate()
			return err
		}
	}
	s.invalidate()
	return nil
}

// Rebuild replaces the whole skeleton with d. Every existing handle dies and
// vertex i of d gets a fresh handle derived from origins[i].
func (s *Shape) Rebuild(d *distance.Distance, origins [][]Handle) error {
	if len(origins) != d.Len() {
		return errors.New(errors.ErrCodeInvalidInput, "%d origin lists for %d vertices", len(origins), d.Len())
	}
	s.reg.reset()
	s.dist = d
	s.origins = make(map[Handle][]Handle, d.Len())
	for _, o := range origins {
		h := s.reg.issue()
		if len(o) > 0 {
			s.origins[h] = slices.Clone(o)
		}
	}
	s.invalidate()
	return nil
}

// prune drops lineage of dead handles.
func (s *Shape) prune() {
	for h := range s.origins {
		if !s.Alive(h) {
			delete(s.origins, h)
		}
	}
}
