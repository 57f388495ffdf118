package conway

import (
	"fmt"
	"time"

	"github.com/matzehuels/polyblade/pkg/distance"
	"github.com/matzehuels/polyblade/pkg/errors"
	"github.com/matzehuels/polyblade/pkg/observability"
	"github.com/matzehuels/polyblade/pkg/shape"
)

// Apply runs op on s to completion. Operators whose animated form waits on a
// contraction (ambo, expand, bevel) contract immediately here.
func Apply(s *shape.Shape, op Operator) error {
	observability.Operator().OnOperatorStart(op.String(), s.Len())
	start := time.Now()
	var err error
	switch op {
	case OpDual:
		err = Dual(s)
	case OpJoin:
		err = Join(s)
	case OpAmbo:
		err = Ambo(s)
	case OpKis:
		_, err = Kis(s, 0)
	case OpTruncate:
		_, err = Truncate(s, 0)
	case OpExpand:
		err = Expand(s)
	case OpSnub:
		err = Snub(s)
	case OpBevel:
		err = Bevel(s)
	case OpChamfer:
		err = Chamfer(s)
	default:
		err = errors.New(errors.ErrCodeUnsupported, "operator %d", int(op))
	}
	observability.Operator().OnOperatorComplete(op.String(), s.Len(), time.Since(start), err)
	return err
}

// Truncate splits every vertex of the given degree, or every vertex when
// degree is 0, into a ring bounding a new face. It returns the edges of all
// new faces.
func Truncate(s *shape.Shape, degree int) ([]shape.Edge, error) {
	var targets []shape.Handle
	for v, h := range s.Handles() {
		if degree == 0 || s.Degree(v) == degree {
			targets = append(targets, h)
		}
	}

	var rings []shape.Edge
	for _, h := range targets {
		v, err := s.Index(h)
		if err != nil {
			return nil, err
		}
		ring, err := s.SplitVertex(v)
		if err != nil {
			return nil, fmt.Errorf("truncate vertex %s: %w", h, err)
		}
		rings = append(rings, ring...)
	}
	return rings, nil
}

// AmboEdges truncates every vertex and returns the edges that existed before
// truncation. Contracting them completes ambo; the truncated shape is the
// animation's starting point.
func AmboEdges(s *shape.Shape) ([]shape.Edge, error) {
	rings, err := Truncate(s, 0)
	if err != nil {
		return nil, err
	}
	fresh := make(map[shape.Edge]bool, len(rings))
	for _, e := range rings {
		fresh[e] = true
	}
	var old []shape.Edge
	for _, e := range s.Edges() {
		if !fresh[e] {
			old = append(old, e)
		}
	}
	return old, nil
}

// Ambo replaces every vertex with a vertex per incident edge: the medial
// graph of s.
func Ambo(s *shape.Shape) error {
	edges, err := AmboEdges(s)
	if err != nil {
		return err
	}
	return s.Contract(edges)
}

// Expand applies ambo twice.
func Expand(s *shape.Shape) error {
	if err := Ambo(s); err != nil {
		return err
	}
	return Ambo(s)
}

// Bevel truncates the ambo of s, written "ta" in Conway notation.
func Bevel(s *shape.Shape) error {
	if err := Ambo(s); err != nil {
		return err
	}
	_, err := Truncate(s, 0)
	return err
}

// Kis raises a pyramid on every face with the given number of sides, or on
// every face when sides is 0. It returns the edges that existed before.
func Kis(s *shape.Shape, sides int) ([]shape.Edge, error) {
	c, err := s.Cycles()
	if err != nil {
		return nil, err
	}
	before := s.Edges()
	for _, f := range c.All() {
		if sides != 0 && f.Len() != sides {
			continue
		}
		corners := make([]shape.Handle, f.Len())
		for i, v := range f {
			corners[i] = s.Handle(v)
		}
		apex := s.Insert(corners...)
		for _, v := range f {
			if err := s.Connect(apex, v); err != nil {
				return nil, err
			}
		}
	}
	return before, nil
}

// Join raises a pyramid on every face, then removes the original edges.
// Every original face becomes a ring of quadrilaterals.
func Join(s *shape.Shape) error {
	edges, err := Kis(s, 0)
	if err != nil {
		return err
	}
	return s.Release(edges)
}

// Dual replaces s with its dual: one vertex per face, adjacent when the
// faces share an edge.
func Dual(s *shape.Shape) error {
	c, err := s.Cycles()
	if err != nil {
		return err
	}
	incident := make(map[distance.Edge][]int)
	origins := make([][]shape.Handle, c.Len())
	for i, f := range c.All() {
		for _, e := range f.Edges() {
			incident[e] = append(incident[e], i)
		}
		for _, v := range f {
			origins[i] = append(origins[i], s.Handle(v))
		}
	}

	d := distance.New(c.Len())
	for e, faces := range incident {
		if len(faces) != 2 {
			return errors.New(errors.ErrCodeInvalidInput, "edge %v borders %d faces", e, len(faces))
		}
		if err := d.Connect(faces[0], faces[1]); err != nil {
			return err
		}
	}
	return s.Rebuild(d, origins)
}

// corner is a vertex as seen from one of its faces.
type corner struct {
	vertex, face int
}

// Snub replaces every vertex-face incidence with its own vertex. Each
// face shrinks to a copy of itself, each vertex becomes a polygon of its
// corners, and each original edge becomes a pair of triangles. The faces
// are oriented first so every edge's triangles spiral the same way.
func Snub(s *shape.Shape) error {
	c, err := s.Cycles()
	if err != nil {
		return err
	}
	c = c.Orient()

	ids := make(map[corner]int)
	var origins [][]shape.Handle
	for i, f := range c.All() {
		for _, v := range f {
			ids[corner{v, i}] = len(origins)
			origins = append(origins, []shape.Handle{s.Handle(v)})
		}
	}

	d := distance.New(len(origins))
	link := func(a, b corner) error { return d.Connect(ids[a], ids[b]) }

	// forward[(v, w)] is the face that runs v directly before w
	forward := make(map[[2]int]int)
	for i, f := range c.All() {
		for k, v := range f {
			w := f.At(k + 1)
			forward[[2]int{v, w}] = i
			if err := link(corner{v, i}, corner{w, i}); err != nil {
				return err
			}
		}
	}

	for _, e := range s.DenseEdges() {
		v, w := e[0], e[1]
		f, okF := forward[[2]int{v, w}]
		g, okG := forward[[2]int{w, v}]
		if !okF || !okG {
			return errors.New(errors.ErrCodeInvalidInput, "edge %v is not bordered by two oriented faces", e)
		}
		for _, err := range []error{
			link(corner{v, f}, corner{v, g}),
			link(corner{w, f}, corner{w, g}),
			link(corner{v, f}, corner{w, g}),
		} {
			if err != nil {
				return err
			}
		}
	}
	return s.Rebuild(d, origins)
}

// Chamfer replaces every edge with a hexagon: each face gets an inset copy
// whose corners hang off the original vertices, then the original edges are
// removed.
func Chamfer(s *shape.Shape) error {
	c, err := s.Cycles()
	if err != nil {
		return err
	}
	before := s.Edges()
	for _, f := range c.All() {
		ring := make([]int, f.Len())
		for i, v := range f {
			ring[i] = s.Insert(s.Handle(v))
			if err := s.Connect(v, ring[i]); err != nil {
				return err
			}
		}
		for i := range ring {
			if err := s.Connect(ring[i], ring[(i+1)%len(ring)]); err != nil {
				return err
			}
		}
	}
	return s.Release(before)
}
