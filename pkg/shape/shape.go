package shape

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polyblade/pkg/cycles"
	"github.com/matzehuels/polyblade/pkg/distance"
	"github.com/matzehuels/polyblade/pkg/errors"
	"github.com/matzehuels/polyblade/pkg/observability"
)

// Shape is a polyhedron skeleton: the adjacency in a [distance.Distance],
// the faces and springs derived from it, and a stable [Handle] for every
// vertex.
//
// Derived data is computed on first read after a mutation. Every mutator
// invalidates it, so reads never observe stale faces or distances.
type Shape struct {
	// Logger receives warnings about degraded recomputations. Nil discards.
	Logger *log.Logger

	dist    *distance.Distance
	reg     registry
	origins map[Handle][]Handle

	pathsFresh bool
	pathsErr   error

	faces      *cycles.Cycles
	facesErr   error
	springs    []Edge
	springsSet bool
}

// New wraps d, issuing a handle for each of its vertices. The shape takes
// ownership of d.
func New(d *distance.Distance) *Shape {
	s := &Shape{dist: d, origins: make(map[Handle][]Handle)}
	for range d.Len() {
		s.reg.issue()
	}
	return s
}

func (s *Shape) logger() *log.Logger {
	if s.Logger == nil {
		s.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return s.Logger
}

// Len returns the number of vertices.
func (s *Shape) Len() int { return s.dist.Len() }

// Handle returns the handle of dense vertex v, or the zero Handle if v is
// out of range.
func (s *Shape) Handle(v int) Handle {
	h, _ := s.reg.handle(v)
	return h
}

// Index returns the current dense index of h.
func (s *Shape) Index(h Handle) (int, error) {
	v, ok := s.reg.resolve(h)
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownVertex, "stale or unknown handle %s", h)
	}
	return v, nil
}

// Alive reports whether h still names a vertex.
func (s *Shape) Alive(h Handle) bool {
	_, ok := s.reg.resolve(h)
	return ok
}

// Handles returns every live handle in dense order.
func (s *Shape) Handles() []Handle { return slices.Clone(s.reg.dense) }

// Origins returns the handles h was derived from, if any. Vertices created
// by splitting, by kis, or by a rebuild remember where they came from so
// position stores can place them.
func (s *Shape) Origins(h Handle) []Handle { return s.origins[h] }

// Connections returns the dense neighbors of v in ascending order.
func (s *Shape) Connections(v int) []int { return s.dist.Connections(v) }

// Degree returns the number of neighbors of v.
func (s *Shape) Degree(v int) int { return s.dist.Degree(v) }

// DenseEdges returns every edge by dense index.
func (s *Shape) DenseEdges() []distance.Edge { return slices.Collect(s.dist.Edges()) }

// Edges returns every edge by handle.
func (s *Shape) Edges() []Edge {
	var out []Edge
	for e := range s.dist.Edges() {
		out = append(out, s.edge(e))
	}
	return out
}

// EdgeCount returns the number of edges.
func (s *Shape) EdgeCount() int { return s.dist.EdgeCount() }

// FaceCount returns the face count Euler's formula demands.
func (s *Shape) FaceCount() int { return s.dist.FaceCount() }

func (s *Shape) edge(e distance.Edge) Edge {
	return NewEdge(s.reg.dense[e[0]], s.reg.dense[e[1]])
}

// Distance returns the shortest-path length between dense vertices v and u.
func (s *Shape) Distance(v, u int) int {
	s.paths()
	return s.dist.At(v, u)
}

// Diameter returns the largest finite shortest-path length.
func (s *Shape) Diameter() int {
	s.paths()
	return s.dist.Diameter()
}

// Matrix returns a copy of the distance matrix with shortest paths filled in.
func (s *Shape) Matrix() *distance.Distance {
	s.paths()
	return s.dist.Clone()
}

// Cycles returns the faces, discovering them if the topology changed since
// the last call.
func (s *Shape) Cycles() (cycles.Cycles, error) {
	if s.faces == nil {
		start := time.Now()
		c, err := cycles.Discover(s.dist)
		observability.Shape().OnFaces(s.Len(), c.Len(), time.Since(start), err)
		if err != nil {
			s.logger().Warn("face discovery incomplete", "vertices", s.Len(), "faces", c.Len(), "want", s.FaceCount())
		}
		s.faces, s.facesErr = &c, err
	}
	return *s.faces, s.facesErr
}

// Springs returns the vertex pairs a layout should hold together: pairs at
// distance at most two, and pairs within one of the diameter.
func (s *Shape) Springs() []Edge {
	if !s.springsSet {
		s.paths()
		pairs := s.dist.Springs()
		s.springs = make([]Edge, len(pairs))
		for i, e := range pairs {
			s.springs[i] = s.edge(e)
		}
		s.springsSet = true
	}
	return s.springs
}

// Recompute eagerly refreshes shortest paths, faces and springs, returning
// the first failure.
func (s *Shape) Recompute() error {
	if err := s.paths(); err != nil {
		return err
	}
	if _, err := s.Cycles(); err != nil {
		return err
	}
	s.Springs()
	return s.Validate()
}

// Validate checks that the handle registry covers exactly the matrix's
// vertices.
func (s *Shape) Validate() error {
	if n, m := len(s.reg.dense), s.dist.Len(); n != m {
		return errors.New(errors.ErrCodeInvariantViolation, "%d handles for %d vertices", n, m)
	}
	return nil
}

// Clone returns a deep copy sharing no state with s. Handles stay valid in
// both copies.
func (s *Shape) Clone() *Shape {
	c := &Shape{
		Logger:  s.Logger,
		dist:    s.dist.Clone(),
		reg:     s.reg.clone(),
		origins: make(map[Handle][]Handle, len(s.origins)),
	}
	for h, o := range s.origins {
		c.origins[h] = slices.Clone(o)
	}
	return c
}

func (s *Shape) paths() error {
	if s.pathsFresh {
		return s.pathsErr
	}
	start := time.Now()
	err := s.dist.PST()
	observability.Shape().OnPaths(s.Len(), time.Since(start), err)
	if err != nil {
		s.logger().Warn("shortest paths degraded", "vertices", s.Len(), "err", err)
	}
	s.pathsFresh, s.pathsErr = true, err
	return err
}

func (s *Shape) invalidate() {
	s.pathsFresh, s.pathsErr = false, nil
	s.faces, s.facesErr = nil, nil
	s.springsSet = false
}
