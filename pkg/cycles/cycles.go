package cycles

import (
	"iter"
	"slices"

	"github.com/matzehuels/polyblade/pkg/distance"
	"github.com/matzehuels/polyblade/pkg/errors"
)

// Cycles is the face list of a skeleton.
type Cycles struct {
	faces []Face
}

// New wraps an explicit face list.
func New(faces []Face) Cycles { return Cycles{faces: faces} }

// Len returns the number of faces.
func (c Cycles) Len() int { return len(c.faces) }

// At returns face i, wrapping in both directions. It returns nil when there
// are no faces.
func (c Cycles) At(i int) Face {
	n := len(c.faces)
	if n == 0 {
		return nil
	}
	return c.faces[((i%n)+n)%n]
}

// All yields every face in discovery order.
func (c Cycles) All() iter.Seq2[int, Face] {
	return func(yield func(int, Face) bool) {
		for i, f := range c.faces {
			if !yield(i, f) {
				return
			}
		}
	}
}

// Faces returns a copy of the face list.
func (c Cycles) Faces() []Face {
	out := make([]Face, len(c.faces))
	for i, f := range c.faces {
		out[i] = slices.Clone(f)
	}
	return out
}

// Sides counts faces by their number of sides.
func (c Cycles) Sides() map[int]int {
	out := make(map[int]int)
	for _, f := range c.faces {
		out[len(f)]++
	}
	return out
}

// Containing returns the indices of the faces v lies on.
func (c Cycles) Containing(v int) []int {
	var out []int
	for i, f := range c.faces {
		if f.Contains(v) {
			out = append(out, i)
		}
	}
	return out
}

// SortedConnections returns the neighbors of v in the cyclic order they
// appear walking around v. Every face through v contributes the pair of
// neighbors before and after v; the pairs are chained end to end.
func (c Cycles) SortedConnections(v int) []int {
	var pairs [][2]int
	for _, f := range c.faces {
		if i := f.Index(v); i >= 0 {
			pairs = append(pairs, [2]int{f.At(i - 1), f.At(i + 1)})
		}
	}
	if len(pairs) == 0 {
		return nil
	}

	chain := []int{pairs[0][0]}
	for {
		prev := chain[len(chain)-1]
		i := slices.IndexFunc(pairs, func(p [2]int) bool { return p[0] == prev || p[1] == prev })
		if i < 0 {
			break
		}
		p := pairs[i]
		pairs = slices.Delete(pairs, i, i+1)
		if p[0] == prev {
			chain = append(chain, p[1])
		} else {
			chain = append(chain, p[0])
		}
	}
	return chain[1:]
}

// Orient returns the faces reoriented so that each edge is traversed in
// opposite directions by the two faces that share it. The first face of
// each connected group of faces keeps its direction.
func (c Cycles) Orient() Cycles {
	faces := c.Faces()
	incident := make(map[distance.Edge][]int)
	for i, f := range faces {
		for _, e := range f.Edges() {
			incident[e] = append(incident[e], i)
		}
	}

	done := make([]bool, len(faces))
	for root := range faces {
		if done[root] {
			continue
		}
		done[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			f := faces[i]
			for k := range f {
				a, b := f[k], f.At(k+1)
				for _, j := range incident[distance.NewEdge(a, b)] {
					if done[j] {
						continue
					}
					if faces[j].Runs(a, b) {
						faces[j] = faces[j].Reversed()
					}
					done[j] = true
					queue = append(queue, j)
				}
			}
		}
	}
	return Cycles{faces: faces}
}

// Discover finds the faces of d by triplet extension, stopping once it has
// d.FaceCount() of them. A closed chordless cycle only counts as a face if
// removing its vertices leaves the rest of d connected.
//
// If every candidate path is exhausted first, Discover returns the faces it
// found together with an error coded [errors.ErrCodeFaceDiscoveryExhausted]:
// the graph is not a polyhedral skeleton.
func Discover(d *distance.Distance) (Cycles, error) {
	target := d.FaceCount()
	if target < 1 {
		return Cycles{}, errors.New(errors.ErrCodeFaceDiscoveryExhausted,
			"%d vertices and %d edges cannot bound a polyhedron", d.Len(), d.EdgeCount())
	}
	adjacency := make([][]int, d.Len())
	for v := range adjacency {
		adjacency[v] = d.Connections(v)
	}

	var (
		faces []Face
		seen  = make(map[string]bool)
		paths [][]int
	)
	accept := func(f Face) {
		key := f.Key()
		if seen[key] {
			return
		}
		seen[key] = true
		if d.Without(f).Connected() {
			faces = append(faces, f)
		}
	}

	for u, adj := range adjacency {
		for i, x := range adj {
			if x <= u {
				continue
			}
			for _, y := range adj[i+1:] {
				if d.Adjacent(x, y) {
					accept(Face{x, u, y})
				} else {
					paths = append(paths, []int{x, u, y})
				}
			}
		}
	}

	for head := 0; head < len(paths) && len(faces) < target; head++ {
		p := paths[head]
		last := p[len(p)-1]
		for _, v := range adjacency[last] {
			if v <= p[1] || chord(d, v, p[1:len(p)-1]) {
				continue
			}
			next := append(slices.Clip(p), v)
			if d.Adjacent(p[0], v) {
				accept(Face(next))
			} else {
				paths = append(paths, next)
			}
			if len(faces) >= target {
				break
			}
		}
	}

	if len(faces) < target {
		return Cycles{faces: faces}, errors.New(errors.ErrCodeFaceDiscoveryExhausted,
			"found %d of %d faces", len(faces), target)
	}
	return Cycles{faces: faces[:target]}, nil
}

// chord reports whether v is adjacent to any vertex of interior.
func chord(d *distance.Distance, v int, interior []int) bool {
	for _, x := range interior {
		if d.Adjacent(v, x) {
			return true
		}
	}
	return false
}
