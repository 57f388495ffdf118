package distance

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/polyblade/pkg/errors"
)

// Unknown marks a pair whose distance is not known, either because shortest
// paths have not been computed yet or because the pair is disconnected.
const Unknown = math.MaxInt

// Edge is an unordered vertex pair, stored with the smaller id first.
// Always build edges with [NewEdge] so equal pairs compare equal.
type Edge [2]int

// NewEdge returns the canonical edge between v and u.
func NewEdge(v, u int) Edge {
	if v > u {
		v, u = u, v
	}
	return Edge{v, u}
}

// Contains reports whether v is an endpoint of e.
func (e Edge) Contains(v int) bool { return e[0] == v || e[1] == v }

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v int) int {
	if e[0] == v {
		return e[1]
	}
	return e[0]
}

// Distance is a symmetric distance matrix over a dense vertex index space.
// The zero value is an empty graph ready for use.
type Distance struct {
	order int
	cells []int
}

// New creates a matrix of n isolated vertices.
func New(n int) *Distance {
	d := &Distance{order: n, cells: make([]int, n*(n+1)/2)}
	for v := range n {
		row := cell(v, 0)
		for u := range v {
			d.cells[row+u] = Unknown
		}
	}
	return d
}

// cell returns the flat index of the unordered pair {v, u}.
func cell(v, u int) int {
	if v < u {
		v, u = u, v
	}
	return v*(v+1)/2 + u
}

// Len returns the number of vertices.
func (d *Distance) Len() int { return d.order }

// At returns the distance between v and u, or [Unknown] if either is out of
// range.
func (d *Distance) At(v, u int) int {
	if v < 0 || u < 0 || v >= d.order || u >= d.order {
		return Unknown
	}
	return d.cells[cell(v, u)]
}

// Adjacent reports whether an edge joins v and u.
func (d *Distance) Adjacent(v, u int) bool { return d.At(v, u) == 1 }

// Connect adds the edge {v, u}. Connecting an existing edge is a no-op.
func (d *Distance) Connect(v, u int) error {
	if err := errors.ValidateEdge(v, u, d.order); err != nil {
		return err
	}
	d.cells[cell(v, u)] = 1
	return nil
}

// Disconnect removes the edge {v, u} if present. Any other cell value is left
// untouched, so disconnecting a non-edge is a no-op.
func (d *Distance) Disconnect(v, u int) error {
	if err := errors.ValidateEdge(v, u, d.order); err != nil {
		return err
	}
	if i := cell(v, u); d.cells[i] == 1 {
		d.cells[i] = Unknown
	}
	return nil
}

// Insert appends a new isolated vertex and returns its id.
func (d *Distance) Insert() int {
	for range d.order {
		d.cells = append(d.cells, Unknown)
	}
	d.cells = append(d.cells, 0)
	d.order++
	return d.order - 1
}

// Delete removes vertex v. Every vertex above v shifts down by one.
func (d *Distance) Delete(v int) error {
	if err := errors.ValidateVertex(v, d.order); err != nil {
		return err
	}
	next := make([]int, 0, (d.order-1)*d.order/2)
	for x := range d.order {
		if x == v {
			continue
		}
		for y := 0; y <= x; y++ {
			if y == v {
				continue
			}
			next = append(next, d.cells[cell(x, y)])
		}
	}
	d.cells = next
	d.order--
	return nil
}

// Connections returns the neighbors of v in ascending order.
func (d *Distance) Connections(v int) []int {
	if v < 0 || v >= d.order {
		return nil
	}
	var out []int
	for u := range d.order {
		if u != v && d.cells[cell(v, u)] == 1 {
			out = append(out, u)
		}
	}
	return out
}

// Degree returns the number of neighbors of v.
func (d *Distance) Degree(v int) int { return len(d.Connections(v)) }

// Vertices yields every vertex id in ascending order.
func (d *Distance) Vertices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := range d.order {
			if !yield(v) {
				return
			}
		}
	}
}

// VertexPairs yields every unordered pair of distinct vertices once.
func (d *Distance) VertexPairs() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for v := range d.order {
			for u := range v {
				if !yield(Edge{u, v}) {
					return
				}
			}
		}
	}
}

// Edges yields every edge of the graph.
func (d *Distance) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := range d.VertexPairs() {
			if d.cells[cell(e[0], e[1])] == 1 && !yield(e) {
				return
			}
		}
	}
}

// EdgeCount returns the number of edges.
func (d *Distance) EdgeCount() int {
	n := 0
	for range d.Edges() {
		n++
	}
	return n
}

// Diameter returns the largest known distance, or 0 if no pair is known.
// It is only meaningful after [Distance.PST].
func (d *Distance) Diameter() int {
	diameter := 0
	for e := range d.VertexPairs() {
		if c := d.cells[cell(e[0], e[1])]; c != Unknown && c > diameter {
			diameter = c
		}
	}
	return diameter
}

// FaceCount returns the number of faces Euler's formula demands for the
// current vertex and edge counts. It is a target, not a guarantee.
func (d *Distance) FaceCount() int {
	return 2 + d.EdgeCount() - d.order
}

// Springs returns the pairs a layout engine should hold together: every pair
// at distance at most 2, and every pair within one of the diameter.
func (d *Distance) Springs() []Edge {
	diameter := d.Diameter()
	var out []Edge
	for e := range d.VertexPairs() {
		c := d.cells[cell(e[0], e[1])]
		if c == Unknown {
			continue
		}
		if c <= 2 || c >= diameter-1 {
			out = append(out, e)
		}
	}
	return out
}

// Connected reports whether every vertex is reachable from vertex 0.
// The empty graph is connected.
func (d *Distance) Connected() bool {
	if d.order == 0 {
		return true
	}
	seen := make([]bool, d.order)
	seen[0] = true
	stack := []int{0}
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range d.Connections(v) {
			if !seen[u] {
				seen[u] = true
				count++
				stack = append(stack, u)
			}
		}
	}
	return count == d.order
}

// Without returns a copy of the graph with the given vertices removed.
// Remaining vertices keep their relative order.
func (d *Distance) Without(vertices []int) *Distance {
	drop := slices.Clone(vertices)
	slices.Sort(drop)
	drop = slices.Compact(drop)
	out := d.Clone()
	for i := len(drop) - 1; i >= 0; i-- {
		if drop[i] >= 0 && drop[i] < out.order {
			_ = out.Delete(drop[i])
		}
	}
	return out
}

// Clone returns a deep copy.
func (d *Distance) Clone() *Distance {
	return &Distance{order: d.order, cells: slices.Clone(d.cells)}
}

// Equal reports whether d and o have the same order and cells.
func (d *Distance) Equal(o *Distance) bool {
	return d.order == o.order && slices.Equal(d.cells, o.cells)
}

// String renders the matrix as a table, with "_" for unknown cells.
func (d *Distance) String() string {
	var b strings.Builder
	b.WriteString("\t|")
	for v := range d.order {
		fmt.Fprintf(&b, " %d |", v)
	}
	b.WriteString("\n\t")
	b.WriteString(strings.Repeat("____", d.order))
	b.WriteString("\n")
	for v := range d.order {
		fmt.Fprintf(&b, "%d:\t|", v)
		for u := range d.order {
			if c := d.cells[cell(v, u)]; c == Unknown {
				b.WriteString(" _ |")
			} else {
				fmt.Fprintf(&b, " %d |", c)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
