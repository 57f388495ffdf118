package cycles

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/polyblade/pkg/distance"
)

// Face is a cyclic sequence of vertex ids. Consecutive ids, including the
// last and first, are adjacent.
type Face []int

// Len returns the number of sides.
func (f Face) Len() int { return len(f) }

// At returns the vertex at position i, wrapping in both directions, or -1
// on an empty face.
func (f Face) At(i int) int {
	n := len(f)
	if n == 0 {
		return -1
	}
	return f[((i%n)+n)%n]
}

// Contains reports whether v lies on the face.
func (f Face) Contains(v int) bool { return slices.Contains(f, v) }

// Index returns the position of v on the face, or -1.
func (f Face) Index(v int) int { return slices.Index(f, v) }

// Edges returns the face's boundary edges in traversal order.
func (f Face) Edges() []distance.Edge {
	out := make([]distance.Edge, len(f))
	for i := range f {
		out[i] = distance.NewEdge(f[i], f.At(i+1))
	}
	return out
}

// Runs reports whether the face traverses a directly before b.
func (f Face) Runs(a, b int) bool {
	i := f.Index(a)
	return i >= 0 && f.At(i+1) == b
}

// Reversed returns the face traversed in the opposite direction.
func (f Face) Reversed() Face {
	out := slices.Clone(f)
	slices.Reverse(out)
	return out
}

// Key returns a string that is equal for two faces exactly when one is a
// rotation or reflection of the other.
func (f Face) Key() string {
	if len(f) == 0 {
		return ""
	}
	start := 0
	for i, v := range f {
		if v < f[start] {
			start = i
		}
	}
	step := 1
	if f.At(start-1) < f.At(start+1) {
		step = -1
	}
	var b strings.Builder
	for i := range f {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(f.At(start + i*step)))
	}
	return b.String()
}

// Equal reports whether f and o describe the same boundary.
func (f Face) Equal(o Face) bool {
	return len(f) == len(o) && f.Key() == o.Key()
}
