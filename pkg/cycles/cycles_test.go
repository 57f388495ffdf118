package cycles

import (
	"maps"
	"slices"
	"testing"

	"github.com/matzehuels/polyblade/pkg/distance"
	"github.com/matzehuels/polyblade/pkg/errors"
)

func preset(t *testing.T, build func(int) (*distance.Distance, error), n int) *distance.Distance {
	t.Helper()
	d, err := build(n)
	if err != nil {
		t.Fatalf("preset(%d): %v", n, err)
	}
	return d
}

func TestFaceEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Face
		want bool
	}{
		{"identical", Face{0, 1, 2}, Face{0, 1, 2}, true},
		{"rotation", Face{0, 1, 2}, Face{1, 2, 0}, true},
		{"reflection", Face{0, 1, 2}, Face{2, 1, 0}, true},
		{"rotated reflection", Face{4, 7, 1, 3}, Face{1, 7, 4, 3}, true},
		{"different order", Face{0, 1, 2, 3}, Face{0, 2, 1, 3}, false},
		{"different length", Face{0, 1, 2}, Face{0, 1, 2, 3}, false},
		{"different vertices", Face{0, 1, 2}, Face{0, 1, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFaceAt(t *testing.T) {
	f := Face{5, 6, 7}
	tests := []struct{ i, want int }{{0, 5}, {3, 5}, {4, 6}, {-1, 7}, {-4, 7}}
	for _, tt := range tests {
		if got := f.At(tt.i); got != tt.want {
			t.Errorf("At(%d) = %d, want %d", tt.i, got, tt.want)
		}
	}
	if got := (Face{}).At(2); got != -1 {
		t.Errorf("empty At(2) = %d, want -1", got)
	}
}

func TestDiscoverPresets(t *testing.T) {
	tests := []struct {
		name  string
		d     *distance.Distance
		sides map[int]int
	}{
		{"tetrahedron", distance.Tetrahedron(), map[int]int{3: 4}},
		{"cube", preset(t, distance.Prism, 4), map[int]int{4: 6}},
		{"pentagonal prism", preset(t, distance.Prism, 5), map[int]int{4: 5, 5: 2}},
		{"square antiprism", preset(t, distance.AntiPrism, 4), map[int]int{3: 8, 4: 2}},
		{"pentagonal pyramid", preset(t, distance.Pyramid, 5), map[int]int{3: 5, 5: 1}},
		{"octagonal prism", preset(t, distance.Prism, 8), map[int]int{4: 8, 8: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Discover(tt.d)
			if err != nil {
				t.Fatalf("Discover() error: %v", err)
			}
			if got := c.Len(); got != tt.d.FaceCount() {
				t.Errorf("Len() = %d, want %d", got, tt.d.FaceCount())
			}
			if got := c.Sides(); !maps.Equal(got, tt.sides) {
				t.Errorf("Sides() = %v, want %v", got, tt.sides)
			}
			for _, f := range c.All() {
				for i := range f {
					if !tt.d.Adjacent(f.At(i), f.At(i+1)) {
						t.Errorf("face %v: %d and %d not adjacent", f, f.At(i), f.At(i+1))
					}
				}
			}
		})
	}
}

func TestDiscoverSkipsSeparatingTriangle(t *testing.T) {
	// a tetrahedron with a second apex over face {0,1,2}
	d := distance.Tetrahedron()
	apex := d.Insert()
	for v := range 3 {
		_ = d.Connect(apex, v)
	}

	c, err := Discover(d)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if c.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", c.Len())
	}
	for _, f := range c.All() {
		if f.Equal(Face{0, 1, 2}) {
			t.Errorf("separating triangle %v accepted as a face", f)
		}
	}
}

func TestDiscoverExhausted(t *testing.T) {
	tests := []struct {
		name  string
		build func() *distance.Distance
		found int
	}{
		{"path", func() *distance.Distance {
			d := distance.New(4)
			_ = d.Connect(0, 1)
			_ = d.Connect(1, 2)
			_ = d.Connect(2, 3)
			return d
		}, 0},
		{"square with pendant", func() *distance.Distance {
			d := distance.New(5)
			for i := range 4 {
				_ = d.Connect(i, (i+1)%4)
			}
			_ = d.Connect(0, 4)
			return d
		}, 1},
		{"isolated vertices", func() *distance.Distance { return distance.New(5) }, 0},
		{"two vertices", func() *distance.Distance { return distance.New(2) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Discover(tt.build())
			if !errors.Is(err, errors.ErrCodeFaceDiscoveryExhausted) {
				t.Fatalf("Discover() error = %v, want %s", err, errors.ErrCodeFaceDiscoveryExhausted)
			}
			if c.Len() != tt.found {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.found)
			}
			if tt.found == 0 && c.At(0) != nil {
				t.Errorf("At(0) = %v, want nil", c.At(0))
			}
		})
	}
}

func TestSortedConnections(t *testing.T) {
	graphs := map[string]*distance.Distance{
		"cube":      preset(t, distance.Prism, 4),
		"antiprism": preset(t, distance.AntiPrism, 5),
		"pyramid":   preset(t, distance.Pyramid, 6),
	}
	for name, d := range graphs {
		t.Run(name, func(t *testing.T) {
			c, err := Discover(d)
			if err != nil {
				t.Fatalf("Discover() error: %v", err)
			}
			for v := range d.Vertices() {
				sorted := c.SortedConnections(v)
				want := d.Connections(v)
				got := slices.Sorted(slices.Values(sorted))
				if !slices.Equal(got, want) {
					t.Fatalf("SortedConnections(%d) = %v, want a permutation of %v", v, sorted, want)
				}
				// consecutive neighbors share a face with v
				for i := range sorted {
					a, b := sorted[i], sorted[(i+1)%len(sorted)]
					if !sharesFace(c, v, a, b) {
						t.Errorf("SortedConnections(%d) = %v: %d and %d share no face with %d", v, sorted, a, b, v)
					}
				}
			}
		})
	}
}

func sharesFace(c Cycles, vertices ...int) bool {
	for _, f := range c.All() {
		if !slices.ContainsFunc(vertices, func(v int) bool { return !f.Contains(v) }) {
			return true
		}
	}
	return false
}

func TestOrient(t *testing.T) {
	for _, d := range []*distance.Distance{
		preset(t, distance.Prism, 6),
		preset(t, distance.AntiPrism, 3),
		distance.Tetrahedron(),
	} {
		c, err := Discover(d)
		if err != nil {
			t.Fatalf("Discover() error: %v", err)
		}
		oriented := c.Orient()
		directed := make(map[[2]int]int)
		for _, f := range oriented.All() {
			for i := range f {
				directed[[2]int{f.At(i), f.At(i + 1)}]++
			}
		}
		if got, want := len(directed), 2*d.EdgeCount(); got != want {
			t.Errorf("oriented faces cover %d directed edges, want %d", got, want)
		}
		for e, n := range directed {
			if n != 1 {
				t.Errorf("directed edge %v traversed %d times", e, n)
			}
		}
	}
}
