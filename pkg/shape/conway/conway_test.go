package conway

import (
	"maps"
	"slices"
	"testing"

	"github.com/matzehuels/polyblade/pkg/errors"
	"github.com/matzehuels/polyblade/pkg/shape"
)

type counts struct{ v, e, f int }

func census(t *testing.T, s *shape.Shape) counts {
	t.Helper()
	c, err := s.Cycles()
	if err != nil {
		t.Fatalf("Cycles() error: %v", err)
	}
	return counts{s.Len(), s.EdgeCount(), c.Len()}
}

func TestOperatorCounts(t *testing.T) {
	seeds := map[string]func() *shape.Shape{
		"T": Tetrahedron,
		"C": Cube,
	}
	tests := []struct {
		seed string
		op   Operator
		want counts
	}{
		{"T", OpTruncate, counts{12, 18, 8}},
		{"T", OpAmbo, counts{6, 12, 8}},
		{"T", OpKis, counts{8, 18, 12}},
		{"T", OpJoin, counts{8, 12, 6}},
		{"T", OpDual, counts{4, 6, 4}},
		{"T", OpExpand, counts{12, 24, 14}},
		{"T", OpSnub, counts{12, 30, 20}},
		{"T", OpBevel, counts{24, 36, 14}},
		{"T", OpChamfer, counts{16, 24, 10}},
		{"C", OpTruncate, counts{24, 36, 14}},
		{"C", OpAmbo, counts{12, 24, 14}},
		{"C", OpKis, counts{14, 36, 24}},
		{"C", OpJoin, counts{14, 24, 12}},
		{"C", OpDual, counts{6, 12, 8}},
		{"C", OpExpand, counts{24, 48, 26}},
		{"C", OpSnub, counts{24, 60, 38}},
		{"C", OpBevel, counts{48, 72, 26}},
		{"C", OpChamfer, counts{32, 48, 18}},
	}
	for _, tt := range tests {
		t.Run(string(tt.op.Symbol())+tt.seed, func(t *testing.T) {
			s := seeds[tt.seed]()
			if err := Apply(s, tt.op); err != nil {
				t.Fatalf("Apply(%s) error: %v", tt.op, err)
			}
			got := census(t, s)
			if got != tt.want {
				t.Errorf("%c%s = %+v, want %+v", tt.op.Symbol(), tt.seed, got, tt.want)
			}
			if got.v-got.e+got.f != 2 {
				t.Errorf("Euler characteristic = %d, want 2", got.v-got.e+got.f)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}

func TestEulerOnPresets(t *testing.T) {
	builders := map[string]func(int) (*shape.Shape, error){
		"prism":     Prism,
		"antiprism": AntiPrism,
		"pyramid":   Pyramid,
	}
	for name, build := range builders {
		for n := 3; n <= 7; n++ {
			s, err := build(n)
			if err != nil {
				t.Fatalf("%s(%d): %v", name, n, err)
			}
			got := census(t, s)
			if got.f != s.FaceCount() {
				t.Errorf("%s(%d): %d faces, Euler wants %d", name, n, got.f, s.FaceCount())
			}
		}
	}
}

func TestEulerAfterEveryOperator(t *testing.T) {
	for _, op := range Operators() {
		s, err := Pyramid(4)
		if err != nil {
			t.Fatal(err)
		}
		if err := Apply(s, op); err != nil {
			t.Fatalf("Apply(%s) error: %v", op, err)
		}
		c, err := s.Cycles()
		if err != nil {
			t.Fatalf("%s: Cycles() error: %v", op, err)
		}
		if c.Len() != 2+s.EdgeCount()-s.Len() {
			t.Errorf("%s: %d faces for %d vertices and %d edges", op, c.Len(), s.Len(), s.EdgeCount())
		}
	}
}

func TestOctahedronIsAmboTetrahedron(t *testing.T) {
	s, err := Octahedron()
	if err != nil {
		t.Fatalf("Octahedron() error: %v", err)
	}
	want, _ := AntiPrism(3)
	if got, w := profile(s), profile(want); !slices.Equal(got, w) {
		t.Errorf("distance profile = %v, want %v", got, w)
	}
	for v := range s.Len() {
		if s.Degree(v) != 4 {
			t.Errorf("Degree(%d) = %d, want 4", v, s.Degree(v))
		}
		far := 0
		for u := range s.Len() {
			if s.Distance(v, u) == 2 {
				far++
			}
		}
		if far != 1 {
			t.Errorf("vertex %d has %d antipodes, want 1", v, far)
		}
	}
}

// profile returns each vertex's sorted distance row, sorted, which is
// invariant under relabeling.
func profile(s *shape.Shape) []string {
	var rows []string
	for v := range s.Len() {
		row := make([]int, s.Len())
		for u := range row {
			row[u] = s.Distance(v, u)
		}
		slices.Sort(row)
		b := make([]byte, len(row))
		for i, x := range row {
			b[i] = byte('0' + x)
		}
		rows = append(rows, string(b))
	}
	slices.Sort(rows)
	return rows
}

func TestPlatonicSolids(t *testing.T) {
	tests := []struct {
		name   string
		build  func() (*shape.Shape, error)
		want   counts
		degree int
		sides  map[int]int
	}{
		{"octahedron", Octahedron, counts{6, 12, 8}, 4, map[int]int{3: 8}},
		{"icosahedron", Icosahedron, counts{12, 30, 20}, 5, map[int]int{3: 20}},
		{"dodecahedron", Dodecahedron, counts{20, 30, 12}, 3, map[int]int{5: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.build()
			if err != nil {
				t.Fatalf("build error: %v", err)
			}
			if got := census(t, s); got != tt.want {
				t.Errorf("counts = %+v, want %+v", got, tt.want)
			}
			for v := range s.Len() {
				if s.Degree(v) != tt.degree {
					t.Errorf("Degree(%d) = %d, want %d", v, s.Degree(v), tt.degree)
				}
			}
			c, _ := s.Cycles()
			if got := c.Sides(); !maps.Equal(got, tt.sides) {
				t.Errorf("Sides() = %v, want %v", got, tt.sides)
			}
		})
	}
}

func TestSnubCube(t *testing.T) {
	s := Cube()
	if err := Snub(s); err != nil {
		t.Fatalf("Snub() error: %v", err)
	}
	for v := range s.Len() {
		if s.Degree(v) != 5 {
			t.Errorf("Degree(%d) = %d, want 5", v, s.Degree(v))
		}
	}
	c, _ := s.Cycles()
	if got, want := c.Sides(), map[int]int{3: 32, 4: 6}; !maps.Equal(got, want) {
		t.Errorf("Sides() = %v, want %v", got, want)
	}
}

func TestAmboTwoPhase(t *testing.T) {
	s := Cube()
	edges, err := AmboEdges(s)
	if err != nil {
		t.Fatalf("AmboEdges() error: %v", err)
	}
	if len(edges) != 12 {
		t.Fatalf("len(AmboEdges()) = %d, want 12", len(edges))
	}
	// truncated cube until contraction
	if s.Len() != 24 {
		t.Errorf("Len() before contraction = %d, want 24", s.Len())
	}
	if err := s.Contract(edges); err != nil {
		t.Fatalf("Contract() error: %v", err)
	}
	if got := census(t, s); got != (counts{12, 24, 14}) {
		t.Errorf("aC = %+v, want {12 24 14}", got)
	}
}

func TestTruncateByDegree(t *testing.T) {
	s, _ := Pyramid(4)
	ring, err := Truncate(s, 4)
	if err != nil {
		t.Fatalf("Truncate() error: %v", err)
	}
	if len(ring) != 4 {
		t.Errorf("len(ring) = %d, want 4", len(ring))
	}
	if got := census(t, s); got != (counts{8, 12, 6}) {
		t.Errorf("t4Y4 = %+v, want {8 12 6}", got)
	}
}

func TestKisBySides(t *testing.T) {
	s, _ := Prism(5)
	if _, err := Kis(s, 5); err != nil {
		t.Fatalf("Kis() error: %v", err)
	}
	if got := census(t, s); got != (counts{12, 25, 15}) {
		t.Errorf("k5P5 = %+v, want {12 25 15}", got)
	}
}

func TestDualInvolution(t *testing.T) {
	s, _ := Prism(5)
	before := census(t, s)
	for range 2 {
		if err := Dual(s); err != nil {
			t.Fatalf("Dual() error: %v", err)
		}
	}
	if got := census(t, s); got != before {
		t.Errorf("ddP5 = %+v, want %+v", got, before)
	}
}

func TestPathsMatchFloydAfterOperators(t *testing.T) {
	for _, op := range []Operator{OpTruncate, OpAmbo, OpSnub, OpJoin} {
		s := Cube()
		if err := Apply(s, op); err != nil {
			t.Fatalf("Apply(%s) error: %v", op, err)
		}
		pst := s.Matrix()
		floyd := pst.Clone()
		floyd.FloydWarshall()
		if !pst.Equal(floyd) {
			t.Errorf("%s: PST differs from Floyd-Warshall", op)
		}
	}
}

func TestRebuildOrigins(t *testing.T) {
	s := Cube()
	old := s.Handles()
	if err := Dual(s); err != nil {
		t.Fatalf("Dual() error: %v", err)
	}
	for _, h := range s.Handles() {
		o := s.Origins(h)
		if len(o) != 4 {
			t.Errorf("Origins(%s) has %d handles, want 4", h, len(o))
		}
		for _, x := range o {
			if !slices.Contains(old, x) {
				t.Errorf("origin %s is not a cube vertex", x)
			}
		}
	}
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		in   string
		want Operator
	}{
		{"a", OpAmbo},
		{"ambo", OpAmbo},
		{" Truncate ", OpTruncate},
		{"s", OpSnub},
		{"c", OpChamfer},
	}
	for _, tt := range tests {
		got, err := ParseOperator(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseOperator(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseOperator("z"); !errors.Is(err, errors.ErrCodeInvalidNotation) {
		t.Errorf("ParseOperator(z) error = %v, want %s", err, errors.ErrCodeInvalidNotation)
	}
	for _, op := range Operators() {
		back, ok := FromSymbol(op.Symbol())
		if !ok || back != op {
			t.Errorf("FromSymbol(%c) = %v, %v, want %v", op.Symbol(), back, ok, op)
		}
	}
}
