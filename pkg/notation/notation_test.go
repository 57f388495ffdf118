package notation

import (
	"slices"
	"testing"

	"github.com/matzehuels/polyblade/pkg/errors"
	"github.com/matzehuels/polyblade/pkg/shape/conway"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		steps int
		seed  string
		sides int
		ops   []conway.Operator
	}{
		{"C", 0, "C", 0, []conway.Operator{}},
		{"tC", 1, "C", 0, []conway.Operator{conway.OpTruncate}},
		{"tk5A5", 2, "A", 5, []conway.Operator{conway.OpKis, conway.OpTruncate}},
		{"d a P6", 2, "P", 6, []conway.Operator{conway.OpAmbo, conway.OpDual}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if len(e.Steps) != tt.steps {
				t.Errorf("len(Steps) = %d, want %d", len(e.Steps), tt.steps)
			}
			if e.Seed.Name != tt.seed || e.Seed.Sides != tt.sides {
				t.Errorf("Seed = %s%d, want %s%d", e.Seed.Name, e.Seed.Sides, tt.seed, tt.sides)
			}
			if got := e.Operators(); !slices.Equal(got, tt.ops) {
				t.Errorf("Operators() = %v, want %v", got, tt.ops)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "t", "xC", "P2", "C4", "a3C", "tC!", "Q"} {
		if _, err := Parse(in); !errors.Is(err, errors.ErrCodeInvalidNotation) {
			t.Errorf("Parse(%q) error = %v, want %s", in, err, errors.ErrCodeInvalidNotation)
		}
	}
}

func TestString(t *testing.T) {
	for _, in := range []string{"C", "tk5A5", "dP7", "t3Y4"} {
		e, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		if got := e.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		in      string
		v, e, f int
	}{
		{"T", 4, 6, 4},
		{"O", 6, 12, 8},
		{"I", 12, 30, 20},
		{"aC", 12, 24, 14},
		{"dtC", 14, 36, 24},
		{"t4Y4", 8, 12, 6},
		{"k4P4", 14, 36, 24},
		{"dD", 12, 30, 20},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := Build(tt.in)
			if err != nil {
				t.Fatalf("Build(%q) error: %v", tt.in, err)
			}
			c, err := s.Cycles()
			if err != nil {
				t.Fatalf("Cycles() error: %v", err)
			}
			if s.Len() != tt.v || s.EdgeCount() != tt.e || c.Len() != tt.f {
				t.Errorf("Build(%q) = %d/%d/%d, want %d/%d/%d",
					tt.in, s.Len(), s.EdgeCount(), c.Len(), tt.v, tt.e, tt.f)
			}
		})
	}
}
