package notation

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/polyblade/pkg/errors"
	"github.com/matzehuels/polyblade/pkg/shape"
	"github.com/matzehuels/polyblade/pkg/shape/conway"
)

// Expression is a parsed Conway notation string such as "tk5A5".
// Steps are stored as written, leftmost first.
type Expression struct {
	Steps []*Step `parser:"@@*"`
	Seed  *Seed   `parser:"@@"`
}

// Step is one operator, optionally restricted by a degree or side count.
type Step struct {
	Symbol string `parser:"@Op"`
	Arg    int    `parser:"@Int?"`
}

// Seed is the base polyhedron the steps act on.
type Seed struct {
	Name  string `parser:"@Seed"`
	Sides int    `parser:"@Int?"`
}

var conwayLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Op", Pattern: `[a-z]`},
	{Name: "Seed", Pattern: `[A-Z]`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var parser = participle.MustBuild[Expression](
	participle.Lexer(conwayLexer),
)

// Parse reads a Conway notation string.
func Parse(s string) (*Expression, error) {
	expr, err := parser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNotation, err, "parse %q", s)
	}
	if err := expr.validate(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (e *Expression) validate() error {
	for _, st := range e.Steps {
		op, err := st.Operator()
		if err != nil {
			return err
		}
		if st.Arg != 0 && op != conway.OpKis && op != conway.OpTruncate {
			return errors.New(errors.ErrCodeInvalidNotation, "operator %c takes no argument", op.Symbol())
		}
	}
	switch e.Seed.Name {
	case "T", "C", "O", "D", "I":
		if e.Seed.Sides != 0 {
			return errors.New(errors.ErrCodeInvalidNotation, "seed %s takes no side count", e.Seed.Name)
		}
	case "P", "A", "Y":
		if e.Seed.Sides < 3 {
			return errors.New(errors.ErrCodeInvalidNotation, "seed %s needs at least 3 sides", e.Seed.Name)
		}
	default:
		return errors.New(errors.ErrCodeInvalidNotation, "unknown seed %q", e.Seed.Name)
	}
	return nil
}

// Operator returns the conway operator named by the step's symbol.
func (s *Step) Operator() (conway.Operator, error) {
	op, ok := conway.FromSymbol(rune(s.Symbol[0]))
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidNotation, "unknown operator %q", s.Symbol)
	}
	return op, nil
}

// Operators returns the steps in the order they are applied, rightmost
// first.
func (e *Expression) Operators() []conway.Operator {
	ops := make([]conway.Operator, 0, len(e.Steps))
	for _, st := range slices.Backward(e.Steps) {
		op, _ := st.Operator()
		ops = append(ops, op)
	}
	return ops
}

// Base builds the seed polyhedron alone.
func (e *Expression) Base() (*shape.Shape, error) {
	switch e.Seed.Name {
	case "T":
		return conway.Tetrahedron(), nil
	case "C":
		return conway.Cube(), nil
	case "O":
		return conway.Octahedron()
	case "D":
		return conway.Dodecahedron()
	case "I":
		return conway.Icosahedron()
	case "P":
		return conway.Prism(e.Seed.Sides)
	case "A":
		return conway.AntiPrism(e.Seed.Sides)
	case "Y":
		return conway.Pyramid(e.Seed.Sides)
	}
	return nil, errors.New(errors.ErrCodeInvalidNotation, "unknown seed %q", e.Seed.Name)
}

// Build constructs the seed and applies every step to completion.
func (e *Expression) Build() (*shape.Shape, error) {
	s, err := e.Base()
	if err != nil {
		return nil, err
	}
	for _, st := range slices.Backward(e.Steps) {
		if err := st.apply(s); err != nil {
			return nil, fmt.Errorf("apply %s: %w", st, err)
		}
	}
	return s, nil
}

func (s *Step) apply(sh *shape.Shape) error {
	op, err := s.Operator()
	if err != nil {
		return err
	}
	switch {
	case s.Arg != 0 && op == conway.OpKis:
		_, err = conway.Kis(sh, s.Arg)
	case s.Arg != 0 && op == conway.OpTruncate:
		_, err = conway.Truncate(sh, s.Arg)
	default:
		err = conway.Apply(sh, op)
	}
	return err
}

func (s *Step) String() string {
	if s.Arg == 0 {
		return s.Symbol
	}
	return s.Symbol + strconv.Itoa(s.Arg)
}

func (s *Seed) String() string {
	if s.Sides == 0 {
		return s.Name
	}
	return s.Name + strconv.Itoa(s.Sides)
}

func (e *Expression) String() string {
	var b strings.Builder
	for _, st := range e.Steps {
		b.WriteString(st.String())
	}
	b.WriteString(e.Seed.String())
	return b.String()
}

// Build parses s and constructs the polyhedron it names.
func Build(s string) (*shape.Shape, error) {
	expr, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return expr.Build()
}
