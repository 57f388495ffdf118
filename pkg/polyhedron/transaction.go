package polyhedron

import (
	"fmt"
	"time"

	"github.com/matzehuels/polyblade/pkg/shape"
	"github.com/matzehuels/polyblade/pkg/shape/conway"
)

// Kind tags a Transaction.
type Kind int

const (
	KindNone Kind = iota
	KindContraction
	KindRelease
	KindConway
	KindName
	KindShortenName
	KindWait
)

var kindNames = [...]string{
	KindNone:        "none",
	KindContraction: "contraction",
	KindRelease:     "release",
	KindConway:      "conway",
	KindName:        "name",
	KindShortenName: "shorten-name",
	KindWait:        "wait",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Transaction is one queued step. Only the fields relevant to Kind are set.
type Transaction struct {
	Kind     Kind
	Edges    []shape.Edge
	Op       conway.Operator
	Symbol   rune
	Count    int
	Deadline time.Time
}

// Contraction waits for the edges to converge in the layout, then contracts
// them.
func Contraction(edges []shape.Edge) Transaction {
	return Transaction{Kind: KindContraction, Edges: edges}
}

// Release removes the edges.
func Release(edges []shape.Edge) Transaction {
	return Transaction{Kind: KindRelease, Edges: edges}
}

// Conway applies op, expanding into its script.
func Conway(op conway.Operator) Transaction {
	return Transaction{Kind: KindConway, Op: op}
}

// Name prepends c to the polyhedron's name.
func Name(c rune) Transaction {
	return Transaction{Kind: KindName, Symbol: c}
}

// ShortenName drops the first n characters of the name.
func ShortenName(n int) Transaction {
	return Transaction{Kind: KindShortenName, Count: n}
}

// Wait holds the queue until deadline has passed.
func Wait(deadline time.Time) Transaction {
	return Transaction{Kind: KindWait, Deadline: deadline}
}

// None is a no-op.
func None() Transaction { return Transaction{} }

func (t Transaction) String() string {
	switch t.Kind {
	case KindContraction, KindRelease:
		return fmt.Sprintf("%s(%d edges)", t.Kind, len(t.Edges))
	case KindConway:
		return fmt.Sprintf("conway(%s)", t.Op)
	case KindName:
		return fmt.Sprintf("name(%c)", t.Symbol)
	case KindShortenName:
		return fmt.Sprintf("shorten-name(%d)", t.Count)
	case KindWait:
		return fmt.Sprintf("wait(%s)", t.Deadline.Format("15:04:05.000"))
	}
	return t.Kind.String()
}
