package polyhedron

import (
	"time"

	"github.com/matzehuels/polyblade/pkg/shape"
	"github.com/matzehuels/polyblade/pkg/shape/conway"
)

// step is a Transaction template. Edge-carrying kinds take the edges the
// script's rewrite returned; Wait takes a deadline relative to expansion.
type step struct {
	kind   Kind
	op     conway.Operator
	symbol rune
	count  int
}

// script lowers one Conway operator into an immediate rewrite followed by
// queued steps.
type script struct {
	rewrite func(*shape.Shape) ([]shape.Edge, error)
	steps   []step
}

func named(c rune) step              { return step{kind: KindName, symbol: c} }
func nested(op conway.Operator) step { return step{kind: KindConway, op: op} }

var (
	settle   = step{kind: KindWait}
	contract = step{kind: KindContraction}
	release  = step{kind: KindRelease}
)

// eager runs op to completion as the rewrite.
func eager(op conway.Operator) func(*shape.Shape) ([]shape.Edge, error) {
	return func(s *shape.Shape) ([]shape.Edge, error) {
		return nil, conway.Apply(s, op)
	}
}

var scripts = map[conway.Operator]script{
	conway.OpAmbo: {
		rewrite: conway.AmboEdges,
		steps:   []step{contract, named('a')},
	},
	// Bevel is truncate of ambo (ta); ambo must run first to reach bC = 48/72/26.
	conway.OpBevel: {
		steps: []step{nested(conway.OpAmbo), settle, nested(conway.OpTruncate), {kind: KindShortenName, count: 2}, named('b')},
	},
	conway.OpExpand: {
		steps: []step{nested(conway.OpAmbo), settle, nested(conway.OpAmbo), {kind: KindShortenName, count: 2}, named('e')},
	},
	conway.OpJoin: {
		rewrite: func(s *shape.Shape) ([]shape.Edge, error) { return conway.Kis(s, 0) },
		steps:   []step{release, named('j')},
	},
	conway.OpTruncate: {rewrite: eager(conway.OpTruncate), steps: []step{named('t')}},
	conway.OpKis:      {rewrite: eager(conway.OpKis), steps: []step{named('k')}},
	conway.OpDual:     {rewrite: eager(conway.OpDual), steps: []step{named('d')}},
	conway.OpSnub:     {rewrite: eager(conway.OpSnub), steps: []step{named('s')}},
	conway.OpChamfer:  {rewrite: eager(conway.OpChamfer), steps: []step{named('c')}},
}

// bind turns the script's steps into transactions.
func (sc script) bind(edges []shape.Edge, now time.Time, delay time.Duration) []Transaction {
	out := make([]Transaction, len(sc.steps))
	for i, st := range sc.steps {
		t := Transaction{Kind: st.kind, Op: st.op, Symbol: st.symbol, Count: st.count}
		switch st.kind {
		case KindContraction, KindRelease:
			t.Edges = edges
		case KindWait:
			t.Deadline = now.Add(delay)
		}
		out[i] = t
	}
	return out
}
