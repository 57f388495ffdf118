package conway

import (
	"strings"

	"github.com/matzehuels/polyblade/pkg/errors"
)

// Operator names a Conway polyhedron operator.
type Operator int

const (
	OpDual Operator = iota
	OpJoin
	OpAmbo
	OpKis
	OpTruncate
	OpExpand
	OpSnub
	OpBevel
	OpChamfer
)

var operatorInfo = [...]struct {
	symbol rune
	name   string
}{
	OpDual:     {'d', "dual"},
	OpJoin:     {'j', "join"},
	OpAmbo:     {'a', "ambo"},
	OpKis:      {'k', "kis"},
	OpTruncate: {'t', "truncate"},
	OpExpand:   {'e', "expand"},
	OpSnub:     {'s', "snub"},
	OpBevel:    {'b', "bevel"},
	OpChamfer:  {'c', "chamfer"},
}

// Operators returns every operator in declaration order.
func Operators() []Operator {
	out := make([]Operator, len(operatorInfo))
	for i := range out {
		out[i] = Operator(i)
	}
	return out
}

func (o Operator) valid() bool { return o >= 0 && int(o) < len(operatorInfo) }

// Symbol returns the operator's letter in Conway notation.
func (o Operator) Symbol() rune {
	if !o.valid() {
		return '?'
	}
	return operatorInfo[o].symbol
}

func (o Operator) String() string {
	if !o.valid() {
		return "unknown"
	}
	return operatorInfo[o].name
}

// ParseOperator accepts an operator's notation letter or its name.
func ParseOperator(s string) (Operator, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range operatorInfo {
		if s == info.name || s == string(info.symbol) {
			return Operator(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidNotation, "unknown operator %q", s)
}

// FromSymbol returns the operator written as r in Conway notation.
func FromSymbol(r rune) (Operator, bool) {
	for i, info := range operatorInfo {
		if info.symbol == r {
			return Operator(i), true
		}
	}
	return 0, false
}
