package distance

import "github.com/matzehuels/polyblade/pkg/errors"

// ContractEdge merges v into u: every neighbor of v becomes a neighbor of u,
// then v is deleted. Vertices above v shift down by one, including u when
// u > v.
func (d *Distance) ContractEdge(v, u int) error {
	if err := errors.ValidateEdge(v, u, d.order); err != nil {
		return err
	}
	for _, w := range d.Connections(v) {
		if w != u {
			d.cells[cell(w, u)] = 1
		}
	}
	return d.Delete(v)
}

// ContractEdges contracts each edge in turn, always deleting the larger
// endpoint into the smaller. Endpoints of the edges still pending are
// rewritten after every contraction: the deleted vertex maps to its
// survivor and every id above it shifts down. Edges that collapse to a
// single vertex are skipped.
//
// The returned slice maps each original vertex id to its id after all
// contractions.
func (d *Distance) ContractEdges(edges []Edge) ([]int, error) {
	remap := make([]int, d.order)
	for v := range remap {
		remap[v] = v
	}
	pending := make([]Edge, len(edges))
	copy(pending, edges)

	for i := 0; i < len(pending); i++ {
		e := pending[i]
		u, v := min(e[0], e[1]), max(e[0], e[1])
		if u == v {
			continue
		}
		if err := d.ContractEdge(v, u); err != nil {
			return nil, err
		}
		for j := i + 1; j < len(pending); j++ {
			pending[j] = NewEdge(shift(pending[j][0], v, u), shift(pending[j][1], v, u))
		}
		for k, w := range remap {
			remap[k] = shift(w, v, u)
		}
	}
	return remap, nil
}

// shift maps x through the deletion of v into u.
func shift(x, v, u int) int {
	switch {
	case x == v:
		return u
	case x > v:
		return x - 1
	default:
		return x
	}
}

// SplitVertex replaces v with one vertex per incident edge. ordered lists
// v's neighbors in the cyclic order they appear around v; the i-th
// replacement vertex takes over the edge to ordered[i]. v itself keeps the
// first slot and the rest are appended. The replacements are joined in a
// ring that bounds a new face, whose edges are returned.
func (d *Distance) SplitVertex(v int, ordered []int) ([]Edge, error) {
	if err := errors.ValidateVertex(v, d.order); err != nil {
		return nil, err
	}
	if len(ordered) < 3 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"split of vertex %d needs at least 3 connections, got %d", v, len(ordered))
	}
	if len(ordered) != d.Degree(v) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"split of vertex %d: %d ordered connections for degree %d", v, len(ordered), d.Degree(v))
	}
	for _, c := range ordered {
		if !d.Adjacent(v, c) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"split of vertex %d: %d is not a neighbor", v, c)
		}
	}

	ring := make([]int, len(ordered))
	ring[0] = v
	for i := 1; i < len(ring); i++ {
		ring[i] = d.Insert()
	}
	for _, c := range ordered {
		d.cells[cell(v, c)] = Unknown
	}
	for i, c := range ordered {
		d.cells[cell(ring[i], c)] = 1
	}

	face := make([]Edge, len(ring))
	for i := range ring {
		e := NewEdge(ring[i], ring[(i+1)%len(ring)])
		d.cells[cell(e[0], e[1])] = 1
		face[i] = e
	}
	return face, nil
}
