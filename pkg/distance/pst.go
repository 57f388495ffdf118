package distance

import "github.com/matzehuels/polyblade/pkg/errors"

// frontier is one vertex's FIFO of (vertex, depth) discoveries.
type frontier struct {
	entries []reach
	head    int
}

type reach struct {
	vertex int
	depth  int
}

func (f *frontier) push(r reach) { f.entries = append(f.entries, r) }

// next pops the head entry if it was discovered at the given depth.
func (f *frontier) next(depth int) (reach, bool) {
	if f.head == len(f.entries) || f.entries[f.head].depth != depth {
		return reach{}, false
	}
	r := f.entries[f.head]
	f.head++
	return r, true
}

// PST replaces every non-edge cell with the unweighted shortest-path length.
//
// All sources expand together one depth level per pass. Each vertex counts
// the pairs it has not resolved yet, starting at n-1, and stops expanding
// once that count hits zero. At depth 1 every vertex records its neighbors.
// At depth d every still-unresolved vertex v drains the entries it found at
// depth d-1; for each drained w, every neighbor x of w whose distance to v
// is still unknown is assigned d. The first assignment to a cell is final.
//
// If a pass resolves nothing while some counters are still positive, the
// graph is disconnected: PST keeps the partial matrix, with unreachable
// pairs left [Unknown], and returns an error coded
// [errors.ErrCodeDisconnectedGraph].
func (d *Distance) PST() error {
	n := d.order
	for i, c := range d.cells {
		if c > 1 {
			d.cells[i] = Unknown
		}
	}

	adjacency := make([][]int, n)
	for v := range n {
		adjacency[v] = d.Connections(v)
	}

	queues := make([]frontier, n)
	remaining := make([]int, n)
	unresolved := 0
	for v := range n {
		remaining[v] = n - 1
		if remaining[v] > 0 {
			unresolved++
		}
	}

	resolve := func(v int) {
		remaining[v]--
		if remaining[v] == 0 {
			unresolved--
		}
	}

	for depth := 1; unresolved > 0; depth++ {
		progressed := false
		for v := range n {
			if remaining[v] == 0 {
				continue
			}
			if depth == 1 {
				for _, w := range adjacency[v] {
					queues[v].push(reach{w, 1})
					resolve(v)
					progressed = true
				}
				continue
			}
			for remaining[v] > 0 {
				r, ok := queues[v].next(depth - 1)
				if !ok {
					break
				}
				for _, x := range adjacency[r.vertex] {
					i := cell(v, x)
					if x == v || d.cells[i] != Unknown {
						continue
					}
					d.cells[i] = depth
					queues[v].push(reach{x, depth})
					queues[x].push(reach{v, depth})
					resolve(v)
					resolve(x)
					progressed = true
				}
			}
		}
		if !progressed {
			return errors.New(errors.ErrCodeDisconnectedGraph,
				"%d of %d vertices have unreachable pairs", unresolved, n)
		}
	}
	return nil
}

// FloydWarshall replaces every non-edge cell with the shortest-path length
// using the classic cubic dynamic program. It exists to verify [Distance.PST].
func (d *Distance) FloydWarshall() {
	n := d.order
	g := New(n)
	for e := range d.Edges() {
		g.cells[cell(e[0], e[1])] = 1
	}
	for k := range n {
		for i := range n {
			ik := g.cells[cell(i, k)]
			if ik == Unknown {
				continue
			}
			for j := range n {
				kj := g.cells[cell(k, j)]
				if kj == Unknown {
					continue
				}
				if ij := cell(i, j); g.cells[ij] > ik+kj {
					g.cells[ij] = ik + kj
				}
			}
		}
	}
	d.cells = g.cells
}
