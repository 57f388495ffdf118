package distance

import "github.com/matzehuels/polyblade/pkg/errors"

// Prism returns the n-gonal prism: two n-gon rings 0..n-1 and n..2n-1 with
// rungs between matching vertices.
func Prism(n int) (*Distance, error) {
	if err := errors.ValidateSides(n, 3); err != nil {
		return nil, err
	}
	d := New(2 * n)
	for i := range n {
		j := (i + 1) % n
		d.link(i, j)
		d.link(i+n, j+n)
		d.link(i, i+n)
	}
	return d, nil
}

// AntiPrism returns the n-gonal antiprism: a prism whose rungs are joined by
// an extra diagonal from i to (i+1)+n, so every side face is a triangle.
func AntiPrism(n int) (*Distance, error) {
	d, err := Prism(n)
	if err != nil {
		return nil, err
	}
	for i := range n {
		d.link(i, (i+1)%n+n)
	}
	return d, nil
}

// Pyramid returns the n-gonal pyramid: an n-gon ring 0..n-1 with apex n.
func Pyramid(n int) (*Distance, error) {
	if err := errors.ValidateSides(n, 3); err != nil {
		return nil, err
	}
	d := New(n + 1)
	for i := range n {
		d.link(i, (i+1)%n)
		d.link(i, n)
	}
	return d, nil
}

// Tetrahedron returns the complete graph on four vertices.
func Tetrahedron() *Distance {
	d := New(4)
	for v := range 4 {
		for u := range v {
			d.link(v, u)
		}
	}
	return d
}

// link connects two ids already known to be valid and distinct.
func (d *Distance) link(v, u int) { d.cells[cell(v, u)] = 1 }
