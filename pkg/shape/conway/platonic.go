package conway

import (
	"github.com/matzehuels/polyblade/pkg/distance"
	"github.com/matzehuels/polyblade/pkg/shape"
)

// Prism returns the n-gonal prism, Pn.
func Prism(n int) (*shape.Shape, error) {
	d, err := distance.Prism(n)
	if err != nil {
		return nil, err
	}
	return shape.New(d), nil
}

// AntiPrism returns the n-gonal antiprism, An.
func AntiPrism(n int) (*shape.Shape, error) {
	d, err := distance.AntiPrism(n)
	if err != nil {
		return nil, err
	}
	return shape.New(d), nil
}

// Pyramid returns the n-gonal pyramid, Yn.
func Pyramid(n int) (*shape.Shape, error) {
	d, err := distance.Pyramid(n)
	if err != nil {
		return nil, err
	}
	return shape.New(d), nil
}

// Tetrahedron returns T, the triangular pyramid.
func Tetrahedron() *shape.Shape {
	return shape.New(distance.Tetrahedron())
}

// Cube returns C, the square prism.
func Cube() *shape.Shape {
	s, _ := Prism(4)
	return s
}

// Octahedron returns O as the ambo of a tetrahedron.
func Octahedron() (*shape.Shape, error) {
	s := Tetrahedron()
	if err := Ambo(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Icosahedron returns I by raising pyramids on both caps of a pentagonal
// antiprism.
func Icosahedron() (*shape.Shape, error) {
	s, err := AntiPrism(5)
	if err != nil {
		return nil, err
	}
	if _, err := Kis(s, 5); err != nil {
		return nil, err
	}
	return s, nil
}

// Dodecahedron returns D as the dual of the icosahedron.
func Dodecahedron() (*shape.Shape, error) {
	s, err := Icosahedron()
	if err != nil {
		return nil, err
	}
	if err := Dual(s); err != nil {
		return nil, err
	}
	return s, nil
}
