package layout

import "math"

// Vec is a point in layout space.
type Vec [3]float64

func (v Vec) Add(o Vec) Vec { return Vec{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

func (v Vec) Sub(o Vec) Vec { return Vec{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

func (v Vec) Scale(f float64) Vec { return Vec{v[0] * f, v[1] * f, v[2] * f} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]) }

// Lerp moves v toward o by fraction f.
func (v Vec) Lerp(o Vec, f float64) Vec { return v.Add(o.Sub(v).Scale(f)) }

// sphere returns the i-th point of a Fibonacci lattice on the unit sphere.
// Points are well spread for any i and never coincide.
func sphere(i int) Vec {
	const golden = 2.399963229728653 // pi * (3 - sqrt 5)
	y := 1 - 2*math.Mod(float64(i)*0.618033988749895+0.5, 1)
	r := math.Sqrt(1 - y*y)
	theta := golden * float64(i)
	return Vec{r * math.Cos(theta), y, r * math.Sin(theta)}
}
