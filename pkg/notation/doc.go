// Package notation parses Conway polyhedron notation.
//
// An expression is a run of lowercase operator letters followed by an
// uppercase seed, read right to left: "tk5A5" raises pyramids on the
// pentagons of the pentagonal antiprism, then truncates the result.
//
// Seeds:
//
//	T C O D I   platonic solids
//	Pn An Yn    n-gonal prism, antiprism and pyramid
//
// Kis and truncate accept a numeric restriction: k5 acts on pentagonal
// faces only, t3 on degree-3 vertices only. Other operators take none.
//
// Parsing uses a participle grammar over a small hand-written lexer.
package notation
