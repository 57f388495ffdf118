// Package pkg provides the libraries behind polyblade.
//
// # Overview
//
// Polyblade models a polyhedron by its skeleton, the graph of its vertices
// and edges, and transforms it with Conway operators. Nothing here computes
// real geometry; every operator is a rewrite of the graph.
//
// # Architecture
//
//	[distance]        distance matrix, shortest paths, vertex edits
//	    ↓
//	[cycles]          faces as the non-separating chordless cycles
//	    ↓
//	[shape]           matrix plus lazily derived faces, stable handles
//	    ↓
//	[shape/conway]    operators and platonic solids
//	    ↓
//	[polyhedron]      transaction queue animating operators over a [layout]
//
// [notation] parses Conway notation into shapes, [polydex] names the
// results and [render/nodelink] draws skeletons with Graphviz.
//
// # Quick Start
//
//	s, err := notation.Build("tC")
//	faces, err := s.Cycles()
//	fmt.Println(s.Len(), s.EdgeCount(), faces.Len()) // 24 36 14
//
// [distance]: github.com/matzehuels/polyblade/pkg/distance
// [cycles]: github.com/matzehuels/polyblade/pkg/cycles
// [shape]: github.com/matzehuels/polyblade/pkg/shape
// [shape/conway]: github.com/matzehuels/polyblade/pkg/shape/conway
// [polyhedron]: github.com/matzehuels/polyblade/pkg/polyhedron
// [layout]: github.com/matzehuels/polyblade/pkg/layout
// [notation]: github.com/matzehuels/polyblade/pkg/notation
// [polydex]: github.com/matzehuels/polyblade/pkg/polydex
// [render/nodelink]: github.com/matzehuels/polyblade/pkg/render/nodelink
package pkg
