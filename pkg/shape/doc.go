// Package shape aggregates a polyhedron skeleton with everything derived
// from it.
//
// # Overview
//
// A [Shape] owns one [distance.Distance] and exposes the structural edits
// Conway operators are built from: [Shape.SplitVertex], [Shape.Contract],
// [Shape.Release], [Shape.Insert] and [Shape.Rebuild]. Faces, shortest paths
// and springs are never patched: any mutation drops them and the next read
// recomputes them.
//
// # Handles
//
// Dense vertex indices shift whenever a vertex is deleted. Anything that
// must survive structural edits, such as a position store or an edge list
// waiting for an animation to settle, should hold [Handle] values instead.
// A handle is a slot index plus a generation; deleting a vertex frees its
// slot and bumps the generation on reuse, so stale handles fail to resolve
// rather than silently naming another vertex.
//
//	s := shape.New(distance.Tetrahedron())
//	h := s.Handle(3)
//	ring, _ := s.SplitVertex(0)
//	_ = s.Contract(ring)
//	v, _ := s.Index(h) // still the same vertex
//
// [distance.Distance]: github.com/matzehuels/polyblade/pkg/distance
package shape
