// Package layout stores positions for polyhedron vertices, keyed by stable
// [shape.Handle] values so that structural edits never shuffle them.
//
// New vertices are spawned near the vertices they were derived from, dead
// vertices are forgotten, and [Store.Advance] closes the gap between
// endpoints of edges that are about to be contracted. There is no force
// simulation.
//
// [shape.Handle]: github.com/matzehuels/polyblade/pkg/shape
package layout
