// Package cycles discovers the faces of a polyhedron skeleton.
//
// # Overview
//
// A polyhedron's faces are not stored anywhere: they are derived from the
// adjacency in a [distance.Distance] every time the topology changes. For a
// polyhedral graph (planar and 3-connected) the faces are exactly the cycles
// that have no chord and whose removal leaves the rest of the graph
// connected. [Discover] enumerates such cycles until it has as many as
// Euler's formula demands.
//
// # Triplet Extension
//
// Discovery starts from every path x-u-y with u < x < y. Triangles are
// accepted at once; every other path is queued and grown one vertex at a
// time, only ever appending vertices larger than the path's second vertex
// and never appending a vertex adjacent to the path's interior. A path
// closes when its newest vertex is adjacent to its first.
//
// # Face Identity
//
// A [Face] is a cyclic vertex sequence. Two faces are the same when one is a
// rotation or reflection of the other; [Face.Key] returns a canonical string
// for that equivalence.
//
// [distance.Distance]: github.com/matzehuels/polyblade/pkg/distance
package cycles
