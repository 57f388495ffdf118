// Package conway implements Conway polyhedron operators as rewrites of a
// [shape.Shape].
//
// Every operator is composed from a few primitives on the shape: splitting a
// vertex into a ring, contracting edges, inserting apex vertices, releasing
// edges, or rebuilding the skeleton from scratch.
//
//   - [Truncate] (t) splits vertices into rings
//   - [Ambo] (a) truncates, then contracts the surviving original edges
//   - [Expand] (e) is ambo twice
//   - [Bevel] (b) is truncate applied after ambo
//   - [Kis] (k) raises a pyramid on faces
//   - [Join] (j) is kis with the original edges released
//   - [Dual] (d) swaps faces and vertices
//   - [Snub] (s) splits every vertex-face incidence and triangulates the edges
//   - [Chamfer] (c) replaces every edge with a hexagon
//
// Operators that contract ([Ambo], [Expand], [Bevel]) have a two-phase form
// for animation: [AmboEdges] performs only the truncation and returns the
// edges still to contract, leaving the caller to contract them later.
//
// # Platonic Solids
//
// [Tetrahedron] and [Cube] are presets. [Octahedron], [Icosahedron] and
// [Dodecahedron] are derived by operators, which makes them useful end to
// end checks: aT = O, k5A5 = I, dI = D.
//
// [shape.Shape]: github.com/matzehuels/polyblade/pkg/shape
package conway
