// Package distance provides the symmetric distance matrix that is the single
// source of truth for a polyhedron skeleton's topology.
//
// # Overview
//
// A [Distance] stores one cell per unordered vertex pair in a flat
// lower-triangular array. Cell values carry all of the graph's state:
//
//   - 0: identity (the diagonal)
//   - 1: adjacency, an edge exists
//   - [Unknown]: not yet known, or unreachable
//   - anything else: the unweighted shortest-path length
//
// Vertices are dense positional integers 0..n. [Distance.Delete] shifts every
// higher vertex down by one, so a vertex id held across a delete may refer to
// a different vertex afterwards. Callers that need identity across structural
// edits should use the handle layer in the shape package.
//
// # Basic Usage
//
//	d := distance.New(4)
//	_ = d.Connect(0, 1)
//	_ = d.Connect(0, 2)
//	_ = d.Connect(1, 2)
//	d.Connections(0) // [1 2]
//
// # Shortest Paths
//
// [Distance.PST] fills every cell with its shortest-path length using a
// level-synchronous frontier expansion from all sources at once. Its result
// is identical to [Distance.FloydWarshall], which is kept as an independent
// reference implementation for verification.
//
// # Structural Edits
//
// [Distance.ContractEdge], [Distance.ContractEdges] and [Distance.SplitVertex]
// are the primitive rewrites that every Conway operator is built from. They
// touch only adjacency; shortest paths must be recomputed afterwards.
//
// # Concurrency
//
// Distance values are not safe for concurrent use.
package distance
