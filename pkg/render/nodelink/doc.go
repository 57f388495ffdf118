// Package nodelink renders a polyhedron's skeleton as a node-link diagram.
//
// # Usage
//
// Convert a shape to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(s, nodelink.Options{Labels: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The generated DOT is an undirected graph laid out with neato. Vertices are
// numbered by dense index; with [Options.Labels] set they also show their
// stable handle. [Options.Highlight] marks edges, which the CLI uses for the
// edges of a pending contraction.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
