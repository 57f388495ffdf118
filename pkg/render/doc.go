// Package render turns polyhedron skeletons into images.
//
// The [nodelink] subpackage draws the skeleton as an undirected Graphviz
// diagram. [ToPDF] and [ToPNG] convert any SVG to other formats using the
// external rsvg-convert tool (from librsvg).
//
//	dot := nodelink.ToDOT(s, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [nodelink]: github.com/matzehuels/polyblade/pkg/render/nodelink
package render
