package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/polyblade/pkg/render"
	"github.com/matzehuels/polyblade/pkg/shape"
)

// Options configures skeleton rendering.
type Options struct {
	// Labels prints each vertex's handle inside its node. When false nodes
	// are unlabeled points.
	Labels bool
	// Highlight draws these edges in red, typically the edges of a pending
	// contraction. Edges not present in the shape are ignored.
	Highlight []shape.Edge
	// Title is drawn under the diagram when set.
	Title string
}

// ToDOT converts a shape's skeleton to Graphviz DOT. The graph is undirected
// and laid out with neato, which places a polyhedron's skeleton close to a
// projection of the solid.
func ToDOT(s *shape.Shape, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=scale;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Labels {
		buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, width=0.3, fixedsize=true];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.12];\n")
	}
	buf.WriteString("  edge [penwidth=1.5];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
	}
	buf.WriteString("\n")

	for v, h := range s.Handles() {
		fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(fmtAttrs(v, h, s, opts), ", "))
	}

	hot := make(map[shape.Edge]bool, len(opts.Highlight))
	for _, e := range opts.Highlight {
		hot[e] = true
	}
	buf.WriteString("\n")
	for _, e := range s.DenseEdges() {
		fmt.Fprintf(&buf, "  %d -- %d", e[0], e[1])
		if hot[shape.NewEdge(s.Handle(e[0]), s.Handle(e[1]))] {
			buf.WriteString(" [color=red, penwidth=3]")
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(v int, h shape.Handle, s *shape.Shape, opts Options) []string {
	attrs := []string{fmt.Sprintf("tooltip=\"degree %d\"", s.Degree(v))}
	if opts.Labels {
		attrs = append(attrs, fmt.Sprintf("label=%q", h.String()))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
