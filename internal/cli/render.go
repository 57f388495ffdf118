package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyblade/pkg/errors"
	"github.com/matzehuels/polyblade/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // output file path; the format is taken from its extension when --format is empty
	format string  // dot, svg, pdf or png
	labels bool    // print vertex handles in nodes
	scale  float64 // PNG scale factor
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: 2}

	cmd := &cobra.Command{
		Use:   "render <notation>",
		Short: "Render a polyhedron's skeleton with Graphviz",
		Example: `  polyblade render tC -o truncated-cube.svg
  polyblade render aD --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <notation>.<format>, or stdout for dot)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), dot, pdf, png")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label vertices with their handles")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

// resolveFormat picks the output format from the flag, then the output
// extension, then SVG.
func resolveFormat(flag, output string) (string, error) {
	f := strings.ToLower(flag)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch f {
	case "":
		return formatSVG, nil
	case formatDOT, formatSVG, formatPDF, formatPNG:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want dot, svg, pdf or png)", f)
}

func (c *CLI) runRender(ctx context.Context, expr string, opts renderOpts) error {
	e, s, err := c.build(expr)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(s, nodelink.Options{Labels: opts.labels, Title: e.String()})
	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
		if opts.output == "" {
			_, err := fmt.Fprint(os.Stdout, dot)
			return err
		}
	case formatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case formatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	case formatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, opts.scale)
	}
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = e.String() + "." + opts.format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess(os.Stdout, "Rendered %s", e.String())
	printFile(os.Stdout, path)
	return nil
}
