package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyblade/pkg/layout"
	"github.com/matzehuels/polyblade/pkg/notation"
	"github.com/matzehuels/polyblade/pkg/polyhedron"
	"github.com/matzehuels/polyblade/pkg/shape"
)

func (c *CLI) playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play [notation]",
		Short: "Animate Conway operators in the terminal",
		Long: `Play starts from the seed of the given notation (a cube by default) and
animates each of its operators in turn. Press an operator's letter to queue
it; q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := "C"
			if len(args) == 1 {
				expr = args[0]
			}
			return c.runPlay(cmd.Context(), expr)
		},
	}
}

// newPolyhedron starts an animation from expr. Operators without a numeric
// restriction are queued so they play out; a restricted one forces the
// whole expression to be built up front.
func (c *CLI) newPolyhedron(expr string) (*polyhedron.Polyhedron, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	e, err := notation.Parse(expr)
	if err != nil {
		return nil, err
	}

	restricted := false
	for _, st := range e.Steps {
		restricted = restricted || st.Arg != 0
	}
	var (
		s    *shape.Shape
		name string
	)
	if restricted {
		s, err = e.Build()
		name = e.String()
	} else {
		s, err = e.Base()
		name = e.Seed.String()
	}
	if err != nil {
		return nil, err
	}
	s.Logger = c.Logger

	p, err := polyhedron.New(name, s, layout.New(cfg.ContractionRate), cfg)
	if err != nil {
		return nil, err
	}
	p.Logger = c.Logger
	if !restricted {
		for _, op := range e.Operators() {
			p.Enqueue(polyhedron.Conway(op))
		}
	}
	c.Logger.Debug("polyhedron ready", "id", p.ID, "name", name, "queued", len(p.Pending()))
	return p, nil
}

func (c *CLI) runPlay(ctx context.Context, expr string) error {
	p, err := c.newPolyhedron(expr)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(NewPlayModel(p), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(PlayModel); ok && m.Err != nil {
		return m.Err
	}
	return nil
}
