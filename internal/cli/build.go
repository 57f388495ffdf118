package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyblade/pkg/polydex"
)

func (c *CLI) buildCommand() *cobra.Command {
	var showSides bool

	cmd := &cobra.Command{
		Use:   "build <notation>",
		Short: "Build a polyhedron from Conway notation and print its counts",
		Example: `  polyblade build tC
  polyblade build k5A5 --sides`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, s, err := c.build(args[0])
			if err != nil {
				return err
			}
			faces, err := s.Cycles()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			title := e.String()
			if ref, ok := polydex.Lookup(title); ok {
				title += "  " + ref.Name
			}
			fmt.Fprintln(w, StyleTitle.Render(title))
			fmt.Fprintln(w, "  "+formatStats(s.Len(), s.EdgeCount(), faces.Len()))
			printKeyValue(w, "diameter", strconv.Itoa(s.Diameter()))
			printKeyValue(w, "springs", strconv.Itoa(len(s.Springs())))
			if showSides {
				fmt.Fprintln(w, sidesTable(faces.Sides()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSides, "sides", false, "print a table of face sizes")
	return cmd
}
