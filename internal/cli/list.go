package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyblade/pkg/polydex"
)

func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the named polyhedra known to polydex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := polydex.All()
			if err != nil {
				return err
			}
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.Conway, e.Name, e.Bowers,
					strconv.Itoa(e.Vertices), strconv.Itoa(e.Edges), strconv.Itoa(e.Faces)}
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Conway", "Name", "Bowers", "V", "E", "F").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == -1:
						return styleHeader
					case col == 0:
						return lipgloss.NewStyle().Foreground(colorCyan)
					case col >= 3:
						return lipgloss.NewStyle().Foreground(colorGray)
					}
					return lipgloss.NewStyle().Foreground(colorWhite)
				})
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
