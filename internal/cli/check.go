package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyblade/pkg/errors"
	"github.com/matzehuels/polyblade/pkg/notation"
	"github.com/matzehuels/polyblade/pkg/polydex"
)

// checkResult is the outcome of checking one notation.
type checkResult struct {
	notation string
	problems []string
}

func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [notation...]",
		Short: "Verify operators against shortest paths, Euler's formula and polydex",
		Long: `Check builds each notation and verifies that:

  - shortest paths match an independent Floyd-Warshall computation
  - faces satisfy Euler's formula
  - vertex, edge and face counts match the polydex entry, if there is one

Without arguments every polydex entry is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				entries, err := polydex.All()
				if err != nil {
					return err
				}
				for _, e := range entries {
					args = append(args, e.Conway)
				}
			}
			return c.runCheck(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

func (c *CLI) runCheck(ctx context.Context, w io.Writer, exprs []string) error {
	spinner := newSpinnerWithContext(ctx, "Checking...")
	spinner.Start()

	var results []checkResult
	for i, expr := range exprs {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.SetMessage(fmt.Sprintf("Checking %s (%d/%d)", expr, i+1, len(exprs)))
		results = append(results, checkOne(expr))
	}
	spinner.Stop()

	failed := 0
	for _, r := range results {
		if len(r.problems) == 0 {
			printSuccess(w, "%s", r.notation)
			continue
		}
		failed++
		printError(w, "%s", r.notation)
		for _, p := range r.problems {
			fmt.Fprintln(w, "  "+StyleWarning.Render(p))
		}
	}
	c.Logger.Info("check finished", "checked", len(results), "failed", failed)
	if failed > 0 {
		return errors.New(errors.ErrCodeInvariantViolation, "%d of %d checks failed", failed, len(results))
	}
	return nil
}

func checkOne(expr string) checkResult {
	r := checkResult{notation: expr}
	fail := func(format string, args ...any) {
		r.problems = append(r.problems, fmt.Sprintf(format, args...))
	}

	s, err := notation.Build(expr)
	if err != nil {
		fail("build: %s", errors.UserMessage(err))
		return r
	}

	pst := s.Matrix()
	floyd := pst.Clone()
	floyd.FloydWarshall()
	if !pst.Equal(floyd) {
		fail("shortest paths differ from Floyd-Warshall")
	}

	faces, err := s.Cycles()
	if err != nil {
		fail("faces: %s", errors.UserMessage(err))
		return r
	}
	if faces.Len() != s.FaceCount() {
		fail("found %d faces, Euler's formula wants %d", faces.Len(), s.FaceCount())
	}

	if ref, ok := polydex.Lookup(expr); ok {
		if s.Len() != ref.Vertices || s.EdgeCount() != ref.Edges || faces.Len() != ref.Faces {
			fail("%s: got %d/%d/%d, want %d/%d/%d", ref.Name,
				s.Len(), s.EdgeCount(), faces.Len(), ref.Vertices, ref.Edges, ref.Faces)
		}
	}
	return r
}
