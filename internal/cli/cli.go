// Package cli implements the polyblade command-line interface.
//
// The CLI is a developer tool around the polyhedron packages: it builds
// shapes from Conway notation, renders their skeletons, checks operators
// against the polydex reference table and plays operator animations in the
// terminal. It is built using cobra and logs with charmbracelet/log.
//
// # Commands
//
//   - build: construct a polyhedron and print its vertex, edge and face counts
//   - render: write the skeleton as DOT, SVG, PDF or PNG
//   - check: verify shortest paths, Euler's formula and reference counts
//   - list: print the polydex table
//   - play: animate operators interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs operator and queue hooks.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyblade/pkg/buildinfo"
	"github.com/matzehuels/polyblade/pkg/notation"
	"github.com/matzehuels/polyblade/pkg/polyhedron"
	"github.com/matzehuels/polyblade/pkg/shape"
)

// appName is the application name used for display.
const appName = "polyblade"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the polyhedron
// hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		installHooks(c.Logger)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Polyblade applies Conway operators to polyhedra",
		Long:         `Polyblade builds polyhedra from Conway notation, checks the operators against reference solids and animates them in the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML file with animation settings")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.playCommand())

	return root
}

// config loads --config over the defaults.
func (c *CLI) config() (polyhedron.Config, error) {
	if c.configPath == "" {
		return polyhedron.DefaultConfig(), nil
	}
	cfg, err := polyhedron.LoadConfig(c.configPath)
	if err != nil {
		return polyhedron.Config{}, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath, "epsilon", cfg.Epsilon, "settle", cfg.SettleDelay)
	return cfg, nil
}

// build parses and constructs a notation, logging how long it took.
func (c *CLI) build(expr string) (*notation.Expression, *shape.Shape, error) {
	e, err := notation.Parse(expr)
	if err != nil {
		return nil, nil, err
	}
	prog := newProgress(c.Logger)
	s, err := e.Build()
	if err != nil {
		return nil, nil, err
	}
	s.Logger = c.Logger
	prog.done("Built " + e.String())
	return e, s, nil
}
