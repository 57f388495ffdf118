package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/polyblade/pkg/errors"
	"github.com/matzehuels/polyblade/pkg/polydex"
	"github.com/matzehuels/polyblade/pkg/polyhedron"
	"github.com/matzehuels/polyblade/pkg/shape/conway"
)

const frameRate = 60

var (
	queueHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	queueRestStyle = lipgloss.NewStyle().Foreground(colorDim)
	keyStyle       = lipgloss.NewStyle().Foreground(colorCyan)
)

// tickMsg carries the frame time from tea.Tick.
type tickMsg time.Time

// PlayModel is the bubbletea model that animates a polyhedron. Every frame
// ticks the polyhedron; operator keys enqueue Conway transactions.
type PlayModel struct {
	Poly  *polyhedron.Polyhedron
	Frame time.Duration
	Err   error

	last   time.Time
	frames int
}

// NewPlayModel creates a play model ticking at the default frame rate.
func NewPlayModel(p *polyhedron.Polyhedron) PlayModel {
	return PlayModel{Poly: p, Frame: time.Second / frameRate}
}

func (m PlayModel) tick() tea.Cmd {
	return tea.Tick(m.Frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m PlayModel) Init() tea.Cmd {
	return m.tick()
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		if r := msg.Runes; len(r) == 1 {
			if op, ok := conway.FromSymbol(r[0]); ok {
				m.Poly.Enqueue(polyhedron.Conway(op))
			}
		}
	case tickMsg:
		now := time.Time(msg)
		dt := m.Frame
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		m.frames++
		if err := m.Poly.Tick(now, dt); err != nil {
			m.Err = err
			if errors.Fatal(err) {
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m PlayModel) View() string {
	var b strings.Builder
	s := m.Poly.Shape()

	title := m.Poly.Name()
	if ref, ok := polydex.Lookup(title); ok {
		title += "  " + ref.Name
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("  " + StyleDim.Render("session "+m.Poly.ID.String()[:8]))
	b.WriteString("\n")

	faces, err := s.Cycles()
	if err != nil {
		b.WriteString("  " + StyleWarning.Render(errors.UserMessage(err)) + "\n")
	} else {
		b.WriteString("  " + formatStats(s.Len(), s.EdgeCount(), faces.Len()) + "\n")
	}

	if edges := m.Poly.Contracting(); len(edges) > 0 {
		gap := 0.0
		for _, e := range edges {
			gap = max(gap, m.Poly.Layout().Separation(e[0], e[1]))
		}
		b.WriteString(StyleDim.Render(fmt.Sprintf("  contracting %d edges, widest gap %.3f", len(edges), gap)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.queueView())
	b.WriteString("\n")
	b.WriteString(m.keysView())

	if m.Err != nil {
		b.WriteString("\n" + styleIconError.Render(iconError) + " " + errors.UserMessage(m.Err) + "\n")
	}
	return b.String()
}

func (m PlayModel) queueView() string {
	pending := m.Poly.Pending()
	if len(pending) == 0 {
		return StyleDim.Render("  queue empty") + "\n"
	}
	var b strings.Builder
	for i, t := range pending {
		if i == 0 {
			b.WriteString(queueHeadStyle.Render("▸ " + t.String()))
		} else {
			b.WriteString(queueRestStyle.Render("  " + t.String()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m PlayModel) keysView() string {
	var keys []string
	for _, op := range conway.Operators() {
		keys = append(keys, keyStyle.Render(string(op.Symbol()))+" "+op.String())
	}
	return StyleDim.Render("  ") + strings.Join(keys, StyleDim.Render("  ")) + StyleDim.Render("  q quit") + "\n"
}
