package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/polyblade/pkg/polyhedron"
)

func newPlay(t *testing.T, expr string) PlayModel {
	t.Helper()
	c := New(&bytes.Buffer{}, log.InfoLevel)
	p, err := c.newPolyhedron(expr)
	if err != nil {
		t.Fatalf("newPolyhedron(%q) error: %v", expr, err)
	}
	return NewPlayModel(p)
}

func TestNewPolyhedronQueuesSteps(t *testing.T) {
	m := newPlay(t, "taC")
	if m.Poly.Name() != "C" {
		t.Errorf("Name() = %q, want C", m.Poly.Name())
	}
	pending := m.Poly.Pending()
	if len(pending) != 2 || pending[0].Kind != polyhedron.KindConway {
		t.Fatalf("Pending() = %v, want two conway transactions", pending)
	}

	r := newPlay(t, "k5A5")
	if r.Poly.Name() != "k5A5" || !r.Poly.Idle() || r.Poly.Shape().Len() != 12 {
		t.Errorf("restricted notation: name %q, idle %v, %d vertices", r.Poly.Name(), r.Poly.Idle(), r.Poly.Shape().Len())
	}
}

func TestViewShowsSession(t *testing.T) {
	a, b := newPlay(t, "C"), newPlay(t, "C")
	if a.Poly.ID == b.Poly.ID {
		t.Fatalf("two polyhedra share ID %s", a.Poly.ID)
	}
	short := a.Poly.ID.String()[:8]
	if got := a.View(); !strings.Contains(got, "session "+short) {
		t.Errorf("View() missing session %s:\n%s", short, got)
	}
}

func TestPlayModelKeys(t *testing.T) {
	m := newPlay(t, "C")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = next.(PlayModel)
	if got := len(m.Poly.Pending()); got != 1 {
		t.Fatalf("pending after 't' = %d, want 1", got)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if got := len(next.(PlayModel).Poly.Pending()); got != 1 {
		t.Errorf("pending after 'z' = %d, want 1", got)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("'q' did not return a quit command")
	}
}

func TestPlayModelTicks(t *testing.T) {
	m := newPlay(t, "aT")
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 600 && !m.Poly.Idle(); i++ {
		now = now.Add(m.Frame)
		next, cmd := m.Update(tickMsg(now))
		if cmd == nil {
			t.Fatal("tick did not schedule the next frame")
		}
		m = next.(PlayModel)
	}
	if m.Err != nil {
		t.Fatalf("Err = %v", m.Err)
	}
	if m.Poly.Name() != "aT" || m.Poly.Shape().Len() != 6 {
		t.Errorf("after playing: %q with %d vertices, want aT with 6", m.Poly.Name(), m.Poly.Shape().Len())
	}
	view := m.View()
	for _, want := range []string{"aT", "6 vertices", "queue empty", "ambo"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
