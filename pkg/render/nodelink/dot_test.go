package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/polyblade/pkg/shape"
	"github.com/matzehuels/polyblade/pkg/shape/conway"
)

func TestToDOT(t *testing.T) {
	s := conway.Tetrahedron()
	dot := ToDOT(s, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("ToDOT() does not open an undirected graph:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() emitted a directed edge")
	}
	if got := strings.Count(dot, " -- "); got != 6 {
		t.Errorf("ToDOT() has %d edges, want 6", got)
	}
	for _, want := range []string{"layout=neato", "0 -- 1;", "2 -- 3;", "shape=point"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}
}

func TestToDOTOptions(t *testing.T) {
	s := conway.Cube()
	e := shape.NewEdge(s.Handle(0), s.Handle(1))
	dot := ToDOT(s, Options{Labels: true, Highlight: []shape.Edge{e}, Title: "C"})

	if got := strings.Count(dot, "color=red"); got != 1 {
		t.Errorf("ToDOT() highlights %d edges, want 1", got)
	}
	if !strings.Contains(dot, "0 -- 1 [color=red") {
		t.Error("ToDOT() did not highlight 0 -- 1")
	}
	if !strings.Contains(dot, `label="`+s.Handle(7).String()+`"`) {
		t.Errorf("ToDOT() missing label for %s", s.Handle(7))
	}
	if !strings.Contains(dot, `label="C";`) {
		t.Error("ToDOT() missing title")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("normalizeViewBox() without viewBox = %s", got)
	}
}
