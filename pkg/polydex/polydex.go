// Package polydex is a catalogue of named polyhedra keyed by their Conway
// notation.
//
// The catalogue is embedded TOML, decoded once on first access.
package polydex

import (
	_ "embed"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed polydex.toml
var catalogue []byte

// Entry describes one named polyhedron.
type Entry struct {
	Conway   string `toml:"conway"`
	Name     string `toml:"name"`
	Bowers   string `toml:"bowers"`
	Catalan  bool   `toml:"catalan"`
	Vertices int    `toml:"vertices"`
	Edges    int    `toml:"edges"`
	Faces    int    `toml:"faces"`
}

var (
	entries  []Entry
	byConway map[string]int
	loadOnce sync.Once
	loadErr  error
)

func load() {
	loadOnce.Do(func() {
		var doc struct {
			Entry []Entry `toml:"entry"`
		}
		if _, loadErr = toml.Decode(string(catalogue), &doc); loadErr != nil {
			return
		}
		entries = doc.Entry
		byConway = make(map[string]int, len(entries))
		for i, e := range entries {
			byConway[e.Conway] = i
		}
	})
}

// All returns every catalogued entry in file order.
func All() ([]Entry, error) {
	load()
	return slices.Clone(entries), loadErr
}

// Lookup returns the entry whose notation is exactly conway.
func Lookup(conway string) (Entry, bool) {
	load()
	i, ok := byConway[conway]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// ByName finds an entry by name or Bowers acronym, ignoring case.
func ByName(name string) (Entry, bool) {
	load()
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) || (e.Bowers != "" && strings.EqualFold(e.Bowers, name)) {
			return e, true
		}
	}
	return Entry{}, false
}
