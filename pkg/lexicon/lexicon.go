// Package lexicon holds the in-memory, read-only lexicon used for
// candidate generation and POS tagging (spec §6's lexicon format). Parsing
// the on-disk asset is internal/assets' job; this package only holds the
// parsed, queryable result.
package lexicon

import (
	"sort"

	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/charmatch"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/model"
)

// Entry is one lexicon record: a surface form with its candidate POS tags
// and optional lemma.
type Entry struct {
	Surface string
	Tags    []model.POS
	Lemma   string
}

// Lexicon is an immutable surface-form -> Entry table.
type Lexicon struct {
	bySurface map[string]Entry
	surfaces  []string // sorted, for deterministic iteration
}

// New builds a Lexicon from a set of entries, keyed by surface form. Later
// entries with a duplicate surface form overwrite earlier ones.
func New(entries []Entry) *Lexicon {
	lx := &Lexicon{bySurface: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		lx.bySurface[e.Surface] = e
	}
	lx.surfaces = make([]string, 0, len(lx.bySurface))
	for s := range lx.bySurface {
		lx.surfaces = append(lx.surfaces, s)
	}
	sort.Strings(lx.surfaces)
	return lx
}

// Lookup returns the entry for a surface form, if any.
func (lx *Lexicon) Lookup(surface string) (Entry, bool) {
	e, ok := lx.bySurface[surface]
	return e, ok
}

// Within returns every lexicon surface form within edit-distance cap of
// target (spec §4.7 step 1a), sorted lexicographically for determinism.
func (lx *Lexicon) Within(target string, cap int) []Entry {
	var out []Entry
	for _, s := range lx.surfaces {
		if charmatch.EditDistance(target, s) <= cap {
			out = append(out, lx.bySurface[s])
		}
	}
	return out
}

// Len reports how many surface forms the lexicon holds.
func (lx *Lexicon) Len() int { return len(lx.surfaces) }
