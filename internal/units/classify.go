package units

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Classifier assigns text spans to parameter contexts, filtering on the
// unit actually quoted when one is available.
type Classifier struct {
	catalog *Catalog
}

// NewClassifier wraps a catalog.
func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

// Classify returns the name of every context whose triggers match text,
// in catalog order. A span may land in zero, one, or several contexts.
// When unit is non-empty the context must also accept it per UnitValid;
// an empty unit means "no unit quoted" and skips the check entirely.
func (cl *Classifier) Classify(text, unit string) []string {
	var names []string
	for i, pc := range cl.catalog.contexts {
		if !matchAny(cl.catalog.triggers[i], text) {
			continue
		}
		if unit != "" && !UnitValid(unit, pc.ValidUnits) {
			continue
		}
		names = append(names, pc.Name)
	}
	return names
}

// UnitValid reports whether a quoted unit is acceptable under an
// allow-list. Both sides are folded before comparison: compatibility
// normalization maps superscripts to plain digits so "m²" and "m2"
// compare equal, then trim and lower-case. A single trailing "s" is
// tolerated on either side, and any two decibel spellings (dB, dBA,
// dB(A)) are treated as one family. An empty allow-list entry accepts
// only an empty unit. A nil allow-list accepts anything.
func UnitValid(unit string, allow []string) bool {
	if len(allow) == 0 {
		return true
	}
	u := foldUnitSymbols(unit)
	for _, entry := range allow {
		a := foldUnitSymbols(entry)
		if a == "" {
			if u == "" {
				return true
			}
			continue
		}
		if u == a {
			return true
		}
		if strings.TrimSuffix(u, "s") == a || u == strings.TrimSuffix(a, "s") {
			return true
		}
		if strings.Contains(u, "db") && strings.Contains(a, "db") {
			return true
		}
	}
	return false
}

// foldUnitSymbols applies NFKC so superscript glyphs collapse to their
// digit forms before the usual trim and lower-case fold.
func foldUnitSymbols(s string) string {
	s = norm.NFKC.String(s)
	return strings.ToLower(strings.TrimSpace(s))
}
