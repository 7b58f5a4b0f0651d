package units

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/arden-env/esia-reconcile/internal/model"
)

// Registry resolves raw unit spellings to a base unit and conversion
// factor. Resolution is total: a unit absent from the table passes
// through unchanged with factor 1. Built once, safe for concurrent
// readers.
type Registry struct {
	conversions []model.UnitConversion
	folded      []string
	exact       map[string]model.UnitConversion
}

// NewRegistry validates and indexes a conversion table. Table order is
// preserved: the substring fallback returns the first alias contained in
// the input, not the longest, so specific aliases must be declared before
// generic ones they contain.
func NewRegistry(conversions []model.UnitConversion) (*Registry, error) {
	exact := make(map[string]model.UnitConversion, len(conversions))
	folded := make([]string, len(conversions))
	for i, c := range conversions {
		if err := model.ValidateStruct(c); err != nil {
			return nil, eris.Wrapf(err, "units: invalid conversion %d (%q)", i, c.Alias)
		}
		key := foldUnit(c.Alias)
		if _, ok := exact[key]; ok {
			return nil, eris.Errorf("units: duplicate alias %q at index %d", c.Alias, i)
		}
		exact[key] = c
		folded[i] = key
	}

	return &Registry{conversions: conversions, folded: folded, exact: exact}, nil
}

// Normalize maps a raw unit spelling to its base unit and conversion
// factor. Lookup order: exact case-insensitive alias, then the first
// table alias whose text appears inside the input, then identity.
func (r *Registry) Normalize(unit string) (string, float64) {
	key := foldUnit(unit)
	if c, ok := r.exact[key]; ok {
		return c.BaseUnit, c.Factor
	}
	for i, alias := range r.folded {
		if strings.Contains(key, alias) {
			return r.conversions[i].BaseUnit, r.conversions[i].Factor
		}
	}
	return unit, 1.0
}

// Convert rescales a value into its base unit.
func (r *Registry) Convert(value float64, unit string) (float64, string) {
	base, factor := r.Normalize(unit)
	return value * factor, base
}

// Len reports the number of conversions in the table.
func (r *Registry) Len() int {
	return len(r.conversions)
}

func foldUnit(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
