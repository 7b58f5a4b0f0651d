package units

import (
	"regexp"

	"github.com/rotisserie/eris"

	"github.com/arden-env/esia-reconcile/internal/model"
)

// Catalog holds the parameter contexts with their trigger patterns
// compiled. Triggers match unanchored and case-insensitively. Built once,
// safe for concurrent readers.
type Catalog struct {
	contexts []model.ParameterContext
	triggers [][]*regexp.Regexp
}

// NewCatalog validates a context table and compiles every trigger
// pattern. A pattern that fails to compile is a configuration error.
func NewCatalog(contexts []model.ParameterContext) (*Catalog, error) {
	triggers := make([][]*regexp.Regexp, len(contexts))
	seen := make(map[string]bool, len(contexts))
	for i, pc := range contexts {
		if err := model.ValidateStruct(pc); err != nil {
			return nil, eris.Wrapf(err, "units: invalid context %d (%q)", i, pc.Name)
		}
		if seen[pc.Name] {
			return nil, eris.Errorf("units: duplicate context %q at index %d", pc.Name, i)
		}
		seen[pc.Name] = true

		compiled := make([]*regexp.Regexp, len(pc.Patterns))
		for j, pattern := range pc.Patterns {
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, eris.Wrapf(err, "units: context %q trigger %d", pc.Name, j)
			}
			compiled[j] = re
		}
		triggers[i] = compiled
	}

	return &Catalog{contexts: contexts, triggers: triggers}, nil
}

// Context returns the catalog entry for a name.
func (c *Catalog) Context(name string) (model.ParameterContext, bool) {
	for _, pc := range c.contexts {
		if pc.Name == name {
			return pc, true
		}
	}
	return model.ParameterContext{}, false
}

// Len reports the number of contexts in the table.
func (c *Catalog) Len() int {
	return len(c.contexts)
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
