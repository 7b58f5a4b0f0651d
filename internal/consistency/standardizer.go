package consistency

import (
	"strings"

	"github.com/arden-env/esia-reconcile/internal/extract"
	"github.com/arden-env/esia-reconcile/internal/model"
	"github.com/arden-env/esia-reconcile/internal/units"
)

// maxExamples caps the first-occurrence examples carried on one issue.
const maxExamples = 3

// Standardizer flags parameter contexts quoted in more than one raw unit
// spelling. Values may well agree after normalization; a document that
// quotes the same area in hectares here and square metres there is still
// an editorial defect worth surfacing.
type Standardizer struct {
	extractor  *extract.Extractor
	classifier *units.Classifier
}

// NewStandardizer wires a standardizer to its extraction collaborators.
func NewStandardizer(extractor *extract.Extractor, classifier *units.Classifier) *Standardizer {
	return &Standardizer{extractor: extractor, classifier: classifier}
}

// Check reports every (context, base unit) bucket quoted in two or more
// distinct raw unit spellings, case-folded, with one example per distinct
// spelling up to maxExamples.
func (s *Standardizer) Check(fragments []model.Fragment) []model.UnitMixIssue {
	buckets, order := collect(s.extractor, s.classifier, fragments)

	var issues []model.UnitMixIssue
	for _, key := range order {
		var distinct []string
		var examples []string
		seen := make(map[string]bool)

		for _, o := range buckets[key] {
			folded := strings.ToLower(strings.TrimSpace(o.quantity.RawUnit))
			if seen[folded] {
				continue
			}
			seen[folded] = true
			distinct = append(distinct, folded)
			if len(examples) < maxExamples {
				examples = append(examples, displayValue(o.quantity))
			}
		}

		if len(distinct) < 2 {
			continue
		}
		issues = append(issues, model.UnitMixIssue{
			Context:  key.Context,
			BaseUnit: key.BaseUnit,
			Units:    distinct,
			Examples: examples,
		})
	}

	return issues
}
