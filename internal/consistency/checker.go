package consistency

import (
	"github.com/arden-env/esia-reconcile/internal/extract"
	"github.com/arden-env/esia-reconcile/internal/model"
	"github.com/arden-env/esia-reconcile/internal/units"
)

const (
	// DefaultDiffPct is the relative spread a bucket must exceed before an
	// issue is raised; DefaultHighPct upgrades it to high severity.
	DefaultDiffPct = 5.0
	DefaultHighPct = 20.0

	// maxDisplayed caps the values, normalized values, and locations
	// carried on one issue.
	maxDisplayed = 5
)

// Checker flags parameter contexts whose quantities disagree across
// fragments after unit normalization.
type Checker struct {
	extractor  *extract.Extractor
	classifier *units.Classifier
	diffPct    float64
	highPct    float64
}

// NewChecker wires a checker to its extraction collaborators. Non-positive
// thresholds fall back to the defaults.
func NewChecker(extractor *extract.Extractor, classifier *units.Classifier, diffPct, highPct float64) *Checker {
	if diffPct <= 0 {
		diffPct = DefaultDiffPct
	}
	if highPct <= 0 {
		highPct = DefaultHighPct
	}
	return &Checker{extractor: extractor, classifier: classifier, diffPct: diffPct, highPct: highPct}
}

// Check extracts quantities from every fragment, classifies them, and
// reports buckets whose normalized values spread more than diffPct.
// Buckets whose minimum is zero or negative are skipped outright: a
// relative difference is undefined there, and upstream does not
// distinguish a true zero from an unset value.
func (c *Checker) Check(fragments []model.Fragment) []model.ConsistencyIssue {
	buckets, order := collect(c.extractor, c.classifier, fragments)

	var issues []model.ConsistencyIssue
	for _, key := range order {
		obs := buckets[key]
		if len(obs) < 2 {
			continue
		}

		low, high := spread(obs)
		if low <= 0 {
			continue
		}
		diff := (high - low) / low * 100
		if diff <= c.diffPct {
			continue
		}

		severity := model.SeverityMedium
		if diff > c.highPct {
			severity = model.SeverityHigh
		}

		issue := model.ConsistencyIssue{
			Severity:    severity,
			Context:     key.Context,
			BaseUnit:    key.BaseUnit,
			DiffPercent: diff,
		}
		for i, o := range obs {
			if i == maxDisplayed {
				break
			}
			issue.Values = append(issue.Values, displayValue(o.quantity))
			issue.NormalizedValues = append(issue.NormalizedValues, o.quantity.NormalizedValue)
			issue.Locations = append(issue.Locations, o.location)
		}
		issues = append(issues, issue)
	}

	return issues
}

func spread(obs []observation) (low, high float64) {
	low, high = obs[0].quantity.NormalizedValue, obs[0].quantity.NormalizedValue
	for _, o := range obs[1:] {
		v := o.quantity.NormalizedValue
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	return low, high
}
