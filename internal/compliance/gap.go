package compliance

import (
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/arden-env/esia-reconcile/internal/model"
)

const (
	// maxMatchesPerFragment keeps one verbose fragment from drowning out
	// evidence found elsewhere in the document.
	maxMatchesPerFragment = 2
	excerptMaxLen         = 150
	dedupePrefixLen       = 50
	maxExcerpts           = 3
)

// checklistProbe is one compiled required-disclosure detector.
type checklistProbe struct {
	category string
	item     string
	re       *regexp.Regexp
}

// Analyzer hunts for required disclosures across routed fragments and
// reports the ones that never appear. Build once, use from any goroutine.
type Analyzer struct {
	probes   []checklistProbe
	priority map[string]bool
}

// NewAnalyzer compiles the checklist. Patterns match case-insensitively.
// A missing item in a priority category is graded high instead of medium.
func NewAnalyzer(checklist []model.ChecklistItem, priorityCategories []string) (*Analyzer, error) {
	a := &Analyzer{priority: make(map[string]bool, len(priorityCategories))}
	for _, c := range priorityCategories {
		a.priority[strings.ToLower(strings.TrimSpace(c))] = true
	}
	for i, c := range checklist {
		if err := model.ValidateStruct(c); err != nil {
			return nil, eris.Wrapf(err, "compliance: invalid checklist item %d (%s/%s)", i, c.SectionCategory, c.Item)
		}
		re, err := regexp.Compile("(?i)" + c.Pattern)
		if err != nil {
			return nil, eris.Wrapf(err, "compliance: checklist item %s/%s pattern %q", c.SectionCategory, c.Item, c.Pattern)
		}
		a.probes = append(a.probes, checklistProbe{category: c.SectionCategory, item: c.Item, re: re})
	}
	return a, nil
}

// Check produces one result per checklist item, in checklist order. Each
// fragment contributes at most maxMatchesPerFragment excerpts per item;
// excerpts are trimmed to excerptMaxLen, deduplicated across fragments by
// their lowered dedupePrefixLen-character prefix, and capped at
// maxExcerpts. An item with no surviving excerpt is MISSING.
func (a *Analyzer) Check(fragments []model.Fragment) []model.GapCheckResult {
	results := make([]model.GapCheckResult, 0, len(a.probes))
	for _, p := range a.probes {
		excerpts := a.collect(p, fragments)

		res := model.GapCheckResult{
			SectionCategory: p.category,
			Item:            p.item,
			Status:          model.GapPresent,
			Severity:        model.SeverityMedium,
			MatchedExcerpts: excerpts,
		}
		if len(excerpts) == 0 {
			res.Status = model.GapMissing
			if a.priority[strings.ToLower(p.category)] {
				res.Severity = model.SeverityHigh
			}
		}
		results = append(results, res)
	}
	return results
}

func (a *Analyzer) collect(p checklistProbe, fragments []model.Fragment) []string {
	var excerpts []string
	seen := make(map[string]bool)
	for _, frag := range fragments {
		if len(excerpts) >= maxExcerpts {
			break
		}
		for _, m := range p.re.FindAllString(frag.Text, maxMatchesPerFragment) {
			excerpt := truncate(strings.TrimSpace(m), excerptMaxLen)
			key := strings.ToLower(truncate(excerpt, dedupePrefixLen))
			if seen[key] {
				continue
			}
			seen[key] = true
			excerpts = append(excerpts, excerpt)
			if len(excerpts) >= maxExcerpts {
				break
			}
		}
	}
	return excerpts
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
