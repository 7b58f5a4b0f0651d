package model

// CheckStatus is the outcome of a threshold comparison.
type CheckStatus string

const (
	StatusCompliant   CheckStatus = "COMPLIANT"
	StatusApproaching CheckStatus = "APPROACHING"
	StatusExceedance  CheckStatus = "EXCEEDANCE"
)

// GapStatus is the outcome of a checklist probe.
type GapStatus string

const (
	GapPresent GapStatus = "PRESENT"
	GapMissing GapStatus = "MISSING"
)

// ThresholdProbe declares the ordered regex patterns that pull one numeric
// value for a (category, parameter) pair out of free text. The first
// pattern that captures a parseable number wins.
type ThresholdProbe struct {
	Category  string   `json:"category" yaml:"category" validate:"required"`
	Parameter string   `json:"parameter" yaml:"parameter" validate:"required"`
	Patterns  []string `json:"patterns" yaml:"patterns" validate:"required,min=1,dive,required"`
}

// ThresholdSpec is the regulatory limit a probed value is judged against.
// Either a min/max range or a single ceiling Value must be set; the
// registry rejects specs with no bound at all.
type ThresholdSpec struct {
	Category  string   `json:"category" yaml:"category" validate:"required"`
	Parameter string   `json:"parameter" yaml:"parameter" validate:"required"`
	Unit      string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Value     *float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

// HasBound reports whether the spec carries at least one usable limit.
func (s ThresholdSpec) HasBound() bool {
	return s.Min != nil || s.Max != nil || s.Value != nil
}

// ThresholdCheckResult records one probed value and its compliance status
// against the matching spec.
type ThresholdCheckResult struct {
	Parameter string      `json:"parameter"`
	Category  string      `json:"category"`
	Value     float64     `json:"value"`
	Threshold float64     `json:"threshold"`
	Unit      string      `json:"unit,omitempty"`
	Status    CheckStatus `json:"status"`
	Location  string      `json:"location,omitempty"`
}

// ChecklistItem is one required disclosure for a section category with the
// single regex that detects its presence.
type ChecklistItem struct {
	SectionCategory string `json:"section_category" yaml:"section_category" validate:"required"`
	Item            string `json:"item" yaml:"item" validate:"required"`
	Pattern         string `json:"pattern" yaml:"pattern" validate:"required"`
}

// GapCheckResult records whether a checklist item was evidenced anywhere
// in the routed fragments.
type GapCheckResult struct {
	SectionCategory string    `json:"section_category"`
	Item            string    `json:"item"`
	Status          GapStatus `json:"status"`
	Severity        Severity  `json:"severity"`
	MatchedExcerpts []string  `json:"matched_excerpts,omitempty"`
}
