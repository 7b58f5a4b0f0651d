package model

// MatchSource identifies which routing strategy produced a match.
type MatchSource string

const (
	SourceIDMatch MatchSource = "id_match"
	SourceKeyword MatchSource = "keyword_index"
	SourceSector  MatchSource = "sector_profile"
	SourceTheme   MatchSource = "theme_profile"
	SourceFuzzy   MatchSource = "fuzzy_fallback"
)

// Priority weights a routing entry. Higher priorities boost match
// confidence so critical review domains win ties.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
)

var priorityRank = map[Priority]int{
	PriorityCritical: 3,
	PriorityHigh:     2,
	PriorityMedium:   1,
}

// Rank returns a sortable weight, higher is more urgent.
func (p Priority) Rank() int {
	return priorityRank[p]
}

// RoutingEntry maps a section of the assessment structure to the review
// domains responsible for it. SectionID is optional; Keywords drive the
// index strategies when no ID pattern matches.
type RoutingEntry struct {
	SectionID     string   `json:"section_id,omitempty" yaml:"section_id,omitempty"`
	Title         string   `json:"title" yaml:"title" validate:"required"`
	Keywords      []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	TargetDomains []string `json:"target_domains" yaml:"target_domains" validate:"required,min=1,dive,required"`
	Priority      Priority `json:"priority,omitempty" yaml:"priority,omitempty" validate:"omitempty,oneof=critical high medium"`
	Sector        string   `json:"sector,omitempty" yaml:"sector,omitempty"`
	Theme         string   `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// DomainMatch is one routed review domain with the strategy that found it
// and the confidence it earned. Confidence is clamped to [0, 1].
type DomainMatch struct {
	Domain           string      `json:"domain"`
	Confidence       float64     `json:"confidence"`
	Source           MatchSource `json:"source"`
	Subsection       string      `json:"subsection,omitempty"`
	MatchingKeywords []string    `json:"matching_keywords,omitempty"`
}
