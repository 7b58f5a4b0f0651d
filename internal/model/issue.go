package model

// Severity grades a finding. Only two grades exist today; rank ordering
// matters for report sorting, not for detection.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

var severityRank = map[Severity]int{
	SeverityHigh:   2,
	SeverityMedium: 1,
}

// Rank returns a sortable weight, higher is more severe. Unknown
// severities rank below every known one.
func (s Severity) Rank() int {
	return severityRank[s]
}

// ConsistencyIssue reports normalized values for the same parameter
// context that disagree beyond tolerance across a document set.
type ConsistencyIssue struct {
	Severity         Severity  `json:"severity"`
	Context          string    `json:"context"`
	BaseUnit         string    `json:"base_unit"`
	Values           []string  `json:"values"`
	NormalizedValues []float64 `json:"normalized_values"`
	Locations        []string  `json:"locations,omitempty"`
	DiffPercent      float64   `json:"diff_percent"`
}

// UnitMixIssue reports a parameter context quoted in more than one raw
// unit spelling, even when the normalized values agree.
type UnitMixIssue struct {
	Context  string   `json:"context"`
	BaseUnit string   `json:"base_unit"`
	Units    []string `json:"units"`
	Examples []string `json:"examples,omitempty"`
}
