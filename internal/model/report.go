package model

import "time"

// ReviewReport is the aggregate handed to downstream report renderers. One
// report covers one reconciliation run over a document set.
type ReviewReport struct {
	RunID             string                 `json:"run_id"`
	GeneratedAt       time.Time              `json:"generated_at"`
	Clusters          []FactCluster          `json:"clusters,omitempty"`
	ConsistencyIssues []ConsistencyIssue     `json:"consistency_issues,omitempty"`
	UnitMixIssues     []UnitMixIssue         `json:"unit_mix_issues,omitempty"`
	ThresholdResults  []ThresholdCheckResult `json:"threshold_results,omitempty"`
	GapResults        []GapCheckResult       `json:"gap_results,omitempty"`
	Summary           ReviewSummary          `json:"summary"`
}

// ReviewSummary carries the headline counts for a run.
type ReviewSummary struct {
	TotalMentions        int `json:"total_mentions"`
	TotalClusters        int `json:"total_clusters"`
	RepeatedFacts        int `json:"repeated_facts"`
	ConflictingClusters  int `json:"conflicting_clusters"`
	ConsistencyIssues    int `json:"consistency_issues"`
	HighSeverityIssues   int `json:"high_severity_issues"`
	UnitMixIssues        int `json:"unit_mix_issues"`
	ThresholdExceedances int `json:"threshold_exceedances"`
	ThresholdApproaching int `json:"threshold_approaching"`
	MissingDisclosures   int `json:"missing_disclosures"`
}

// RoutedSection pairs one heading with the review domains it routed to.
type RoutedSection struct {
	Heading string        `json:"heading"`
	Matches []DomainMatch `json:"matches"`
}

// SkippedSection is a heading that was not routed, with the reason.
type SkippedSection struct {
	Heading string `json:"heading"`
	Reason  string `json:"reason"`
}

// RoutedSections groups the outcome of routing a table of contents.
type RoutedSections struct {
	Routed  []RoutedSection  `json:"routed,omitempty"`
	Skipped []SkippedSection `json:"skipped,omitempty"`
}
