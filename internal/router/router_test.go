package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arden-env/esia-reconcile/internal/model"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex([]model.RoutingEntry{
		{SectionID: "3.1", Title: "Ambient Air", Keywords: []string{"air", "dust"},
			TargetDomains: []string{"air"}, Priority: model.PriorityMedium},
		{Title: "Noise", Keywords: []string{"noise", "decibel"},
			TargetDomains: []string{"noise"}, Priority: model.PriorityHigh},
		{Title: "Critical Habitat Screening", Keywords: []string{"habitat", "species"},
			TargetDomains: []string{"bio"}, Priority: model.PriorityCritical},
		{Title: "Turbine Collisions", Sector: "wind", Keywords: []string{"turbine", "collision", "bats"},
			TargetDomains: []string{"bio"}, Priority: model.PriorityMedium},
		{Title: "Cumulative Pressures", Theme: "cumulative", Keywords: []string{"cumulative", "regional"},
			TargetDomains: []string{"cumulative"}, Priority: model.PriorityMedium},
		{Title: "Untagged Chapter", TargetDomains: []string{"misc"}, Priority: model.PriorityMedium},
	})
	require.NoError(t, err)
	return idx
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog(
		[]Domain{
			{Name: "air", Subsections: []Subsection{
				{Label: "Ambient Air Quality", Keywords: []string{"air", "dust"}}}},
			{Name: "noise", Subsections: []Subsection{
				{Label: "Noise", Keywords: []string{"noise", "decibel"}}}},
			{Name: "bio", Subsections: []Subsection{
				{Label: "Critical Habitat", Keywords: []string{"habitat", "species"}}}},
			{Name: "visual", Subsections: []Subsection{
				{Label: "Landscape and Visual", Keywords: []string{"landscape", "visual", "viewshed"}}}},
			{Name: "cumulative"},
			{Name: "misc"},
		},
		[]LiteralKeyword{
			{Phrase: "chance find", Domain: "misc"},
			{Phrase: "viewshed", Domain: "visual"},
		},
		map[string]string{"wind farm": "wind"},
	)
	require.NoError(t, err)
	return cat
}

func testRouter(t *testing.T) *Router {
	t.Helper()
	r, err := NewRouter(testIndex(t), testCatalog(t), 0)
	require.NoError(t, err)
	return r
}

func TestRouter_SectionIDWinsOverKeywords(t *testing.T) {
	r := testRouter(t)

	matches := r.Route("3.1 Ambient Air Conditions", "", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "air", matches[0].Domain)
	assert.Equal(t, model.SourceIDMatch, matches[0].Source)
	assert.InDelta(t, 0.95, matches[0].Confidence, 1e-9)
}

func TestRouter_UnknownSectionIDFallsThroughToKeywords(t *testing.T) {
	r := testRouter(t)

	matches := r.Route("9.9 Dust Emissions", "", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "air", matches[0].Domain)
	assert.Equal(t, model.SourceKeyword, matches[0].Source)
	assert.Equal(t, []string{"dust"}, matches[0].MatchingKeywords)
}

func TestRouter_KeywordOverlapScalesConfidence(t *testing.T) {
	r := testRouter(t)

	// Full overlap plus the high priority boost clamps at 1.
	matches := r.Route("Noise and decibel limits", "", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "noise", matches[0].Domain)
	assert.InDelta(t, 1.0, matches[0].Confidence, 1e-9)
	assert.Equal(t, []string{"noise", "decibel"}, matches[0].MatchingKeywords)
}

func TestRouter_EntryWithoutKeywordsScoresFlatOverlap(t *testing.T) {
	r := testRouter(t)

	matches := r.Route("Untagged chapter overview", "", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "misc", matches[0].Domain)
	assert.Equal(t, model.SourceKeyword, matches[0].Source)
	assert.InDelta(t, 0.8, matches[0].Confidence, 1e-9)
	assert.Empty(t, matches[0].MatchingKeywords)
}

func TestRouter_SectorEntriesNeedTheHint(t *testing.T) {
	r := testRouter(t)

	assert.Empty(t, r.Route("Turbine collision rates for bats", "", 0))

	matches := r.Route("Turbine collision rates for bats", "Wind Farm", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "bio", matches[0].Domain)
	assert.Equal(t, model.SourceSector, matches[0].Source)
	assert.InDelta(t, 0.9, matches[0].Confidence, 1e-9)
	assert.Equal(t, []string{"turbine", "collision", "bats"}, matches[0].MatchingKeywords)
}

func TestRouter_ThemeEntriesMatchWithoutHint(t *testing.T) {
	r := testRouter(t)

	matches := r.Route("Cumulative and regional pressures", "", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "cumulative", matches[0].Domain)
	assert.Equal(t, model.SourceTheme, matches[0].Source)
	assert.InDelta(t, 0.95, matches[0].Confidence, 1e-9)
}

func TestRouter_FuzzyRunsOnlyWhenPreciseStrategiesAreSilent(t *testing.T) {
	r := testRouter(t)

	// Misspelled heading that no index term catches.
	matches := r.Route("Critcal Habitt", "", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "bio", matches[0].Domain)
	assert.Equal(t, model.SourceFuzzy, matches[0].Source)
	assert.Equal(t, "Critical Habitat", matches[0].Subsection)
	assert.Greater(t, matches[0].Confidence, fuzzyFloor)
	assert.Less(t, matches[0].Confidence, keywordBase)
}

func TestRouter_FuzzyLiteralAddsDomain(t *testing.T) {
	r := testRouter(t)

	matches := r.Route("Chance find procedure", "", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "misc", matches[0].Domain)
	assert.Equal(t, model.SourceFuzzy, matches[0].Source)
	assert.InDelta(t, literalConfidence, matches[0].Confidence, 1e-9)
	assert.Equal(t, []string{"chance find"}, matches[0].MatchingKeywords)
}

func TestRouter_FuzzyLiteralBumpsLabelCandidate(t *testing.T) {
	r := testRouter(t)

	// The label match alone scores 0.8; the literal lifts it to 0.9.
	matches := r.Route("Landscape and Visual: viewshed", "", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, "visual", matches[0].Domain)
	assert.Equal(t, model.SourceFuzzy, matches[0].Source)
	assert.InDelta(t, 0.9, matches[0].Confidence, 1e-9)
}

func TestRouter_FuzzyFindsNothingForUnrelatedHeading(t *testing.T) {
	r := testRouter(t)

	assert.Empty(t, r.Route("Soundscape Baseline", "", 0))
}

func TestRouter_ReducerKeepsStrongestPerDomain(t *testing.T) {
	r := testRouter(t)

	// ID match at 0.95 and keyword match at 0.9 reduce to one air entry.
	matches := r.Route("3.1 Ambient air and dust levels", "", 0)
	require.Len(t, matches, 1)
	assert.Equal(t, model.SourceIDMatch, matches[0].Source)
	assert.InDelta(t, 0.95, matches[0].Confidence, 1e-9)
}

func TestRouter_SortsByConfidenceThenDomain(t *testing.T) {
	r := testRouter(t)

	matches := r.Route("Dust, noise and habitat screening", "", 0)
	require.Len(t, matches, 3)
	assert.Equal(t, "bio", matches[0].Domain)
	assert.Equal(t, "noise", matches[1].Domain)
	assert.Equal(t, "air", matches[2].Domain)

	// Equal confidences break ties on the domain name.
	tied := r.Route("Untagged chapter dust", "", 0)
	require.Len(t, tied, 2)
	assert.Equal(t, "air", tied[0].Domain)
	assert.Equal(t, "misc", tied[1].Domain)
	assert.InDelta(t, tied[0].Confidence, tied[1].Confidence, 1e-12)
}

func TestRouter_TruncatesToTopN(t *testing.T) {
	r := testRouter(t)

	matches := r.Route("Dust, noise and habitat screening", "", 2)
	require.Len(t, matches, 2)
	assert.Equal(t, "bio", matches[0].Domain)
	assert.Equal(t, "noise", matches[1].Domain)
}

func TestRouter_CacheReturnsIsolatedCopies(t *testing.T) {
	r, err := NewRouter(testIndex(t), testCatalog(t), time.Minute)
	require.NoError(t, err)

	first := r.Route("9.9 Dust Emissions", "", 3)
	require.Len(t, first, 1)
	first[0].Domain = "tampered"
	first[0].MatchingKeywords[0] = "tampered"

	second := r.Route("9.9 Dust Emissions", "", 3)
	require.Len(t, second, 1)
	assert.Equal(t, "air", second[0].Domain)
	assert.Equal(t, []string{"dust"}, second[0].MatchingKeywords)
}

func TestRouter_ShouldRoute(t *testing.T) {
	r := testRouter(t)

	tests := []struct {
		heading string
		want    bool
	}{
		{"Acronyms and Abbreviations", false},
		{"Table of Contents", false},
		{"References", false},
		{"Glossary", false},
		{"Appendix B", false},
		{"Annex 3: Maps", false},
		{"Step 3", false},
		{"Overview", false},
		{"", false},
		{"Noise", true},
		{"Ambient Air Quality", true},
		{"4.1", true},
		{"Reference values for noise", true},
		{"Water quality impacts of construction", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ShouldRoute(tt.heading), "heading %q", tt.heading)
	}
}

func TestNewIndex_RejectsDuplicateSectionID(t *testing.T) {
	_, err := NewIndex([]model.RoutingEntry{
		{SectionID: "1.1", Title: "One", TargetDomains: []string{"a"}},
		{SectionID: "1.1", Title: "Two", TargetDomains: []string{"b"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate section id")
}

func TestNewIndex_RejectsEntryWithoutTargets(t *testing.T) {
	_, err := NewIndex([]model.RoutingEntry{{Title: "No Targets"}})
	assert.Error(t, err)
}

func TestNewCatalog_RejectsLiteralForUnknownDomain(t *testing.T) {
	_, err := NewCatalog(
		[]Domain{{Name: "air"}},
		[]LiteralKeyword{{Phrase: "x", Domain: "water"}},
		nil,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown domain")
}

func TestNewCatalog_RejectsDuplicateDomain(t *testing.T) {
	_, err := NewCatalog([]Domain{{Name: "air"}, {Name: "air"}}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate domain")
}

func TestNewRouter_RejectsAliasToUnknownSector(t *testing.T) {
	cat, err := NewCatalog([]Domain{{Name: "air"}}, nil, map[string]string{"hint": "missing"})
	require.NoError(t, err)

	_, err = NewRouter(testIndex(t), cat, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sector")
}
