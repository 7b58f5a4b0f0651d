package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arden-env/esia-reconcile/internal/model"
)

func defaultRouter(t *testing.T) *Router {
	t.Helper()
	idx, err := NewIndex(DefaultEntries())
	require.NoError(t, err)
	cat, err := NewCatalog(DefaultDomains(), DefaultLiterals(), DefaultSectorAliases())
	require.NoError(t, err)
	r, err := NewRouter(idx, cat, 0)
	require.NoError(t, err)
	return r
}

func TestDefaults_TablesWireTogether(t *testing.T) {
	defaultRouter(t)
}

func TestDefaults_GBVHHeadingRoutesToSocialRisk(t *testing.T) {
	r := defaultRouter(t)

	matches := r.Route("5.3.4 GBVH and SEAH Risk Assessment", "", 3)
	require.NotEmpty(t, matches)
	assert.Equal(t, "social_risk", matches[0].Domain)
	assert.Equal(t, model.SourceKeyword, matches[0].Source)
	assert.GreaterOrEqual(t, matches[0].Confidence, 0.7)
	assert.LessOrEqual(t, matches[0].Confidence, 0.95)
	assert.Equal(t, []string{"gbvh", "seah"}, matches[0].MatchingKeywords)
}

func TestDefaults_SectionIDBoostClampsAtOne(t *testing.T) {
	r := defaultRouter(t)

	matches := r.Route("2.3 Land Take", "", 3)
	require.Len(t, matches, 2)
	assert.Equal(t, "project_description", matches[0].Domain)
	assert.Equal(t, "resettlement_livelihoods", matches[1].Domain)
	for _, m := range matches {
		assert.Equal(t, model.SourceIDMatch, m.Source)
		assert.InDelta(t, 1.0, m.Confidence, 1e-9)
	}
}

func TestDefaults_SectorHintUnlocksWindEntries(t *testing.T) {
	r := defaultRouter(t)

	heading := "Turbine blade collision monitoring for bats"
	assert.Empty(t, r.Route(heading, "", 3))

	matches := r.Route(heading, "Onshore Wind", 3)
	require.Len(t, matches, 2)
	assert.Equal(t, "biodiversity", matches[0].Domain)
	assert.Equal(t, "noise_vibration", matches[1].Domain)
	assert.Equal(t, model.SourceSector, matches[0].Source)
	assert.InDelta(t, 0.95, matches[0].Confidence, 1e-9)
}

func TestDefaults_ChanceFindLiteralRoutesToHeritage(t *testing.T) {
	r := defaultRouter(t)

	matches := r.Route("Chance Find Procedure", "", 3)
	require.Len(t, matches, 1)
	assert.Equal(t, "cultural_heritage", matches[0].Domain)
	assert.Equal(t, model.SourceFuzzy, matches[0].Source)
	assert.InDelta(t, 0.65, matches[0].Confidence, 1e-9)
}

func TestDefaults_ShouldRouteRecognizesShortDomainHeadings(t *testing.T) {
	r := defaultRouter(t)

	assert.True(t, r.ShouldRoute("Noise and Vibration"))
	assert.True(t, r.ShouldRoute("Cultural Heritage"))
	assert.False(t, r.ShouldRoute("Overview"))
	assert.False(t, r.ShouldRoute("Acronyms"))
}
