package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionID_PatternPrecedence(t *testing.T) {
	tests := []struct {
		heading string
		want    string
	}{
		{"B.4.2 Effluent Standards", "B.4.2"},
		{"A.1.2.3 Annexed Detail", "A.1.2.3"},
		{"5.3.4 GBVH and SEAH Risk Assessment", "5.3.4"},
		{"see section 4.2.1 for details", "4.2.1"},
		{"2.3 Project Footprint", "2.3"},
		{"  7.1 Indented Heading", "7.1"},
		{"Project Footprint 2.3", ""},
		{"Introduction", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SectionID(tt.heading), "heading %q", tt.heading)
	}
}

func TestTokenize_SeparatorsCamelCaseAndShortTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Noise_and-Vibration", []string{"noise", "and", "vibration"}},
		{"GBVHScreening", []string{"gbvh", "screening"}},
		{"EHS Guidelines (2007)", []string{"ehs", "guidelines", "2007"}},
		{"PM2.5 monitoring", []string{"pm2.5", "monitoring"}},
		{"pH of effluent", []string{"effluent"}},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenize(tt.in), "input %q", tt.in)
	}
}

func TestFoldName_NormalizesSeparatorsAndCase(t *testing.T) {
	assert.Equal(t, "noise and vibration", foldName(" Noise_and-Vibration "))
	assert.Equal(t, "noise and vibration", foldName("NOISE  AND  VIBRATION"))
	assert.Equal(t, "", foldName("   "))
}

func TestKeywordOverlap_OrderedAndDeduplicated(t *testing.T) {
	overlap := keywordOverlap(
		[]string{"gbvh", "and", "seah", "gbvh"},
		[]string{"seah", "gbvh", "gender"},
	)
	assert.Equal(t, []string{"gbvh", "seah"}, overlap)
}

func TestKeywordOverlap_EmptyKeywordsReturnsNil(t *testing.T) {
	assert.Nil(t, keywordOverlap([]string{"noise"}, nil))
}
