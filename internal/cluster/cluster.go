// Package cluster groups fact mentions by a canonical name signature and
// flags numeric disagreement inside each group.
package cluster

import (
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/arden-env/esia-reconcile/internal/model"
)

var underscoreRuns = regexp.MustCompile(`_+`)

// Signature reduces a fact name to its canonical grouping key:
// lower-case, trimmed, inner whitespace collapsed, characters outside
// [a-z0-9_- ] stripped, then spaces and hyphens folded to single
// underscores with no leading or trailing underscore. "CO2 Emissions",
// "co2   emissions" and " CO2-Emissions " all reduce to "co2_emissions".
// Non-ASCII runes are stripped by the character filter.
func Signature(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), " ")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == ' ':
			b.WriteRune(r)
		}
	}
	s = b.String()

	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// Group clusters mentions by signature. Both the cluster list and the
// mentions inside each cluster preserve insertion order.
func Group(mentions []model.FactMention) []model.FactCluster {
	index := make(map[string]int, len(mentions))
	var clusters []model.FactCluster

	for _, m := range mentions {
		if !isASCII(m.Name) {
			// Upstream extraction never defined how non-ASCII names group;
			// the signature strips the offending runes, which is surfaced
			// here rather than silently transliterated.
			zap.L().Warn("cluster: non-ascii fact name, unsupported runes stripped from signature",
				zap.String("name", m.Name))
		}
		sig := Signature(m.Name)
		i, ok := index[sig]
		if !ok {
			i = len(clusters)
			index[sig] = i
			clusters = append(clusters, model.FactCluster{Signature: sig})
		}
		clusters[i].Mentions = append(clusters[i].Mentions, m)
	}

	for i := range clusters {
		clusters[i].OccurrenceCount = len(clusters[i].Mentions)
	}
	return clusters
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
