// Package router maps section headings of an assessment document to the
// review domains responsible for them. Four precise strategies score
// candidates independently and the strongest confidence per domain wins;
// a fuzzy fallback engages only when every precise strategy stays silent.
package router

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/agext/levenshtein"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/arden-env/esia-reconcile/internal/model"
)

const (
	idConfidence       = 0.95
	keywordBase        = 0.7
	keywordSpan        = 0.2
	orphanOverlap      = 0.5
	sectorBase         = 0.75
	sectorSpan         = 0.15
	themeBase          = 0.8
	themeSpan          = 0.15
	fuzzySimWeight     = 0.6
	fuzzyOverlapWeight = 0.4
	fuzzyFloor         = 0.3
	literalConfidence  = 0.65
	literalBump        = 0.1
)

// candidate is a single strategy's vote before per-domain reduction.
type candidate struct {
	domain     string
	confidence float64
	source     model.MatchSource
	subsection string
	keywords   []string
}

// Router resolves headings against a routing index and a domain catalog.
// Routing is pure given its inputs, so results may be memoized; the cache
// copies matches on both read and write to keep callers isolated.
type Router struct {
	index   *Index
	catalog *Catalog
	cache   *gocache.Cache
}

// NewRouter wires an index and catalog together. A positive cacheTTL
// enables memoization of Route results keyed by the folded inputs. Every
// sector alias must resolve to a sector the index actually carries.
func NewRouter(index *Index, catalog *Catalog, cacheTTL time.Duration) (*Router, error) {
	for hint, sector := range catalog.aliases {
		if _, ok := index.sectors[sector]; !ok {
			return nil, eris.Errorf("router: hint %q maps to unknown sector %q", hint, sector)
		}
	}
	r := &Router{index: index, catalog: catalog}
	if cacheTTL > 0 {
		r.cache = gocache.New(cacheTTL, 2*cacheTTL)
	}
	return r, nil
}

// Route ranks the review domains for one heading. The identifier, keyword,
// sector, and theme strategies always run and their candidates merge by
// maximum confidence per domain; the fuzzy fallback runs only when all four
// found nothing. Results sort by confidence descending with the domain name
// breaking ties, truncated to topN. A topN of zero or less disables
// truncation.
func (r *Router) Route(heading, projectTypeHint string, topN int) []model.DomainMatch {
	key := cacheKey(heading, projectTypeHint, topN)
	if r.cache != nil {
		if v, ok := r.cache.Get(key); ok {
			zap.L().Debug("router: cache hit", zap.String("heading", heading))
			return copyMatches(v.([]model.DomainMatch))
		}
	}

	tokens := tokenize(heading)

	var cands []candidate
	cands = append(cands, r.matchSectionID(heading)...)
	cands = append(cands, r.matchKeywords(tokens)...)
	if projectTypeHint != "" {
		cands = append(cands, r.matchSector(projectTypeHint, tokens)...)
	}
	cands = append(cands, r.matchThemes(tokens)...)

	if len(cands) == 0 {
		zap.L().Debug("router: precise strategies silent, trying fuzzy fallback",
			zap.String("heading", heading))
		cands = r.matchFuzzy(heading, tokens)
	}

	matches := reduceByDomain(cands)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return matches[i].Domain < matches[j].Domain
	})
	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}

	if r.cache != nil {
		r.cache.Set(key, copyMatches(matches), gocache.DefaultExpiration)
	}
	return matches
}

// ShouldRoute reports whether a heading is worth routing at all. Front
// matter is skipped, as are short headings that carry no section number and
// name no known domain or subsection.
func (r *Router) ShouldRoute(heading string) bool {
	h := strings.TrimSpace(heading)
	if h == "" {
		return false
	}
	for _, re := range noRoutePatterns {
		if re.MatchString(h) {
			return false
		}
	}
	if len(strings.Fields(h)) <= 3 && !containsDigit(h) && !r.catalog.IsKnownName(h) {
		return false
	}
	return true
}

func (r *Router) matchSectionID(heading string) []candidate {
	id := SectionID(heading)
	if id == "" {
		return nil
	}
	i, ok := r.index.byID[strings.ToLower(id)]
	if !ok {
		return nil
	}
	e := r.index.entries[i]
	var cands []candidate
	for _, d := range e.TargetDomains {
		cands = append(cands, candidate{
			domain:     d,
			confidence: boost(idConfidence, e.Priority),
			source:     model.SourceIDMatch,
			subsection: e.Title,
		})
	}
	return cands
}

func (r *Router) matchKeywords(tokens []string) []candidate {
	var cands []candidate
	scored := make(map[int]bool)
	for _, tok := range tokens {
		for _, i := range r.index.keyword[tok] {
			if scored[i] {
				continue
			}
			scored[i] = true
			e := r.index.entries[i]
			overlap := keywordOverlap(tokens, e.Keywords)
			ratio := orphanOverlap
			if len(e.Keywords) > 0 {
				ratio = float64(len(overlap)) / float64(len(e.Keywords))
			}
			conf := boost(keywordBase+keywordSpan*ratio, e.Priority)
			for _, d := range e.TargetDomains {
				cands = append(cands, candidate{d, conf, model.SourceKeyword, e.Title, overlap})
			}
		}
	}
	return cands
}

func (r *Router) matchSector(hint string, tokens []string) []candidate {
	var cands []candidate
	for _, i := range r.index.sectors[r.catalog.Sector(hint)] {
		e := r.index.entries[i]
		overlap := keywordOverlap(tokens, e.Keywords)
		if len(overlap) == 0 {
			continue
		}
		ratio := float64(len(overlap)) / float64(len(e.Keywords))
		conf := boost(sectorBase+sectorSpan*ratio, e.Priority)
		for _, d := range e.TargetDomains {
			cands = append(cands, candidate{d, conf, model.SourceSector, e.Title, overlap})
		}
	}
	return cands
}

func (r *Router) matchThemes(tokens []string) []candidate {
	var cands []candidate
	for _, i := range r.index.themed {
		e := r.index.entries[i]
		overlap := keywordOverlap(tokens, e.Keywords)
		if len(overlap) == 0 {
			continue
		}
		ratio := float64(len(overlap)) / float64(len(e.Keywords))
		conf := boost(themeBase+themeSpan*ratio, e.Priority)
		for _, d := range e.TargetDomains {
			cands = append(cands, candidate{d, conf, model.SourceTheme, e.Title, overlap})
		}
	}
	return cands
}

// matchFuzzy scores every subsection label by blended sequence similarity
// and keyword overlap, then lets the literal dictionary add domains the
// labels missed or bump ones they found. Only scores above fuzzyFloor
// survive.
func (r *Router) matchFuzzy(heading string, tokens []string) []candidate {
	var cands []candidate
	best := make(map[string]int)

	folded := foldName(heading)
	for _, d := range r.catalog.domains {
		for _, sub := range d.Subsections {
			sim := levenshtein.Similarity(folded, foldName(sub.Label), nil)
			overlap := keywordOverlap(tokens, sub.Keywords)
			var ratio float64
			if len(sub.Keywords) > 0 {
				ratio = float64(len(overlap)) / float64(len(sub.Keywords))
			}
			conf := fuzzySimWeight*sim + fuzzyOverlapWeight*ratio
			if conf <= fuzzyFloor {
				continue
			}
			cands = append(cands, candidate{
				domain:     d.Name,
				confidence: conf,
				source:     model.SourceFuzzy,
				subsection: sub.Label,
				keywords:   overlap,
			})
			if j, ok := best[d.Name]; !ok || conf > cands[j].confidence {
				best[d.Name] = len(cands) - 1
			}
		}
	}

	lower := strings.ToLower(heading)
	for _, lit := range r.catalog.literals {
		if !strings.Contains(lower, strings.ToLower(lit.Phrase)) {
			continue
		}
		if j, ok := best[lit.Domain]; ok {
			cands[j].confidence = clamp(cands[j].confidence + literalBump)
			continue
		}
		cands = append(cands, candidate{
			domain:     lit.Domain,
			confidence: literalConfidence,
			source:     model.SourceFuzzy,
			keywords:   []string{lit.Phrase},
		})
		best[lit.Domain] = len(cands) - 1
	}
	return cands
}

// reduceByDomain keeps the strongest candidate per domain. Ties keep the
// earlier candidate, so strategy order decides between equal scores.
func reduceByDomain(cands []candidate) []model.DomainMatch {
	index := make(map[string]int, len(cands))
	var matches []model.DomainMatch
	for _, c := range cands {
		m := model.DomainMatch{
			Domain:           c.domain,
			Confidence:       c.confidence,
			Source:           c.source,
			Subsection:       c.subsection,
			MatchingKeywords: c.keywords,
		}
		if i, ok := index[c.domain]; ok {
			if c.confidence > matches[i].Confidence {
				matches[i] = m
			}
			continue
		}
		index[c.domain] = len(matches)
		matches = append(matches, m)
	}
	return matches
}

// boost raises confidence for urgent entries, clamped to 1.
func boost(confidence float64, p model.Priority) float64 {
	switch p {
	case model.PriorityCritical:
		confidence += 0.2
	case model.PriorityHigh:
		confidence += 0.1
	}
	return clamp(confidence)
}

func clamp(c float64) float64 {
	if c > 1 {
		return 1
	}
	return c
}

func cacheKey(heading, hint string, topN int) string {
	return foldName(heading) + "|" + foldName(hint) + "|" + strconv.Itoa(topN)
}

func copyMatches(in []model.DomainMatch) []model.DomainMatch {
	out := make([]model.DomainMatch, len(in))
	copy(out, in)
	for i := range out {
		if len(in[i].MatchingKeywords) > 0 {
			out[i].MatchingKeywords = append([]string(nil), in[i].MatchingKeywords...)
		}
	}
	return out
}
