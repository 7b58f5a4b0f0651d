// Package extract pulls quantity+unit pairs out of free text. Pattern
// order encodes priority: once a pattern claims a start offset, later
// patterns may not reinterpret the same match ("500 km²" stays an area,
// it is never re-read as a bare distance).
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/arden-env/esia-reconcile/internal/model"
	"github.com/arden-env/esia-reconcile/internal/units"
)

// num is the shared numeric core: integer or decimal, comma thousands.
const num = `(\d+(?:,\d{3})*(?:\.\d+)?)`

// quantityPatterns run in priority order, most specific unit families
// first. Every pattern captures (value, unit). Alternatives inside a
// pattern are ordered longest spelling first.
var quantityPatterns = []*regexp.Regexp{
	// concentration
	regexp.MustCompile(`(?i)` + num + `\s*(µg/m³|μg/m³|µg/m3|μg/m3|ug/m3|mg/nm³|mg/nm3|mg/m³|mg/m3|µg/l\b|μg/l\b|ug/l\b|mg/l\b|ppm\b|ppb\b)`),
	// noise
	regexp.MustCompile(`(?i)` + num + `\s*(db ?\(a\)|dba\b|db\b)`),
	// temperature
	regexp.MustCompile(`(?i)` + num + `\s*(°c\b|degrees? c(?:elsius)?\b|deg\.? ?c\b)`),
	// area, specific units before generic ones
	regexp.MustCompile(`(?i)` + num + `\s*(hectares?\b|km²|km2\b|sq\.? ?km\b|square kilomet(?:re|er)s?\b|ha\b)`),
	regexp.MustCompile(`(?i)` + num + `\s*(m²|m2\b|sq\.? ?m\b|square met(?:re|er)s?\b)`),
	// volume
	regexp.MustCompile(`(?i)` + num + `\s*(m³(?: ?/ ?(?:day|d|hr|h|s|yr|year|annum))?|m3(?: ?/ ?(?:day|d|hr|h|s|yr|year|annum))?\b|cubic met(?:re|er)s?\b|megalitres?\b|litres?\b|liters?\b|l/s\b)`),
	// greenhouse gas emissions
	regexp.MustCompile(`(?i)` + num + `\s*((?:million |thousand )?(?:tonnes? |t ?)(?:of )?co2(?:-?eq?)?\b(?: ?/ ?(?:year|yr|annum|a)\b)?|mtco2e?\b|ktco2e?\b|tco2e?\b)`),
	// power and energy
	regexp.MustCompile(`(?i)` + num + `\s*(gwh(?: ?/ ?(?:year|yr|annum|a))?\b|mwh\b|kwh\b|mva\b|mw\b|kw\b)`),
	// distance
	regexp.MustCompile(`(?i)` + num + `\s*(kilomet(?:re|er)s?\b|km\b|met(?:re|er)s?\b|mm\b|cm\b|m\b)`),
	// mass
	regexp.MustCompile(`(?i)` + num + `\s*((?:million |thousand )?(?:tonnes?\b|kilograms?\b|kg\b|t\b|g\b))`),
	// percentage
	regexp.MustCompile(`(?i)` + num + `\s*(%|percent\b|per cent\b)`),
	// multiplier-qualified counts
	regexp.MustCompile(`(?i)` + num + `\s*((?:million|thousand)(?: ?(?:people|persons|jobs|workers|households|residents|passengers|visitors|trees|seedlings))?)\b`),
}

var multiplierRe = regexp.MustCompile(`(?i)\b(million|thousand)\b`)

// Extractor converts free text into normalized quantities via the unit
// registry. Stateless aside from the injected registry, safe for
// concurrent use.
type Extractor struct {
	registry *units.Registry
}

// NewExtractor wires an extractor to a unit registry.
func NewExtractor(registry *units.Registry) *Extractor {
	return &Extractor{registry: registry}
}

// Extract returns every quantity found in text, in pattern-priority then
// positional order. A candidate whose numeric literal fails to parse is
// skipped; a candidate whose unit is empty after multiplier stripping is
// dropped.
func (e *Extractor) Extract(text string) []model.ExtractedQuantity {
	var out []model.ExtractedQuantity
	claimed := make(map[int]struct{})

	for _, re := range quantityPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			if _, taken := claimed[start]; taken {
				continue
			}

			value, err := parseNumber(text[loc[2]:loc[3]])
			if err != nil {
				zap.L().Warn("extract: skipping unparseable numeric literal",
					zap.String("literal", text[loc[2]:loc[3]]))
				continue
			}
			unit := strings.TrimSpace(text[loc[4]:loc[5]])

			if word := multiplierRe.FindString(unit); word != "" {
				switch strings.ToLower(word) {
				case "million":
					value *= 1e6
				case "thousand":
					value *= 1e3
				}
				unit = strings.Join(strings.Fields(multiplierRe.ReplaceAllString(unit, "")), " ")
			}
			if unit == "" {
				continue
			}

			normalized, base := e.registry.Convert(value, unit)
			claimed[start] = struct{}{}
			out = append(out, model.ExtractedQuantity{
				RawValue:        value,
				RawUnit:         unit,
				NormalizedValue: normalized,
				BaseUnit:        base,
				Start:           start,
				End:             end,
			})
		}
	}

	return out
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
