package router

import (
	"regexp"
	"strings"
	"unicode"
)

// sectionIDPatterns are tried in order against a heading: a leading
// letter-qualified identifier (B.4.2), a dotted triple anywhere in the
// line, then a leading dotted pair. The first hit wins.
var sectionIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]\.\d+\.\d+(?:\.\d+)?`),
	regexp.MustCompile(`\d+\.\d+\.\d+(?:\.\d+)?`),
	regexp.MustCompile(`^\d+\.\d+`),
}

// noRoutePatterns recognize front matter and procedural headings that carry
// no reviewable content: glossaries, tables of contents, reference lists,
// appendices, and numbered process steps.
var noRoutePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)acronym`),
	regexp.MustCompile(`(?i)abbreviation`),
	regexp.MustCompile(`(?i)glossary`),
	regexp.MustCompile(`(?i)table of contents`),
	regexp.MustCompile(`(?i)\btoc\b`),
	regexp.MustCompile(`(?i)\breferences\b`),
	regexp.MustCompile(`(?i)\bbibliography\b`),
	regexp.MustCompile(`(?i)\bappendix\b`),
	regexp.MustCompile(`(?i)\bannex\b`),
	regexp.MustCompile(`(?i)\bstep \d+\b`),
}

// SectionID pulls a dotted section identifier out of a heading, or returns
// "" when the heading carries none.
func SectionID(heading string) string {
	h := strings.TrimSpace(heading)
	for _, re := range sectionIDPatterns {
		if m := re.FindString(h); m != "" {
			return m
		}
	}
	return ""
}

// tokenize splits a heading into lower-cased index tokens. Separator
// characters and camelCase boundaries both split; tokens of one or two
// characters are dropped.
func tokenize(s string) []string {
	var tokens []string
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '_', '-', '/', ',', ';', ':', '(', ')', '&':
			return true
		}
		return false
	})
	for _, f := range fields {
		for _, part := range splitCamel(f) {
			part = strings.ToLower(strings.Trim(part, "."))
			if len(part) <= 2 {
				continue
			}
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// splitCamel splits at lower-to-upper boundaries and before the last
// capital of an upper run followed by lowercase ("GBVHScreening" becomes
// "GBVH", "Screening").
func splitCamel(s string) []string {
	runes := []rune(s)
	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		boundary := unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i])
		if !boundary && i+1 < len(runes) {
			boundary = unicode.IsUpper(runes[i-1]) && unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i+1])
		}
		if boundary {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}

// foldName lower-cases a name and rejoins its separator-split words so
// "Noise_and-Vibration" and "noise and vibration" compare equal.
func foldName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// keywordOverlap returns the heading tokens that appear among the entry
// keywords after folding, preserving token order, each at most once.
func keywordOverlap(tokens, keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	set := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		set[strings.ToLower(strings.TrimSpace(k))] = true
	}
	var overlap []string
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if set[tok] && !seen[tok] {
			seen[tok] = true
			overlap = append(overlap, tok)
		}
	}
	return overlap
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
