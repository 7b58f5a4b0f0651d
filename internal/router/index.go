package router

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/arden-env/esia-reconcile/internal/model"
)

// stopwords are skipped when titles and keywords are folded into the
// inverted index; they stay visible in overlap ratios because those divide
// by the declared keyword list, not by the index.
var stopwords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "from": true,
}

// Index holds a validated routing table together with the lookup
// structures the precise strategies need: section identifiers, an inverted
// keyword index, and the sector and theme buckets. Build once, read from
// any goroutine.
type Index struct {
	entries []model.RoutingEntry
	byID    map[string]int
	keyword map[string][]int
	sectors map[string][]int
	themed  []int
}

// NewIndex validates the routing entries and builds the strategy indices.
// Untagged entries feed the inverted keyword index through both their
// declared keywords and their title words, so an entry with no keywords is
// still reachable. Sector and theme entries live only in their profile
// buckets; the hint gate would be meaningless if they also matched
// generally. Section identifiers resolve for every entry.
func NewIndex(entries []model.RoutingEntry) (*Index, error) {
	idx := &Index{
		entries: entries,
		byID:    make(map[string]int),
		keyword: make(map[string][]int),
		sectors: make(map[string][]int),
	}
	for i, e := range entries {
		if err := model.ValidateStruct(e); err != nil {
			return nil, eris.Wrapf(err, "router: invalid routing entry %d (%q)", i, e.Title)
		}
		if e.SectionID != "" {
			id := strings.ToLower(strings.TrimSpace(e.SectionID))
			if _, dup := idx.byID[id]; dup {
				return nil, eris.Errorf("router: duplicate section id %q at entry %d", e.SectionID, i)
			}
			idx.byID[id] = i
		}
		switch {
		case e.Sector != "":
			s := foldName(e.Sector)
			idx.sectors[s] = append(idx.sectors[s], i)
		case e.Theme != "":
			idx.themed = append(idx.themed, i)
		default:
			for _, kw := range e.Keywords {
				for _, tok := range tokenize(kw) {
					idx.addTerm(tok, i)
				}
			}
			for _, tok := range tokenize(e.Title) {
				idx.addTerm(tok, i)
			}
		}
	}
	return idx, nil
}

func (x *Index) addTerm(term string, i int) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || stopwords[term] {
		return
	}
	posted := x.keyword[term]
	for _, existing := range posted {
		if existing == i {
			return
		}
	}
	x.keyword[term] = append(posted, i)
}

// Len reports the number of routing entries in the index.
func (x *Index) Len() int { return len(x.entries) }

// Subsection is one labelled slice of a review domain, with the keywords
// the fuzzy fallback scores against.
type Subsection struct {
	Label    string   `json:"label" yaml:"label" validate:"required"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Domain names one review domain and the subsections it covers.
type Domain struct {
	Name        string       `json:"name" yaml:"name" validate:"required"`
	Subsections []Subsection `json:"subsections,omitempty" yaml:"subsections,omitempty" validate:"omitempty,dive"`
}

// LiteralKeyword maps a literal phrase to a domain for the fuzzy
// fallback's flat dictionary pass.
type LiteralKeyword struct {
	Phrase string `json:"phrase" yaml:"phrase" validate:"required"`
	Domain string `json:"domain" yaml:"domain" validate:"required"`
}

// Catalog is the domain side of the routing configuration: the known
// review domains with their subsections, the literal fallback dictionary,
// and the project type hint aliases. Build once, read from any goroutine.
type Catalog struct {
	domains  []Domain
	literals []LiteralKeyword
	aliases  map[string]string
	known    map[string]bool
}

// NewCatalog validates the domain catalog. Literal phrases must target a
// declared domain; sector aliases are folded on both sides.
func NewCatalog(domains []Domain, literals []LiteralKeyword, sectorAliases map[string]string) (*Catalog, error) {
	known := make(map[string]bool)
	names := make(map[string]bool, len(domains))
	for i, d := range domains {
		if err := model.ValidateStruct(d); err != nil {
			return nil, eris.Wrapf(err, "router: invalid domain %d (%q)", i, d.Name)
		}
		if names[d.Name] {
			return nil, eris.Errorf("router: duplicate domain %q at index %d", d.Name, i)
		}
		names[d.Name] = true
		known[foldName(d.Name)] = true
		for _, sub := range d.Subsections {
			known[foldName(sub.Label)] = true
		}
	}
	for i, lit := range literals {
		if err := model.ValidateStruct(lit); err != nil {
			return nil, eris.Wrapf(err, "router: invalid literal keyword %d (%q)", i, lit.Phrase)
		}
		if !names[lit.Domain] {
			return nil, eris.Errorf("router: literal %q targets unknown domain %q", lit.Phrase, lit.Domain)
		}
	}
	folded := make(map[string]string, len(sectorAliases))
	for hint, sector := range sectorAliases {
		folded[foldName(hint)] = foldName(sector)
	}
	return &Catalog{domains: domains, literals: literals, aliases: folded, known: known}, nil
}

// Sector resolves a project type hint to its sector bucket. Hints without
// an alias pass through folded, so bare sector names work directly.
func (c *Catalog) Sector(hint string) string {
	folded := foldName(hint)
	if s, ok := c.aliases[folded]; ok {
		return s
	}
	return folded
}

// IsKnownName reports whether the heading names a domain or a subsection
// label outright.
func (c *Catalog) IsKnownName(heading string) bool {
	return c.known[foldName(heading)]
}
