package model

// FactMention is one occurrence of a candidate fact at a specific document
// location. Mentions are produced by the upstream extraction collaborator;
// the engine only reads and annotates them.
type FactMention struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	RawValue        string   `json:"raw_value"`
	RawUnit         string   `json:"raw_unit"`
	NormalizedValue float64  `json:"normalized_value"`
	NormalizedUnit  string   `json:"normalized_unit"`
	Evidence        string   `json:"evidence,omitempty"`
	Location        string   `json:"location,omitempty"`
	Aliases         []string `json:"aliases,omitempty"`
}

// NewFactMention builds a FactMention with the implicit upstream defaults
// made explicit: the normalized unit falls back to the raw unit when the
// extractor did not supply one, and the alias list starts with the name
// itself.
func NewFactMention(name, factType, rawValue, rawUnit string, normalizedValue float64, evidence, location string) FactMention {
	return FactMention{
		Name:            name,
		Type:            factType,
		RawValue:        rawValue,
		RawUnit:         rawUnit,
		NormalizedValue: normalizedValue,
		NormalizedUnit:  rawUnit,
		Evidence:        evidence,
		Location:        location,
		Aliases:         []string{name},
	}
}

// FactCluster groups mentions that share a canonical signature. Built by
// the clusterer, annotated by the conflict detector, then treated as
// immutable by downstream consumers.
type FactCluster struct {
	Signature           string        `json:"signature"`
	Mentions            []FactMention `json:"mentions"`
	OccurrenceCount     int           `json:"occurrence_count"`
	HasConflict         bool          `json:"has_conflict"`
	ConflictDescription string        `json:"conflict_description,omitempty"`
	MinValue            float64       `json:"min_value"`
	MaxValue            float64       `json:"max_value"`
}

// UsableValues returns the cluster's normalized values that are strictly
// positive. Zero is indistinguishable from "value never set" upstream, so
// non-positive values are excluded from numeric comparison.
func (c *FactCluster) UsableValues() []float64 {
	var vals []float64
	for _, m := range c.Mentions {
		if m.NormalizedValue > 0 {
			vals = append(vals, m.NormalizedValue)
		}
	}
	return vals
}
