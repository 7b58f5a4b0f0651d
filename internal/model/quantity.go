package model

// Fragment is a unit of document text with an opaque location label
// (page, section id, paragraph anchor). The engine never interprets the
// label, it only carries it through to findings.
type Fragment struct {
	Text     string `json:"text"`
	Location string `json:"location,omitempty"`
}

// ExtractedQuantity is a numeric value pulled out of free text together
// with its unit, both as written and normalized to a base unit.
type ExtractedQuantity struct {
	RawValue        float64 `json:"raw_value"`
	RawUnit         string  `json:"raw_unit"`
	NormalizedValue float64 `json:"normalized_value"`
	BaseUnit        string  `json:"base_unit"`
	// Start and End delimit the raw match within the source fragment,
	// in bytes. End is exclusive.
	Start int `json:"start"`
	End   int `json:"end"`
}
