package model

// UnitConversion declares one unit alias and its conversion into a base
// unit. Table order is load-bearing: the substring fallback in the unit
// registry scans conversions in declaration order, so more specific
// aliases must precede the generic ones they contain.
type UnitConversion struct {
	Alias    string  `json:"alias" yaml:"alias" validate:"required"`
	BaseUnit string  `json:"base_unit" yaml:"base_unit" validate:"required"`
	Factor   float64 `json:"factor" yaml:"factor" validate:"required,gt=0"`
}
