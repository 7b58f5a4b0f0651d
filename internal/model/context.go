package model

// ParameterContext describes one environmental or social parameter: the
// trigger patterns that recognize it in prose and the units it may
// legitimately be quoted in. An empty string inside ValidUnits means a
// bare number with no unit is acceptable for this parameter.
type ParameterContext struct {
	Name       string   `json:"name" yaml:"name" validate:"required"`
	Patterns   []string `json:"patterns" yaml:"patterns" validate:"required,min=1,dive,required"`
	ValidUnits []string `json:"valid_units,omitempty" yaml:"valid_units,omitempty"`
}
