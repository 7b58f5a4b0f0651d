// Package registry loads the engine's lookup tables from YAML files. Each
// loader has a Parse twin that works on raw bytes; structural validation
// stays with the constructors that consume the tables.
package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/arden-env/esia-reconcile/internal/model"
)

type unitsFile struct {
	Conversions []model.UnitConversion `yaml:"conversions"`
}

type contextsFile struct {
	Contexts []model.ParameterContext `yaml:"contexts"`
}

// LoadUnitConversions reads a YAML unit conversion table from path.
// Declaration order in the file is preserved; the unit registry's
// substring fallback depends on it.
func LoadUnitConversions(path string) ([]model.UnitConversion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read unit conversions")
	}
	return ParseUnitConversions(data)
}

// ParseUnitConversions parses a YAML unit conversion table.
func ParseUnitConversions(data []byte) ([]model.UnitConversion, error) {
	var f unitsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal unit conversions")
	}
	if len(f.Conversions) == 0 {
		return nil, eris.New("registry: unit conversion table has no conversions")
	}
	return f.Conversions, nil
}

// LoadParameterContexts reads a YAML parameter context table from path.
func LoadParameterContexts(path string) ([]model.ParameterContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read parameter contexts")
	}
	return ParseParameterContexts(data)
}

// ParseParameterContexts parses a YAML parameter context table.
func ParseParameterContexts(data []byte) ([]model.ParameterContext, error) {
	var f contextsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal parameter contexts")
	}
	if len(f.Contexts) == 0 {
		return nil, eris.New("registry: parameter context table has no contexts")
	}
	return f.Contexts, nil
}
