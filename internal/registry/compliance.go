package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/arden-env/esia-reconcile/internal/model"
)

// ThresholdTables pairs the probes that pull values out of text with the
// specs those values are judged against.
type ThresholdTables struct {
	Probes []model.ThresholdProbe `yaml:"probes"`
	Specs  []model.ThresholdSpec  `yaml:"specs"`
}

// ChecklistTables carries the required disclosures and the section
// categories whose gaps are graded high severity.
type ChecklistTables struct {
	Items              []model.ChecklistItem `yaml:"items"`
	PriorityCategories []string              `yaml:"priority_categories,omitempty"`
}

// LoadThresholds reads a YAML threshold table from path.
func LoadThresholds(path string) (*ThresholdTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read thresholds")
	}
	return ParseThresholds(data)
}

// ParseThresholds parses a YAML threshold table. A file with probes but no
// specs, or the reverse, is rejected: probed values would never be judged,
// or specs would never see a value.
func ParseThresholds(data []byte) (*ThresholdTables, error) {
	var f ThresholdTables
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal thresholds")
	}
	if len(f.Probes) == 0 {
		return nil, eris.New("registry: threshold table has no probes")
	}
	if len(f.Specs) == 0 {
		return nil, eris.New("registry: threshold table has no specs")
	}
	return &f, nil
}

// LoadChecklist reads a YAML disclosure checklist from path.
func LoadChecklist(path string) (*ChecklistTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read checklist")
	}
	return ParseChecklist(data)
}

// ParseChecklist parses a YAML disclosure checklist.
func ParseChecklist(data []byte) (*ChecklistTables, error) {
	var f ChecklistTables
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal checklist")
	}
	if len(f.Items) == 0 {
		return nil, eris.New("registry: checklist has no items")
	}
	return &f, nil
}
