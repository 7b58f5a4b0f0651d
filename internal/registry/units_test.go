package registry

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTable drops YAML content into a temp file and returns its path.
func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadUnitConversions(t *testing.T) {
	path := writeTable(t, "units.yaml", `
conversions:
  - alias: ha
    base_unit: sq m
    factor: 10000
  - alias: km2
    base_unit: sq m
    factor: 1000000
`)

	got, err := LoadUnitConversions(path)
	if err != nil {
		t.Fatalf("LoadUnitConversions() error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 conversions, got %d", len(got))
	}
	if got[0].Alias != "ha" || got[0].Factor != 10000 {
		t.Errorf("unexpected first conversion: %+v", got[0])
	}
	if got[1].BaseUnit != "sq m" {
		t.Errorf("expected base_unit sq m, got %s", got[1].BaseUnit)
	}
}

func TestLoadUnitConversions_NotFound(t *testing.T) {
	if _, err := LoadUnitConversions("/nonexistent/units.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseUnitConversions_MalformedYAML(t *testing.T) {
	if _, err := ParseUnitConversions([]byte("conversions: [{")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestParseUnitConversions_EmptyTable(t *testing.T) {
	if _, err := ParseUnitConversions([]byte("conversions: []")); err == nil {
		t.Fatal("expected error for empty table")
	}
}

func TestLoadParameterContexts(t *testing.T) {
	path := writeTable(t, "contexts.yaml", `
contexts:
  - name: project_area
    patterns:
      - study area
      - land ?take
    valid_units: [ha, km2]
  - name: workforce
    patterns: [workforce]
    valid_units: ["", people]
`)

	got, err := LoadParameterContexts(path)
	if err != nil {
		t.Fatalf("LoadParameterContexts() error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 contexts, got %d", len(got))
	}
	if got[0].Name != "project_area" || len(got[0].Patterns) != 2 {
		t.Errorf("unexpected first context: %+v", got[0])
	}
	// The empty string marks "bare number acceptable" and must survive parsing.
	if got[1].ValidUnits[0] != "" {
		t.Errorf("expected empty valid unit, got %q", got[1].ValidUnits[0])
	}
}

func TestParseParameterContexts_EmptyTable(t *testing.T) {
	if _, err := ParseParameterContexts([]byte("contexts: []")); err == nil {
		t.Fatal("expected error for empty table")
	}
}
