package registry

import (
	"testing"

	"github.com/arden-env/esia-reconcile/internal/model"
	"github.com/arden-env/esia-reconcile/internal/router"
)

func TestLoadRoutingEntries(t *testing.T) {
	path := writeTable(t, "routing.yaml", `
entries:
  - section_id: "2.3"
    title: Project Footprint and Land Take
    keywords: [footprint, land]
    target_domains: [project_description, resettlement_livelihoods]
    priority: high
  - title: Wind Farm Collision
    sector: wind
    keywords: [turbine, collision]
    target_domains: [biodiversity]
`)

	got, err := LoadRoutingEntries(path)
	if err != nil {
		t.Fatalf("LoadRoutingEntries() error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].SectionID != "2.3" || got[0].Priority != model.PriorityHigh {
		t.Errorf("unexpected first entry: %+v", got[0])
	}
	if len(got[0].TargetDomains) != 2 {
		t.Errorf("expected 2 target domains, got %v", got[0].TargetDomains)
	}
	if got[1].Sector != "wind" {
		t.Errorf("expected sector wind, got %q", got[1].Sector)
	}
}

func TestParseRoutingEntries_EmptyTable(t *testing.T) {
	if _, err := ParseRoutingEntries([]byte("entries: []")); err == nil {
		t.Fatal("expected error for empty table")
	}
}

func TestLoadDomainCatalog(t *testing.T) {
	path := writeTable(t, "domains.yaml", `
domains:
  - name: biodiversity
    subsections:
      - label: Critical Habitat
        keywords: [critical, endangered]
  - name: cultural_heritage
literals:
  - phrase: chance find
    domain: cultural_heritage
sector_aliases:
  wind farm: wind
`)

	got, err := LoadDomainCatalog(path)
	if err != nil {
		t.Fatalf("LoadDomainCatalog() error: %v", err)
	}

	if len(got.Domains) != 2 {
		t.Fatalf("expected 2 domains, got %d", len(got.Domains))
	}
	if got.Domains[0].Subsections[0].Label != "Critical Habitat" {
		t.Errorf("unexpected subsection: %+v", got.Domains[0].Subsections[0])
	}
	if len(got.Literals) != 1 || got.Literals[0].Domain != "cultural_heritage" {
		t.Errorf("unexpected literals: %+v", got.Literals)
	}
	if got.SectorAliases["wind farm"] != "wind" {
		t.Errorf("unexpected aliases: %+v", got.SectorAliases)
	}

	// Parsed tables must satisfy the router's own validation.
	if _, err := router.NewCatalog(got.Domains, got.Literals, got.SectorAliases); err != nil {
		t.Fatalf("router.NewCatalog() rejected parsed tables: %v", err)
	}
}

func TestParseDomainCatalog_NoDomains(t *testing.T) {
	if _, err := ParseDomainCatalog([]byte("literals: []")); err == nil {
		t.Fatal("expected error for catalog without domains")
	}
}
