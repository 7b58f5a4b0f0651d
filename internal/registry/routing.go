package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/arden-env/esia-reconcile/internal/model"
	"github.com/arden-env/esia-reconcile/internal/router"
)

type routingFile struct {
	Entries []model.RoutingEntry `yaml:"entries"`
}

// DomainTables groups the three inputs of a router domain catalog as they
// appear in one YAML file. Literals and sector aliases are optional.
type DomainTables struct {
	Domains       []router.Domain         `yaml:"domains"`
	Literals      []router.LiteralKeyword `yaml:"literals,omitempty"`
	SectorAliases map[string]string       `yaml:"sector_aliases,omitempty"`
}

// LoadRoutingEntries reads a YAML routing table from path.
func LoadRoutingEntries(path string) ([]model.RoutingEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read routing entries")
	}
	return ParseRoutingEntries(data)
}

// ParseRoutingEntries parses a YAML routing table.
func ParseRoutingEntries(data []byte) ([]model.RoutingEntry, error) {
	var f routingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal routing entries")
	}
	if len(f.Entries) == 0 {
		return nil, eris.New("registry: routing table has no entries")
	}
	return f.Entries, nil
}

// LoadDomainCatalog reads a YAML domain catalog from path.
func LoadDomainCatalog(path string) (*DomainTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read domain catalog")
	}
	return ParseDomainCatalog(data)
}

// ParseDomainCatalog parses a YAML domain catalog.
func ParseDomainCatalog(data []byte) (*DomainTables, error) {
	var f DomainTables
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal domain catalog")
	}
	if len(f.Domains) == 0 {
		return nil, eris.New("registry: domain catalog has no domains")
	}
	return &f, nil
}
