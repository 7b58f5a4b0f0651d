package reconcile

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/arden-env/esia-reconcile/internal/compliance"
	"github.com/arden-env/esia-reconcile/internal/config"
	"github.com/arden-env/esia-reconcile/internal/model"
	"github.com/arden-env/esia-reconcile/internal/registry"
	"github.com/arden-env/esia-reconcile/internal/router"
	"github.com/arden-env/esia-reconcile/internal/units"
)

// NewDefault creates a Reconciler on the built-in tables.
func NewDefault(cfg *config.Settings) (*Reconciler, error) {
	return build(cfg,
		units.DefaultConversions(),
		units.DefaultContexts(),
		router.DefaultEntries(),
		registry.DomainTables{
			Domains:       router.DefaultDomains(),
			Literals:      router.DefaultLiterals(),
			SectorAliases: router.DefaultSectorAliases(),
		},
		registry.ThresholdTables{
			Probes: compliance.DefaultProbes(),
			Specs:  compliance.DefaultThresholds(),
		},
		registry.ChecklistTables{
			Items:              compliance.DefaultChecklist(),
			PriorityCategories: compliance.DefaultPriorityCategories(),
		},
	)
}

// NewFromConfig creates a Reconciler honoring the table file overrides in
// cfg.Tables. Any path left empty keeps the built-in table for that
// concern.
func NewFromConfig(cfg *config.Settings) (*Reconciler, error) {
	conversions := units.DefaultConversions()
	if cfg.Tables.UnitsFile != "" {
		loaded, err := registry.LoadUnitConversions(cfg.Tables.UnitsFile)
		if err != nil {
			return nil, err
		}
		conversions = loaded
	}

	contexts := units.DefaultContexts()
	if cfg.Tables.ContextsFile != "" {
		loaded, err := registry.LoadParameterContexts(cfg.Tables.ContextsFile)
		if err != nil {
			return nil, err
		}
		contexts = loaded
	}

	entries := router.DefaultEntries()
	if cfg.Tables.RoutingFile != "" {
		loaded, err := registry.LoadRoutingEntries(cfg.Tables.RoutingFile)
		if err != nil {
			return nil, err
		}
		entries = loaded
	}

	domains := registry.DomainTables{
		Domains:       router.DefaultDomains(),
		Literals:      router.DefaultLiterals(),
		SectorAliases: router.DefaultSectorAliases(),
	}
	if cfg.Tables.DomainsFile != "" {
		loaded, err := registry.LoadDomainCatalog(cfg.Tables.DomainsFile)
		if err != nil {
			return nil, err
		}
		domains = *loaded
	}

	thresholds := registry.ThresholdTables{
		Probes: compliance.DefaultProbes(),
		Specs:  compliance.DefaultThresholds(),
	}
	if cfg.Tables.ThresholdsFile != "" {
		loaded, err := registry.LoadThresholds(cfg.Tables.ThresholdsFile)
		if err != nil {
			return nil, err
		}
		thresholds = *loaded
	}

	checklist := registry.ChecklistTables{
		Items:              compliance.DefaultChecklist(),
		PriorityCategories: compliance.DefaultPriorityCategories(),
	}
	if cfg.Tables.ChecklistFile != "" {
		loaded, err := registry.LoadChecklist(cfg.Tables.ChecklistFile)
		if err != nil {
			return nil, err
		}
		checklist = *loaded
	}

	return build(cfg, conversions, contexts, entries, domains, thresholds, checklist)
}

// build runs every table through its constructor and wires the result.
func build(
	cfg *config.Settings,
	conversions []model.UnitConversion,
	contexts []model.ParameterContext,
	entries []model.RoutingEntry,
	domains registry.DomainTables,
	thresholds registry.ThresholdTables,
	checklist registry.ChecklistTables,
) (*Reconciler, error) {
	unitRegistry, err := units.NewRegistry(conversions)
	if err != nil {
		return nil, eris.Wrap(err, "reconcile: build unit registry")
	}
	paramCatalog, err := units.NewCatalog(contexts)
	if err != nil {
		return nil, eris.Wrap(err, "reconcile: build parameter catalog")
	}
	index, err := router.NewIndex(entries)
	if err != nil {
		return nil, eris.Wrap(err, "reconcile: build routing index")
	}
	domainCatalog, err := router.NewCatalog(domains.Domains, domains.Literals, domains.SectorAliases)
	if err != nil {
		return nil, eris.Wrap(err, "reconcile: build domain catalog")
	}
	rtr, err := router.NewRouter(index, domainCatalog, time.Duration(cfg.Router.CacheTTLSecs)*time.Second)
	if err != nil {
		return nil, eris.Wrap(err, "reconcile: build router")
	}
	validator, err := compliance.NewValidator(thresholds.Probes, thresholds.Specs)
	if err != nil {
		return nil, eris.Wrap(err, "reconcile: build threshold validator")
	}
	analyzer, err := compliance.NewAnalyzer(checklist.Items, checklist.PriorityCategories)
	if err != nil {
		return nil, eris.Wrap(err, "reconcile: build gap analyzer")
	}

	return New(cfg, unitRegistry, paramCatalog, rtr, validator, analyzer), nil
}
