// Package reconcile wires clustering, consistency, routing, and compliance
// into one engine and runs them over an extracted document set.
package reconcile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arden-env/esia-reconcile/internal/cluster"
	"github.com/arden-env/esia-reconcile/internal/compliance"
	"github.com/arden-env/esia-reconcile/internal/config"
	"github.com/arden-env/esia-reconcile/internal/consistency"
	"github.com/arden-env/esia-reconcile/internal/extract"
	"github.com/arden-env/esia-reconcile/internal/model"
	"github.com/arden-env/esia-reconcile/internal/router"
	"github.com/arden-env/esia-reconcile/internal/units"
)

// Reconciler runs the full set of cross-document checks and assembles the
// review report.
type Reconciler struct {
	cfg          *config.Settings
	checker      *consistency.Checker
	standardizer *consistency.Standardizer
	detector     *cluster.Detector
	router       *router.Router
	thresholds   *compliance.Validator
	gaps         *compliance.Analyzer
}

// New creates a Reconciler from prepared tables. The quantity extractor
// and context classifier are derived from the registry and catalog.
func New(
	cfg *config.Settings,
	registry *units.Registry,
	catalog *units.Catalog,
	rtr *router.Router,
	thresholds *compliance.Validator,
	gaps *compliance.Analyzer,
) *Reconciler {
	extractor := extract.NewExtractor(registry)
	classifier := units.NewClassifier(catalog)

	return &Reconciler{
		cfg:          cfg,
		checker:      consistency.NewChecker(extractor, classifier, cfg.Engine.ConsistencyDiffPct, cfg.Engine.HighSeverityPct),
		standardizer: consistency.NewStandardizer(extractor, classifier),
		detector:     cluster.NewDetector(cfg.Engine.ConflictTolerance),
		router:       rtr,
		thresholds:   thresholds,
		gaps:         gaps,
	}
}

// Run executes every check over the extracted mentions and text fragments
// and assembles one report. The checks are independent of each other and
// run concurrently.
func (r *Reconciler) Run(ctx context.Context, mentions []model.FactMention, fragments []model.Fragment) (*model.ReviewReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "reconcile: run")
	}

	log := zap.L().With(zap.Int("mentions", len(mentions)), zap.Int("fragments", len(fragments)))
	log.Info("reconcile: starting run")

	report := &model.ReviewReport{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}

	var g errgroup.Group

	g.Go(func() error {
		clusters := cluster.Group(mentions)
		for i := range clusters {
			r.detector.Annotate(&clusters[i])
		}
		report.Clusters = clusters
		return nil
	})
	g.Go(func() error {
		report.ConsistencyIssues = r.checker.Check(fragments)
		return nil
	})
	g.Go(func() error {
		report.UnitMixIssues = r.standardizer.Check(fragments)
		return nil
	})
	g.Go(func() error {
		report.ThresholdResults = r.thresholds.Check(fragments)
		return nil
	})
	g.Go(func() error {
		report.GapResults = r.gaps.Check(fragments)
		return nil
	})

	// Each goroutine writes a distinct report field; Wait only synchronizes.
	_ = g.Wait()

	report.Summary = buildSummary(report, len(mentions))

	log.Info("reconcile: run complete",
		zap.String("run_id", report.RunID),
		zap.Int("clusters", report.Summary.TotalClusters),
		zap.Int("conflicting_clusters", report.Summary.ConflictingClusters),
		zap.Int("consistency_issues", report.Summary.ConsistencyIssues),
		zap.Int("threshold_exceedances", report.Summary.ThresholdExceedances),
		zap.Int("missing_disclosures", report.Summary.MissingDisclosures))

	return report, nil
}

// RouteSections routes a table of contents to review domains and records
// why skipped headings were skipped. Truncation to the configured top N
// applies per heading.
func (r *Reconciler) RouteSections(headings []string, projectTypeHint string) *model.RoutedSections {
	out := &model.RoutedSections{}

	for _, h := range headings {
		if !r.router.ShouldRoute(h) {
			out.Skipped = append(out.Skipped, model.SkippedSection{Heading: h, Reason: "non-substantive heading"})
			continue
		}
		matches := r.router.Route(h, projectTypeHint, r.cfg.Router.TopN)
		if len(matches) == 0 {
			out.Skipped = append(out.Skipped, model.SkippedSection{Heading: h, Reason: "no domain matched"})
			continue
		}
		out.Routed = append(out.Routed, model.RoutedSection{Heading: h, Matches: matches})
	}

	return out
}

func buildSummary(report *model.ReviewReport, totalMentions int) model.ReviewSummary {
	s := model.ReviewSummary{
		TotalMentions:     totalMentions,
		TotalClusters:     len(report.Clusters),
		ConsistencyIssues: len(report.ConsistencyIssues),
		UnitMixIssues:     len(report.UnitMixIssues),
	}

	for _, c := range report.Clusters {
		if c.OccurrenceCount > 1 {
			s.RepeatedFacts++
		}
		if c.HasConflict {
			s.ConflictingClusters++
		}
	}
	for _, issue := range report.ConsistencyIssues {
		if issue.Severity == model.SeverityHigh {
			s.HighSeverityIssues++
		}
	}
	for _, res := range report.ThresholdResults {
		switch res.Status {
		case model.StatusExceedance:
			s.ThresholdExceedances++
		case model.StatusApproaching:
			s.ThresholdApproaching++
		}
	}
	for _, gap := range report.GapResults {
		if gap.Status == model.GapMissing {
			s.MissingDisclosures++
		}
	}

	return s
}
