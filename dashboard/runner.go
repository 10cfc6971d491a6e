// Package dashboard runs the principle checks across every namespace in
// the registry and aggregates their verdicts into a summary report.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontodash/config"
	"github.com/c360studio/ontodash/owl"
	"github.com/c360studio/ontodash/principles"
	"github.com/c360studio/ontodash/principles/maintenance"
	"github.com/c360studio/ontodash/principles/relations"
	"github.com/c360studio/ontodash/registry"
	"github.com/c360studio/ontodash/vocabulary/ro"
)

// NamespaceResult holds the verdicts of every principle check for one
// namespace, keyed by principle slug.
type NamespaceResult struct {
	Namespace string
	Verdicts  map[string]principles.Verdict
}

// Worst returns the most severe level across the namespace's verdicts.
func (r NamespaceResult) Worst() principles.Level {
	worst := principles.LevelPass
	for _, v := range r.Verdicts {
		if v.Level.WorseThan(worst) {
			worst = v.Level
		}
	}
	return worst
}

// Summary is the outcome of one dashboard run.
type Summary struct {
	// RunID identifies the run in logs.
	RunID string

	// Results holds one entry per checked namespace, in registry order.
	Results []NamespaceResult

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Runner executes the principle checks for every non-obsolete namespace
// in the registry. Execution is synchronous, one namespace at a time;
// a failing namespace never stops the run.
type Runner struct {
	cfg         *config.Config
	reg         *registry.Registry
	relations   *relations.Checker
	maintenance *maintenance.Checker
	metrics     *Metrics
	logger      *slog.Logger
}

// NewRunner creates a Runner. mapping is the canonical relations
// reference mapping supplied by the caller; metrics may be nil.
func NewRunner(cfg *config.Config, mapping ro.Mapping, metrics *Metrics, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Runner{
		cfg:         cfg,
		reg:         registry.New(cfg.Registry.Dir, cfg.Registry.Pattern, logger),
		relations:   relations.NewChecker(mapping, cfg.Reports.Dir, logger),
		maintenance: maintenance.NewChecker(logger),
		metrics:     metrics,
		logger:      logger,
	}
}

// Run checks every non-obsolete registry namespace and writes the
// aggregate summary report. Individual check failures are recorded as
// verdicts; only registry or report I/O failures abort the run.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	runID := uuid.New().String()

	pages, err := r.reg.Load()
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	r.logger.Info("Starting dashboard run",
		slog.String("run_id", runID),
		slog.Int("namespaces", len(pages)))

	var results []NamespaceResult
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if page.IsObsolete {
			r.logger.Debug("Skipping obsolete namespace", slog.String("namespace", page.ID))
			continue
		}
		results = append(results, r.CheckNamespace(page))
	}

	summary := &Summary{
		RunID:    runID,
		Results:  results,
		Duration: time.Since(start),
	}

	if err := r.writeSummary(summary); err != nil {
		return nil, err
	}

	r.metrics.NamespacesChecked.Set(float64(len(results)))
	r.metrics.RunDurationSeconds.Set(summary.Duration.Seconds())

	r.logger.Info("Dashboard run complete",
		slog.String("run_id", runID),
		slog.Int("checked", len(results)),
		slog.Duration("duration", summary.Duration))

	return summary, nil
}

// CheckNamespace runs every principle check for one registry page.
// Check-level errors degrade to informational verdicts so the caller
// can aggregate across namespaces and continue past failures.
func (r *Runner) CheckNamespace(page *registry.Page) NamespaceResult {
	result := NamespaceResult{
		Namespace: page.ID,
		Verdicts:  make(map[string]principles.Verdict),
	}

	source := r.openSource(page.ID)

	relVerdict, err := r.relations.Check(page.ID, source)
	if err != nil {
		r.logger.Error("Relations check failed",
			slog.String("namespace", page.ID),
			slog.String("error", err.Error()))
		relVerdict = principles.Info("check failed: " + err.Error())
	}
	result.Verdicts[principles.Relations.Slug] = relVerdict
	r.metrics.ChecksTotal.WithLabelValues(principles.Relations.Slug, string(relVerdict.Level)).Inc()

	maintVerdict, err := r.maintenance.Check(page.ID, source)
	if err != nil {
		r.logger.Error("Maintenance check failed",
			slog.String("namespace", page.ID),
			slog.String("error", err.Error()))
		maintVerdict = principles.Info("check failed: " + err.Error())
	}
	result.Verdicts[principles.Maintenance.Slug] = maintVerdict
	r.metrics.ChecksTotal.WithLabelValues(principles.Maintenance.Slug, string(maintVerdict.Level)).Inc()

	r.logger.Info("Checked namespace",
		slog.String("namespace", page.ID),
		slog.String("relations", relVerdict.String()),
		slog.String("maintenance", maintVerdict.String()))

	return result
}

// openSource selects the extraction strategy for a namespace's
// artifact: a structured model for regular files, the streaming scanner
// above the configured size threshold. A missing artifact returns nil
// and an undecodable one an Unparseable source; the checks report both
// as informational pass conditions rather than errors.
func (r *Runner) openSource(namespace string) owl.Source {
	path := filepath.Join(r.cfg.Ontologies.Dir, namespace+".owl")

	info, err := os.Stat(path)
	if err != nil {
		r.logger.Debug("Ontology artifact not available",
			slog.String("namespace", namespace),
			slog.String("path", path))
		return nil
	}

	if info.Size() > r.cfg.Ontologies.LargeFileBytes {
		r.logger.Debug("Using streaming extraction for large artifact",
			slog.String("namespace", namespace),
			slog.Int64("size", info.Size()))
		return owl.NewFileScanner(path, r.logger)
	}

	model, err := owl.LoadModel(path)
	if err != nil {
		// The artifact exists but did not decode; hand the checks a
		// source that says so, rather than pretending it is missing.
		r.logger.Warn("Failed to load ontology model",
			slog.String("namespace", namespace),
			slog.String("error", err.Error()))
		return owl.Unparseable{Err: err}
	}
	return model
}

// writeSummary writes the aggregate run report, one row per
// namespace/principle pair.
func (r *Runner) writeSummary(summary *Summary) error {
	path := filepath.Join(r.cfg.Reports.Dir, "dashboard.tsv")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Namespace\tPrinciple\tVerdict\n")
	for _, res := range summary.Results {
		for _, p := range []principles.Principle{principles.Relations, principles.Maintenance} {
			v, ok := res.Verdicts[p.Slug]
			if !ok {
				continue
			}
			sb.WriteString(res.Namespace)
			sb.WriteByte('\t')
			sb.WriteString(p.Slug)
			sb.WriteByte('\t')
			sb.WriteString(v.String())
			sb.WriteByte('\n')
		}
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write summary report: %w", err)
	}
	return nil
}
