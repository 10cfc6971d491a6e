// Package relations implements the relations principle check: every
// relation an ontology declares should be a canonical relation from the
// reference relations ontology, reused by identifier rather than
// redefined under a local one.
package relations

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/c360studio/ontodash/owl"
	"github.com/c360studio/ontodash/principles"
	"github.com/c360studio/ontodash/vocabulary/ro"
)

// Finding issue strings written to the report. The "shares label"
// variant is completed with the canonical identifier.
const (
	issueSharesLabel  = "shares label with %s"
	issueNonCanonical = "not a canonical relation"
)

// Checker validates one ontology's declared properties against the
// canonical reference mapping.
type Checker struct {
	mapping    ro.Mapping
	reportsDir string
	logger     *slog.Logger
}

// NewChecker creates a Checker. reportsDir is the root reports
// directory; per-namespace reports land under its principles/
// subdirectory.
func NewChecker(mapping ro.Mapping, reportsDir string, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{mapping: mapping, reportsDir: reportsDir, logger: logger}
}

// Check classifies the ontology's non-obsolete properties against the
// reference mapping and returns the verdict.
//
// A property whose identifier is a canonical identifier is compliant,
// whatever its label. A property whose label matches a canonical label
// under a different identifier is a duplicate violation (ERROR). A
// property matching neither is a non-canonical finding (INFO). Whenever
// any finding exists, a TSV report is written alongside the verdict.
//
// The check fails open: a nil source, or a source whose artifact does
// not exist, yields an informational "unable to load" verdict rather
// than an error. Inability to check must not block a release pipeline.
// I/O failures during an otherwise successful read do propagate.
func (c *Checker) Check(namespace string, source owl.Source) (principles.Verdict, error) {
	if namespace == ro.ReferenceNamespace {
		return principles.Pass(), nil
	}
	if source == nil {
		return principles.Info("unable to load ontology"), nil
	}

	records, err := source.Properties()
	if err != nil {
		// A missing or undecodable artifact is the same load failure
		// here; only the maintenance check words the two apart.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, owl.ErrUnparseable) {
			c.logger.Info("Ontology artifact not loadable, skipping relations check",
				slog.String("namespace", namespace))
			return principles.Info("unable to load ontology"), nil
		}
		return principles.Verdict{}, fmt.Errorf("extract properties for %s: %w", namespace, err)
	}

	// Keyed by property IRI; values are the report issue strings.
	duplicates := make(map[string]finding)
	nonCanonical := make(map[string]finding)

	for _, r := range records {
		if c.mapping.ContainsIRI(r.IRI) {
			continue
		}
		if canonical, ok := c.mapping.Lookup(r.Label); ok {
			duplicates[r.IRI] = finding{
				label: r.Label,
				issue: fmt.Sprintf(issueSharesLabel, canonical),
			}
			continue
		}
		nonCanonical[r.IRI] = finding{label: r.Label, issue: issueNonCanonical}
	}

	if len(duplicates) == 0 && len(nonCanonical) == 0 {
		return principles.Pass(), nil
	}

	reportPath := filepath.Join(c.reportsDir, "principles", principles.Relations.ReportName(namespace))
	if err := writeReport(reportPath, duplicates, nonCanonical); err != nil {
		return principles.Verdict{}, fmt.Errorf("write relations report for %s: %w", namespace, err)
	}

	affordance := fmt.Sprintf("see %s for details", reportPath)

	if len(duplicates) > 0 {
		messages := []string{fmt.Sprintf("%d duplicate relation(s)", len(duplicates))}
		if len(nonCanonical) > 0 {
			messages = append(messages, fmt.Sprintf("%d non-canonical relation(s)", len(nonCanonical)))
		}
		messages = append(messages, affordance)
		return principles.Error(messages...), nil
	}

	return principles.Info(
		fmt.Sprintf("%d non-canonical relation(s)", len(nonCanonical)),
		affordance,
	), nil
}

// finding is one report row minus its IRI key.
type finding struct {
	label string
	issue string
}
