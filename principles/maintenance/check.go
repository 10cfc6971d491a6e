// Package maintenance implements the maintenance principle check: an
// ontology should be regularly updated, judged by the date embedded in
// its version IRI.
package maintenance

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"time"

	"github.com/c360studio/ontodash/owl"
	"github.com/c360studio/ontodash/principles"
)

// versionIRIPattern extracts the release date from an OBO Library
// version IRI, e.g. http://purl.obolibrary.org/obo/go/2024-01-01/go.owl.
var versionIRIPattern = regexp.MustCompile(`http://purl\.obolibrary\.org/obo/.*/([0-9]{4}-[0-9]{2}-[0-9]{2})/.*`)

// oldVersionMsg is the finding message for a stale version IRI.
const oldVersionMsg = "last version (%s) is over %s year(s) old"

// Checker checks how recently an ontology was released.
type Checker struct {
	logger *slog.Logger

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewChecker creates a maintenance Checker.
func NewChecker(logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{logger: logger, now: time.Now}
}

// WithClock overrides the checker's clock.
func (c *Checker) WithClock(now func() time.Time) *Checker {
	c.now = now
	return c
}

// Check reads the ontology's version IRI and grades its age: over three
// years is an error, over two a warning, over one informational. Like
// the other principle checks it fails open: a missing or unreadable
// artifact, a missing version IRI, or a version IRI without date
// information all yield informational verdicts, never errors.
func (c *Checker) Check(namespace string, source owl.Source) (principles.Verdict, error) {
	if source == nil {
		return principles.Info("unable to load ontology"), nil
	}

	versionIRI, err := source.VersionIRI()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Info("Ontology artifact not found, skipping maintenance check",
				slog.String("namespace", namespace))
			return principles.Info("unable to load ontology"), nil
		}
		if errors.Is(err, owl.ErrUnparseable) {
			c.logger.Info("Ontology artifact in bad format, skipping maintenance check",
				slog.String("namespace", namespace))
			return principles.Info("unable to parse ontology"), nil
		}
		return principles.Verdict{}, fmt.Errorf("read version IRI for %s: %w", namespace, err)
	}

	if versionIRI == "" {
		return principles.Info("missing version IRI to check date"), nil
	}
	return c.checkVersionIRI(versionIRI), nil
}

// checkVersionIRI grades the date embedded in the version IRI.
func (c *Checker) checkVersionIRI(versionIRI string) principles.Verdict {
	m := versionIRIPattern.FindStringSubmatch(versionIRI)
	if m == nil {
		return principles.Info("version IRI does not have date information")
	}

	date := m[1]
	versionDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return principles.Info("version IRI does not have date information")
	}

	now := c.now()
	switch {
	case versionDate.Before(now.AddDate(0, 0, -3*365)):
		return principles.Error(fmt.Sprintf(oldVersionMsg, date, "three"))
	case versionDate.Before(now.AddDate(0, 0, -2*365)):
		return principles.Warn(fmt.Sprintf(oldVersionMsg, date, "two"))
	case versionDate.Before(now.AddDate(0, 0, -365)):
		return principles.Info(fmt.Sprintf(oldVersionMsg, date, "one"))
	}
	return principles.Pass()
}
