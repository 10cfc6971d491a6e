package principles

import "fmt"

// Principle identifies one curation principle.
type Principle struct {
	// Number is the principle's registry number (e.g. 7 for Relations).
	Number int

	// Slug is the short machine name used in metric labels.
	Slug string

	// Title is the human-readable principle name.
	Title string
}

// Principles with automated checks in this repository.
var (
	// Relations requires ontologies to reuse canonical relations rather
	// than redefining them.
	Relations = Principle{Number: 7, Slug: "relations", Title: "Relations"}

	// Maintenance requires ontologies to be regularly updated.
	Maintenance = Principle{Number: 16, Slug: "maintenance", Title: "Maintenance"}
)

// ReportName returns the namespace-scoped report filename for this
// principle, e.g. "fp7-uberon.tsv".
func (p Principle) ReportName(namespace string) string {
	return fmt.Sprintf("fp%d-%s.tsv", p.Number, namespace)
}
