package ro

import "github.com/c360studio/ontodash/owl"

// Mapping is the immutable reference mapping from normalized canonical
// relation label to canonical identifier. It is built once per run from
// the canonical relations source and treated as read-only ground truth.
type Mapping struct {
	byLabel map[string]string
	iris    map[string]bool
}

// NewMapping builds a Mapping from normalized label → IRI pairs.
func NewMapping(byLabel map[string]string) Mapping {
	labels := make(map[string]string, len(byLabel))
	iris := make(map[string]bool, len(byLabel))
	for label, iri := range byLabel {
		normalized := owl.NormalizeLabel(label)
		labels[normalized] = iri
		iris[iri] = true
	}
	return Mapping{byLabel: labels, iris: iris}
}

// MappingFromRecords builds a Mapping from the property records of the
// canonical relations artifact. When two records share a normalized
// label the first one wins; canonical artifacts do not duplicate labels
// in practice.
func MappingFromRecords(records []owl.PropertyRecord) Mapping {
	byLabel := make(map[string]string, len(records))
	iris := make(map[string]bool, len(records))
	for _, r := range records {
		if _, seen := byLabel[r.Label]; !seen {
			byLabel[r.Label] = r.IRI
		}
		iris[r.IRI] = true
	}
	return Mapping{byLabel: byLabel, iris: iris}
}

// Lookup returns the canonical IRI for a normalized label.
func (m Mapping) Lookup(label string) (string, bool) {
	iri, ok := m.byLabel[label]
	return iri, ok
}

// ContainsIRI reports whether iri is a canonical relation identifier.
func (m Mapping) ContainsIRI(iri string) bool {
	return m.iris[iri]
}

// Len returns the number of canonical relations in the mapping.
func (m Mapping) Len() int {
	return len(m.byLabel)
}
