// Package owl provides ontology property extraction from OWL artifacts.
//
// Two extraction strategies implement the same Source capability: a
// structured model loaded into memory (Model) and a streaming line scan
// for artifacts too large to load (FileScanner).
package owl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnparseable marks an artifact that exists but could not be
// decoded. Checks report it as "unable to parse ontology" rather than
// a load failure.
var ErrUnparseable = errors.New("ontology not parseable")

// RDF/XML namespace URIs the loaders resolve element names against.
const (
	// NamespaceOWL is the OWL vocabulary namespace.
	NamespaceOWL = "http://www.w3.org/2002/07/owl#"

	// NamespaceRDF is the RDF syntax namespace.
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// NamespaceRDFS is the RDF Schema namespace (rdfs:label).
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
)

// PropertyRecord is one declared ontology property: its normalized label
// paired with its IRI. Two records are "the same label" iff their
// normalized labels are equal.
type PropertyRecord struct {
	// Label is the normalized rdfs:label of the property.
	Label string

	// IRI is the property's resource identifier, kept verbatim.
	IRI string
}

// Source extracts property records from one ontology artifact.
// Implementations return only non-obsolete, labeled properties with
// normalized labels.
type Source interface {
	// Properties returns the non-obsolete property records declared by
	// the ontology. Properties without a label annotation are excluded.
	Properties() ([]PropertyRecord, error)

	// VersionIRI returns the ontology-level version IRI, or the empty
	// string when the ontology does not declare one.
	VersionIRI() (string, error)
}

// Unparseable is the Source for an artifact that was found but failed
// to decode; every extraction fails with ErrUnparseable so checks can
// distinguish a bad format from a missing artifact.
type Unparseable struct {
	// Err is the underlying decode failure.
	Err error
}

// Properties always fails with ErrUnparseable.
func (u Unparseable) Properties() ([]PropertyRecord, error) {
	return nil, fmt.Errorf("%w: %v", ErrUnparseable, u.Err)
}

// VersionIRI always fails with ErrUnparseable.
func (u Unparseable) VersionIRI() (string, error) {
	return "", fmt.Errorf("%w: %v", ErrUnparseable, u.Err)
}

// langTagPattern matches a trailing language tag such as "@en" or "@pt-BR".
var langTagPattern = regexp.MustCompile(`@[A-Za-z]{2,3}(-[A-Za-z0-9]+)*$`)

// NormalizeLabel canonicalizes a property label for comparison: trims
// whitespace, strips trailing language tags and surrounding quote
// characters, lowercases, and applies Unicode NFC. It is idempotent.
func NormalizeLabel(label string) string {
	s := strings.TrimSpace(label)
	// Quote layers and language tags can nest (`"has part@en"@en`);
	// strip to a fixpoint so one pass fully canonicalizes. Each round
	// only ever shortens the string, so this terminates.
	for {
		prev := s
		s = strings.Trim(s, `"'`)
		s = langTagPattern.ReplaceAllString(s, "")
		if s == prev {
			break
		}
	}
	s = strings.ToLower(s)
	s = norm.NFC.String(s)
	return strings.TrimSpace(s)
}
