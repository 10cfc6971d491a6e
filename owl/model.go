package owl

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Property is a declared object or data property in a loaded ontology
// model, together with the annotation values the checks care about.
type Property struct {
	// IRI is the property's resource identifier.
	IRI string

	// Label is the raw rdfs:label value, unnormalized.
	Label string

	// HasLabel reports whether a label annotation was present at all.
	// Properties without one are excluded from extraction.
	HasLabel bool

	// Deprecated reports whether the property carries an owl:deprecated
	// annotation with a true value.
	Deprecated bool
}

// Model is a structured in-memory ontology: the property signature and
// header metadata of one OWL artifact.
type Model struct {
	// IRI is the ontology IRI from the owl:Ontology header.
	IRI string

	// VersionIRIValue is the owl:versionIRI from the header, if any.
	VersionIRIValue string

	// ObjectProperties holds every owl:ObjectProperty declaration.
	ObjectProperties []Property

	// DataProperties holds every owl:DatatypeProperty declaration.
	DataProperties []Property
}

// LoadModel reads and decodes an RDF/XML ontology artifact into a Model.
// The returned error preserves fs.ErrNotExist when the artifact is
// missing, so callers can distinguish "not found" from decode failures.
func LoadModel(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := DecodeModel(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}

// DecodeModel decodes an RDF/XML serialization into a Model. Only the
// elements the checks consume are materialized: the ontology header and
// the object/data property signature with label and deprecation
// annotations.
func DecodeModel(r io.Reader) (*Model, error) {
	dec := xml.NewDecoder(r)
	m := &Model{}

	// current is non-nil while inside a property element; kind remembers
	// which signature slice to append to on the closing tag. nested
	// counts same-kind elements opened inside (e.g. rdf:about-less
	// references in axioms) so they don't close the declaration early.
	var current *Property
	var currentKind string
	var nested int

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse RDF/XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Space == NamespaceOWL && t.Name.Local == "Ontology":
				m.IRI = rdfAbout(t)

			case t.Name.Space == NamespaceOWL && t.Name.Local == "versionIRI":
				m.VersionIRIValue = rdfResource(t)

			case t.Name.Space == NamespaceOWL && (t.Name.Local == "ObjectProperty" || t.Name.Local == "DatatypeProperty"):
				if current == nil {
					current = &Property{IRI: rdfAbout(t)}
					currentKind = t.Name.Local
				} else if t.Name.Local == currentKind {
					nested++
				}

			case t.Name.Space == NamespaceRDFS && t.Name.Local == "label" && current != nil:
				// The label may be a typed literal (rdf:datatype attr)
				// or a plain/language-tagged literal; either way the
				// character data is the literal text.
				var value string
				if err := dec.DecodeElement(&value, &t); err != nil {
					return nil, fmt.Errorf("parse rdfs:label: %w", err)
				}
				if !current.HasLabel {
					current.Label = value
					current.HasLabel = true
				}

			case t.Name.Space == NamespaceOWL && t.Name.Local == "deprecated" && current != nil:
				var value string
				if err := dec.DecodeElement(&value, &t); err != nil {
					return nil, fmt.Errorf("parse owl:deprecated: %w", err)
				}
				if strings.TrimSpace(value) == "true" {
					current.Deprecated = true
				}
			}

		case xml.EndElement:
			if current != nil && t.Name.Space == NamespaceOWL && t.Name.Local == currentKind {
				if nested > 0 {
					nested--
					continue
				}
				if currentKind == "ObjectProperty" {
					m.ObjectProperties = append(m.ObjectProperties, *current)
				} else {
					m.DataProperties = append(m.DataProperties, *current)
				}
				current = nil
				currentKind = ""
			}
		}
	}

	return m, nil
}

// Properties returns the non-obsolete, labeled property records across
// the object and data property signature, with normalized labels.
// Obsolete properties are excluded entirely, whatever other metadata
// they carry; unlabeled properties are excluded from the result set.
func (m *Model) Properties() ([]PropertyRecord, error) {
	var records []PropertyRecord
	for _, p := range m.signature() {
		if p.Deprecated || !p.HasLabel {
			continue
		}
		records = append(records, PropertyRecord{
			Label: NormalizeLabel(p.Label),
			IRI:   p.IRI,
		})
	}
	return records, nil
}

// VersionIRI returns the owl:versionIRI from the ontology header, or
// the empty string when the header does not declare one.
func (m *Model) VersionIRI() (string, error) {
	return m.VersionIRIValue, nil
}

// signature concatenates object and data properties.
func (m *Model) signature() []Property {
	props := make([]Property, 0, len(m.ObjectProperties)+len(m.DataProperties))
	props = append(props, m.ObjectProperties...)
	props = append(props, m.DataProperties...)
	return props
}

// rdfAbout returns the rdf:about attribute value, if present.
func rdfAbout(el xml.StartElement) string {
	return attrValue(el, "about")
}

// rdfResource returns the rdf:resource attribute value, if present.
func rdfResource(el xml.StartElement) string {
	return attrValue(el, "resource")
}

func attrValue(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Space == NamespaceRDF && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
