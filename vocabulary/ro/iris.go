package ro

// ReferenceNamespace is the registry namespace of the Relations Ontology
// itself. The relations check short-circuits for it: the canonical
// source cannot violate itself.
const ReferenceNamespace = "ro"

// Namespace is the IRI prefix under which canonical relation
// identifiers are minted.
const Namespace = "http://purl.obolibrary.org/obo/RO_"

// OBONamespace is the base IRI for OBO Library artifacts, used by
// version IRIs and ontology IRIs.
const OBONamespace = "http://purl.obolibrary.org/obo/"

// Well-known canonical relation IRIs referenced in tests and docs.
const (
	// PartOf is the BFO "part of" relation, the most widely reused
	// canonical relation.
	PartOf = "http://purl.obolibrary.org/obo/BFO_0000050"

	// HasPart is the inverse of PartOf.
	HasPart = "http://purl.obolibrary.org/obo/BFO_0000051"

	// LocatedIn relates an entity to its spatial location.
	LocatedIn = "http://purl.obolibrary.org/obo/RO_0001025"
)
