// Package ro defines the Relations Ontology vocabulary: the canonical
// reference namespace, its IRI prefix, and the reference mapping from
// canonical relation labels to canonical identifiers that the relations
// principle checks ontologies against.
package ro
