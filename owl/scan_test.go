package owl

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scanFixture = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <owl:Ontology rdf:about="http://purl.obolibrary.org/obo/big.owl">
    <owl:versionIRI rdf:resource="http://purl.obolibrary.org/obo/big/2023-05-17/big.owl"/>
  </owl:Ontology>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/BFO_0000050">
    <rdfs:label xml:lang="en">part of</rdfs:label>
  </owl:ObjectProperty>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/BIG_0000001">
    <rdfs:label rdf:datatype="http://www.w3.org/2001/XMLSchema#string">develops from</rdfs:label>
  </owl:ObjectProperty>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/BIG_0000002">
    <rdfs:label>retired relation</rdfs:label>
    <owl:deprecated rdf:datatype="http://www.w3.org/2001/XMLSchema#boolean">true</owl:deprecated>
  </owl:ObjectProperty>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/BIG_0000003">
    <rdfs:label>dangling label
  </owl:ObjectProperty>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/BIG_0000100">
    <rdfs:label>first class</rdfs:label>
  </owl:Class>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/BIG_0000004">
    <rdfs:label>after classes</rdfs:label>
  </owl:ObjectProperty>
</rdf:RDF>
`

func writeScanFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "big.owl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileScanner_Properties(t *testing.T) {
	s := NewFileScanner(writeScanFixture(t, scanFixture), slog.Default())

	records, err := s.Properties()
	require.NoError(t, err)

	byIRI := make(map[string]string)
	for _, r := range records {
		byIRI[r.IRI] = r.Label
	}

	assert.Equal(t, "part of", byIRI["http://purl.obolibrary.org/obo/BFO_0000050"])
	assert.Equal(t, "develops from", byIRI["http://purl.obolibrary.org/obo/BIG_0000001"])

	// Deprecated properties are excluded.
	assert.NotContains(t, byIRI, "http://purl.obolibrary.org/obo/BIG_0000002")

	// A label without its closing tag on the same line is skipped with a
	// diagnostic; the property then has no label and is excluded.
	assert.NotContains(t, byIRI, "http://purl.obolibrary.org/obo/BIG_0000003")

	// Scanning stops at the first class declaration, so properties
	// serialized after classes are never seen.
	assert.NotContains(t, byIRI, "http://purl.obolibrary.org/obo/BIG_0000004")

	assert.Len(t, records, 2)
}

func TestFileScanner_Properties_MalformedDeclaration(t *testing.T) {
	const fixture = `<rdf:RDF>
  <owl:ObjectProperty rdf:ID="no-about-attribute">
    <rdfs:label>unreachable</rdfs:label>
  </owl:ObjectProperty>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/OK_1">
    <rdfs:label>still extracted</rdfs:label>
  </owl:ObjectProperty>
</rdf:RDF>
`
	s := NewFileScanner(writeScanFixture(t, fixture), slog.Default())

	records, err := s.Properties()
	require.NoError(t, err)

	// The declaration without rdf:about is skipped, not fatal.
	require.Len(t, records, 1)
	assert.Equal(t, "http://purl.obolibrary.org/obo/OK_1", records[0].IRI)
	assert.Equal(t, "still extracted", records[0].Label)
}

func TestFileScanner_Properties_NotFound(t *testing.T) {
	s := NewFileScanner(filepath.Join(t.TempDir(), "missing.owl"), slog.Default())
	_, err := s.Properties()
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFileScanner_VersionIRI(t *testing.T) {
	s := NewFileScanner(writeScanFixture(t, scanFixture), slog.Default())

	iri, err := s.VersionIRI()
	require.NoError(t, err)
	assert.Equal(t, "http://purl.obolibrary.org/obo/big/2023-05-17/big.owl", iri)
}

func TestFileScanner_VersionIRI_Missing(t *testing.T) {
	const fixture = `<rdf:RDF>
  <owl:Ontology rdf:about="http://purl.obolibrary.org/obo/big.owl">
  </owl:Ontology>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/BIG_0000100"/>
</rdf:RDF>
`
	s := NewFileScanner(writeScanFixture(t, fixture), slog.Default())

	iri, err := s.VersionIRI()
	require.NoError(t, err)
	assert.Empty(t, iri)
}
