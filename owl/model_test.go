package owl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelFixture = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#"
         xmlns:xsd="http://www.w3.org/2001/XMLSchema#">
  <owl:Ontology rdf:about="http://purl.obolibrary.org/obo/tst.owl">
    <owl:versionIRI rdf:resource="http://purl.obolibrary.org/obo/tst/2024-03-01/tst.owl"/>
  </owl:Ontology>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/BFO_0000050">
    <rdfs:label xml:lang="en">part of</rdfs:label>
  </owl:ObjectProperty>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/TST_0000001">
    <rdfs:label rdf:datatype="http://www.w3.org/2001/XMLSchema#string">Located In</rdfs:label>
  </owl:ObjectProperty>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/TST_0000002">
    <rdfs:label>old relation</rdfs:label>
    <owl:deprecated rdf:datatype="http://www.w3.org/2001/XMLSchema#boolean">true</owl:deprecated>
  </owl:ObjectProperty>
  <owl:ObjectProperty rdf:about="http://purl.obolibrary.org/obo/TST_0000003"/>
  <owl:DatatypeProperty rdf:about="http://purl.obolibrary.org/obo/TST_0000010">
    <rdfs:label>has count</rdfs:label>
  </owl:DatatypeProperty>
  <owl:Class rdf:about="http://purl.obolibrary.org/obo/TST_0000100">
    <rdfs:label>some class</rdfs:label>
  </owl:Class>
</rdf:RDF>
`

func TestDecodeModel(t *testing.T) {
	m, err := DecodeModel(strings.NewReader(modelFixture))
	require.NoError(t, err)

	assert.Equal(t, "http://purl.obolibrary.org/obo/tst.owl", m.IRI)
	assert.Equal(t, "http://purl.obolibrary.org/obo/tst/2024-03-01/tst.owl", m.VersionIRIValue)

	require.Len(t, m.ObjectProperties, 4)
	require.Len(t, m.DataProperties, 1)

	assert.Equal(t, "part of", m.ObjectProperties[0].Label)
	assert.True(t, m.ObjectProperties[0].HasLabel)
	assert.False(t, m.ObjectProperties[0].Deprecated)

	assert.True(t, m.ObjectProperties[2].Deprecated)
	assert.False(t, m.ObjectProperties[3].HasLabel)
}

func TestModel_Properties(t *testing.T) {
	m, err := DecodeModel(strings.NewReader(modelFixture))
	require.NoError(t, err)

	records, err := m.Properties()
	require.NoError(t, err)

	// Deprecated and unlabeled properties are excluded; data properties
	// are included; labels come back normalized.
	require.Len(t, records, 3)
	byIRI := make(map[string]string)
	for _, r := range records {
		byIRI[r.IRI] = r.Label
	}
	assert.Equal(t, "part of", byIRI["http://purl.obolibrary.org/obo/BFO_0000050"])
	assert.Equal(t, "located in", byIRI["http://purl.obolibrary.org/obo/TST_0000001"])
	assert.Equal(t, "has count", byIRI["http://purl.obolibrary.org/obo/TST_0000010"])
	assert.NotContains(t, byIRI, "http://purl.obolibrary.org/obo/TST_0000002")
	assert.NotContains(t, byIRI, "http://purl.obolibrary.org/obo/TST_0000003")
}

func TestModel_VersionIRI(t *testing.T) {
	m, err := DecodeModel(strings.NewReader(modelFixture))
	require.NoError(t, err)

	iri, err := m.VersionIRI()
	require.NoError(t, err)
	assert.Equal(t, "http://purl.obolibrary.org/obo/tst/2024-03-01/tst.owl", iri)
}

func TestLoadModel_NotFound(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "missing.owl"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tst.owl")
	require.NoError(t, os.WriteFile(path, []byte(modelFixture), 0644))

	m, err := LoadModel(path)
	require.NoError(t, err)
	assert.Equal(t, "http://purl.obolibrary.org/obo/tst.owl", m.IRI)
}

func TestDecodeModel_Malformed(t *testing.T) {
	_, err := DecodeModel(strings.NewReader("<rdf:RDF xmlns:rdf=\"x\"><unclosed>"))
	assert.Error(t, err)
}
