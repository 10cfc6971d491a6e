package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	content := `---
id: uberon
title: Uberon multi-species anatomy ontology
description: An integrated cross-species anatomy ontology.
domain: anatomy
homepage: http://uberon.org
tracker: https://github.com/obophenotype/uberon/issues
license:
  url: http://creativecommons.org/licenses/by/3.0/
  label: CC-BY
contact:
  email: curator@example.org
  label: A. Curator
products:
  - id: uberon.owl
    ontology_purl: http://purl.obolibrary.org/obo/uberon.owl
  - id: uberon/basic.obo
    ontology_purl: http://purl.obolibrary.org/obo/uberon/basic.obo
activity_status: active
---
# Uberon

Cross-species anatomy.
`

	page := ParsePage("ontology/uberon.md", []byte(content))

	assert.Equal(t, "uberon", page.ID)
	assert.Equal(t, "Uberon multi-species anatomy ontology", page.Title)
	assert.Equal(t, "anatomy", page.Domain)
	assert.Equal(t, "CC-BY", page.License.Label)
	assert.Equal(t, "curator@example.org", page.Contact.Email)
	assert.Equal(t, "active", page.ActivityStatus)
	assert.False(t, page.IsObsolete)

	require.Len(t, page.Products, 2)
	assert.Equal(t, "uberon.owl", page.Products[0].ID)
	assert.Equal(t, "http://purl.obolibrary.org/obo/uberon.owl", page.Products[0].OntologyPurl)

	assert.Contains(t, page.Body, "# Uberon")
	assert.NotContains(t, page.Body, "ontology_purl")
	assert.Equal(t, "ontology/uberon.md", page.Path)
}

func TestParsePage_Obsolete(t *testing.T) {
	content := `---
id: dead
title: Retired ontology
is_obsolete: true
---
Retired.
`
	page := ParsePage("ontology/dead.md", []byte(content))
	assert.Equal(t, "dead", page.ID)
	assert.True(t, page.IsObsolete)
}

func TestParsePage_NoFrontmatter(t *testing.T) {
	content := "# Just markdown\n\nNo metadata here.\n"
	page := ParsePage("ontology/plain.md", []byte(content))

	assert.Empty(t, page.ID)
	assert.Equal(t, content, page.Body)
}

func TestParsePage_MissingClosingDelimiter(t *testing.T) {
	content := "---\nid: broken\n\n# Never closed\n"
	page := ParsePage("ontology/broken.md", []byte(content))

	// Degrades to body-only rather than failing.
	assert.Empty(t, page.ID)
	assert.Equal(t, content, page.Body)
}

func TestParsePage_InvalidYAML(t *testing.T) {
	content := "---\nid: [unclosed\n---\nBody.\n"
	page := ParsePage("ontology/bad.md", []byte(content))

	assert.Empty(t, page.ID)
	assert.Equal(t, content, page.Body)
}
