// Package registry loads the ontology registry's content collection:
// YAML-frontmatter markdown pages, one per ontology namespace.
package registry

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Page is one registry page: the frontmatter metadata describing an
// ontology plus the markdown body rendered by the external site
// generator.
type Page struct {
	// ID is the ontology's registry namespace (e.g. "go", "uberon").
	ID string `yaml:"id"`

	// Title is the display name of the ontology.
	Title string `yaml:"title"`

	// Description is a short human-readable summary.
	Description string `yaml:"description"`

	// Domain is the knowledge domain the ontology covers.
	Domain string `yaml:"domain"`

	// Homepage is the project homepage URL.
	Homepage string `yaml:"homepage"`

	// Tracker is the issue tracker URL.
	Tracker string `yaml:"tracker"`

	// License describes the usage license.
	License License `yaml:"license"`

	// Contact is the responsible curator.
	Contact Contact `yaml:"contact"`

	// Products lists the released artifacts for this ontology.
	Products []Product `yaml:"products"`

	// ActivityStatus is "active", "inactive", or "orphaned".
	ActivityStatus string `yaml:"activity_status"`

	// IsObsolete marks retired registry entries; they are excluded from
	// checks entirely.
	IsObsolete bool `yaml:"is_obsolete"`

	// Body is the markdown content following the frontmatter.
	Body string `yaml:"-"`

	// Path is the page's file path, set by the registry loader.
	Path string `yaml:"-"`
}

// License describes an ontology's usage license.
type License struct {
	URL   string `yaml:"url"`
	Label string `yaml:"label"`
}

// Contact is the responsible curator of an ontology.
type Contact struct {
	Email string `yaml:"email"`
	Label string `yaml:"label"`
	// GithubUsername may be empty for historical entries.
	GithubUsername string `yaml:"github"`
}

// Product is one released artifact of an ontology.
type Product struct {
	// ID is the artifact's registry-relative name (e.g. "go.owl").
	ID string `yaml:"id"`

	// OntologyPurl is the artifact's persistent URL.
	OntologyPurl string `yaml:"ontology_purl"`
}

// ParsePage parses a registry page. Content without frontmatter, or
// with frontmatter that fails to parse, degrades to a body-only page
// rather than an error; the registry loader decides whether such pages
// are usable.
func ParsePage(path string, content []byte) *Page {
	page := &Page{Path: path}

	str := string(content)
	if !strings.HasPrefix(str, "---\n") && !strings.HasPrefix(str, "---\r\n") {
		page.Body = str
		return page
	}

	frontmatter, body, err := splitFrontmatter(str)
	if err != nil {
		page.Body = str
		return page
	}

	if err := yaml.Unmarshal([]byte(frontmatter), page); err != nil {
		page.Body = str
		return page
	}
	page.Body = body
	return page
}

// splitFrontmatter separates the YAML frontmatter block from the
// markdown body.
func splitFrontmatter(content string) (frontmatter, body string, err error) {
	const delimiter = "---"

	start := len(delimiter)
	if len(content) > start && content[start] == '\r' {
		start++
	}
	if len(content) > start && content[start] == '\n' {
		start++
	}

	closeIdx := strings.Index(content[start:], "\n"+delimiter)
	if closeIdx == -1 {
		return "", content, fmt.Errorf("no closing frontmatter delimiter")
	}

	frontmatter = content[start : start+closeIdx]

	bodyStart := start + closeIdx + 1 + len(delimiter)
	for bodyStart < len(content) && (content[bodyStart] == '\n' || content[bodyStart] == '\r') {
		bodyStart++
	}
	if bodyStart < len(content) {
		body = content[bodyStart:]
	}
	return frontmatter, body, nil
}
