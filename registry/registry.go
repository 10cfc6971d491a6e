package registry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches registry pages under the registry directory.
const DefaultPattern = "*.md"

// Registry discovers and loads ontology pages from a directory.
type Registry struct {
	dir     string
	pattern string
	logger  *slog.Logger
}

// New creates a Registry over dir. pattern is a doublestar glob
// relative to dir; empty means DefaultPattern.
func New(dir, pattern string, logger *slog.Logger) *Registry {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{dir: dir, pattern: pattern, logger: logger}
}

// Load discovers and parses every registry page, sorted by namespace.
// Pages without a usable id are skipped with a warning; a missing
// registry directory is an error.
func (r *Registry) Load() ([]*Page, error) {
	matches, err := doublestar.Glob(os.DirFS(r.dir), r.pattern)
	if err != nil {
		return nil, fmt.Errorf("glob registry pages: %w", err)
	}

	var pages []*Page
	for _, rel := range matches {
		path := filepath.Join(r.dir, rel)
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read registry page %s: %w", path, err)
		}

		page := ParsePage(path, content)
		if page.ID == "" {
			r.logger.Warn("Skipping registry page without an id",
				slog.String("path", path))
			continue
		}
		pages = append(pages, page)
	}

	if len(pages) == 0 {
		if _, err := os.Stat(r.dir); err != nil {
			return nil, fmt.Errorf("registry directory: %w", err)
		}
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].ID < pages[j].ID })
	return pages, nil
}

// Get loads a single page by namespace id.
func (r *Registry) Get(id string) (*Page, error) {
	pages, err := r.Load()
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("namespace %q not found in registry", id)
}
