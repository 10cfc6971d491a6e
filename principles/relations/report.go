package relations

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// reportHeader is the fixed TSV header of the relations report.
const reportHeader = "IRI\tLabel\tIssue"

// writeReport writes the namespace-scoped TSV report in overwrite mode.
// Rows cover both finding classes; ordering follows map iteration and
// is deliberately unspecified.
func writeReport(path string, duplicates, nonCanonical map[string]finding) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(reportHeader)
	sb.WriteByte('\n')
	for iri, f := range duplicates {
		writeRow(&sb, iri, f)
	}
	for iri, f := range nonCanonical {
		writeRow(&sb, iri, f)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

func writeRow(sb *strings.Builder, iri string, f finding) {
	sb.WriteString(iri)
	sb.WriteByte('\t')
	sb.WriteString(f.label)
	sb.WriteByte('\t')
	sb.WriteString(f.issue)
	sb.WriteByte('\n')
}
