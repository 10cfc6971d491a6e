package owl

import (
	"bufio"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// scanState tracks the streaming extractor's position in the artifact.
type scanState int

const (
	// stateSeeking looks for the next object property declaration.
	stateSeeking scanState = iota

	// statePropertyOpen is inside an object property declaration.
	statePropertyOpen

	// stateDone stops scanning; set on the first class declaration.
	stateDone
)

// Scan line buffer sizing: OBO artifacts occasionally carry long
// definition literals on a single line.
const (
	scanBufferInitial = 64 * 1024
	scanBufferMax     = 1024 * 1024
)

var (
	aboutPattern      = regexp.MustCompile(`rdf:about="([^"]+)"`)
	labelLinePattern  = regexp.MustCompile(`<rdfs:label[^>]*>(.*)</rdfs:label>`)
	versionPattern    = regexp.MustCompile(`<owl:versionIRI\s+rdf:resource="([^"]+)"`)
	deprecatedPattern = regexp.MustCompile(`<owl:deprecated[^>]*>\s*true\s*<`)
)

// FileScanner streams an RDF/XML artifact line by line, extracting
// object property records without loading the document into memory.
// It is the extraction strategy for artifacts too large for LoadModel.
//
// Scanning stops at the first class declaration: OBO-style RDF/XML
// serializes property declarations before classes, so nothing relevant
// follows. That is an artifact-convention optimization, not a general
// RDF/XML guarantee.
type FileScanner struct {
	path   string
	logger *slog.Logger
}

// NewFileScanner creates a streaming extractor over the artifact at path.
func NewFileScanner(path string, logger *slog.Logger) *FileScanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileScanner{path: path, logger: logger}
}

// Properties scans the artifact for owl:ObjectProperty declarations and
// returns the labeled, non-obsolete records. Malformed lines are
// skipped with a diagnostic, never fatal. The returned error preserves
// fs.ErrNotExist when the artifact is missing.
func (s *FileScanner) Properties() ([]PropertyRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []PropertyRecord

	state := stateSeeking
	var iri string
	var label string
	var hasLabel bool
	var deprecated bool

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, scanBufferInitial), scanBufferMax)

	for state != stateDone && scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "<owl:Class") {
			state = stateDone
			break
		}

		switch state {
		case stateSeeking:
			if !strings.Contains(line, "<owl:ObjectProperty ") {
				continue
			}
			if strings.HasSuffix(strings.TrimSpace(line), "/>") {
				// Self-closing declaration carries no label.
				continue
			}
			m := aboutPattern.FindStringSubmatch(line)
			if m == nil {
				s.logger.Warn("Skipping property declaration without rdf:about",
					slog.String("path", s.path),
					slog.String("line", strings.TrimSpace(line)))
				continue
			}
			iri = m[1]
			label, hasLabel, deprecated = "", false, false
			state = statePropertyOpen

		case statePropertyOpen:
			switch {
			case strings.Contains(line, "</owl:ObjectProperty>"):
				if hasLabel && !deprecated {
					records = append(records, PropertyRecord{
						Label: NormalizeLabel(label),
						IRI:   iri,
					})
				}
				state = stateSeeking

			case strings.Contains(line, "<rdfs:label"):
				m := labelLinePattern.FindStringSubmatch(line)
				if m == nil {
					s.logger.Warn("Skipping malformed label line",
						slog.String("path", s.path),
						slog.String("iri", iri))
					continue
				}
				if !hasLabel {
					label = m[1]
					hasLabel = true
				}

			case deprecatedPattern.MatchString(line):
				deprecated = true
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// VersionIRI scans the artifact header for the owl:versionIRI resource.
// It returns the empty string when the header declares none; scanning
// stops at the end of the ontology header or the first class
// declaration, whichever comes first.
func (s *FileScanner) VersionIRI() (string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, scanBufferInitial), scanBufferMax)

	for scanner.Scan() {
		line := scanner.Text()
		if m := versionPattern.FindStringSubmatch(line); m != nil {
			return m[1], nil
		}
		if strings.Contains(line, "</owl:Ontology>") || strings.Contains(line, "<owl:Class") {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", nil
}
