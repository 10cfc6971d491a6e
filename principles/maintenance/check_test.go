package maintenance

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontodash/owl"
	"github.com/c360studio/ontodash/principles"
)

// versionSource is an in-memory Source for tests.
type versionSource struct {
	versionIRI string
	err        error
}

func (s *versionSource) Properties() ([]owl.PropertyRecord, error) { return nil, nil }

func (s *versionSource) VersionIRI() (string, error) { return s.versionIRI, s.err }

// fixedNow pins the clock for age grading.
var fixedNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestChecker() *Checker {
	return NewChecker(nil).WithClock(func() time.Time { return fixedNow })
}

func versionIRI(date string) string {
	return "http://purl.obolibrary.org/obo/tst/" + date + "/tst.owl"
}

func TestCheck_AgeGrading(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantLevel principles.Level
	}{
		{name: "fresh release", date: "2026-01-15", wantLevel: principles.LevelPass},
		{name: "over one year", date: "2024-11-01", wantLevel: principles.LevelInfo},
		{name: "over two years", date: "2023-09-01", wantLevel: principles.LevelWarn},
		{name: "over three years", date: "2022-01-01", wantLevel: principles.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChecker()
			verdict, err := c.Check("tst", &versionSource{versionIRI: versionIRI(tt.date)})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, verdict.Level)
			if tt.wantLevel != principles.LevelPass {
				assert.Contains(t, verdict.String(), "last version ("+tt.date+")")
			}
		})
	}
}

func TestCheck_ErrorMessageNamesYears(t *testing.T) {
	c := newTestChecker()
	verdict, err := c.Check("tst", &versionSource{versionIRI: versionIRI("2021-03-01")})
	require.NoError(t, err)
	assert.Equal(t, "ERROR|last version (2021-03-01) is over three year(s) old", verdict.String())
}

func TestCheck_VersionIRIWithoutDate(t *testing.T) {
	c := newTestChecker()
	verdict, err := c.Check("tst", &versionSource{versionIRI: "http://purl.obolibrary.org/obo/tst/releases/current/tst.owl"})
	require.NoError(t, err)
	assert.Equal(t, "INFO|version IRI does not have date information", verdict.String())
}

func TestCheck_MissingVersionIRI(t *testing.T) {
	c := newTestChecker()
	verdict, err := c.Check("tst", &versionSource{versionIRI: ""})
	require.NoError(t, err)
	assert.Equal(t, "INFO|missing version IRI to check date", verdict.String())
}

func TestCheck_NilSourceFailsOpen(t *testing.T) {
	c := newTestChecker()
	verdict, err := c.Check("tst", nil)
	require.NoError(t, err)
	assert.Equal(t, "INFO|unable to load ontology", verdict.String())
}

func TestCheck_MissingArtifactFailsOpen(t *testing.T) {
	c := newTestChecker()
	scanner := owl.NewFileScanner(filepath.Join(t.TempDir(), "missing.owl"), nil)
	verdict, err := c.Check("tst", scanner)
	require.NoError(t, err)
	assert.Equal(t, "INFO|unable to load ontology", verdict.String())
}

func TestCheck_UnparseableArtifact(t *testing.T) {
	// An artifact that exists but does not decode is worded apart from
	// a missing one.
	c := newTestChecker()
	verdict, err := c.Check("tst", owl.Unparseable{Err: assert.AnError})
	require.NoError(t, err)
	assert.Equal(t, "INFO|unable to parse ontology", verdict.String())
}
