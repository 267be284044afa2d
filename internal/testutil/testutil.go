// Package testutil holds helpers shared by package tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// GoldenTest is a test case whose output is compared against a golden file.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile checks the output of tc against testdata/<name>.golden.
// A nil output asserts that no golden file exists for the case. Run the
// tests with -update to rewrite the fixtures.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	out, name := tc.Output()

	if out == nil {
		f := filepath.Join("testdata", name+".golden")
		if _, err := os.Stat(f); err == nil {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	g.Assert(t, name, normalizeNewlines(out))
}

// CopyFixture copies testdata/<name> to dst.
func CopyFixture(t *testing.T, name, dst string) {
	t.Helper()

	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(dst, b, 0o600))
}

func normalizeNewlines(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
}
