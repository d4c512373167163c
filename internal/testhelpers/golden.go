// Package testhelpers provides golden file and temp file helpers for tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samestrin/valuepair-fixture/pkg/linediff"
)

// Update is true when UPDATE_GOLDEN=1, in which case AssertGolden rewrites
// golden files instead of comparing against them.
var Update = os.Getenv("UPDATE_GOLDEN") == "1"

// GoldenDir returns testdata/golden under the module root.
func GoldenDir() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "testdata", "golden")
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Join("testdata", "golden")
		}
		dir = parent
	}
}

// GoldenFile returns the full path to a golden file.
func GoldenFile(name string) string {
	return filepath.Join(GoldenDir(), name)
}

// AssertGolden compares actual to the named golden file.
func AssertGolden(t *testing.T, name string, actual string) {
	t.Helper()

	goldenPath := GoldenFile(name)

	if Update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("failed to create golden file directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file %s does not exist. Run with UPDATE_GOLDEN=1 to create it", goldenPath)
		}
		t.Fatalf("failed to read golden file %s: %v", goldenPath, err)
	}

	if string(expected) != actual {
		t.Errorf("output mismatch for golden file %s\n--- Diff ---\n%s", goldenPath, diff(string(expected), actual))
	}
}

// diff renders a line diff of expected and actual, one "-" or "+" per line.
func diff(expected, actual string) string {
	return linediff.Format(linediff.Diff(expected, actual))
}

// CreateTempFile creates a single temporary file with content.
func CreateTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}
