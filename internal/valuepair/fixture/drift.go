package fixture

import (
	"fmt"
	"os"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
	"github.com/samestrin/valuepair-fixture/pkg/linediff"
)

// DriftResult compares a fixture on disk with its canonical rendering. In
// each hunk "-" marks lines only in the canonical rendering and "+" marks
// lines only in the file on disk.
type DriftResult struct {
	File      string          `json:"file"`
	Identical bool            `json:"identical"`
	Hunks     []linediff.Hunk `json:"hunks,omitempty"`
}

// Drift reports how the file at path differs from Render(opts).
func Drift(path string, opts Options) (*DriftResult, error) {
	actual, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, valuepair.ErrFileNotFound(path)
		}
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	f, err := Render(opts)
	if err != nil {
		return nil, err
	}

	result := &DriftResult{File: path, Hunks: linediff.Diff(f.Source, string(actual))}
	result.Identical = len(result.Hunks) == 0
	return result, nil
}
