package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
	"github.com/samestrin/valuepair-fixture/pkg/pathvalidation"
)

// LockFileName is created in the target directory while a fixture is written.
// Go tooling ignores dot files, so it never shows up as a source file.
const LockFileName = ".valuepair.lock"

// Write renders the fixture into dir and returns the written path. An
// existing file is replaced only when force is set.
func Write(dir string, opts Options, force bool) (string, *Fixture, error) {
	if err := pathvalidation.ValidatePathForCreation(dir); err != nil {
		return "", nil, &valuepair.Error{
			Type:    valuepair.ErrTypeInvalidInput,
			Message: fmt.Sprintf("invalid fixture directory: %s", dir),
			Cause:   err,
		}
	}

	f, err := Render(opts)
	if err != nil {
		return "", nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create directory: %w", err)
	}

	fl := flock.New(filepath.Join(dir, LockFileName))
	if err := fl.Lock(); err != nil {
		return "", nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer fl.Unlock()

	path := filepath.Join(dir, f.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", nil, ErrFixtureExists(path)
	}

	if err := os.WriteFile(path, []byte(f.Source), 0644); err != nil {
		return "", nil, fmt.Errorf("failed to write fixture: %w", err)
	}
	return path, f, nil
}

// ErrFixtureExists reports a fixture file that would be overwritten.
func ErrFixtureExists(path string) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeFixture,
		Message: fmt.Sprintf("fixture already exists: %s", path),
		Hint:    "Pass --force to overwrite it.",
	}
}
