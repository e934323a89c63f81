package testutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// EnvProjectRoot overrides project root detection.
const EnvProjectRoot = "DECKGEN_PROJECT_ROOT"

const (
	goModFile     = "go.mod"
	maxIterations = 10
)

// ErrProjectRootNotFound is returned when no go.mod is found above the working directory.
var ErrProjectRootNotFound = errors.New("unable to find project root")

// FindProjectRoot returns the directory holding go.mod, checking
// DECKGEN_PROJECT_ROOT first and then walking up from the working directory.
func FindProjectRoot() (string, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		if !fileExists(filepath.Join(root, goModFile)) {
			return "", ErrProjectRootNotFound
		}
		return root, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRootFrom(dir)
}

func findRootFrom(dir string) (string, error) {
	for i := 0; i < maxIterations; i++ {
		if fileExists(filepath.Join(dir, goModFile)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrProjectRootNotFound
}

// SchemaPath returns the absolute path of the card schema shipped with the repo.
func SchemaPath(t *testing.T) string {
	t.Helper()
	root, err := FindProjectRoot()
	if err != nil {
		t.Fatalf("failed to find project root: %v", err)
	}
	return filepath.Join(root, "schemas", "generated_cards.json")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
