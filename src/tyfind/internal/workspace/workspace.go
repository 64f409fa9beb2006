// Package workspace resolves and canonicalises project roots. A workspace key
// is an absolute, symlink-free directory path; two requests share a warm
// analyzer iff their keys are equal.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// _markers are the files and directories that identify a Python project root.
var _markers = []string{
	"pyproject.toml",
	"setup.py",
	"setup.cfg",
	"requirements.txt",
	"Pipfile",
	"poetry.lock",
	".git",
}

// Canonicalize turns path into a workspace key: absolute, symlinks resolved.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", path, err)
	}
	return resolved, nil
}

// Detect walks up from start looking for a directory carrying a project
// marker. It returns false when no marker is found anywhere up the tree.
func Detect(start string) (string, bool) {
	current := start
	for {
		if hasMarkers(current) {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func hasMarkers(dir string) bool {
	for _, marker := range _markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
