// Package testutil provides shared helpers for repository tests.
package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// RelocationCase is one fixture from testdata/relocate/cases.yaml.
//
// Parts maps component names to their expected text. A missing key means
// the component is absent; an empty string means present but empty. Error
// holds the relocation error code expected when the split shape cannot be
// walked, or "" when relocation succeeds.
type RelocationCase struct {
	Name  string            `yaml:"name"`
	Input string            `yaml:"input"`
	Parts map[string]string `yaml:"parts"`
	Error string            `yaml:"error"`
}

type relocationFile struct {
	Cases []RelocationCase `yaml:"cases"`
}

// RepoRoot returns the repository root by walking up from this source file.
func RepoRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("runtime.Caller failed")
	}
	dir := filepath.Dir(file)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("repository root not found")
		}
		dir = parent
	}
}

// LoadRelocationCases reads the relocation fixtures.
func LoadRelocationCases() ([]RelocationCase, error) {
	root, err := RepoRoot()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(root, "testdata", "relocate", "cases.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var f relocationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("no cases in %s", path)
	}
	seen := make(map[string]bool, len(f.Cases))
	for _, c := range f.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case with input %q has no name", c.Input)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
	return f.Cases, nil
}

// RelocationCases returns the relocation fixtures or fails the test.
func RelocationCases(t testing.TB) []RelocationCase {
	t.Helper()
	cases, err := LoadRelocationCases()
	if err != nil {
		t.Fatalf("LoadRelocationCases: %v", err)
	}
	return cases
}
