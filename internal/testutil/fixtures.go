// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// WriteTree writes files below root. Keys are slash-separated relative paths;
// parent directories are created as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// ListTree returns the slash-separated paths of every file below root,
// sorted. A missing root yields nil.
func ListTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == root {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("failed to list %s: %v", root, err)
	}
	sort.Strings(out)
	return out
}

// NewSite creates a project directory holding a mkdocs.yml with the given
// content and a docs directory with the given files. It returns the path of
// the configuration file.
func NewSite(t *testing.T, mkdocs string, docs map[string]string) string {
	t.Helper()
	root := t.TempDir()
	if !strings.Contains(mkdocs, "site_name") {
		mkdocs = "site_name: Test\n" + mkdocs
	}
	WriteTree(t, root, map[string]string{"mkdocs.yml": mkdocs})
	if err := os.MkdirAll(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatalf("failed to create docs directory: %v", err)
	}
	WriteTree(t, filepath.Join(root, "docs"), docs)
	return filepath.Join(root, "mkdocs.yml")
}
