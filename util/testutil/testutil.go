// Package testutil contains small helpers shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
)

// Remover removes all files in paths recursively and errors when it fails.
// It is no error if there's nothing to delete. It's useful in defer statements.
func Remover(t *testing.T, paths ...string) {
	for _, path := range paths {
		if err := os.RemoveAll(path); err != nil {
			t.Errorf("removing temp directory failed: %v", err)
		}
	}
}

// ListTree returns all paths below `root` relative to it, sorted.
// Directories get a trailing slash.
func ListTree(t *testing.T, fs afero.Fs, root string) []string {
	entries := []string{}
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			rel += "/"
		}

		entries = append(entries, rel)
		return nil
	})

	if err != nil {
		t.Fatalf("walking %s failed: %v", root, err)
	}

	sort.Strings(entries)
	return entries
}
