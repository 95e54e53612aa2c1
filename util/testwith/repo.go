// Package testwith provides fixtures that run a test against a fresh repository.
package testwith

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/Worcrow/wyag/repo"
	"github.com/Worcrow/wyag/util/testutil"
	"github.com/spf13/afero"
)

// WithRepo creates a repository in a temporary directory on disk,
// calls `f` with it and removes the directory afterwards.
func WithRepo(t *testing.T, f func(*repo.Repository)) {
	path, err := ioutil.TempDir("", "wyag-repotest")
	if err != nil {
		t.Fatalf("Cannot create test repo: %v", err)
		return
	}

	WithRepoAtPath(t, path, f)
}

// WithRepoAtPath is like WithRepo, but uses `path` as work tree.
// Anything at `path` is deleted before and after.
func WithRepoAtPath(t *testing.T, path string, f func(*repo.Repository)) {
	if err := os.RemoveAll(path); err != nil {
		t.Errorf("previous repo exists; cannot delete it though: %v", err)
		return
	}

	defer testutil.Remover(t, path)

	rp, err := repo.Init(path)
	if err != nil {
		t.Errorf("creating repo failed: %v", err)
		return
	}

	f(rp)
}

// WithMemRepo creates a repository at /repo on an in-memory filesystem.
func WithMemRepo(t *testing.T, f func(afero.Fs, *repo.Repository)) {
	fs := afero.NewMemMapFs()
	rp, err := repo.Init("/repo", repo.FileSystem(fs))
	if err != nil {
		t.Errorf("creating repo failed: %v", err)
		return
	}

	f(fs, rp)
}
