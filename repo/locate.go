package repo

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// IsRepo checks if `folder` contains a metadata directory.
// It does not check the content of it; use Open for that.
func IsRepo(fs afero.Fs, folder string) bool {
	info, err := fs.Stat(filepath.Join(folder, MetaDirName))
	if err != nil {
		return false
	}

	return info.IsDir()
}

// FindRepo checks if `folder` or any of it's parents is a work tree.
// It uses IsRepo() to check a single folder and returns the absolute
// path of the first match, or "" if there is none.
func FindRepo(fs afero.Fs, folder string) string {
	curr, err := filepath.Abs(folder)
	if err != nil {
		return ""
	}

	for {
		if IsRepo(fs, curr) {
			return curr
		}

		// Try in the parent directory:
		dirname := filepath.Dir(curr)
		if dirname == curr {
			break
		}

		curr = dirname
	}

	return ""
}
