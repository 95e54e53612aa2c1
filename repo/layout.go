package repo

import (
	"os"
	"path/filepath"
	"syscall"

	e "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// MetaDirName is the name of the metadata directory inside the work tree.
const MetaDirName = ".git"

// Files written once by Init.
const (
	DescriptionFile = "description"
	HeadFile        = "HEAD"
	ConfigFile      = "config"
)

// Skeleton lists the directories every initialized repository has,
// relative to the metadata directory. Parents come before their children.
var Skeleton = [][]string{
	{"branches"},
	{"objects"},
	{"refs"},
	{"refs", "heads"},
	{"refs", "tags"},
}

const dirPerm = 0755

// Dir makes sure `path` is usable as directory. An existing directory is
// returned as is, while anything else at `path` gives a NotADirectory error.
// If nothing is there, "" is returned unless `mkdir` is true; then `path`
// and all of its missing parents are created. A path below a regular file
// counts as absent.
//
// Calling it again on a directory it created is a no-op.
func Dir(fs afero.Fs, path string, mkdir bool) (string, error) {
	info, err := fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return "", errNotADirectory(path)
		}

		return path, nil
	}

	if !isAbsent(err) {
		return "", e.Wrapf(err, "stat %s", path)
	}

	if !mkdir {
		return "", nil
	}

	if err := fs.MkdirAll(path, dirPerm); err != nil {
		return "", e.Wrapf(err, "mkdir %s", path)
	}

	log.Debugf("Created directory %s", path)
	return path, nil
}

// isAbsent tells if a failed stat means that nothing is at the path.
// Below a regular file, stat fails with ENOTDIR instead of ENOENT.
func isAbsent(err error) bool {
	return os.IsNotExist(err) || e.Is(err, syscall.ENOTDIR)
}

// Path joins `segs` onto the metadata directory. It does no I/O.
func (rp *Repository) Path(segs ...string) string {
	return filepath.Join(append([]string{rp.MetaDir}, segs...)...)
}

// Dir is like the package level Dir, but for a path inside the metadata directory.
func (rp *Repository) Dir(mkdir bool, segs ...string) (string, error) {
	return Dir(rp.fs, rp.Path(segs...), mkdir)
}

// File returns the path to the file `segs` inside the metadata directory.
// Only the directories leading up to it are checked (and created if `mkdir`
// is true); the file itself does not need to exist. If the parent directory
// is missing and `mkdir` is false, "" is returned.
func (rp *Repository) File(mkdir bool, segs ...string) (string, error) {
	if len(segs) == 0 {
		return rp.Dir(mkdir)
	}

	parent, err := rp.Dir(mkdir, segs[:len(segs)-1]...)
	if err != nil || parent == "" {
		return "", err
	}

	return rp.Path(segs...), nil
}
