package repo

import (
	"path/filepath"

	"github.com/Worcrow/wyag/config"
	"github.com/Worcrow/wyag/defaults"
	e "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Repository gives access to the metadata directory of a single repository.
type Repository struct {
	// WorkTree is the absolute path of the checked out files.
	WorkTree string

	// MetaDir is WorkTree joined with MetaDirName.
	MetaDir string

	// Config is nil for a prepared repository without config file.
	Config *config.Config

	fs afero.Fs
}

// Option configures a Repository before it is opened or created.
type Option func(rp *Repository)

// FileSystem makes the repository use `fs` instead of the real filesystem.
func FileSystem(fs afero.Fs) Option {
	return func(rp *Repository) {
		rp.fs = fs
	}
}

func newRepository(worktree string, opts []Option) (*Repository, error) {
	absWorkTree, err := filepath.Abs(worktree)
	if err != nil {
		return nil, e.Wrapf(err, "abs %s", worktree)
	}

	rp := &Repository{
		WorkTree: absWorkTree,
		MetaDir:  filepath.Join(absWorkTree, MetaDirName),
		fs:       afero.NewOsFs(),
	}

	for _, configure := range opts {
		configure(rp)
	}

	return rp, nil
}

// Open loads the repository whose work tree is `worktree`.
// It fails unless the metadata directory exists, contains a valid config
// and that config declares a supported format version.
func Open(worktree string, opts ...Option) (*Repository, error) {
	rp, err := newRepository(worktree, opts)
	if err != nil {
		return nil, err
	}

	metaDir, err := rp.Dir(false)
	if err != nil {
		if KindOf(err) == NotADirectory {
			return nil, errNotAGitRepository(rp.MetaDir)
		}

		return nil, err
	}

	if metaDir == "" {
		return nil, errNotAGitRepository(rp.MetaDir)
	}

	cfg, err := rp.loadConfig()
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errConfigMissing(rp.Path(ConfigFile))
	}

	if version := cfg.Core.RepositoryFormatVersion; version != defaults.CurrentVersion {
		return nil, errUnsupportedVersion(version)
	}

	rp.Config = cfg
	log.Debugf("Opened repository at %s", rp.WorkTree)
	return rp, nil
}

// Prepare returns a handle for `worktree` without checking anything.
// It is meant for callers that are about to create the repository.
// The config is loaded only if a config file is already there.
func Prepare(worktree string, opts ...Option) (*Repository, error) {
	rp, err := newRepository(worktree, opts)
	if err != nil {
		return nil, err
	}

	cfg, err := rp.loadConfig()
	if err != nil {
		return nil, err
	}

	rp.Config = cfg
	return rp, nil
}

// loadConfig returns nil (and no error) if there is no config file.
func (rp *Repository) loadConfig() (*config.Config, error) {
	path := rp.Path(ConfigFile)
	info, err := rp.fs.Stat(path)
	if err != nil && isAbsent(err) {
		return nil, nil
	}

	if err != nil {
		return nil, e.Wrapf(err, "stat %s", path)
	}

	if info.IsDir() {
		return nil, errConfigUnreadable(path, e.New("is a directory"))
	}

	cfg, err := config.FromFile(rp.fs, path)
	if err != nil {
		return nil, errConfigUnreadable(path, err)
	}

	return cfg, nil
}

// SaveConfig writes the current config back to the config file.
func (rp *Repository) SaveConfig() error {
	if rp.Config == nil {
		return e.New("repository has no config")
	}

	path, err := rp.File(true, ConfigFile)
	if err != nil {
		return err
	}

	if err := config.ToFile(rp.fs, path, rp.Config); err != nil {
		return e.Wrapf(err, "write %s", path)
	}

	log.Debugf("Wrote config to %s", path)
	return nil
}

func (rp *Repository) String() string {
	return rp.WorkTree
}
