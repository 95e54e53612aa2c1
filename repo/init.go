package repo

import (
	"github.com/Worcrow/wyag/config"
	"github.com/Worcrow/wyag/defaults"
	e "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Init creates a new repository with `worktree` as work tree.
// The work tree is created if needed. An existing metadata directory is
// only accepted if it is empty. Nothing is cleaned up when Init fails
// half way; calling it again will report what is in the way.
func Init(worktree string, opts ...Option) (*Repository, error) {
	rp, err := newRepository(worktree, opts)
	if err != nil {
		return nil, err
	}

	if err := rp.checkTarget(); err != nil {
		return nil, err
	}

	for _, segs := range Skeleton {
		if _, err := rp.Dir(true, segs...); err != nil {
			return nil, err
		}
	}

	bootstrap := []struct {
		name string
		data string
	}{
		{DescriptionFile, defaults.Description},
		{HeadFile, defaults.Head(defaults.Branch)},
	}

	for _, file := range bootstrap {
		if err := rp.writeFile(file.name, []byte(file.data)); err != nil {
			return nil, err
		}
	}

	configPath, err := rp.File(true, ConfigFile)
	if err != nil {
		return nil, err
	}

	if err := config.ToFile(rp.fs, configPath, defaults.Config()); err != nil {
		return nil, e.Wrapf(err, "write %s", configPath)
	}

	log.Debugf("Initialized empty repository in %s", rp.MetaDir)
	return Prepare(rp.WorkTree, opts...)
}

// checkTarget makes sure the work tree is a (possibly new) directory
// and that the metadata directory is either missing or empty.
func (rp *Repository) checkTarget() error {
	if _, err := Dir(rp.fs, rp.WorkTree, true); err != nil {
		return err
	}

	metaDir, err := rp.Dir(false)
	if err != nil || metaDir == "" {
		return err
	}

	isEmpty, err := afero.IsEmpty(rp.fs, metaDir)
	if err != nil {
		return e.Wrapf(err, "read %s", metaDir)
	}

	if !isEmpty {
		return errRepositoryNotEmpty(metaDir)
	}

	return nil
}

// writeFile replaces the content of the metadata file `name`.
func (rp *Repository) writeFile(name string, data []byte) error {
	path, err := rp.File(true, name)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(rp.fs, path, data, 0644); err != nil {
		return e.Wrapf(err, "write %s", path)
	}

	log.Debugf("Wrote %s", path)
	return nil
}
