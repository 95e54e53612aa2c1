package config

import (
	"math"
	"strconv"

	"github.com/go-ini/ini"
	e "github.com/pkg/errors"
)

// coreKey describes one typed key of the [core] section.
type coreKey struct {
	name     string
	required bool
	parse    func(core *Core, key *ini.Key) error
	format   func(core *Core) string

	// validate is only applied to values passed to Set.
	// Decoding stays lenient so Open can report what it found.
	validate func(core *Core) error
}

var checkVersion = IntRangeValidator(0, math.MaxInt32)

// coreKeys are written in this order for a fresh config.
var coreKeys = []coreKey{
	{
		name:     "repositoryformatversion",
		required: true,
		parse: func(core *Core, key *ini.Key) error {
			version, err := key.Int()
			if err != nil {
				return e.Errorf("not an integer: %q", key.String())
			}

			core.RepositoryFormatVersion = version
			return nil
		},
		format: func(core *Core) string {
			return strconv.Itoa(core.RepositoryFormatVersion)
		},
		validate: func(core *Core) error {
			return checkVersion(core.RepositoryFormatVersion)
		},
	},
	{
		name: "filemode",
		parse: func(core *Core, key *ini.Key) error {
			val, err := key.Bool()
			if err != nil {
				return e.Errorf("not a boolean: %q", key.String())
			}

			core.FileMode = val
			return nil
		},
		format: func(core *Core) string {
			return strconv.FormatBool(core.FileMode)
		},
	},
	{
		name: "bare",
		parse: func(core *Core, key *ini.Key) error {
			val, err := key.Bool()
			if err != nil {
				return e.Errorf("not a boolean: %q", key.String())
			}

			core.Bare = val
			return nil
		},
		format: func(core *Core) string {
			return strconv.FormatBool(core.Bare)
		},
	},
}

func lookupCoreKey(name string) *coreKey {
	for idx := range coreKeys {
		if coreKeys[idx].name == name {
			return &coreKeys[idx]
		}
	}

	return nil
}

func readCore(file *ini.File) (Core, error) {
	core := Core{}

	sec, err := file.GetSection(SectionCore)
	if err != nil {
		return core, ErrNoCoreSection
	}

	for idx := range coreKeys {
		ck := &coreKeys[idx]
		if !sec.HasKey(ck.name) {
			if ck.required {
				return core, e.Errorf("missing key %s.%s", SectionCore, ck.name)
			}

			continue
		}

		if err := ck.parse(&core, sec.Key(ck.name)); err != nil {
			return core, e.Wrapf(err, "%s.%s", SectionCore, ck.name)
		}
	}

	return core, nil
}
