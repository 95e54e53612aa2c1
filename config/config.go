// Package config reads and writes the INI-style configuration file that lives
// in a repository's metadata directory.
//
// The keys this tool understands are parsed into the typed Core struct.
// Everything else (unknown keys in [core], other sections) is kept verbatim
// and written back on save, so a config edited by other tools survives a
// load/save cycle.
//
// Keys are addressed as "section.key". A dotted section like
// "remote.origin.url" maps to the INI section `[remote "origin"]`.
package config

import (
	"bytes"
	"io"
	"io/ioutil"
	"sort"
	"strings"

	"github.com/go-ini/ini"
	e "github.com/pkg/errors"
)

// SectionCore is the only section with typed keys.
const SectionCore = "core"

var (
	// ErrNoCoreSection is returned by Decode when the [core] section is absent.
	ErrNoCoreSection = e.New("no [core] section")
)

// Key names are case insensitive like in git and get stored in lower case.
// Section names keep their case since subsections are case sensitive.
var loadOptions = ini.LoadOptions{InsensitiveKeys: true}

func init() {
	// Write plain `key = value` lines without aligning the "=" signs.
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// Core holds the typed values of the [core] section.
type Core struct {
	// RepositoryFormatVersion identifies the on-disk layout revision.
	RepositoryFormatVersion int

	// FileMode tells whether the executable bit is tracked.
	FileMode bool

	// Bare is true for repositories without a work tree.
	Bare bool
}

// Config is a parsed repository config.
type Config struct {
	Core Core

	file *ini.File
}

// New returns an empty config with a zero Core.
func New() *Config {
	return &Config{file: ini.Empty(loadOptions)}
}

// Decode parses the INI data in `r`.
// It fails when the data is malformed, when [core] or its required keys are
// missing, or when a typed key holds a value of the wrong type.
func Decode(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, e.Wrap(err, "parse")
	}

	core, err := readCore(file)
	if err != nil {
		return nil, err
	}

	return &Config{Core: core, file: file}, nil
}

// Encode writes the config to `w`. Keys are indented by a tab like git does it.
func (cfg *Config) Encode(w io.Writer) error {
	cfg.syncCore()

	buf := &bytes.Buffer{}
	if _, err := cfg.file.WriteToIndent(buf, "\t"); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Get returns the value of `key` and whether it is set.
func (cfg *Config) Get(key string) (string, bool) {
	section, name, err := splitKey(key)
	if err != nil {
		return "", false
	}

	name = strings.ToLower(name)

	if section == SectionCore {
		if ck := lookupCoreKey(name); ck != nil {
			return ck.format(&cfg.Core), true
		}
	}

	sec, err := cfg.file.GetSection(section)
	if err != nil || !sec.HasKey(name) {
		return "", false
	}

	return sec.Key(name).String(), true
}

// Set stores `val` under `key`. Values for typed keys are validated first;
// an invalid value leaves the config untouched.
func (cfg *Config) Set(key, val string) error {
	section, name, err := splitKey(key)
	if err != nil {
		return err
	}

	name = strings.ToLower(name)

	if section == SectionCore {
		if ck := lookupCoreKey(name); ck != nil {
			probe, err := ini.Empty(loadOptions).Section(SectionCore).NewKey(name, val)
			if err != nil {
				return err
			}

			core := cfg.Core
			if err := ck.parse(&core, probe); err != nil {
				return e.Wrapf(err, "invalid value for %s", key)
			}

			if ck.validate != nil {
				if err := ck.validate(&core); err != nil {
					return e.Wrapf(err, "invalid value for %s", key)
				}
			}

			cfg.Core = core
		}
	}

	cfg.file.Section(section).Key(name).SetValue(val)
	return nil
}

// Keys returns all set keys in "section.key" form, sorted.
func (cfg *Config) Keys() []string {
	cfg.syncCore()

	keys := []string{}
	for _, sec := range cfg.file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}

		prefix := joinSection(sec.Name())
		for _, name := range sec.KeyStrings() {
			keys = append(keys, prefix+"."+name)
		}
	}

	sort.Strings(keys)
	return keys
}

// syncCore copies the typed values into the backing INI file.
func (cfg *Config) syncCore() {
	sec := cfg.file.Section(SectionCore)
	for idx := range coreKeys {
		ck := &coreKeys[idx]
		sec.Key(ck.name).SetValue(ck.format(&cfg.Core))
	}
}

// splitKey turns "remote.origin.url" into (`remote "origin"`, "url").
func splitKey(key string) (string, string, error) {
	first := strings.Index(key, ".")
	last := strings.LastIndex(key, ".")
	if first <= 0 || last == len(key)-1 {
		return "", "", e.Errorf("bad key `%s`: need section.key", key)
	}

	name := key[last+1:]
	if first == last {
		return key[:first], name, nil
	}

	sub := key[first+1 : last]
	return key[:first] + ` "` + sub + `"`, name, nil
}

// joinSection is the reverse of splitKey for the section part.
func joinSection(section string) string {
	idx := strings.Index(section, ` "`)
	if idx < 0 || !strings.HasSuffix(section, `"`) {
		return section
	}

	return section[:idx] + "." + section[idx+2:len(section)-1]
}
