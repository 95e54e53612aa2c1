package config

import (
	"bytes"

	"github.com/spf13/afero"
)

// FromFile reads and decodes the config at `path` on `fs`.
// A missing file yields the (unwrapped) error of the filesystem.
func FromFile(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	return Decode(bytes.NewReader(data))
}

// ToFile encodes `cfg` and writes it to `path`, replacing any previous content.
func ToFile(fs afero.Fs, path string, cfg *Config) error {
	buf := &bytes.Buffer{}
	if err := cfg.Encode(buf); err != nil {
		return err
	}

	return afero.WriteFile(fs, path, buf.Bytes(), 0644)
}
